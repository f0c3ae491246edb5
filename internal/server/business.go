package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bodhi-os/bodhi/internal/metrics"
	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/permissions"
	"github.com/bodhi-os/bodhi/internal/utils"
	"github.com/bodhi-os/bodhi/internal/validation"
)

func (s *Server) handleListOrders(c *gin.Context) {
	orders, err := s.store.ListOrders(s.queryUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var o models.BusinessOrder
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	session := s.session(c)
	if o.UserID == "" {
		o.UserID = session.UserID
	}
	if o.OrderStatus == "" {
		o.OrderStatus = models.OrderNew
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = models.PaymentPending
	}
	if o.HandledBy == "" {
		o.HandledBy = session.Role
	}

	if !permissions.Evaluate(session.Role, o.HandledBy).CanCreate {
		respondForbidden(c, permissions.Message("create", "order"))
		return
	}
	if r := validation.Order(o); !r.Valid() {
		respondValidation(c, r)
		return
	}

	// Profit is always derived server-side; a client-supplied value is
	// discarded.
	o.Profit = metrics.Profit(o)

	now := utils.NowStamp()
	o.ID = uuid.NewString()
	o.CreatedAt = now
	o.UpdatedAt = now

	if err := s.store.AddOrder(o); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (s *Server) handleUpdateOrder(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	id, ok := bodyID(c, body)
	if !ok {
		return
	}

	existing, err := s.store.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !permissions.Evaluate(s.session(c).Role, existing.HandledBy).CanEdit {
		respondForbidden(c, permissions.Message("edit", "order"))
		return
	}

	updated := existing
	if err := json.Unmarshal(body, &updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt

	if r := validation.Order(updated); !r.Valid() {
		respondValidation(c, r)
		return
	}
	updated.Profit = metrics.Profit(updated)
	updated.UpdatedAt = utils.NowStamp()

	if err := s.store.UpdateOrder(updated); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteOrder(c *gin.Context) {
	id, ok := deleteID(c)
	if !ok {
		return
	}

	existing, err := s.store.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !permissions.Evaluate(s.session(c).Role, existing.HandledBy).CanDelete {
		respondForbidden(c, permissions.Message("delete", "order"))
		return
	}

	if err := s.store.DeleteOrder(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
