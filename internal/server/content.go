package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/permissions"
	"github.com/bodhi-os/bodhi/internal/utils"
	"github.com/bodhi-os/bodhi/internal/validation"
)

func (s *Server) handleListContent(c *gin.Context) {
	items, err := s.store.ListContent(s.queryUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleCreateContent(c *gin.Context) {
	var item models.Content
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	session := s.session(c)
	if item.UserID == "" {
		item.UserID = session.UserID
	}
	if item.Status == "" {
		item.Status = models.ContentIdea
	}
	if item.Owner == "" {
		item.Owner = session.Role
	}

	if !permissions.Evaluate(session.Role, item.Owner).CanCreate {
		respondForbidden(c, permissions.Message("create", "content item"))
		return
	}
	if r := validation.Content(item); !r.Valid() {
		respondValidation(c, r)
		return
	}

	now := utils.NowStamp()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.store.AddContent(item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleUpdateContent(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	id, ok := bodyID(c, body)
	if !ok {
		return
	}

	existing, err := s.store.GetContent(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !permissions.Evaluate(s.session(c).Role, existing.Owner).CanEdit {
		respondForbidden(c, permissions.Message("edit", "content item"))
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

	if r := validation.Content(updated); !r.Valid() {
		respondValidation(c, r)
		return
	}
	updated.UpdatedAt = utils.NowStamp()

	if err := s.store.UpdateContent(updated); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteContent(c *gin.Context) {
	id, ok := deleteID(c)
	if !ok {
		return
	}

	existing, err := s.store.GetContent(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !permissions.Evaluate(s.session(c).Role, existing.Owner).CanDelete {
		respondForbidden(c, permissions.Message("delete", "content item"))
		return
	}

	if err := s.store.DeleteContent(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "content item deleted"})
}
