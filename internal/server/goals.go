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

func (s *Server) handleListGoals(c *gin.Context) {
	goals, err := s.store.ListGoals(s.queryUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (s *Server) handleCreateGoal(c *gin.Context) {
	var g models.Goal
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	session := s.session(c)
	if g.UserID == "" {
		g.UserID = session.UserID
	}
	if g.Status == "" {
		g.Status = models.GoalInProgress
	}
	if g.Priority == "" {
		g.Priority = models.PriorityMedium
	}

	if r := validation.Goal(g); !r.Valid() {
		respondValidation(c, r)
		return
	}

	now := utils.NowStamp()
	g.ID = uuid.NewString()
	g.CreatedAt = now
	g.UpdatedAt = now

	if err := s.store.AddGoal(g); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (s *Server) handleUpdateGoal(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	id, ok := bodyID(c, body)
	if !ok {
		return
	}

	existing, err := s.store.GetGoal(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.ownsRow(c, existing.UserID) {
		respondForbidden(c, permissions.Message("edit", "goal"))
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

	if r := validation.Goal(updated); !r.Valid() {
		respondValidation(c, r)
		return
	}
	updated.UpdatedAt = utils.NowStamp()

	if err := s.store.UpdateGoal(updated); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteGoal(c *gin.Context) {
	id, ok := deleteID(c)
	if !ok {
		return
	}

	existing, err := s.store.GetGoal(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.ownsRow(c, existing.UserID) {
		respondForbidden(c, permissions.Message("delete", "goal"))
		return
	}

	if err := s.store.DeleteGoal(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}
