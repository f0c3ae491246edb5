package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/permissions"
	"github.com/bodhi-os/bodhi/internal/recurring"
	"github.com/bodhi-os/bodhi/internal/utils"
	"github.com/bodhi-os/bodhi/internal/validation"
)

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.store.ListTasks(s.queryUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var t models.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	session := s.session(c)
	if t.UserID == "" {
		t.UserID = session.UserID
	}
	if t.Status == "" {
		t.Status = models.StatusBacklog
	}
	if t.Owner == "" {
		t.Owner = session.Role
	}

	if !permissions.Evaluate(session.Role, t.Owner).CanCreate {
		respondForbidden(c, permissions.Message("create", "task"))
		return
	}
	if r := validation.Task(t); !r.Valid() {
		respondValidation(c, r)
		return
	}

	now := utils.NowStamp()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.store.AddTask(t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	id, ok := bodyID(c, body)
	if !ok {
		return
	}

	existing, err := s.store.GetTask(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !permissions.Evaluate(s.session(c).Role, existing.Owner).CanEdit {
		respondForbidden(c, permissions.Message("edit", "task"))
		return
	}

	updated := existing
	if err := json.Unmarshal(body, &updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.ParentTaskID = existing.ParentTaskID
	updated.CreatedAt = existing.CreatedAt

	if r := validation.Task(updated); !r.Valid() {
		respondValidation(c, r)
		return
	}
	updated.UpdatedAt = utils.NowStamp()

	if err := s.store.UpdateTask(updated); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := deleteID(c)
	if !ok {
		return
	}

	existing, err := s.store.GetTask(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !permissions.Evaluate(s.session(c).Role, existing.Owner).CanDelete {
		respondForbidden(c, permissions.Message("delete", "task"))
		return
	}

	if err := s.store.DeleteTask(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

// handleCatchUp runs the recurring-task catch-up pass on demand and
// returns the spawned instances. The pass also runs on every login.
func (s *Server) handleCatchUp(c *gin.Context) {
	userID := s.queryUserID(c)
	if !s.ownsRow(c, userID) {
		respondForbidden(c, permissions.Message("edit", "task"))
		return
	}

	spawned, err := recurring.CatchUp(s.store, userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	if spawned == nil {
		spawned = []models.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"spawned": spawned, "count": len(spawned)})
}
