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

func (s *Server) handleListWeeklyPlans(c *gin.Context) {
	plans, err := s.store.ListWeeklyPlans(s.queryUserID(c), dateRange(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// handleUpsertWeeklyPlan creates or replaces the plan row for a date;
// one row exists per (user, date).
func (s *Server) handleUpsertWeeklyPlan(c *gin.Context) {
	var p models.WeeklyPlanDay
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	session := s.session(c)
	if p.UserID == "" {
		p.UserID = session.UserID
	}
	if p.Date == "" {
		p.Date = utils.Today()
	}
	if !s.ownsRow(c, p.UserID) {
		respondForbidden(c, permissions.Message("edit", "plan day"))
		return
	}
	if r := validation.WeeklyPlan(p); !r.Valid() {
		respondValidation(c, r)
		return
	}

	if day, err := utils.ParseDate(p.Date); err == nil {
		p.DayOfWeek = utils.WeekdayLabel(day)
	}
	now := utils.NowStamp()
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	saved, err := s.store.UpsertWeeklyPlan(p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) handleUpdateWeeklyPlan(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	id, ok := bodyID(c, body)
	if !ok {
		return
	}

	existing, err := s.store.GetWeeklyPlan(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.ownsRow(c, existing.UserID) {
		respondForbidden(c, permissions.Message("edit", "plan day"))
		return
	}

	updated := existing
	if err := json.Unmarshal(body, &updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.Date = existing.Date
	updated.DayOfWeek = existing.DayOfWeek
	updated.CreatedAt = existing.CreatedAt

	if r := validation.WeeklyPlan(updated); !r.Valid() {
		respondValidation(c, r)
		return
	}
	updated.UpdatedAt = utils.NowStamp()

	saved, err := s.store.UpsertWeeklyPlan(updated)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) handleDeleteWeeklyPlan(c *gin.Context) {
	id, ok := deleteID(c)
	if !ok {
		return
	}

	existing, err := s.store.GetWeeklyPlan(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !s.ownsRow(c, existing.UserID) {
		respondForbidden(c, permissions.Message("delete", "plan day"))
		return
	}

	if err := s.store.DeleteWeeklyPlan(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan day deleted"})
}
