package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bodhi-os/bodhi/internal/metrics"
	"github.com/bodhi-os/bodhi/internal/permissions"
	"github.com/bodhi-os/bodhi/internal/utils"
	"github.com/bodhi-os/bodhi/internal/validation"
)

// streakView decorates a stored streak with its live classification, so
// a broken streak shows as broken even before the next completion
// resets the counter.
type streakView struct {
	ID               string               `json:"id"`
	UserID           string               `json:"user_id"`
	HabitName        string               `json:"habit_name"`
	CurrentStreak    int                  `json:"current_streak"`
	LongestStreak    int                  `json:"longest_streak"`
	TotalCompletions int                  `json:"total_completions"`
	LastCompletedAt  string               `json:"last_completed_at,omitempty"`
	CreatedAt        string               `json:"created_at"`
	UpdatedAt        string               `json:"updated_at"`
	Status           metrics.StreakStatus `json:"status"`
}

func (s *Server) handleListStreaks(c *gin.Context) {
	streaks, err := s.store.ListStreaks(s.queryUserID(c), c.Query("habitName"))
	if err != nil {
		respondError(c, err)
		return
	}

	today := utils.Today()
	views := make([]streakView, 0, len(streaks))
	for _, st := range streaks {
		views = append(views, streakView{
			ID:               st.ID,
			UserID:           st.UserID,
			HabitName:        st.HabitName,
			CurrentStreak:    st.CurrentStreak,
			LongestStreak:    st.LongestStreak,
			TotalCompletions: st.TotalCompletions,
			LastCompletedAt:  st.LastCompletedAt,
			CreatedAt:        st.CreatedAt,
			UpdatedAt:        st.UpdatedAt,
			Status:           metrics.ClassifyStreak(st.LastCompletedAt, today),
		})
	}
	c.JSON(http.StatusOK, views)
}

type completeHabitRequest struct {
	HabitName string `json:"habit_name"`
	Completed bool   `json:"completed"`
}

// handleCompleteHabit records one habit completion event and advances
// the streak counters. Completing the same habit twice in a day is a
// no-op; an uncompleted event never advances anything.
func (s *Server) handleCompleteHabit(c *gin.Context) {
	var req completeHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if r := validation.HabitKey(req.HabitName); !r.Valid() {
		respondValidation(c, r)
		return
	}

	// A streak belongs to one user; nobody advances someone else's
	// counters by naming their id in the query string.
	userID := s.queryUserID(c)
	if !s.ownsRow(c, userID) {
		respondForbidden(c, permissions.Message("edit", "habit streak"))
		return
	}

	now := utils.NowStamp()
	today := utils.Today()

	existing, err := s.store.GetStreak(userID, req.HabitName)
	if err != nil {
		if !isNotFound(err) {
			respondError(c, err)
			return
		}
		st := metrics.NewStreak(userID, req.HabitName, req.Completed, now)
		st.ID = uuid.NewString()
		st.CreatedAt = now
		st.UpdatedAt = now
		saved, err := s.store.UpsertStreak(st)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, saved)
		return
	}

	if !req.Completed {
		c.JSON(http.StatusOK, existing)
		return
	}

	advanced, changed := metrics.AdvanceStreak(existing, today, now)
	if !changed {
		c.JSON(http.StatusOK, existing)
		return
	}
	advanced.UpdatedAt = now

	saved, err := s.store.UpsertStreak(advanced)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// handleUpdateStreak overwrites streak counters directly, for manual
// corrections. Normal completions go through the POST endpoint.
func (s *Server) handleUpdateStreak(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	var req struct {
		HabitName string `json:"habit_name"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if r := validation.HabitKey(req.HabitName); !r.Valid() {
		respondValidation(c, r)
		return
	}

	userID := s.queryUserID(c)
	if !s.ownsRow(c, userID) {
		respondForbidden(c, permissions.Message("edit", "habit streak"))
		return
	}

	existing, err := s.store.GetStreak(userID, req.HabitName)
	if err != nil {
		respondError(c, err)
		return
	}

	updated := existing
	if err := json.Unmarshal(body, &updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.HabitName = existing.HabitName
	updated.CreatedAt = existing.CreatedAt

	if updated.CurrentStreak < 0 || updated.LongestStreak < 0 || updated.TotalCompletions < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "streak counters must not be negative"})
		return
	}
	if updated.CurrentStreak > updated.LongestStreak {
		updated.LongestStreak = updated.CurrentStreak
	}
	updated.UpdatedAt = utils.NowStamp()

	saved, err := s.store.UpsertStreak(updated)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
