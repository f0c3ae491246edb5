package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bodhi-os/bodhi/internal/metrics"
	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
	"github.com/bodhi-os/bodhi/internal/utils"
)

// goalReview pairs a goal with the derived numbers shown next to it.
type goalReview struct {
	models.Goal
	Progress           int             `json:"progress"`
	DaysRemaining      int             `json:"days_remaining"`
	Urgency            metrics.Urgency `json:"urgency"`
	RequiredDailyValue float64         `json:"required_daily_value"`
}

// habitReview pairs a streak with its lifetime completion rate.
type habitReview struct {
	HabitName      string `json:"habit_name"`
	CurrentStreak  int    `json:"current_streak"`
	CompletionRate int    `json:"completion_rate"`
}

type weeklyReview struct {
	WeeklyScore     metrics.WeeklyScore `json:"weekly_score"`
	Goals           []goalReview        `json:"goals"`
	Habits          []habitReview       `json:"habits"`
	MonthlyProfit   float64             `json:"monthly_profit"`
	PendingPayments float64             `json:"pending_payments"`
}

// handleWeeklyReview aggregates the derived metrics for the review
// surface in one response: the last seven days' habit score, each
// goal's progress and urgency, streak completion rates, and the
// current month's business numbers.
func (s *Server) handleWeeklyReview(c *gin.Context) {
	userID := s.queryUserID(c)
	today := utils.Today()

	trackers, err := s.store.ListTrackers(userID, storage.DateRange{
		StartDate: utils.DaysAgo(6),
		EndDate:   today,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	goals, err := s.store.ListGoals(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	goalViews := make([]goalReview, 0, len(goals))
	for _, g := range goals {
		days, err := metrics.DaysRemaining(g.Deadline, today)
		if err != nil {
			continue
		}
		progress := metrics.GoalProgress(g.CurrentValue, g.TargetValue)
		goalViews = append(goalViews, goalReview{
			Goal:               g,
			Progress:           progress,
			DaysRemaining:      days,
			Urgency:            metrics.ClassifyUrgency(days, progress),
			RequiredDailyValue: metrics.RequiredDailyProgress(g, days),
		})
	}

	streaks, err := s.store.ListStreaks(userID, "")
	if err != nil {
		respondError(c, err)
		return
	}
	habitViews := make([]habitReview, 0, len(streaks))
	for _, st := range streaks {
		started, err := utils.LocalDay(st.CreatedAt)
		if err != nil {
			continue
		}
		since, err := utils.DaysBetween(started, today)
		if err != nil {
			continue
		}
		habitViews = append(habitViews, habitReview{
			HabitName:      st.HabitName,
			CurrentStreak:  st.CurrentStreak,
			CompletionRate: metrics.CompletionRate(st.TotalCompletions, since+1),
		})
	}

	orders, err := s.store.ListOrders(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, weeklyReview{
		WeeklyScore:     metrics.ScoreWeek(trackers),
		Goals:           goalViews,
		Habits:          habitViews,
		MonthlyProfit:   metrics.MonthlyProfit(orders, time.Now()),
		PendingPayments: metrics.PendingPayments(orders),
	})
}
