package metrics

import (
	"math"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/utils"
)

// UrgencyLevel tiers a goal by how much runway it has left.
type UrgencyLevel string

const (
	UrgencyCritical    UrgencyLevel = "critical"
	UrgencyUrgent      UrgencyLevel = "urgent"
	UrgencyComfortable UrgencyLevel = "comfortable"
)

// Urgency is the tier plus a short user-facing message.
type Urgency struct {
	Level   UrgencyLevel `json:"level"`
	Message string       `json:"message"`
}

// GoalProgress returns completion as a whole percentage, clamped to 100.
// A zero target yields 0, never a division error.
func GoalProgress(current, target float64) int {
	if target == 0 {
		return 0
	}
	p := int(math.Round(current / target * 100))
	if p > 100 {
		return 100
	}
	return p
}

// DaysRemaining returns the number of local calendar days until the
// deadline, negative when the deadline has passed.
func DaysRemaining(deadline, today string) (int, error) {
	return utils.DaysBetween(today, deadline)
}

// ClassifyUrgency combines days remaining and progress into a tier using
// the fixed thresholds the dashboard has always shown.
func ClassifyUrgency(daysRemaining, progress int) Urgency {
	switch {
	case daysRemaining < 0:
		return Urgency{Level: UrgencyCritical, Message: "Overdue!"}
	case daysRemaining <= 3 && progress < 80:
		return Urgency{Level: UrgencyCritical, Message: "Critical! Push hard!"}
	case daysRemaining <= 7 && progress < 50:
		return Urgency{Level: UrgencyUrgent, Message: "Urgent! Speed up!"}
	case daysRemaining <= 14 && progress < 30:
		return Urgency{Level: UrgencyUrgent, Message: "Behind schedule!"}
	default:
		return Urgency{Level: UrgencyComfortable, Message: "On track!"}
	}
}

// RequiredDailyProgress returns how much of the goal's unit must be
// covered per remaining day to still hit the target in time.
func RequiredDailyProgress(g models.Goal, daysRemaining int) float64 {
	remaining := g.TargetValue - g.CurrentValue
	if daysRemaining <= 0 {
		return remaining
	}
	return math.Ceil(remaining / float64(daysRemaining))
}
