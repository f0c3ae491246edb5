// Package validation checks entity payloads before persistence:
// required fields, enum membership, numeric ranges, and date formats.
package validation

import (
	"fmt"
	"strings"

	"github.com/bodhi-os/bodhi/internal/constants"
	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/utils"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result collects all violations found in a payload.
type Result struct {
	Errors []FieldError
}

// Valid reports whether no violations were found.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Error renders all violations as a single message.
func (r *Result) Error() string {
	if r.Valid() {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}

func (r *Result) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

func (r *Result) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		r.add(field, "is required")
	}
}

func (r *Result) date(field, value string) {
	if value != "" && !utils.ValidDate(value) {
		r.add(field, "must be a YYYY-MM-DD date")
	}
}

func (r *Result) oneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	r.add(field, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
}

func (r *Result) owner(field string, value models.Role) {
	r.oneOf(field, string(value), string(models.RoleMe), string(models.RoleWife))
}

// Tracker validates a daily tracker payload.
func Tracker(t models.DailyTracker) Result {
	var r Result
	r.require("user_id", t.UserID)
	r.require("date", t.Date)
	r.date("date", t.Date)
	r.oneOf("mood", string(t.Mood),
		string(models.MoodGreat), string(models.MoodGood), string(models.MoodOK), string(models.MoodLow))
	return r
}

// HabitKey validates a habit key used to toggle a tracker flag or to
// advance a streak. Unknown keys are an error, never a silent no-op.
func HabitKey(key string) Result {
	var r Result
	r.require("habit", key)
	if key != "" && !constants.ValidHabitKey(constants.HabitKey(key)) {
		r.add("habit", fmt.Sprintf("unknown habit %q", key))
	}
	return r
}

// Task validates a task payload.
func Task(t models.Task) Result {
	var r Result
	r.require("user_id", t.UserID)
	r.require("title", t.Title)
	r.oneOf("category", string(t.Category),
		string(models.CategoryYouTube), string(models.CategoryBodhiLearn), string(models.CategoryEcommerce),
		string(models.CategoryPrinter), string(models.CategoryWork), string(models.CategoryPersonal))
	r.oneOf("priority", string(t.Priority),
		string(models.PriorityHigh), string(models.PriorityMedium), string(models.PriorityLow))
	r.oneOf("status", string(t.Status),
		string(models.StatusBacklog), string(models.StatusToday), string(models.StatusInProgress),
		string(models.StatusWaiting), string(models.StatusDone))
	r.oneOf("estimated_time", string(t.EstimatedTime),
		string(models.Est15Min), string(models.Est30Min), string(models.Est1Hour),
		string(models.Est2Hours), string(models.Est4Hours))
	r.owner("owner", t.Owner)
	r.date("due_date", t.DueDate)
	if t.IsRecurring {
		r.oneOf("recurring_frequency", string(t.RecurringFrequency),
			string(models.FrequencyDaily), string(models.FrequencyWeekly), string(models.FrequencyMonthly))
	}
	return r
}

// Content validates a content item payload.
func Content(c models.Content) Result {
	var r Result
	r.require("user_id", c.UserID)
	r.require("title", c.Title)
	for i, p := range c.Platforms {
		r.oneOf(fmt.Sprintf("platforms[%d]", i), string(p),
			string(models.PlatformTechTalks), string(models.PlatformBodhiLearn),
			string(models.PlatformInstagram), string(models.PlatformShorts))
	}
	r.oneOf("type", string(c.Type),
		string(models.ContentLongVideo), string(models.ContentShort), string(models.ContentReel))
	r.oneOf("status", string(c.Status),
		string(models.ContentIdea), string(models.ContentScripted), string(models.ContentRecorded),
		string(models.ContentEditing), string(models.ContentThumbnailReady),
		string(models.ContentScheduled), string(models.ContentPosted))
	r.owner("owner", c.Owner)
	r.date("shoot_date", c.ShootDate)
	r.date("publish_date", c.PublishDate)
	return r
}

// Order validates a business order payload.
func Order(o models.BusinessOrder) Result {
	var r Result
	r.require("user_id", o.UserID)
	r.require("customer_name", o.CustomerName)
	r.oneOf("business_type", string(o.BusinessType),
		string(models.BusinessClothing), string(models.BusinessPrinting3D))
	r.oneOf("order_status", string(o.OrderStatus),
		string(models.OrderNew), string(models.OrderDesigning), string(models.OrderPrinting),
		string(models.OrderPacking), string(models.OrderDelivered), string(models.OrderCancelled))
	r.oneOf("payment_status", string(o.PaymentStatus),
		string(models.PaymentPending), string(models.PaymentPaid), string(models.PaymentPartial))
	r.owner("handled_by", o.HandledBy)
	r.date("order_date", o.OrderDate)
	r.date("delivery_date", o.DeliveryDate)
	if o.Amount < 0 {
		r.add("amount", "must not be negative")
	}
	if o.Cost < 0 {
		r.add("cost", "must not be negative")
	}
	return r
}

// Goal validates a goal payload.
func Goal(g models.Goal) Result {
	var r Result
	r.require("user_id", g.UserID)
	r.require("title", g.Title)
	r.oneOf("category", string(g.Category),
		string(models.GoalContent), string(models.GoalBusiness), string(models.GoalHealth),
		string(models.GoalPersonal), string(models.GoalLearning))
	r.oneOf("status", string(g.Status),
		string(models.GoalInProgress), string(models.GoalCompleted),
		string(models.GoalPaused), string(models.GoalCancelled))
	r.oneOf("priority", string(g.Priority),
		string(models.PriorityHigh), string(models.PriorityMedium), string(models.PriorityLow))
	r.require("deadline", g.Deadline)
	r.date("deadline", g.Deadline)
	if g.TargetValue < 0 {
		r.add("target_value", "must not be negative")
	}
	if g.SharedWith != "" {
		r.owner("shared_with", g.SharedWith)
	}
	return r
}

// WeeklyPlan validates a weekly plan day payload.
func WeeklyPlan(p models.WeeklyPlanDay) Result {
	var r Result
	r.require("user_id", p.UserID)
	r.require("date", p.Date)
	r.date("date", p.Date)
	return r
}

// Share validates an accountability share payload.
func Share(s models.AccountabilityShare) Result {
	var r Result
	r.require("from_user_id", s.FromUserID)
	r.require("to_user_id", s.ToUserID)
	r.require("item_id", s.ItemID)
	r.oneOf("share_type", string(s.ShareType),
		string(models.ShareGoal), string(models.ShareTask),
		string(models.ShareTracker), string(models.ShareContent))
	return r
}
