package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bodhi-os/bodhi/internal/storage/sqlite"
	"github.com/bodhi-os/bodhi/internal/utils"
)

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	store := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := New(Config{Store: store, SessionSecret: "test-secret"})
	return srv.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("response is not a JSON object: %v\n%s", err, w.Body.String())
	}
	return m
}

// registerAndLogin creates a user through the API and returns a session
// token.
func registerAndLogin(t *testing.T, h http.Handler, name, email, role string) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "hunter2", "role": role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "hunter2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestAuthFlow(t *testing.T) {
	h := setupServer(t)

	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	// Duplicate registration is rejected.
	w := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Again", "email": "me@example.com", "password": "x",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate register returned %d, want 409", w.Code)
	}

	// Wrong password is rejected without leaking whether the user exists.
	w = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "me@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password login returned %d, want 401", w.Code)
	}
	w = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown email login returned %d, want 401", w.Code)
	}

	// Authenticated requests work; unauthenticated ones do not.
	if w := doJSON(t, h, http.MethodGet, "/api/tasks", token, nil); w.Code != http.StatusOK {
		t.Errorf("authenticated list returned %d, want 200", w.Code)
	}
	if w := doJSON(t, h, http.MethodGet, "/api/tasks", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated list returned %d, want 401", w.Code)
	}
	if w := doJSON(t, h, http.MethodGet, "/api/tasks", "garbage-token", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token returned %d, want 401", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	h := setupServer(t)
	w := doJSON(t, h, http.MethodGet, "/api/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("healthz returned %d, want 200", w.Code)
	}
}

func TestEnsureTrackerIsIdempotent(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	first := doJSON(t, h, http.MethodPost, "/api/daily-tracker/ensure", token,
		map[string]string{"date": "2026-03-10"})
	if first.Code != http.StatusCreated {
		t.Fatalf("first ensure returned %d: %s", first.Code, first.Body.String())
	}
	firstID := decode(t, first)["id"].(string)

	second := doJSON(t, h, http.MethodPost, "/api/daily-tracker/ensure", token,
		map[string]string{"date": "2026-03-10"})
	if second.Code != http.StatusOK {
		t.Fatalf("second ensure returned %d: %s", second.Code, second.Body.String())
	}
	if got := decode(t, second)["id"].(string); got != firstID {
		t.Errorf("second ensure returned id %s, want %s", got, firstID)
	}

	w := doJSON(t, h, http.MethodGet, "/api/daily-tracker?date=2026-03-10", token, nil)
	var rows []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("list response invalid: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d tracker rows, want 1", len(rows))
	}
}

func TestTrackerUpdateAndDeletePermissions(t *testing.T) {
	h := setupServer(t)
	meToken := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")
	wifeToken := registerAndLogin(t, h, "Priya", "wife@example.com", "WIFE")

	w := doJSON(t, h, http.MethodPost, "/api/daily-tracker/ensure", meToken,
		map[string]string{"date": "2026-03-10"})
	id := decode(t, w)["id"].(string)

	// Partial update: only the toggled flag changes.
	w = doJSON(t, h, http.MethodPut, "/api/daily-tracker", meToken,
		map[string]interface{}{"id": id, "gym_done": true})
	if w.Code != http.StatusOK {
		t.Fatalf("tracker update returned %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["gym_done"] != true {
		t.Error("gym_done not set")
	}
	if body["date"] != "2026-03-10" {
		t.Errorf("date changed to %v", body["date"])
	}

	// Either user can edit the shared tracker, but only ME may delete.
	w = doJSON(t, h, http.MethodPut, "/api/daily-tracker", wifeToken,
		map[string]interface{}{"id": id, "content_done": true})
	if w.Code != http.StatusOK {
		t.Errorf("wife tracker edit returned %d, want 200", w.Code)
	}

	w = doJSON(t, h, http.MethodDelete, "/api/daily-tracker?id="+id, wifeToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("wife tracker delete returned %d, want 403", w.Code)
	}
	w = doJSON(t, h, http.MethodDelete, "/api/daily-tracker?id="+id, meToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("me tracker delete returned %d, want 200", w.Code)
	}
}

func TestTaskOwnershipEnforcedServerSide(t *testing.T) {
	h := setupServer(t)
	meToken := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")
	wifeToken := registerAndLogin(t, h, "Priya", "wife@example.com", "WIFE")

	w := doJSON(t, h, http.MethodPost, "/api/tasks", meToken, map[string]interface{}{
		"title": "Mine", "category": "WORK", "priority": "HIGH",
		"status": "BACKLOG", "estimated_time": "HOUR1", "owner": "ME",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create task returned %d: %s", w.Code, w.Body.String())
	}
	meTaskID := decode(t, w)["id"].(string)

	// WIFE cannot edit or delete a ME-owned task, no matter what the
	// client claims.
	w = doJSON(t, h, http.MethodPut, "/api/tasks", wifeToken,
		map[string]interface{}{"id": meTaskID, "title": "Hijacked"})
	if w.Code != http.StatusForbidden {
		t.Errorf("wife edit of ME task returned %d, want 403", w.Code)
	}
	w = doJSON(t, h, http.MethodDelete, "/api/tasks?id="+meTaskID, wifeToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("wife delete of ME task returned %d, want 403", w.Code)
	}

	// A WIFE-owned task is fully editable by her.
	w = doJSON(t, h, http.MethodPost, "/api/tasks", wifeToken, map[string]interface{}{
		"title": "Hers", "category": "PERSONAL", "priority": "LOW",
		"status": "BACKLOG", "estimated_time": "MIN30", "owner": "WIFE",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("wife create returned %d: %s", w.Code, w.Body.String())
	}
	wifeTaskID := decode(t, w)["id"].(string)

	w = doJSON(t, h, http.MethodPut, "/api/tasks", wifeToken,
		map[string]interface{}{"id": wifeTaskID, "status": "DONE"})
	if w.Code != http.StatusOK {
		t.Errorf("wife edit of own task returned %d: %s", w.Code, w.Body.String())
	}

	// ME can edit anything.
	w = doJSON(t, h, http.MethodPut, "/api/tasks", meToken,
		map[string]interface{}{"id": wifeTaskID, "priority": "HIGH"})
	if w.Code != http.StatusOK {
		t.Errorf("me edit of wife task returned %d, want 200", w.Code)
	}
}

func TestTaskValidationRejected(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	w := doJSON(t, h, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"title": "", "category": "NOT_A_CATEGORY",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid task returned %d, want 400", w.Code)
	}
}

func TestCompleteHabitTwiceSameDay(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	w := doJSON(t, h, http.MethodPost, "/api/habit-streaks", token,
		map[string]interface{}{"habit_name": "gym", "completed": true})
	if w.Code != http.StatusCreated {
		t.Fatalf("first completion returned %d: %s", w.Code, w.Body.String())
	}
	first := decode(t, w)
	if first["current_streak"].(float64) != 1 {
		t.Errorf("current_streak = %v, want 1", first["current_streak"])
	}

	w = doJSON(t, h, http.MethodPost, "/api/habit-streaks", token,
		map[string]interface{}{"habit_name": "gym", "completed": true})
	if w.Code != http.StatusOK {
		t.Fatalf("second completion returned %d: %s", w.Code, w.Body.String())
	}
	second := decode(t, w)
	if second["current_streak"].(float64) != 1 || second["total_completions"].(float64) != 1 {
		t.Errorf("same-day duplicate changed counters: %v", second)
	}

	// Unknown habit keys are rejected outright.
	w = doJSON(t, h, http.MethodPost, "/api/habit-streaks", token,
		map[string]interface{}{"habit_name": "meditation", "completed": true})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown habit returned %d, want 400", w.Code)
	}
}

func TestStreakMutationsScopedToSessionUser(t *testing.T) {
	h := setupServer(t)
	meToken := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")
	wifeToken := registerAndLogin(t, h, "Priya", "wife@example.com", "WIFE")

	w := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "me@example.com", "password": "hunter2",
	})
	meID := decode(t, w)["user"].(map[string]interface{})["id"].(string)

	w = doJSON(t, h, http.MethodPost, "/api/habit-streaks", meToken,
		map[string]interface{}{"habit_name": "gym", "completed": true})
	if w.Code != http.StatusCreated {
		t.Fatalf("completion returned %d: %s", w.Code, w.Body.String())
	}

	// WIFE cannot advance or overwrite ME's counters by naming his id.
	w = doJSON(t, h, http.MethodPost, "/api/habit-streaks?userId="+meID, wifeToken,
		map[string]interface{}{"habit_name": "gym", "completed": true})
	if w.Code != http.StatusForbidden {
		t.Errorf("wife completion against ME streak returned %d, want 403", w.Code)
	}
	w = doJSON(t, h, http.MethodPut, "/api/habit-streaks?userId="+meID, wifeToken,
		map[string]interface{}{"habit_name": "gym", "current_streak": 999})
	if w.Code != http.StatusForbidden {
		t.Errorf("wife overwrite of ME streak returned %d, want 403", w.Code)
	}

	// The catch-up pass is equally scoped.
	w = doJSON(t, h, http.MethodPost, "/api/tasks/catch-up?userId="+meID, wifeToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("wife catch-up for ME returned %d, want 403", w.Code)
	}

	// ME's counters are untouched.
	w = doJSON(t, h, http.MethodGet, "/api/habit-streaks?habitName=gym", meToken, nil)
	var views []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("list response invalid: %v", err)
	}
	if len(views) != 1 || views[0]["current_streak"].(float64) != 1 {
		t.Errorf("ME streak mutated by foreign session: %v", views)
	}

	// ME can still act on WIFE's streaks.
	w = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "wife@example.com", "password": "hunter2",
	})
	wifeID := decode(t, w)["user"].(map[string]interface{})["id"].(string)
	w = doJSON(t, h, http.MethodPost, "/api/habit-streaks?userId="+wifeID, meToken,
		map[string]interface{}{"habit_name": "gym", "completed": true})
	if w.Code != http.StatusCreated {
		t.Errorf("ME completion for wife returned %d, want 201", w.Code)
	}
}

func TestRecurringCatchUpEndpoint(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	// A completed daily task due in the past spawns exactly one
	// instance per catch-up window.
	w := doJSON(t, h, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"title": "Daily review", "category": "PERSONAL", "priority": "LOW",
		"status": "BACKLOG", "estimated_time": "MIN15", "owner": "ME",
		"is_recurring": true, "recurring_frequency": "DAILY",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}
	id := decode(t, w)["id"].(string)

	w = doJSON(t, h, http.MethodPut, "/api/tasks", token,
		map[string]interface{}{"id": id, "status": "DONE"})
	if w.Code != http.StatusOK {
		t.Fatalf("complete returned %d: %s", w.Code, w.Body.String())
	}

	// Created just now, so nothing is due yet.
	w = doJSON(t, h, http.MethodPost, "/api/tasks/catch-up", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("catch-up returned %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["count"].(float64); got != 0 {
		t.Errorf("catch-up spawned %v tasks, want 0 for a fresh task", got)
	}
}

func TestBusinessProfitDerivedServerSide(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	w := doJSON(t, h, http.MethodPost, "/api/business", token, map[string]interface{}{
		"customer_name": "Arjun", "business_type": "PRINTING_3D",
		"order_status": "NEW", "payment_status": "PENDING", "handled_by": "ME",
		"amount": 800, "cost": 200, "profit": 9999,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order returned %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["profit"].(float64); got != 600 {
		t.Errorf("profit = %v, want 600 (client-supplied value ignored)", got)
	}
}

func TestWeeklyPlanUpsertRoute(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	w := doJSON(t, h, http.MethodPost, "/api/weekly-plan", token,
		map[string]interface{}{"date": "2026-03-10", "deep_work_done": true})
	if w.Code != http.StatusOK {
		t.Fatalf("plan upsert returned %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["day_of_week"]; got != "TUESDAY" {
		t.Errorf("day_of_week = %v, want TUESDAY", got)
	}

	// Same date again converges on one row.
	doJSON(t, h, http.MethodPost, "/api/weekly-plan", token,
		map[string]interface{}{"date": "2026-03-10", "gym_walk_done": true})
	w = doJSON(t, h, http.MethodGet, "/api/weekly-plan?date=2026-03-10", token, nil)
	var rows []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("list response invalid: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d plan rows, want 1", len(rows))
	}
}

func TestEnsureTrackerUnknownUser(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	w := doJSON(t, h, http.MethodPost, "/api/daily-tracker/ensure?userId=no-such-user", token,
		map[string]string{"date": "2026-03-10"})
	if w.Code != http.StatusNotFound {
		t.Errorf("ensure for unknown user returned %d, want 404", w.Code)
	}
}

func TestWeeklyReviewEndpoint(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")
	today := utils.Today()

	w := doJSON(t, h, http.MethodPost, "/api/daily-tracker", token,
		map[string]interface{}{"date": today, "gym_done": true, "deep_work_done": true})
	if w.Code != http.StatusOK {
		t.Fatalf("tracker upsert returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPost, "/api/business", token, map[string]interface{}{
		"customer_name": "Arjun", "business_type": "PRINTING_3D",
		"order_status": "NEW", "payment_status": "PENDING", "handled_by": "ME",
		"amount": 800, "cost": 200, "order_date": today,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("order create returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPost, "/api/goals", token, map[string]interface{}{
		"title": "Subscribers", "category": "CONTENT", "unit": "subs",
		"target_value": 100, "current_value": 50,
		"deadline": utils.DaysFromNow(30),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("goal create returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPost, "/api/habit-streaks", token,
		map[string]interface{}{"habit_name": "gym", "completed": true})
	if w.Code != http.StatusCreated {
		t.Fatalf("completion returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodGet, "/api/weekly-review", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("weekly review returned %d: %s", w.Code, w.Body.String())
	}
	review := decode(t, w)

	score := review["weekly_score"].(map[string]interface{})
	if score["score"].(float64) != 2 {
		t.Errorf("weekly score = %v, want 2", score["score"])
	}
	if review["monthly_profit"].(float64) != 600 {
		t.Errorf("monthly_profit = %v, want 600", review["monthly_profit"])
	}
	if review["pending_payments"].(float64) != 800 {
		t.Errorf("pending_payments = %v, want 800", review["pending_payments"])
	}

	goals := review["goals"].([]interface{})
	if len(goals) != 1 {
		t.Fatalf("got %d goal reviews, want 1", len(goals))
	}
	goal := goals[0].(map[string]interface{})
	if goal["progress"].(float64) != 50 {
		t.Errorf("goal progress = %v, want 50", goal["progress"])
	}
	if level := goal["urgency"].(map[string]interface{})["level"]; level != "comfortable" {
		t.Errorf("urgency level = %v, want comfortable", level)
	}

	habits := review["habits"].([]interface{})
	if len(habits) != 1 {
		t.Fatalf("got %d habit reviews, want 1", len(habits))
	}
	if rate := habits[0].(map[string]interface{})["completion_rate"].(float64); rate != 100 {
		t.Errorf("completion_rate = %v, want 100 on day one", rate)
	}
}

func TestShareReactionOnlyByRecipient(t *testing.T) {
	h := setupServer(t)
	meToken := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")
	wifeToken := registerAndLogin(t, h, "Priya", "wife@example.com", "WIFE")

	// Look up the recipient id from the login response.
	w := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "wife@example.com", "password": "hunter2",
	})
	wifeID := decode(t, w)["user"].(map[string]interface{})["id"].(string)

	w = doJSON(t, h, http.MethodPost, "/api/accountability", meToken, map[string]interface{}{
		"to_user_id": wifeID, "share_type": "GOAL", "item_id": "g1",
		"message": "keeping me honest",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create share returned %d: %s", w.Code, w.Body.String())
	}
	shareID := decode(t, w)["id"].(string)

	// The sender's reaction write is ignored; the recipient's sticks.
	w = doJSON(t, h, http.MethodPut, "/api/accountability", meToken,
		map[string]interface{}{"id": shareID, "reaction": "🙌"})
	if w.Code != http.StatusOK {
		t.Fatalf("sender update returned %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["reaction"]; got != "" && got != nil {
		t.Errorf("sender set reaction %v, want ignored", got)
	}

	w = doJSON(t, h, http.MethodPut, "/api/accountability", wifeToken,
		map[string]interface{}{"id": shareID, "reaction": "🙌"})
	if w.Code != http.StatusOK {
		t.Fatalf("recipient update returned %d: %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["reaction"]; got != "🙌" {
		t.Errorf("reaction = %v, want 🙌", got)
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	doJSON(t, h, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"title": "Exported", "category": "WORK", "priority": "LOW",
		"status": "BACKLOG", "estimated_time": "MIN15", "owner": "ME",
	})

	w := doJSON(t, h, http.MethodGet, "/api/export/csv?entity=tasks", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export returned %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "bodhi_tasks_") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.Contains(w.Body.String(), "Exported") {
		t.Error("exported CSV missing task title")
	}

	// Unknown entity is a client error.
	w = doJSON(t, h, http.MethodGet, "/api/export/csv?entity=users", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown entity returned %d, want 400", w.Code)
	}
}

func TestExportBackupEndpoint(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	w := doJSON(t, h, http.MethodGet, "/api/export/backup", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("backup returned %d: %s", w.Code, w.Body.String())
	}

	var backup struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &backup); err != nil {
		t.Fatalf("backup is not valid JSON: %v", err)
	}
	for _, entity := range []string{"tasks", "daily_trackers", "goals"} {
		if _, ok := backup.Data[entity]; !ok {
			t.Errorf("backup missing %q", entity)
		}
	}
}

func TestNotFoundMapsTo404(t *testing.T) {
	h := setupServer(t)
	token := registerAndLogin(t, h, "Bodhi", "me@example.com", "ME")

	w := doJSON(t, h, http.MethodPut, "/api/tasks", token,
		map[string]interface{}{"id": "no-such-task", "title": "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("update of missing task returned %d, want 404", w.Code)
	}

	w = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/goals?id=%s", "missing"), token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete of missing goal returned %d, want 404", w.Code)
	}
}
