package permissions

import (
	"testing"

	"github.com/bodhi-os/bodhi/internal/models"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		owner      models.Role
		assignedTo []models.Role
		wantEdit   bool
		wantDelete bool
	}{
		{"me on own item", models.RoleMe, models.RoleMe, nil, true, true},
		{"me on wife's item", models.RoleMe, models.RoleWife, nil, true, true},
		{"wife on own item", models.RoleWife, models.RoleWife, nil, true, true},
		{"wife on me's item", models.RoleWife, models.RoleMe, nil, false, false},
		{"wife on item assigned to her", models.RoleWife, models.RoleMe, []models.Role{models.RoleWife}, true, true},
		{"wife on item assigned to me", models.RoleWife, models.RoleMe, []models.Role{models.RoleMe}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.role, tt.owner, tt.assignedTo...)
			if got.CanEdit != tt.wantEdit {
				t.Errorf("CanEdit = %v, want %v", got.CanEdit, tt.wantEdit)
			}
			if got.CanDelete != tt.wantDelete {
				t.Errorf("CanDelete = %v, want %v", got.CanDelete, tt.wantDelete)
			}
			// Both known roles can always view and create.
			if !got.CanView || !got.CanCreate {
				t.Errorf("CanView/CanCreate = %v/%v, want true/true", got.CanView, got.CanCreate)
			}
		})
	}
}

func TestEvaluateUnknownRole(t *testing.T) {
	got := Evaluate(models.Role("ADMIN"), models.RoleMe)
	if got.CanView || got.CanEdit || got.CanDelete || got.CanCreate {
		t.Errorf("unknown role should get no capabilities, got %+v", got)
	}
}

func TestEvaluateTracker(t *testing.T) {
	me := EvaluateTracker(models.RoleMe)
	if !me.CanView || !me.CanEdit || !me.CanCreate || !me.CanDelete {
		t.Errorf("ME tracker capabilities = %+v, want all true", me)
	}

	wife := EvaluateTracker(models.RoleWife)
	if !wife.CanView || !wife.CanEdit || !wife.CanCreate {
		t.Errorf("WIFE should view/edit/create trackers, got %+v", wife)
	}
	if wife.CanDelete {
		t.Error("WIFE must not delete tracker entries")
	}

	unknown := EvaluateTracker(models.Role(""))
	if unknown.CanView || unknown.CanEdit {
		t.Errorf("unknown role should get nothing, got %+v", unknown)
	}
}

func TestMessage(t *testing.T) {
	msg := Message("delete", "task")
	if msg == "" {
		t.Fatal("Message returned empty string")
	}
	if want := "You don't have permission to delete this task"; len(msg) < len(want) || msg[:len(want)] != want {
		t.Errorf("Message = %q, want prefix %q", msg, want)
	}
}
