// Package permissions maps (role, resource owner) to a capability tuple.
// Evaluation is deterministic and side-effect free; the HTTP layer calls
// it for every mutation against the stored row, so hiding a button in
// the browser is never the only line of defense.
package permissions

import "github.com/bodhi-os/bodhi/internal/models"

// Capability is what a role may do with a specific resource.
type Capability struct {
	CanView   bool `json:"can_view"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
	CanCreate bool `json:"can_create"`
}

var allCapabilities = Capability{CanView: true, CanEdit: true, CanDelete: true, CanCreate: true}

// Evaluate returns the capability tuple for a role acting on a resource
// with the given owner and optional assignee. ME has full access; WIFE
// can view and create everything but only edit or delete resources owned
// by or assigned to her. Unknown roles get nothing.
func Evaluate(role, owner models.Role, assignedTo ...models.Role) Capability {
	switch role {
	case models.RoleMe:
		return allCapabilities
	case models.RoleWife:
		mine := owner == models.RoleWife
		for _, a := range assignedTo {
			if a == models.RoleWife {
				mine = true
			}
		}
		return Capability{
			CanView:   true,
			CanEdit:   mine,
			CanDelete: mine,
			CanCreate: true,
		}
	default:
		return Capability{}
	}
}

// EvaluateTracker covers the daily tracker, which both users fill in
// together: either role may view, edit, and create, but only ME may
// delete entries.
func EvaluateTracker(role models.Role) Capability {
	switch role {
	case models.RoleMe, models.RoleWife:
		return Capability{
			CanView:   true,
			CanEdit:   true,
			CanDelete: role == models.RoleMe,
			CanCreate: true,
		}
	default:
		return Capability{}
	}
}

// Message explains a denied action to the user.
func Message(action, resource string) string {
	return "You don't have permission to " + action + " this " + resource +
		". Only items assigned to you can be modified."
}
