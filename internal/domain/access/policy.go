// Package access holds the authorization policy for projects, tasks and
// their children. The policy is pure: it decides on already-loaded
// entities, has no side effects and fails closed on nil or mismatched
// references.
package access

import (
	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/domain/project"
	"github.com/taskhub/backend/internal/domain/task"
)

// CanAccessProject reports whether the user may read or mutate the
// project. The owner always may, independent of membership rows; other
// users need an active membership for this project.
func CanAccessProject(userID uuid.UUID, p *project.Project, memberships []*project.Member) bool {
	if userID == uuid.Nil || p == nil || p.IsDeleted() {
		return false
	}
	if p.IsOwnedBy(userID) {
		return true
	}
	return hasActiveMembership(userID, p.ID, memberships)
}

// CanAccessTask reports whether the user may read or edit the task.
// Visibility follows the parent project.
func CanAccessTask(userID uuid.UUID, t *task.Task, p *project.Project, memberships []*project.Member) bool {
	if t == nil || t.IsDeleted() {
		return false
	}
	if p == nil || t.ProjectID != p.ID {
		return false
	}
	return CanAccessProject(userID, p, memberships)
}

// CanMutateTaskStatus reports whether the user may change the task's
// status. Beyond project visibility, the current assignee keeps this
// right even after losing project membership.
func CanMutateTaskStatus(userID uuid.UUID, t *task.Task, p *project.Project, memberships []*project.Member) bool {
	if t == nil || t.IsDeleted() || userID == uuid.Nil {
		return false
	}
	if t.IsAssignedTo(userID) {
		return true
	}
	return CanAccessTask(userID, t, p, memberships)
}

// CanAccessUser reports whether the actor may read or mutate a user
// record: their own record always, anyone else's only as admin.
func CanAccessUser(actorID, targetID uuid.UUID, actorIsAdmin bool) bool {
	if actorID == uuid.Nil || targetID == uuid.Nil {
		return false
	}
	return actorID == targetID || actorIsAdmin
}

func hasActiveMembership(userID, projectID uuid.UUID, memberships []*project.Member) bool {
	for _, m := range memberships {
		if m == nil || m.IsDeleted() {
			continue
		}
		if m.ProjectID == projectID && m.UserID == userID {
			return true
		}
	}
	return false
}
