package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/backend/internal/domain/activity"
)

// ActivityResponse represents an audit trail entry in responses
type ActivityResponse struct {
	ID          uuid.UUID  `json:"id"`
	ActorID     uuid.UUID  `json:"actor_id"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	TaskID      *uuid.UUID `json:"task_id,omitempty"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	OldValue    string     `json:"old_value,omitempty"`
	NewValue    string     `json:"new_value,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func newActivityResponses(entries []*activity.Entry) []ActivityResponse {
	responses := make([]ActivityResponse, len(entries))
	for i, e := range entries {
		responses[i] = ActivityResponse{
			ID:          e.ID,
			ActorID:     e.ActorID,
			Kind:        string(e.Kind),
			Description: e.Description,
			TaskID:      e.TaskID,
			ProjectID:   e.ProjectID,
			OldValue:    e.OldValue,
			NewValue:    e.NewValue,
			CreatedAt:   e.CreatedAt,
		}
	}
	return responses
}
