package task

import (
	"strings"

	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/domain/shared"
)

// Comment is a note attached to a task. Visibility follows the parent
// task; comments are soft-deleted only.
type Comment struct {
	shared.BaseEntity
	TaskID   uuid.UUID
	AuthorID uuid.UUID
	Content  string
}

// NewComment creates a new comment on a task
func NewComment(taskID, authorID uuid.UUID, content string) (*Comment, error) {
	if taskID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TASK", "Task ID cannot be empty")
	}
	if authorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Author ID cannot be empty")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Comment content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Comment content cannot exceed 5000 characters")
	}

	return &Comment{
		BaseEntity: shared.NewBaseEntity(),
		TaskID:     taskID,
		AuthorID:   authorID,
		Content:    content,
	}, nil
}
