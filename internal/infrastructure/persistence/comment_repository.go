package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskhub/backend/internal/domain/shared"
	"github.com/taskhub/backend/internal/domain/task"
	"github.com/taskhub/backend/internal/infrastructure/persistence/models"
)

// GormCommentRepository implements task.CommentRepository using GORM
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create appends a comment
func (r *GormCommentRepository) Create(ctx context.Context, comment *task.Comment) error {
	model := models.CommentModelFromDomain(comment)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to a comment, including soft deletion
func (r *GormCommentRepository) Update(ctx context.Context, comment *task.Comment) error {
	model := models.CommentModelFromDomain(comment)
	result := r.db.WithContext(ctx).
		Model(&models.CommentModel{}).
		Where("id = ?", comment.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an active comment by ID
func (r *GormCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Comment, error) {
	var model models.CommentModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTask returns active comments of a task in creation order
func (r *GormCommentRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*task.Comment, error) {
	var commentModels []models.CommentModel
	if err := r.db.WithContext(ctx).
		Where("task_id = ? AND deleted_at IS NULL", taskID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*task.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = commentModels[i].ToDomain()
	}
	return comments, nil
}
