package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskhub/backend/internal/domain/shared"
	"github.com/taskhub/backend/internal/domain/task"
	"github.com/taskhub/backend/internal/infrastructure/persistence/models"
)

// GormTaskRepository implements task.TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, t *task.Task) error {
	model := models.TaskModelFromDomain(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	t.SyncPersistedVersion()
	return nil
}

// Update updates a task, guarding on the version the task carried when
// it was loaded. A stale guard means another writer committed first.
func (r *GormTaskRepository) Update(ctx context.Context, t *task.Task) error {
	model := models.TaskModelFromDomain(t)
	result := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("id = ? AND version = ?", t.ID, t.PersistedVersion()).
		Select("*").Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	t.SyncPersistedVersion()
	return nil
}

// FindByID finds an active task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	var model models.TaskModel
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

// FindAll returns active tasks restricted to the caller's visible
// project set, newest first. An empty visible set yields no rows.
func (r *GormTaskRepository) FindAll(ctx context.Context, visibleProjectIDs []uuid.UUID, filter task.Filter) ([]*task.Task, int64, error) {
	if len(visibleProjectIDs) == 0 {
		return []*task.Task{}, 0, nil
	}

	query := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("deleted_at IS NULL").
		Where("project_id IN ?", visibleProjectIDs)

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var taskModels []models.TaskModel
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&taskModels).Error; err != nil {
		return nil, 0, err
	}

	tasks := make([]*task.Task, len(taskModels))
	for i := range taskModels {
		tasks[i] = taskModels[i].ToDomain()
	}
	return tasks, total, nil
}
