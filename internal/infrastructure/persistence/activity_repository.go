package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskhub/backend/internal/domain/activity"
	"github.com/taskhub/backend/internal/infrastructure/persistence/models"
)

// GormActivityRepository implements activity.Repository using GORM.
// The backing table is append-only; this type exposes no update or
// delete path.
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GormActivityRepository
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Append stores a new audit entry
func (r *GormActivityRepository) Append(ctx context.Context, entry *activity.Entry) error {
	model := models.ActivityModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByTask returns entries referencing a task in creation order
func (r *GormActivityRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*activity.Entry, error) {
	var entryModels []models.ActivityModel
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toEntries(entryModels), nil
}

// FindByProject returns entries referencing a project in creation order
func (r *GormActivityRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*activity.Entry, error) {
	var entryModels []models.ActivityModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toEntries(entryModels), nil
}

func toEntries(entryModels []models.ActivityModel) []*activity.Entry {
	entries := make([]*activity.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries
}
