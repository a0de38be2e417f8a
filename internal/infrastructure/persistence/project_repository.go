package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskhub/backend/internal/domain/project"
	"github.com/taskhub/backend/internal/domain/shared"
	"github.com/taskhub/backend/internal/infrastructure/persistence/models"
)

// GormProjectRepository implements project.ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, p *project.Project) error {
	model := models.ProjectModelFromDomain(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	p.SyncPersistedVersion()
	return nil
}

// Update updates a project, guarding on the version the project carried
// when it was loaded.
func (r *GormProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := models.ProjectModelFromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("id = ? AND version = ?", p.ID, p.PersistedVersion()).
		Select("*").Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	p.SyncPersistedVersion()
	return nil
}

// FindByID finds an active project by ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var model models.ProjectModel
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

// FindVisibleTo returns active projects the user owns or holds an active
// membership in, newest first
func (r *GormProjectRepository) FindVisibleTo(ctx context.Context, userID uuid.UUID, filter project.Filter) ([]*project.Project, int64, error) {
	membershipSubquery := r.db.
		Model(&models.MemberModel{}).
		Select("project_id").
		Where("user_id = ? AND deleted_at IS NULL", userID)

	query := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("deleted_at IS NULL").
		Where("owner_id = ? OR id IN (?)", userID, membershipSubquery)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projectModels []models.ProjectModel
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&projectModels).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*project.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectModels[i].ToDomain()
	}
	return projects, total, nil
}
