package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskhub/backend/internal/domain/project"
	"github.com/taskhub/backend/internal/domain/shared"
	"github.com/taskhub/backend/internal/infrastructure/persistence/models"
)

// GormMemberRepository implements project.MemberRepository using GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// Create appends a membership row
func (r *GormMemberRepository) Create(ctx context.Context, member *project.Member) error {
	model := models.MemberModelFromDomain(member)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update persists changes to a membership row. Soft-deleted rows are
// written through as well: removal itself is an update of deleted_at.
func (r *GormMemberRepository) Update(ctx context.Context, member *project.Member) error {
	model := models.MemberModelFromDomain(member)
	result := r.db.WithContext(ctx).
		Model(&models.MemberModel{}).
		Where("id = ?", member.ID).
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

// FindActive returns the active membership for a (project, user) pair
func (r *GormMemberRepository) FindActive(ctx context.Context, projectID, userID uuid.UUID) (*project.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ? AND deleted_at IS NULL", projectID, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProject returns all active memberships of a project, oldest first
func (r *GormMemberRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*project.Member, error) {
	var memberModels []models.MemberModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND deleted_at IS NULL", projectID).
		Order("joined_at ASC, id ASC").
		Find(&memberModels).Error; err != nil {
		return nil, err
	}

	members := make([]*project.Member, len(memberModels))
	for i := range memberModels {
		members[i] = memberModels[i].ToDomain()
	}
	return members, nil
}

// FindByUser returns all active memberships held by a user
func (r *GormMemberRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*project.Member, error) {
	var memberModels []models.MemberModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("joined_at ASC, id ASC").
		Find(&memberModels).Error; err != nil {
		return nil, err
	}

	members := make([]*project.Member, len(memberModels))
	for i := range memberModels {
		members[i] = memberModels[i].ToDomain()
	}
	return members, nil
}
