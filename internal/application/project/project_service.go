package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appactivity "github.com/taskhub/backend/internal/application/activity"
	"github.com/taskhub/backend/internal/domain/access"
	"github.com/taskhub/backend/internal/domain/activity"
	"github.com/taskhub/backend/internal/domain/identity"
	"github.com/taskhub/backend/internal/domain/project"
	"github.com/taskhub/backend/internal/domain/shared"
)

// ProjectService handles project and membership operations
type ProjectService struct {
	projectRepo project.ProjectRepository
	memberRepo  project.MemberRepository
	userRepo    identity.UserRepository
	recorder    *appactivity.Recorder
	logger      *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo project.ProjectRepository,
	memberRepo project.MemberRepository,
	userRepo identity.UserRepository,
	recorder *appactivity.Recorder,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// CreateProject creates a new project owned by the actor
func (s *ProjectService) CreateProject(ctx context.Context, input CreateProjectInput) (*ProjectInfo, error) {
	p, err := project.NewProject(input.ActorID, input.Name, input.Description, input.Color, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create project", zap.Error(err))
		return nil, err
	}

	if err := s.recorder.Record(ctx, appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindProjectCreated,
		Description: "Project created: " + p.Name,
		ProjectID:   &p.ID,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("Project created",
		zap.String("project_id", p.ID.String()),
		zap.String("owner_id", input.ActorID.String()))

	info := NewProjectInfo(p)
	return &info, nil
}

// GetProject returns a project the actor may see. A denied project is
// reported as not found so callers cannot probe for existence.
func (s *ProjectService) GetProject(ctx context.Context, input GetProjectInput) (*ProjectInfo, error) {
	p, err := s.loadVisible(ctx, input.ActorID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	info := NewProjectInfo(p)
	return &info, nil
}

// ListProjects returns projects visible to the actor, newest first
func (s *ProjectService) ListProjects(ctx context.Context, input ListProjectsInput) ([]ProjectInfo, int64, error) {
	filter, err := s.buildFilter(input)
	if err != nil {
		return nil, 0, err
	}

	projects, total, err := s.projectRepo.FindVisibleTo(ctx, input.ActorID, filter)
	if err != nil {
		return nil, 0, err
	}

	infos := make([]ProjectInfo, len(projects))
	for i, p := range projects {
		infos[i] = NewProjectInfo(p)
	}
	return infos, total, nil
}

// UpdateProject applies partial updates to a visible project
func (s *ProjectService) UpdateProject(ctx context.Context, input UpdateProjectInput) (*ProjectInfo, error) {
	p, err := s.loadVisible(ctx, input.ActorID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	oldStatus := string(p.Status)

	if input.Name != nil {
		if err := p.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		p.SetDescription(*input.Description)
	}
	if input.Color != nil {
		p.SetColor(*input.Color)
	}
	if input.SetDates {
		if err := p.SetDates(input.StartDate, input.EndDate); err != nil {
			return nil, err
		}
	}
	if input.Status != nil {
		status, err := project.ParseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		if err := p.ChangeStatus(status); err != nil {
			return nil, err
		}
	}

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	record := appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindProjectUpdated,
		Description: "Project updated: " + p.Name,
		ProjectID:   &p.ID,
	}
	if input.Status != nil && oldStatus != string(p.Status) {
		record.OldValue = oldStatus
		record.NewValue = string(p.Status)
	}
	if err := s.recorder.Record(ctx, record); err != nil {
		return nil, err
	}

	info := NewProjectInfo(p)
	return &info, nil
}

// ArchiveProject soft-deletes a project. Only the owner may archive.
func (s *ProjectService) ArchiveProject(ctx context.Context, input ArchiveProjectInput) error {
	p, err := s.loadVisible(ctx, input.ActorID, input.ProjectID)
	if err != nil {
		return err
	}
	if !p.IsOwnedBy(input.ActorID) {
		return shared.ErrAccessDenied
	}

	if err := p.Archive(); err != nil {
		return err
	}
	if err := s.projectRepo.Update(ctx, p); err != nil {
		return err
	}

	if err := s.recorder.Record(ctx, appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindProjectUpdated,
		Description: "Project archived: " + p.Name,
		ProjectID:   &p.ID,
	}); err != nil {
		return err
	}

	s.logger.Info("Project archived",
		zap.String("project_id", p.ID.String()),
		zap.String("actor_id", input.ActorID.String()))

	return nil
}

// AddMember adds a user to a project. Adding an existing active member
// is a no-op that returns the current membership.
func (s *ProjectService) AddMember(ctx context.Context, input AddMemberInput) (*MemberInfo, error) {
	p, err := s.loadManageable(ctx, input.ActorID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	// The user must exist and be active
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User does not exist")
		}
		return nil, err
	}

	role := project.MemberRoleMember
	if input.Role != "" {
		role, err = project.ParseMemberRole(input.Role)
		if err != nil {
			return nil, err
		}
	}

	existing, err := s.memberRepo.FindActive(ctx, input.ProjectID, input.UserID)
	if err == nil {
		// Idempotent: keep the original row and JoinedAt
		info := NewMemberInfo(existing)
		return &info, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	member, err := project.NewMember(input.ProjectID, input.UserID, role)
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindUserJoinedProject,
		Description: "User joined project: " + p.Name,
		ProjectID:   &p.ID,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("Project member added",
		zap.String("project_id", p.ID.String()),
		zap.String("user_id", input.UserID.String()))

	info := NewMemberInfo(member)
	return &info, nil
}

// RemoveMember soft-deletes a membership. Removing a user who is not an
// active member is a no-op.
func (s *ProjectService) RemoveMember(ctx context.Context, input RemoveMemberInput) error {
	p, err := s.loadManageable(ctx, input.ActorID, input.ProjectID)
	if err != nil {
		return err
	}

	member, err := s.memberRepo.FindActive(ctx, input.ProjectID, input.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	member.Leave()
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return err
	}

	if err := s.recorder.Record(ctx, appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindUserLeftProject,
		Description: "User left project: " + p.Name,
		ProjectID:   &p.ID,
	}); err != nil {
		return err
	}

	s.logger.Info("Project member removed",
		zap.String("project_id", p.ID.String()),
		zap.String("user_id", input.UserID.String()))

	return nil
}

// ListMembers returns the active members of a visible project
func (s *ProjectService) ListMembers(ctx context.Context, input ListMembersInput) ([]MemberInfo, error) {
	if _, err := s.loadVisible(ctx, input.ActorID, input.ProjectID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.FindByProject(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	infos := make([]MemberInfo, len(members))
	for i, m := range members {
		infos[i] = NewMemberInfo(m)
	}
	return infos, nil
}

// ProjectActivity returns the audit trail of a visible project
func (s *ProjectService) ProjectActivity(ctx context.Context, input GetProjectInput) ([]*activity.Entry, error) {
	if _, err := s.loadVisible(ctx, input.ActorID, input.ProjectID); err != nil {
		return nil, err
	}
	return s.recorder.ProjectHistory(ctx, input.ProjectID)
}

// loadVisible loads a project and checks the actor may see it. Access
// denial is reported as ErrNotFound.
func (s *ProjectService) loadVisible(ctx context.Context, actorID, projectID uuid.UUID) (*project.Project, error) {
	p, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.memberRepo.FindByUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !access.CanAccessProject(actorID, p, memberships) {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

// loadManageable loads a project and checks the actor may manage its
// membership: the owner or an active manager-role member.
func (s *ProjectService) loadManageable(ctx context.Context, actorID, projectID uuid.UUID) (*project.Project, error) {
	p, err := s.loadVisible(ctx, actorID, projectID)
	if err != nil {
		return nil, err
	}
	if p.IsOwnedBy(actorID) {
		return p, nil
	}

	member, err := s.memberRepo.FindActive(ctx, projectID, actorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrAccessDenied
		}
		return nil, err
	}
	if member.Role != project.MemberRoleManager {
		return nil, shared.ErrAccessDenied
	}
	return p, nil
}

func (s *ProjectService) buildFilter(input ListProjectsInput) (project.Filter, error) {
	filter := project.NewFilter()
	filter.Keyword = input.Keyword
	pagination, err := shared.NormalizePagination(input.Page, input.PageSize)
	if err != nil {
		return filter, err
	}
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize
	if input.Status != "" {
		status, err := project.ParseStatus(input.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	return filter, nil
}
