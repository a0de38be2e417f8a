package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appactivity "github.com/taskhub/backend/internal/application/activity"
	"github.com/taskhub/backend/internal/domain/access"
	"github.com/taskhub/backend/internal/domain/activity"
	"github.com/taskhub/backend/internal/domain/project"
	"github.com/taskhub/backend/internal/domain/shared"
	"github.com/taskhub/backend/internal/domain/task"
)

// TaskServiceConfig contains behavioral toggles for task workflows
type TaskServiceConfig struct {
	// RequireMemberAssignee rejects assigning a task to a user who is
	// neither the project owner nor an active member
	RequireMemberAssignee bool

	// LogUnchangedStatus appends an audit entry even when a status
	// update re-applies the current status
	LogUnchangedStatus bool
}

// DefaultTaskServiceConfig returns default configuration
func DefaultTaskServiceConfig() TaskServiceConfig {
	return TaskServiceConfig{
		RequireMemberAssignee: false,
		LogUnchangedStatus:    true,
	}
}

// TaskService handles task, comment and task-activity operations
type TaskService struct {
	taskRepo    task.TaskRepository
	commentRepo task.CommentRepository
	projectRepo project.ProjectRepository
	memberRepo  project.MemberRepository
	recorder    *appactivity.Recorder
	config      TaskServiceConfig
	logger      *zap.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo task.TaskRepository,
	commentRepo task.CommentRepository,
	projectRepo project.ProjectRepository,
	memberRepo project.MemberRepository,
	recorder *appactivity.Recorder,
	config TaskServiceConfig,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		commentRepo: commentRepo,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		recorder:    recorder,
		config:      config,
		logger:      logger,
	}
}

// CreateTask creates a task in a project the actor may see. Nothing is
// persisted when the access check fails.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*TaskInfo, error) {
	p, memberships, err := s.loadProject(ctx, input.ActorID, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessProject(input.ActorID, p, memberships) {
		return nil, shared.ErrNotFound
	}

	priority := task.PriorityMedium
	if input.Priority != "" {
		priority, err = task.ParsePriority(input.Priority)
		if err != nil {
			return nil, err
		}
	}

	if input.AssigneeID != nil {
		if err := s.checkAssignee(ctx, p, *input.AssigneeID); err != nil {
			return nil, err
		}
	}

	t, err := task.NewTask(input.ProjectID, input.ActorID, input.Title, task.NewTaskInput{
		Description:    input.Description,
		Priority:       priority,
		AssigneeID:     input.AssigneeID,
		DueDate:        input.DueDate,
		EstimatedHours: input.EstimatedHours,
		Tags:           input.Tags,
	})
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, t); err != nil {
		s.logger.Error("Failed to create task", zap.Error(err))
		return nil, err
	}

	if err := s.recorder.Record(ctx, appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindTaskCreated,
		Description: "Task created: " + t.Title,
		TaskID:      &t.ID,
		ProjectID:   &t.ProjectID,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("Task created",
		zap.String("task_id", t.ID.String()),
		zap.String("project_id", t.ProjectID.String()),
		zap.String("creator_id", input.ActorID.String()))

	info := NewTaskInfo(t)
	return &info, nil
}

// GetTask returns a task the actor may see. Denied tasks are reported
// as not found.
func (s *TaskService) GetTask(ctx context.Context, input GetTaskInput) (*TaskInfo, error) {
	t, _, _, err := s.loadVisibleTask(ctx, input.ActorID, input.TaskID)
	if err != nil {
		return nil, err
	}

	info := NewTaskInfo(t)
	return &info, nil
}

// ListTasks returns tasks in projects visible to the actor, newest first
func (s *TaskService) ListTasks(ctx context.Context, input ListTasksInput) ([]TaskInfo, int64, error) {
	pagination, err := shared.NormalizePagination(input.Page, input.PageSize)
	if err != nil {
		return nil, 0, err
	}

	visibleIDs, err := s.visibleProjectIDs(ctx, input.ActorID)
	if err != nil {
		return nil, 0, err
	}

	filter := task.NewFilter()
	filter.ProjectID = input.ProjectID
	filter.AssigneeID = input.AssigneeID
	filter.Keyword = input.Keyword
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize
	if input.Status != "" {
		status, err := task.ParseStatus(input.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = &status
	}
	if input.Priority != "" {
		priority, err := task.ParsePriority(input.Priority)
		if err != nil {
			return nil, 0, err
		}
		filter.Priority = &priority
	}

	tasks, total, err := s.taskRepo.FindAll(ctx, visibleIDs, filter)
	if err != nil {
		return nil, 0, err
	}

	infos := make([]TaskInfo, len(tasks))
	for i, t := range tasks {
		infos[i] = NewTaskInfo(t)
	}
	return infos, total, nil
}

// UpdateTask applies partial updates to a visible task
func (s *TaskService) UpdateTask(ctx context.Context, input UpdateTaskInput) (*TaskInfo, error) {
	t, _, _, err := s.loadVisibleTask(ctx, input.ActorID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := t.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		t.SetDescription(*input.Description)
	}
	if input.Priority != nil {
		priority, err := task.ParsePriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		if err := t.SetPriority(priority); err != nil {
			return nil, err
		}
	}
	if input.SetDueDate {
		t.SetDueDate(input.DueDate)
	}
	if input.EstimatedHours != nil {
		if err := t.SetEstimatedHours(*input.EstimatedHours); err != nil {
			return nil, err
		}
	}
	if input.ActualHours != nil {
		if err := t.SetActualHours(*input.ActualHours); err != nil {
			return nil, err
		}
	}
	if input.SetTags {
		t.SetTags(input.Tags)
	}

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindTaskUpdated,
		Description: "Task updated: " + t.Title,
		TaskID:      &t.ID,
		ProjectID:   &t.ProjectID,
	}); err != nil {
		return nil, err
	}

	info := NewTaskInfo(t)
	return &info, nil
}

// UpdateStatus changes a task's status. The current assignee keeps this
// right even without project membership. Re-applying the current status
// still bumps the version; whether it is logged is configurable.
func (s *TaskService) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*TaskInfo, error) {
	status, err := task.ParseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	t, p, memberships, err := s.loadTask(ctx, input.ActorID, input.TaskID)
	if err != nil {
		return nil, err
	}
	if !access.CanMutateTaskStatus(input.ActorID, t, p, memberships) {
		return nil, shared.ErrNotFound
	}

	oldStatus, err := t.ChangeStatus(status)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	if oldStatus != status || s.config.LogUnchangedStatus {
		if err := s.recorder.Record(ctx, appactivity.RecordInput{
			ActorID:     input.ActorID,
			Kind:        activity.KindTaskStatusChanged,
			Description: "Task status changed: " + t.Title,
			TaskID:      &t.ID,
			ProjectID:   &t.ProjectID,
			OldValue:    string(oldStatus),
			NewValue:    string(status),
		}); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Task status changed",
		zap.String("task_id", t.ID.String()),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(status)))

	info := NewTaskInfo(t)
	return &info, nil
}

// AssignTask sets or clears a task's assignee
func (s *TaskService) AssignTask(ctx context.Context, input AssignTaskInput) (*TaskInfo, error) {
	t, p, _, err := s.loadVisibleTask(ctx, input.ActorID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if input.AssigneeID != nil {
		if err := s.checkAssignee(ctx, p, *input.AssigneeID); err != nil {
			return nil, err
		}
	}

	t.Assign(input.AssigneeID)

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindTaskAssigned,
		Description: "Task assignment changed: " + t.Title,
		TaskID:      &t.ID,
		ProjectID:   &t.ProjectID,
	}); err != nil {
		return nil, err
	}

	info := NewTaskInfo(t)
	return &info, nil
}

// ArchiveTask soft-deletes a visible task
func (s *TaskService) ArchiveTask(ctx context.Context, input ArchiveTaskInput) error {
	t, _, _, err := s.loadVisibleTask(ctx, input.ActorID, input.TaskID)
	if err != nil {
		return err
	}

	if err := t.Archive(); err != nil {
		return err
	}
	if err := s.taskRepo.Update(ctx, t); err != nil {
		return err
	}

	if err := s.recorder.Record(ctx, appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindTaskUpdated,
		Description: "Task archived: " + t.Title,
		TaskID:      &t.ID,
		ProjectID:   &t.ProjectID,
	}); err != nil {
		return err
	}

	return nil
}

// AddComment attaches a comment to a visible task
func (s *TaskService) AddComment(ctx context.Context, input AddCommentInput) (*CommentInfo, error) {
	t, _, _, err := s.loadVisibleTask(ctx, input.ActorID, input.TaskID)
	if err != nil {
		return nil, err
	}

	comment, err := task.NewComment(t.ID, input.ActorID, input.Content)
	if err != nil {
		return nil, err
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, appactivity.RecordInput{
		ActorID:     input.ActorID,
		Kind:        activity.KindCommentAdded,
		Description: "Comment added on: " + t.Title,
		TaskID:      &t.ID,
		ProjectID:   &t.ProjectID,
	}); err != nil {
		return nil, err
	}

	info := NewCommentInfo(comment)
	return &info, nil
}

// ListComments returns the comments of a visible task in creation order
func (s *TaskService) ListComments(ctx context.Context, input GetTaskInput) ([]CommentInfo, error) {
	t, _, _, err := s.loadVisibleTask(ctx, input.ActorID, input.TaskID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByTask(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	infos := make([]CommentInfo, len(comments))
	for i, c := range comments {
		infos[i] = NewCommentInfo(c)
	}
	return infos, nil
}

// TaskActivity returns the audit trail of a visible task, oldest first
func (s *TaskService) TaskActivity(ctx context.Context, input GetTaskInput) ([]*activity.Entry, error) {
	t, _, _, err := s.loadVisibleTask(ctx, input.ActorID, input.TaskID)
	if err != nil {
		return nil, err
	}
	return s.recorder.TaskHistory(ctx, t.ID)
}

// loadTask loads a task, its parent project and the actor's memberships
// without applying any policy.
func (s *TaskService) loadTask(ctx context.Context, actorID, taskID uuid.UUID) (*task.Task, *project.Project, []*project.Member, error) {
	t, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, nil, nil, err
	}

	p, err := s.projectRepo.FindByID(ctx, t.ProjectID)
	if err != nil {
		// A task whose parent is archived is unreachable
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, nil, shared.ErrNotFound
		}
		return nil, nil, nil, err
	}

	memberships, err := s.memberRepo.FindByUser(ctx, actorID)
	if err != nil {
		return nil, nil, nil, err
	}

	return t, p, memberships, nil
}

// loadVisibleTask loads a task and enforces read visibility. Denied
// access is reported as ErrNotFound.
func (s *TaskService) loadVisibleTask(ctx context.Context, actorID, taskID uuid.UUID) (*task.Task, *project.Project, []*project.Member, error) {
	t, p, memberships, err := s.loadTask(ctx, actorID, taskID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !access.CanAccessTask(actorID, t, p, memberships) {
		return nil, nil, nil, shared.ErrNotFound
	}
	return t, p, memberships, nil
}

func (s *TaskService) loadProject(ctx context.Context, actorID, projectID uuid.UUID) (*project.Project, []*project.Member, error) {
	p, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	memberships, err := s.memberRepo.FindByUser(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	return p, memberships, nil
}

// visibleProjectIDs collects the IDs of projects the actor owns or is
// an active member of.
func (s *TaskService) visibleProjectIDs(ctx context.Context, actorID uuid.UUID) ([]uuid.UUID, error) {
	filter := project.NewFilter()
	filter.PageSize = 100

	ids := make([]uuid.UUID, 0)
	for {
		projects, total, err := s.projectRepo.FindVisibleTo(ctx, actorID, filter)
		if err != nil {
			return nil, err
		}
		for _, p := range projects {
			ids = append(ids, p.ID)
		}
		if len(ids) >= int(total) || len(projects) == 0 {
			break
		}
		filter.Page++
	}
	return ids, nil
}

// checkAssignee validates the assignee against the membership rule when
// RequireMemberAssignee is enabled.
func (s *TaskService) checkAssignee(ctx context.Context, p *project.Project, assigneeID uuid.UUID) error {
	if !s.config.RequireMemberAssignee {
		return nil
	}
	if p.IsOwnedBy(assigneeID) {
		return nil
	}

	if _, err := s.memberRepo.FindActive(ctx, p.ID, assigneeID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("ASSIGNEE_NOT_MEMBER", "Assignee must be a member of the project")
		}
		return err
	}
	return nil
}
