package task

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appactivity "github.com/taskhub/backend/internal/application/activity"
	"github.com/taskhub/backend/internal/domain/activity"
	"github.com/taskhub/backend/internal/domain/project"
	"github.com/taskhub/backend/internal/domain/shared"
	"github.com/taskhub/backend/internal/domain/task"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) FindAll(ctx context.Context, visibleProjectIDs []uuid.UUID, filter task.Filter) ([]*task.Task, int64, error) {
	args := m.Called(ctx, visibleProjectIDs, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*task.Task), args.Get(1).(int64), args.Error(2)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, c *task.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentRepository) Update(ctx context.Context, c *task.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*task.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Comment), args.Error(1)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindVisibleTo(ctx context.Context, userID uuid.UUID, filter project.Filter) ([]*project.Project, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*project.Project), args.Get(1).(int64), args.Error(2)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *project.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Update(ctx context.Context, member *project.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindActive(ctx context.Context, projectID, userID uuid.UUID) (*project.Member, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*project.Member, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*project.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*project.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*project.Member), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Append(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*activity.Entry, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*activity.Entry), args.Error(1)
}

func (m *MockActivityRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*activity.Entry, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*activity.Entry), args.Error(1)
}

var (
	_ task.TaskRepository       = (*MockTaskRepository)(nil)
	_ task.CommentRepository    = (*MockCommentRepository)(nil)
	_ project.ProjectRepository = (*MockProjectRepository)(nil)
	_ project.MemberRepository  = (*MockMemberRepository)(nil)
	_ activity.Repository       = (*MockActivityRepository)(nil)
)

// =============================================================================
// Test Helpers
// =============================================================================

type serviceMocks struct {
	taskRepo     *MockTaskRepository
	commentRepo  *MockCommentRepository
	projectRepo  *MockProjectRepository
	memberRepo   *MockMemberRepository
	activityRepo *MockActivityRepository
}

func newTestService(cfg TaskServiceConfig) (*TaskService, *serviceMocks) {
	m := &serviceMocks{
		taskRepo:     new(MockTaskRepository),
		commentRepo:  new(MockCommentRepository),
		projectRepo:  new(MockProjectRepository),
		memberRepo:   new(MockMemberRepository),
		activityRepo: new(MockActivityRepository),
	}
	recorder := appactivity.NewRecorder(m.activityRepo, zap.NewNop())
	service := NewTaskService(m.taskRepo, m.commentRepo, m.projectRepo, m.memberRepo, recorder, cfg, zap.NewNop())
	return service, m
}

func createTestProject(ownerID uuid.UUID) *project.Project {
	p, _ := project.NewProject(ownerID, "Test Project", "", "", nil, nil)
	return p
}

func createTestTask(projectID, creatorID uuid.UUID) *task.Task {
	t, _ := task.NewTask(projectID, creatorID, "Test Task", task.NewTaskInput{})
	return t
}

func activeMembership(projectID, userID uuid.UUID) *project.Member {
	m, _ := project.NewMember(projectID, userID, project.MemberRoleMember)
	return m
}

// =============================================================================
// CreateTask
// =============================================================================

func TestTaskService_CreateTask_Success(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	p := createTestProject(owner)

	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.taskRepo.On("Create", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil)

	result, err := service.CreateTask(ctx, CreateTaskInput{
		ActorID:   owner,
		ProjectID: p.ID,
		Title:     "Write the report",
	})

	require.NoError(t, err)
	assert.Equal(t, "Write the report", result.Title)
	assert.Equal(t, "todo", result.Status)
	assert.Equal(t, owner, result.CreatorID)
	m.taskRepo.AssertExpectations(t)
	m.activityRepo.AssertExpectations(t)
}

func TestTaskService_CreateTask_DeniedPersistsNothing(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	outsider := uuid.New()
	p := createTestProject(owner)

	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, outsider).Return([]*project.Member{}, nil)

	_, err := service.CreateTask(ctx, CreateTaskInput{
		ActorID:   outsider,
		ProjectID: p.ID,
		Title:     "Sneaky task",
	})

	// Denied access is indistinguishable from a missing project
	assert.ErrorIs(t, err, shared.ErrNotFound)
	m.taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.activityRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestTaskService_CreateTask_MemberAllowed(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	member := uuid.New()
	p := createTestProject(owner)

	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, member).Return([]*project.Member{activeMembership(p.ID, member)}, nil)
	m.taskRepo.On("Create", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil)

	result, err := service.CreateTask(ctx, CreateTaskInput{
		ActorID:   member,
		ProjectID: p.ID,
		Title:     "Member task",
	})

	require.NoError(t, err)
	assert.Equal(t, member, result.CreatorID)
}

func TestTaskService_CreateTask_RecorderFailurePropagates(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	p := createTestProject(owner)

	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.taskRepo.On("Create", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.AnythingOfType("*activity.Entry")).Return(assert.AnError)

	_, err := service.CreateTask(ctx, CreateTaskInput{
		ActorID:   owner,
		ProjectID: p.ID,
		Title:     "Unrecordable",
	})

	assert.ErrorIs(t, err, shared.ErrStorageUnavailable)
}

// =============================================================================
// UpdateStatus
// =============================================================================

func TestTaskService_UpdateStatus_RecordsOldAndNew(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.taskRepo.On("Update", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
		return e.Kind == activity.KindTaskStatusChanged && e.OldValue == "todo" && e.NewValue == "done"
	})).Return(nil)

	result, err := service.UpdateStatus(ctx, UpdateStatusInput{
		ActorID: owner,
		TaskID:  tsk.ID,
		Status:  "done",
	})

	require.NoError(t, err)
	assert.Equal(t, "done", result.Status)
	assert.NotNil(t, result.CompletedAt)
	m.activityRepo.AssertExpectations(t)
}

func TestTaskService_UpdateStatus_ReopeningClearsCompletedAt(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)
	_, err := tsk.ChangeStatus(task.StatusDone)
	require.NoError(t, err)
	require.NotNil(t, tsk.CompletedAt)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.taskRepo.On("Update", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
		return e.OldValue == "done" && e.NewValue == "in_progress"
	})).Return(nil)

	result, err := service.UpdateStatus(ctx, UpdateStatusInput{
		ActorID: owner,
		TaskID:  tsk.ID,
		Status:  "in_progress",
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	assert.Nil(t, result.CompletedAt)
}

func TestTaskService_UpdateStatus_UnchangedStatusSkipsLogWhenDisabled(t *testing.T) {
	cfg := DefaultTaskServiceConfig()
	cfg.LogUnchangedStatus = false
	service, m := newTestService(cfg)
	ctx := context.Background()

	owner := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)
	versionBefore := tsk.Version

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.taskRepo.On("Update", ctx, mock.AnythingOfType("*task.Task")).Return(nil)

	result, err := service.UpdateStatus(ctx, UpdateStatusInput{
		ActorID: owner,
		TaskID:  tsk.ID,
		Status:  "todo",
	})

	require.NoError(t, err)
	// The write still happens and bumps the version
	assert.Equal(t, versionBefore+1, result.Version)
	m.taskRepo.AssertExpectations(t)
	m.activityRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestTaskService_UpdateStatus_UnchangedStatusLoggedByDefault(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.taskRepo.On("Update", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
		return e.OldValue == "todo" && e.NewValue == "todo"
	})).Return(nil)

	_, err := service.UpdateStatus(ctx, UpdateStatusInput{
		ActorID: owner,
		TaskID:  tsk.ID,
		Status:  "todo",
	})

	require.NoError(t, err)
	m.activityRepo.AssertExpectations(t)
}

func TestTaskService_UpdateStatus_AssigneeWithoutMembershipAllowed(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	assignee := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)
	tsk.Assign(&assignee)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, assignee).Return([]*project.Member{}, nil)
	m.taskRepo.On("Update", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil)

	result, err := service.UpdateStatus(ctx, UpdateStatusInput{
		ActorID: assignee,
		TaskID:  tsk.ID,
		Status:  "in_progress",
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
}

func TestTaskService_UpdateStatus_OutsiderDenied(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	outsider := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, outsider).Return([]*project.Member{}, nil)

	_, err := service.UpdateStatus(ctx, UpdateStatusInput{
		ActorID: outsider,
		TaskID:  tsk.ID,
		Status:  "done",
	})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	m.taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// =============================================================================
// AssignTask
// =============================================================================

func TestTaskService_AssignTask_Success(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	assignee := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.taskRepo.On("Update", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
		return e.Kind == activity.KindTaskAssigned
	})).Return(nil)

	result, err := service.AssignTask(ctx, AssignTaskInput{
		ActorID:    owner,
		TaskID:     tsk.ID,
		AssigneeID: &assignee,
	})

	require.NoError(t, err)
	require.NotNil(t, result.AssigneeID)
	assert.Equal(t, assignee, *result.AssigneeID)
}

func TestTaskService_AssignTask_NonMemberRejectedWhenRequired(t *testing.T) {
	cfg := DefaultTaskServiceConfig()
	cfg.RequireMemberAssignee = true
	service, m := newTestService(cfg)
	ctx := context.Background()

	owner := uuid.New()
	outsider := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.memberRepo.On("FindActive", ctx, p.ID, outsider).Return(nil, shared.ErrNotFound)

	_, err := service.AssignTask(ctx, AssignTaskInput{
		ActorID:    owner,
		TaskID:     tsk.ID,
		AssigneeID: &outsider,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ASSIGNEE_NOT_MEMBER", domainErr.Code)
	m.taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_AssignTask_Unassign(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	assignee := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)
	tsk.Assign(&assignee)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.taskRepo.On("Update", ctx, mock.AnythingOfType("*task.Task")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil)

	result, err := service.AssignTask(ctx, AssignTaskInput{
		ActorID:    owner,
		TaskID:     tsk.ID,
		AssigneeID: nil,
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssigneeID)
}

// =============================================================================
// Comments and activity
// =============================================================================

func TestTaskService_AddComment_Success(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, owner).Return([]*project.Member{}, nil)
	m.commentRepo.On("Create", ctx, mock.AnythingOfType("*task.Comment")).Return(nil)
	m.activityRepo.On("Append", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
		return e.Kind == activity.KindCommentAdded
	})).Return(nil)

	result, err := service.AddComment(ctx, AddCommentInput{
		ActorID: owner,
		TaskID:  tsk.ID,
		Content: "Looks good to me",
	})

	require.NoError(t, err)
	assert.Equal(t, "Looks good to me", result.Content)
	assert.Equal(t, owner, result.AuthorID)
	m.activityRepo.AssertExpectations(t)
}

func TestTaskService_AddComment_OutsiderDenied(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	outsider := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, outsider).Return([]*project.Member{}, nil)

	_, err := service.AddComment(ctx, AddCommentInput{
		ActorID: outsider,
		TaskID:  tsk.ID,
		Content: "drive-by comment",
	})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	m.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_TaskActivity_FollowsVisibility(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	owner := uuid.New()
	outsider := uuid.New()
	p := createTestProject(owner)
	tsk := createTestTask(p.ID, owner)

	m.taskRepo.On("FindByID", ctx, tsk.ID).Return(tsk, nil)
	m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.memberRepo.On("FindByUser", ctx, outsider).Return([]*project.Member{}, nil)

	_, err := service.TaskActivity(ctx, GetTaskInput{ActorID: outsider, TaskID: tsk.ID})

	assert.ErrorIs(t, err, shared.ErrNotFound)
	m.activityRepo.AssertNotCalled(t, "FindByTask", mock.Anything, mock.Anything)
}

// =============================================================================
// ListTasks
// =============================================================================

func TestTaskService_ListTasks_EmptyVisibleSet(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	actor := uuid.New()

	m.projectRepo.On("FindVisibleTo", ctx, actor, mock.AnythingOfType("project.Filter")).
		Return([]*project.Project{}, int64(0), nil)
	m.taskRepo.On("FindAll", ctx, mock.AnythingOfType("[]uuid.UUID"), mock.AnythingOfType("task.Filter")).
		Return([]*task.Task{}, int64(0), nil)

	tasks, total, err := service.ListTasks(ctx, ListTasksInput{ActorID: actor})

	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Zero(t, total)
}

func TestTaskService_ListTasks_NonPositivePageSizeRejected(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	_, _, err := service.ListTasks(ctx, ListTasksInput{ActorID: uuid.New(), PageSize: -1})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	m.taskRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_ListTasks_InvalidStatusRejected(t *testing.T) {
	service, m := newTestService(DefaultTaskServiceConfig())
	ctx := context.Background()

	actor := uuid.New()

	m.projectRepo.On("FindVisibleTo", ctx, actor, mock.AnythingOfType("project.Filter")).
		Return([]*project.Project{}, int64(0), nil)

	_, _, err := service.ListTasks(ctx, ListTasksInput{ActorID: actor, Status: "bogus"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS", domainErr.Code)
}
