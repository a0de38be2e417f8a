package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	projectID := uuid.New()
	creatorID := uuid.New()

	t.Run("creates task in todo status", func(t *testing.T) {
		task, err := NewTask(projectID, creatorID, "Fix login page", NewTaskInput{})
		require.NoError(t, err)
		require.NotNil(t, task)

		assert.Equal(t, "Fix login page", task.Title)
		assert.Equal(t, StatusToDo, task.Status)
		assert.Equal(t, PriorityMedium, task.Priority)
		assert.Equal(t, projectID, task.ProjectID)
		assert.Equal(t, creatorID, task.CreatorID)
		assert.Nil(t, task.CompletedAt)
		assert.Equal(t, 1, task.Version)
	})

	t.Run("publishes TaskCreated event", func(t *testing.T) {
		task, err := NewTask(projectID, creatorID, "Fix login page", NewTaskInput{})
		require.NoError(t, err)

		events := task.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeTaskCreated, events[0].EventType())
	})

	t.Run("normalizes tags", func(t *testing.T) {
		task, err := NewTask(projectID, creatorID, "Fix login page", NewTaskInput{
			Tags: []string{" Frontend ", "frontend", "", "Auth"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"frontend", "auth"}, task.Tags)
	})

	t.Run("fails with nil project or creator", func(t *testing.T) {
		_, err := NewTask(uuid.Nil, creatorID, "Fix login page", NewTaskInput{})
		require.Error(t, err)

		_, err = NewTask(projectID, uuid.Nil, "Fix login page", NewTaskInput{})
		require.Error(t, err)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		_, err := NewTask(projectID, creatorID, "   ", NewTaskInput{})
		require.Error(t, err)
	})

	t.Run("fails with unknown priority", func(t *testing.T) {
		_, err := NewTask(projectID, creatorID, "Fix login page", NewTaskInput{Priority: Priority("urgent")})
		require.Error(t, err)
	})

	t.Run("fails with negative estimate", func(t *testing.T) {
		_, err := NewTask(projectID, creatorID, "Fix login page", NewTaskInput{
			EstimatedHours: decimal.NewFromInt(-2),
		})
		require.Error(t, err)
	})
}

func TestTaskStatusInvariant(t *testing.T) {
	task, err := NewTask(uuid.New(), uuid.New(), "Fix login page", NewTaskInput{})
	require.NoError(t, err)

	t.Run("done sets completed timestamp", func(t *testing.T) {
		old, err := task.ChangeStatus(StatusDone)
		require.NoError(t, err)

		assert.Equal(t, StatusToDo, old)
		require.NotNil(t, task.CompletedAt)
	})

	t.Run("re-applying done keeps original timestamp", func(t *testing.T) {
		first := *task.CompletedAt
		time.Sleep(5 * time.Millisecond)

		old, err := task.ChangeStatus(StatusDone)
		require.NoError(t, err)

		assert.Equal(t, StatusDone, old)
		assert.Equal(t, first, *task.CompletedAt)
	})

	t.Run("leaving done clears timestamp", func(t *testing.T) {
		_, err := task.ChangeStatus(StatusInProgress)
		require.NoError(t, err)

		assert.Nil(t, task.CompletedAt)
		assert.Equal(t, StatusInProgress, task.Status)
	})

	t.Run("every change bumps version and emits event", func(t *testing.T) {
		version := task.Version
		events := len(task.GetDomainEvents())

		_, err := task.ChangeStatus(StatusOnHold)
		require.NoError(t, err)

		assert.Equal(t, version+1, task.Version)
		assert.Len(t, task.GetDomainEvents(), events+1)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := task.ChangeStatus(Status("blocked"))
		require.Error(t, err)
	})
}

func TestTaskAssign(t *testing.T) {
	task, err := NewTask(uuid.New(), uuid.New(), "Fix login page", NewTaskInput{})
	require.NoError(t, err)

	userID := uuid.New()
	task.Assign(&userID)

	assert.True(t, task.IsAssignedTo(userID))
	assert.False(t, task.IsAssignedTo(uuid.New()))
	assert.False(t, task.IsAssignedTo(uuid.Nil))

	task.Assign(nil)
	assert.Nil(t, task.AssigneeID)
	assert.False(t, task.IsAssignedTo(userID))
}

func TestTaskEffort(t *testing.T) {
	task, err := NewTask(uuid.New(), uuid.New(), "Fix login page", NewTaskInput{})
	require.NoError(t, err)

	require.NoError(t, task.SetEstimatedHours(decimal.RequireFromString("3.5")))
	require.NoError(t, task.SetActualHours(decimal.RequireFromString("4.25")))

	assert.True(t, task.EstimatedHours.Equal(decimal.RequireFromString("3.5")))

	err = task.SetActualHours(decimal.NewFromInt(-1))
	require.Error(t, err)
}

func TestTaskArchive(t *testing.T) {
	task, err := NewTask(uuid.New(), uuid.New(), "Fix login page", NewTaskInput{})
	require.NoError(t, err)

	require.NoError(t, task.Archive())
	assert.True(t, task.IsDeleted())

	err = task.Archive()
	require.Error(t, err)
}

func TestNewComment(t *testing.T) {
	taskID := uuid.New()
	authorID := uuid.New()

	t.Run("creates comment", func(t *testing.T) {
		c, err := NewComment(taskID, authorID, "Looks good to me")
		require.NoError(t, err)

		assert.Equal(t, taskID, c.TaskID)
		assert.Equal(t, authorID, c.AuthorID)
		assert.Equal(t, "Looks good to me", c.Content)
	})

	t.Run("fails with empty content", func(t *testing.T) {
		_, err := NewComment(taskID, authorID, "   ")
		require.Error(t, err)
	})

	t.Run("fails with nil references", func(t *testing.T) {
		_, err := NewComment(uuid.Nil, authorID, "hi")
		require.Error(t, err)

		_, err = NewComment(taskID, uuid.Nil, "hi")
		require.Error(t, err)
	})
}
