package activity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	actorID := uuid.New()

	t.Run("creates entry with timestamp", func(t *testing.T) {
		entry, err := NewEntry(actorID, KindTaskCreated, "Created task")
		require.NoError(t, err)

		assert.Equal(t, actorID, entry.ActorID)
		assert.Equal(t, KindTaskCreated, entry.Kind)
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("links to task and records change", func(t *testing.T) {
		taskID := uuid.New()
		entry, err := NewEntry(actorID, KindTaskStatusChanged, "Status changed")
		require.NoError(t, err)

		entry.WithTask(taskID).WithChange("todo", "done")

		require.NotNil(t, entry.TaskID)
		assert.Equal(t, taskID, *entry.TaskID)
		assert.Equal(t, "todo", entry.OldValue)
		assert.Equal(t, "done", entry.NewValue)
	})

	t.Run("fails with nil actor", func(t *testing.T) {
		_, err := NewEntry(uuid.Nil, KindTaskCreated, "Created task")
		require.Error(t, err)
	})

	t.Run("fails with unknown kind", func(t *testing.T) {
		_, err := NewEntry(actorID, Kind("task_deleted"), "")
		require.Error(t, err)
	})
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind(" Task_Status_Changed ")
	require.NoError(t, err)
	assert.Equal(t, KindTaskStatusChanged, kind)

	_, err = ParseKind("something_else")
	require.Error(t, err)
}
