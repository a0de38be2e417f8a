package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/backend/internal/domain/activity"
)

func TestGormActivityRepository_AppendAndFindByTask(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormActivityRepository(db)
	ctx := context.Background()

	taskID := uuid.New()
	actor := uuid.New()

	created, err := activity.NewEntry(actor, activity.KindTaskCreated, "Task created")
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, created.WithTask(taskID)))

	changed, err := activity.NewEntry(actor, activity.KindTaskStatusChanged, "Status changed")
	require.NoError(t, err)
	changed.CreatedAt = created.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Append(ctx, changed.WithTask(taskID).WithChange("todo", "in_progress")))

	entries, err := repo.FindByTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, activity.KindTaskCreated, entries[0].Kind)
	assert.Equal(t, activity.KindTaskStatusChanged, entries[1].Kind)
	assert.Equal(t, "todo", entries[1].OldValue)
	assert.Equal(t, "in_progress", entries[1].NewValue)
	assert.Equal(t, actor, entries[1].ActorID)
}

func TestGormActivityRepository_FindByProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormActivityRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	otherProject := uuid.New()
	actor := uuid.New()

	joined, err := activity.NewEntry(actor, activity.KindUserJoinedProject, "User joined")
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, joined.WithProject(projectID)))

	elsewhere, err := activity.NewEntry(actor, activity.KindProjectUpdated, "Other project")
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, elsewhere.WithProject(otherProject)))

	entries, err := repo.FindByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, activity.KindUserJoinedProject, entries[0].Kind)
}

func TestGormActivityRepository_EntriesWithoutLinksUnreachable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormActivityRepository(db)
	ctx := context.Background()

	entry, err := activity.NewEntry(uuid.New(), activity.KindProjectCreated, "Unlinked")
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, entry))

	byTask, err := repo.FindByTask(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, byTask)

	byProject, err := repo.FindByProject(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, byProject)
}
