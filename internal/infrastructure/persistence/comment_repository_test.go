package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/backend/internal/domain/shared"
	"github.com/taskhub/backend/internal/domain/task"
)

func TestGormCommentRepository_CreateAndFindByTask(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommentRepository(db)
	ctx := context.Background()

	taskID := uuid.New()
	author := uuid.New()

	for i, content := range []string{"first", "second", "third"} {
		comment, err := task.NewComment(taskID, author, content)
		require.NoError(t, err)
		comment.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Create(ctx, comment))
	}

	comments, err := repo.FindByTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "third", comments[2].Content)
}

func TestGormCommentRepository_FindByTask_OnlyThatTask(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommentRepository(db)
	ctx := context.Background()

	taskA := uuid.New()
	taskB := uuid.New()
	author := uuid.New()

	commentA, err := task.NewComment(taskA, author, "on A")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, commentA))

	commentB, err := task.NewComment(taskB, author, "on B")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, commentB))

	comments, err := repo.FindByTask(ctx, taskA)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "on A", comments[0].Content)
}

func TestGormCommentRepository_SoftDeletedCommentHidden(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommentRepository(db)
	ctx := context.Background()

	taskID := uuid.New()
	comment, err := task.NewComment(taskID, uuid.New(), "to be removed")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, comment))

	comment.SoftDelete()
	require.NoError(t, repo.Update(ctx, comment))

	_, err = repo.FindByID(ctx, comment.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	comments, err := repo.FindByTask(ctx, taskID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
