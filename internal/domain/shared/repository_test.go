package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("first page of 25 items", func(t *testing.T) {
		result, err := Page(items, 1, 10)
		require.NoError(t, err)

		assert.Len(t, result.Items, 10)
		assert.Equal(t, int64(25), result.Total)
		assert.Equal(t, 3, result.TotalPages)
		assert.Equal(t, 0, result.Items[0])
	})

	t.Run("last partial page", func(t *testing.T) {
		result, err := Page(items, 3, 10)
		require.NoError(t, err)

		assert.Len(t, result.Items, 5)
		assert.Equal(t, 20, result.Items[0])
	})

	t.Run("out of range page returns empty slice with totals", func(t *testing.T) {
		result, err := Page(items, 4, 10)
		require.NoError(t, err)

		assert.Empty(t, result.Items)
		assert.Equal(t, int64(25), result.Total)
		assert.Equal(t, 3, result.TotalPages)
	})

	t.Run("page below 1 clamps to 1", func(t *testing.T) {
		result, err := Page(items, 0, 10)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 0, result.Items[0])
	})

	t.Run("non-positive page size is rejected", func(t *testing.T) {
		_, err := Page(items, 1, 0)
		require.Error(t, err)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	})

	t.Run("exact multiple of page size", func(t *testing.T) {
		result, err := Page(items[:20], 2, 10)
		require.NoError(t, err)

		assert.Len(t, result.Items, 10)
		assert.Equal(t, 2, result.TotalPages)
	})

	t.Run("empty collection", func(t *testing.T) {
		result, err := Page([]int{}, 1, 10)
		require.NoError(t, err)

		assert.Empty(t, result.Items)
		assert.Equal(t, int64(0), result.Total)
		assert.Equal(t, 0, result.TotalPages)
	})
}

func TestFilterNormalize(t *testing.T) {
	t.Run("clamps negative page", func(t *testing.T) {
		f, err := Filter{Page: -3, PageSize: 10}.Normalize()
		require.NoError(t, err)
		assert.Equal(t, 1, f.Page)
	})

	t.Run("rejects zero page size", func(t *testing.T) {
		_, err := Filter{Page: 1, PageSize: 0}.Normalize()
		require.Error(t, err)
	})

	t.Run("offset is zero-based", func(t *testing.T) {
		f := Filter{Page: 3, PageSize: 10}
		assert.Equal(t, 20, f.Offset())
	})
}

func TestNormalizePagination(t *testing.T) {
	t.Run("zero values take defaults", func(t *testing.T) {
		f, err := NormalizePagination(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 20, f.PageSize)
	})

	t.Run("explicit values pass through", func(t *testing.T) {
		f, err := NormalizePagination(3, 50)
		require.NoError(t, err)
		assert.Equal(t, 3, f.Page)
		assert.Equal(t, 50, f.PageSize)
	})

	t.Run("negative page size rejected", func(t *testing.T) {
		_, err := NormalizePagination(1, -5)
		require.Error(t, err)
		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	})

	t.Run("negative page clamps to first", func(t *testing.T) {
		f, err := NormalizePagination(-2, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, f.Page)
	})
}

func TestSoftDelete(t *testing.T) {
	e := NewBaseEntity()
	require.True(t, e.IsActive)
	require.False(t, e.IsDeleted())

	e.SoftDelete()
	assert.False(t, e.IsActive)
	assert.True(t, e.IsDeleted())
	assert.NotNil(t, e.DeletedAt)

	e.Restore()
	assert.True(t, e.IsActive)
	assert.False(t, e.IsDeleted())
	assert.Nil(t, e.DeletedAt)
}
