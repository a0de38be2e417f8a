package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Filter represents query filter options shared by list queries.
// Page is 1-based; values below 1 are clamped to 1. A non-positive
// PageSize is a validation error, never silently corrected.
type Filter struct {
	Page     int
	PageSize int
	Search   string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
	}
}

// Normalize clamps the page and validates the page size
func (f Filter) Normalize() (Filter, error) {
	if f.PageSize <= 0 {
		return f, NewDomainError("VALIDATION_FAILED", "Page size must be positive")
	}
	if f.Page < 1 {
		f.Page = 1
	}
	return f, nil
}

// NormalizePagination resolves caller-supplied pagination values. Zero
// means "not provided" and takes the default; anything else goes
// through Normalize, so a negative page size is rejected rather than
// corrected.
func NormalizePagination(page, pageSize int) (Filter, error) {
	f := DefaultFilter()
	if page != 0 {
		f.Page = page
	}
	if pageSize != 0 {
		f.PageSize = pageSize
	}
	return f.Normalize()
}

// Offset returns the row offset for the filter
func (f Filter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageSize
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
	}
}

// TotalPages computes the page count for a total and page size
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}

// Page slices an in-memory collection into a stable page. The caller is
// expected to have sorted items already (created_at descending, ID as
// tie-break). An out-of-range page yields an empty slice with correct
// totals rather than an error.
func Page[T any](items []T, page, pageSize int) (Paginated[T], error) {
	if pageSize <= 0 {
		return Paginated[T]{}, NewDomainError("VALIDATION_FAILED", "Page size must be positive")
	}
	if page < 1 {
		page = 1
	}

	total := int64(len(items))
	start := (page - 1) * pageSize
	if start >= len(items) {
		return NewPaginated([]T{}, total, page, pageSize), nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return NewPaginated(items[start:end], total, page, pageSize), nil
}
