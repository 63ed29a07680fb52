package models

// PageRequest is a zero-based page request with a bounded size
type PageRequest struct {
	Number int
	Size   int
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps the request to sane bounds
func (p PageRequest) Normalize() PageRequest {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset for SQL queries
func (p PageRequest) Offset() int { return p.Number * p.Size }

// Page is one page of items plus the counters the envelope is built from
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

func (p Page[T]) TotalPages() int {
	if p.Size == 0 {
		return 0
	}
	pages := int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
	return pages
}

func (p Page[T]) Last() bool {
	return p.Number >= p.TotalPages()-1
}

// NewPage builds a page for the given request
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:       content,
		Number:        req.Number,
		Size:          req.Size,
		TotalElements: total,
	}
}
