package client

import "fmt"

// Page is the envelope every list endpoint answers with
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	Last          bool  `json:"last"`
}

// ShowingRange returns the 1-based positions of the first and last element
// on this page, 0 and 0 when the result set is empty
func (p Page[T]) ShowingRange() (from int64, to int64) {
	if p.TotalElements == 0 {
		return 0, 0
	}

	from = int64(p.Number)*int64(p.Size) + 1
	to = int64(p.Number+1) * int64(p.Size)
	if to > p.TotalElements {
		to = p.TotalElements
	}
	return from, to
}

// ShowingText renders the familiar "Showing X to Y of Z" line
func (p Page[T]) ShowingText() string {
	from, to := p.ShowingRange()
	return fmt.Sprintf("Showing %d to %d of %d", from, to, p.TotalElements)
}

// HasPrev reports whether a previous page exists
func (p Page[T]) HasPrev() bool { return p.Number > 0 }

// HasNext reports whether a next page exists
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages-1 }
