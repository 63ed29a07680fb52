package handlers

import (
	"net/http"
	"strconv"

	"github.com/codepioneers/recruiting/internal/models"
)

// PageResponse is the envelope every list endpoint answers with
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Size          int   `json:"size"`
	Last          bool  `json:"last"`
}

// pageResponse converts a storage page into the wire envelope
func pageResponse[D, T any](page models.Page[D], conv func(D) T) PageResponse[T] {
	content := make([]T, 0, len(page.Content))
	for _, item := range page.Content {
		content = append(content, conv(item))
	}

	return PageResponse[T]{
		Content:       content,
		Number:        page.Number,
		TotalPages:    page.TotalPages(),
		TotalElements: page.TotalElements,
		Size:          page.Size,
		Last:          page.Last(),
	}
}

// pageRequest reads the 0-based page and size query params
func pageRequest(r *http.Request) models.PageRequest {
	number, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	return models.PageRequest{Number: number, Size: size}.Normalize()
}
