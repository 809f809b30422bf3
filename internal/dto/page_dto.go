package dto

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageQuery is the paging part of list requests. Page is zero-based.
type PageQuery struct {
	Page    int    `form:"page" binding:"omitempty,min=0"`
	Size    int    `form:"size" binding:"omitempty,min=0"`
	SortBy  string `form:"sortBy"`
	SortDir string `form:"sortDir" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// Normalize clamps the size into [1, MaxPageSize] and applies defaults.
func (q PageQuery) Normalize(defaultSortBy string) PageQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	if q.Size > MaxPageSize {
		q.Size = MaxPageSize
	}
	if q.SortBy == "" {
		q.SortBy = defaultSortBy
	}
	if q.SortDir == "" {
		q.SortDir = "desc"
	}
	return q
}

type PageResponseDTO[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
	IsFirst       bool  `json:"isFirst"`
	IsLast        bool  `json:"isLast"`
}

func NewPageResponse[T any](content []T, pageNumber, pageSize int, totalElements int64) *PageResponseDTO[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalElements) / float64(pageSize)))
	}
	return &PageResponseDTO[T]{
		Content:       content,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		HasNext:       pageNumber < totalPages-1,
		HasPrevious:   pageNumber > 0,
		IsFirst:       pageNumber == 0,
		IsLast:        pageNumber >= totalPages-1,
	}
}
