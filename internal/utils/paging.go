package utils

import (
	"gorm.io/gorm" // GORM ORM library
)

// PagedResult is one page of a larger result set plus navigation metadata
type PagedResult[T any] struct {
	Items           []T   `json:"items"`           // The page slice
	PageIndex       int   `json:"pageIndex"`       // 1-indexed page number
	PageSize        int   `json:"pageSize"`        // Requested page size
	TotalCount      int64 `json:"totalCount"`      // Total rows matching the filters
	TotalPages      int   `json:"totalPages"`      // ceil(totalCount / pageSize)
	HasPreviousPage bool  `json:"hasPreviousPage"` // pageIndex > 1
	HasNextPage     bool  `json:"hasNextPage"`     // pageIndex < totalPages
}

// NewPagedResult wraps an already-sliced item list with its page metadata
func NewPagedResult[T any](items []T, count int64, pageIndex, pageSize int) *PagedResult[T] {
	totalPages := int((count + int64(pageSize) - 1) / int64(pageSize))
	return &PagedResult[T]{
		Items:           items,
		PageIndex:       pageIndex,
		PageSize:        pageSize,
		TotalCount:      count,
		TotalPages:      totalPages,
		HasPreviousPage: pageIndex > 1,
		HasNextPage:     pageIndex < totalPages,
	}
}

// Paginate counts all rows matching the prepared query, then fetches the slice
// for the requested page. Filters already applied to the query affect both the
// count and the slice. An out-of-range page returns an empty slice with correct
// counts.
func Paginate[T any](query *gorm.DB, pageIndex, pageSize int) (*PagedResult[T], error) {
	query = query.Session(&gorm.Session{}) // Make the query reusable for count and find
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}
	items := make([]T, 0, pageSize)
	if err := query.Offset((pageIndex - 1) * pageSize).Limit(pageSize).Find(&items).Error; err != nil {
		return nil, err
	}
	return NewPagedResult(items, count, pageIndex, pageSize), nil
}

// MapPage converts a page of entities into a page of response values, keeping the metadata
func MapPage[T, U any](page *PagedResult[T], convert func(T) U) *PagedResult[U] {
	items := make([]U, len(page.Items))
	for i, item := range page.Items {
		items[i] = convert(item)
	}
	return &PagedResult[U]{
		Items:           items,
		PageIndex:       page.PageIndex,
		PageSize:        page.PageSize,
		TotalCount:      page.TotalCount,
		TotalPages:      page.TotalPages,
		HasPreviousPage: page.HasPreviousPage,
		HasNextPage:     page.HasNextPage,
	}
}
