// Package pagination clamps page parameters for list endpoints.
package pagination

import "chainboard/internal/constant"

// Normalize returns page/pageSize clamped to sane bounds.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = constant.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constant.DefaultPageSize
	}
	if pageSize > constant.MaxPageSize {
		pageSize = constant.MaxPageSize
	}
	return page, pageSize
}

// Offset converts a normalized page pair to a SQL offset.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}
