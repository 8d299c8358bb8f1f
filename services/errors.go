package services

import "errors"

// Validation errors are rejected before any aggregation runs.
var (
	ErrInvalidPage     = errors.New("page number must be positive")
	ErrInvalidPageSize = errors.New("page size out of range")
	ErrRoomNotFound    = errors.New("live room not found")
)

// validatePage rejects invalid pagination instead of silently clamping it,
// so client bugs surface immediately.
func validatePage(nowPage, pageSize, maxPageSize int) error {
	if nowPage <= 0 {
		return ErrInvalidPage
	}
	if pageSize <= 0 || (maxPageSize > 0 && pageSize > maxPageSize) {
		return ErrInvalidPageSize
	}
	return nil
}
