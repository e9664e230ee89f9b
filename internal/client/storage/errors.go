package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrTaskNotFound indicates that the task does not exist locally
	ErrTaskNotFound = errors.New("task not found")

	// ErrTagDataNotFound indicates that the tag does not exist locally
	ErrTagDataNotFound = errors.New("tag data not found")

	// ErrUpdateNotFound indicates that the update does not exist locally
	ErrUpdateNotFound = errors.New("update not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
