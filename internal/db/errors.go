package db

import "errors"

// Domain-level database error sentinels.
var (
	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrDuplicateHandle = errors.New("handle already exists")
)
