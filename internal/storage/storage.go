package storage

import "errors"

// Sentinel errors shared by all storage implementations. Callers match them
// with errors.Is instead of comparing message text.
var (
	ErrWebinarNotFound = errors.New("webinar not found")
	ErrUserNotFound    = errors.New("user not found")
)
