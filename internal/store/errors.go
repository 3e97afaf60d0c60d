package store

import "errors"

// ErrNotFound is returned when no record matches the given key.
var ErrNotFound = errors.New("record not found")
