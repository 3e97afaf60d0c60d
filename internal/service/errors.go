package service

import "errors"

var (
	// ErrNotFound means the referenced project or participant does not exist
	// (for Join, "exists but not approved" is also reported as not found).
	ErrNotFound = errors.New("not found")

	// ErrEmptyQuery means a required free-text argument was blank.
	ErrEmptyQuery = errors.New("empty query")

	// ErrAlreadyMember means the user is already on the project roster.
	ErrAlreadyMember = errors.New("already a team member")

	// ErrAlreadyDecided means the project has left the pending state; a
	// decision is one-shot and approval metadata is never overwritten.
	ErrAlreadyDecided = errors.New("project already decided")
)
