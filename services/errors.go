package services

import "errors"

// Failure classes shared by the core workflows. Handlers translate these to
// HTTP statuses; none of them is fatal to the process.
var (
	ErrNotFound          = errors.New("record not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
	ErrInvalidDecision   = errors.New("decision must be accept or reject")
	ErrEmptyMessage      = errors.New("message content cannot be empty")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
)
