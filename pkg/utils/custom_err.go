package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrTripRequestNotFound = errors.New("trip request not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrDestinationMismatch = errors.New("activity destination does not match trip destination")
	ErrSessionNotFound     = errors.New("wizard session not found")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDatabaseError       = errors.New("database error")
)
