package model

import "errors"

// Shared catalog error sentinels
var (
	// ErrNotSupported means the library's API cannot perform the operation
	ErrNotSupported = errors.New("operation not supported by this library")

	// ErrAuthFailed means the library rejected the account credentials
	ErrAuthFailed = errors.New("library rejected the account credentials")

	// ErrNotFound means the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrServerOffline means the library server could not be reached
	ErrServerOffline = errors.New("library server unreachable")
)
