package domain

import "errors"

// Sentinel errors for remote service operations
var (
	// ErrServiceUnreachable indicates a transport-level failure (no response)
	ErrServiceUnreachable = errors.New("movie service is unreachable")

	// ErrAuthFailed indicates a missing, expired, or invalid session credential
	ErrAuthFailed = errors.New("session credential is invalid")

	// ErrRejected indicates the remote service refused the request
	// (e.g. a malformed rating value)
	ErrRejected = errors.New("request rejected by movie service")

	// ErrMovieNotFound indicates the requested movie does not exist
	ErrMovieNotFound = errors.New("movie not found")

	// ErrNotSignedIn indicates an account operation was attempted with no
	// active session
	ErrNotSignedIn = errors.New("not signed in")
)
