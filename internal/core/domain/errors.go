package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidKind indicates an unknown content kind was specified
	ErrInvalidKind = errors.New("invalid content kind")

	// ErrInvalidTemplate indicates an unknown template type was specified
	ErrInvalidTemplate = errors.New("invalid template type")

	// ErrTemplateImmutable indicates an attempt to change a record's template after creation
	ErrTemplateImmutable = errors.New("template type cannot be changed")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials indicates a wrong admin password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired indicates the auth token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrSessionNotFound indicates the session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrUploadRejected indicates the asset service refused the upload
	ErrUploadRejected = errors.New("upload rejected")

	// ErrServiceUnavailable indicates the asset service could not be reached
	ErrServiceUnavailable = errors.New("service unavailable")
)
