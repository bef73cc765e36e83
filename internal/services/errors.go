package services

import "errors"

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrStorageDisabled    = errors.New("poster storage is not configured")
)
