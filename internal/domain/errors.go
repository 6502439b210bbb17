package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoProducts is returned when no named product rows were entered
	ErrNoProducts = errors.New("no products entered yet")

	// ErrSheetNotFound is returned when a print sheet id is unknown or expired
	ErrSheetNotFound = errors.New("print sheet not found")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrUnsupportedFormat is returned when a row file has an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported row file format")
)
