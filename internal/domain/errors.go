package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when request parameters are malformed or missing
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable is returned when the entry store cannot answer at all
	ErrStoreUnavailable = errors.New("entry store unavailable")

	// ErrUpstreamFailure is returned when the nutrition lookup service fails
	ErrUpstreamFailure = errors.New("nutrition lookup failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)

// UpstreamError carries the HTTP status returned by the nutrition lookup
// service so the delivery layer can surface it.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("OpenFoodFacts error: %d", e.StatusCode)
}

// Is makes errors.Is(err, ErrUpstreamFailure) match any UpstreamError.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFailure
}
