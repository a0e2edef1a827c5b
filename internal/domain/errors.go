package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was hit.
	ErrAlreadyExists = errors.New("already exists")
	// ErrSingleton is returned when a second home page is created.
	ErrSingleton = errors.New("home page already exists")
	// ErrParentRequired is returned when a child entity has no valid home page reference.
	ErrParentRequired = errors.New("home page reference required")
	// ErrInvalid is returned when storage rejects a value that passed no validation.
	ErrInvalid = errors.New("invalid value")
)

// ValidationError lists the fields that failed validation, keyed by JSON path.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrInvalid) match validation failures.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}
