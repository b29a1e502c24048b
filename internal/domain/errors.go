package domain

import "errors"

// Catalog errors
var (
	ErrResortNotFound   = errors.New("resort not found")
	ErrDuplicateResort  = errors.New("duplicate resort id")
	ErrInvalidResort    = errors.New("invalid resort")
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// Preference storage errors
var (
	ErrPreferenceNotFound = errors.New("preference not found")
)
