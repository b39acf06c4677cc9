// Package storage holds the sentinel errors every repository reports.
package storage

import "errors"

var (
	// ErrNotFound is returned by writes that target a missing row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique attribute is already taken.
	ErrDuplicate = errors.New("record already exists")
)
