package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// unique-constraint violation (duplicate email, second shop for an owner)
	ErrConflict = errors.New("conflict")
)
