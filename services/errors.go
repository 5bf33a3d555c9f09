package services

import "errors"

// Error kinds shared by all services. Controllers map these onto HTTP
// statuses with errors.Is; anything outside this set is treated as an
// unexpected server error.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)
