package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrNotFound  = errors.New("not found")
	ErrEmptyCart = errors.New("cart is empty")
	ErrConflict  = errors.New("conflict")
	ErrDuplicate = errors.New("already exists")
	ErrNotOwner  = errors.New("not allowed")
	ErrInvalid   = errors.New("invalid value")
)
