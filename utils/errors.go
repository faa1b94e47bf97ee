package utils

import "errors"

var (
	// ErrInvalidArgument marks an order or shape outside what a routine accepts.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNumerical marks a singular or ill-conditioned system.
	ErrNumerical = errors.New("numerical error")
)
