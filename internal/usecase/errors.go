package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownRole  = errors.New("unknown career role")
	ErrInternal     = errors.New("internal error")
)
