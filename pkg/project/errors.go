package project

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidIndex = errors.New("invalid index")
	ErrValidation   = errors.New("validation failed")
	ErrGeneration   = errors.New("generation failed")
)
