package models

import "errors"

// Domain-specific errors for pipeline stages and cards
var (
	// ErrUnknownStage indicates a stage value outside the fixed pipeline enumeration
	ErrUnknownStage = errors.New("unknown pipeline stage")

	// ErrCardNotFound indicates that no card exists with the requested id
	ErrCardNotFound = errors.New("card not found")

	// ErrEmptyCardID indicates an operation was given a blank card id
	ErrEmptyCardID = errors.New("card id is empty")
)
