package xform

import "errors"

var (
	// ErrInvalidLogLevel is returned when a log level string is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidChoice is returned by OneOf when the value is not one of the choices.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidLanguageTag is returned when a locale string is not a valid BCP 47 tag.
	ErrInvalidLanguageTag = errors.New("invalid language tag")
)
