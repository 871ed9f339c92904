package types

import "errors"

var (
	ErrNoDepartureSources    = errors.New("no departure files given")
	ErrUnmatchedCountryCodes = errors.New("departures reference destination country codes missing from the country table")
	ErrUnsupportedFormat     = errors.New("unsupported file format")
	ErrInvalidDelimiter      = errors.New("delimiter must be a single character")
)
