package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrMalformedCorpus    = errors.New("malformed corpus")
	ErrEmptyAnalysisInput = errors.New("empty analysis input")
	ErrModelFit           = errors.New("model fit failed")
	ErrInvalidConfig      = errors.New("invalid configuration")
)
