package cmd

import "errors"

var (
	ErrInvalid            = errors.New("invalid")
	ErrInvalidConcurrency = errors.New("concurrency must be positive")
	ErrNoCertificates     = errors.New("no certificates")
	ErrMissingSignature   = errors.New("certificate has neither signature nor signatures")
	ErrAmbiguousMessage   = errors.New("certificate sets both message and message_text")
	ErrAggregationFailed  = errors.New("aggregation failed")
)
