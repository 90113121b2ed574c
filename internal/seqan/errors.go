// Package seqan is the sequence analysis engine: a FASTA backed sequence
// store plus reading frame, ORF, superlative and repeat queries over it.
package seqan

import "errors"

var (
	// ErrFormat is returned when input text doesn't begin with a FASTA header.
	ErrFormat = errors.New("not FASTA formatted")

	// ErrNotFound is returned for identifier lookup misses.
	ErrNotFound = errors.New("sequence not found")

	// ErrInvalidFrame is returned for frame numbers outside 1, 2 and 3.
	ErrInvalidFrame = errors.New("invalid reading frame")

	// ErrEmptyInput is returned when a superlative is requested over nothing.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidLength is returned for non-positive substring lengths.
	ErrInvalidLength = errors.New("invalid substring length")

	// ErrLengthMismatch is returned when a declared substring length
	// doesn't match the substring.
	ErrLengthMismatch = errors.New("substring length mismatch")
)
