// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when a binary operation is
	// applied to vectors of different dimension
	ErrDimensionMismatch = errors.New("vector dimensions do not match")
	// ErrIO wraps failures of the underlying stream during encoding
	// or decoding
	ErrIO = errors.New("vector i/o failure")
	// ErrDecoding is returned for malformed or truncated input
	ErrDecoding = errors.New("malformed vector encoding")
)

// DimensionError describes a dimension precondition violation
type DimensionError struct {
	Op   string
	A, B int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: %d != %d", e.Op, ErrDimensionMismatch, e.A, e.B)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// DecodeError describes where and why decoding failed.  Offset is a
// byte offset for the binary codec and a token index for the text
// codec.
type DecodeError struct {
	Offset int64
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %d: %s: %s", ErrDecoding, e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s at %d: %s", ErrDecoding, e.Offset, e.Reason)
}

// Unwrap lets errors.Is match both ErrDecoding and the underlying
// cause, if any
func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDecoding, e.Err}
	}
	return []error{ErrDecoding}
}

func decodeErr(offset int64, reason string, err error) error {
	return &DecodeError{Offset: offset, Reason: reason, Err: err}
}

func ioErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}
