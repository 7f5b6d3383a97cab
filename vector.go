// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package vector implements a fixed size float64 vector which supports:
//  1. scalar multiplication, addition and dot product
//  2. a versioned, length prefixed binary representation
//  3. a whitespace delimited textual representation
package vector

import "strings"

// Vector is an ordered, fixed length sequence of float64 elements.
// Operations never modify their operands; they return new vectors.
// The zero value is a valid vector of dimension 0.
type Vector struct {
	elements []float64
}

// New creates a vector holding a copy of the supplied elements
func New(elements ...float64) Vector {
	return Vector{elements: clone(elements)}
}

// Zero creates a vector of dimension dim with every element set to 0
//
// WARNING: Zero panics if dim is negative
func Zero(dim int) Vector {
	if dim < 0 {
		panic("vector: negative dimension")
	}
	return Vector{elements: make([]float64, dim)}
}

// Elements returns a copy of the vector's elements
func (v Vector) Elements() []float64 {
	return clone(v.elements)
}

// At returns element i
func (v Vector) At(i int) float64 {
	return v.elements[i]
}

// Dim returns the number of elements in the vector
func (v Vector) Dim() int {
	return len(v.elements)
}

// Equal reports whether v and o have the same dimension and bitwise
// identical elements.  NaN elements compare equal to NaNs with the
// same payload.
func (v Vector) Equal(o Vector) bool {
	if len(v.elements) != len(o.elements) {
		return false
	}
	for i, e := range v.elements {
		if floatBits(e) != floatBits(o.elements[i]) {
			return false
		}
	}
	return true
}

// String renders the vector as "(e0, e1, ..., en)".  The empty vector
// renders as "()".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range v.elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatElement(e))
	}
	sb.WriteByte(')')
	return sb.String()
}

func clone(src []float64) []float64 {
	if len(src) == 0 {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}
