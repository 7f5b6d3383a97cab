// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vector

// Multiply returns a new vector with every element of v multiplied by c
func Multiply(v Vector, c float64) Vector {
	if len(v.elements) == 0 {
		return Vector{}
	}
	out := make([]float64, len(v.elements))
	for i, e := range v.elements {
		out[i] = e * c
	}
	return Vector{elements: out}
}

// Sum returns the element-wise sum of a and b, which must have the
// same dimension
func Sum(a, b Vector) (Vector, error) {
	if err := sameDim("sum", a, b); err != nil {
		return Vector{}, err
	}
	if len(a.elements) == 0 {
		return Vector{}, nil
	}
	out := make([]float64, len(a.elements))
	for i := range a.elements {
		out[i] = a.elements[i] + b.elements[i]
	}
	return Vector{elements: out}, nil
}

// Dot returns the dot product of a and b, which must have the same
// dimension
func Dot(a, b Vector) (float64, error) {
	if err := sameDim("dot", a, b); err != nil {
		return 0, err
	}
	var product float64
	for i := range a.elements {
		product += a.elements[i] * b.elements[i]
	}
	return product, nil
}

func sameDim(op string, a, b Vector) error {
	if len(a.elements) != len(b.elements) {
		return &DimensionError{Op: op, A: len(a.elements), B: len(b.elements)}
	}
	return nil
}
