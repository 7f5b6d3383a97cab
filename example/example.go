package main

import (
	"bytes"
	"fmt"

	vector "github.com/facebookincubator/go-vector"
)

func main() {
	v1 := vector.New(1, 2, 3)
	v2 := vector.New(3, 4, 5)

	fmt.Printf("2*v1 = %s\n", vector.Multiply(v1, 2))
	if sum, err := vector.Sum(v1, v2); err == nil {
		fmt.Printf("v1+v2 = %s\n", sum)
	}
	if dot, err := vector.Dot(v1, v2); err == nil {
		fmt.Printf("v1.v2 = %s\n", vector.FormatElement(dot))
	}

	// mismatched dimensions are reported, not panicked on
	if _, err := vector.Dot(v1, vector.New(1, 2)); err != nil {
		fmt.Printf("error: %s\n", err)
	}

	// Serialize the vector and report size
	buf := bytes.NewBuffer([]byte{})
	v1.WriteTo(buf)
	fmt.Printf("v1 serializes into %d bytes\n", buf.Len())

	text, _ := v2.MarshalText()
	fmt.Printf("v2 as text: %s\n", text)
}
