// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"

	vector "github.com/facebookincubator/go-vector"
)

// demo walks through arithmetic on v1 = (1,2,3) and v2 = (3,4,5), a
// binary round trip through the file at path, and a text round trip
// from stdout to stdin
func demo(path string, stdin io.Reader, stdout io.Writer) error {
	fmt.Fprintf(stdout, "Creating vectors v1 = (1,2,3) and v2 = (3,4,5)\n\n")
	v1 := vector.New(1, 2, 3)
	v2 := vector.New(3, 4, 5)

	fmt.Fprintf(stdout, "Vector 2*v1: %s\n\n", vector.Multiply(v1, 2))

	s, err := vector.Sum(v1, v2)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Vector v1+v2: %s\n\n", s)

	d, err := vector.Dot(v1, v2)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Dot product of v1 and v2: %s\n\n", vector.FormatElement(d))

	fmt.Fprintf(stdout, "Serializing v1 in binary form to %q...\n\n", path)
	if err := vector.WriteFile(vector.NewBinaryCodec(vector.DefaultConfig), path, v1); err != nil {
		return err
	}
	log.Printf("wrote %d bytes to %s", vector.DefaultConfig.EncodedSize(v1.Dim()), path)

	fmt.Fprintf(stdout, "Deserializing a vector in binary form from %q into v...\n\n", path)
	v, err := vector.ReadFile(vector.NewBinaryCodec(vector.DefaultConfig), path)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Restored vector: %s\n", v)

	fmt.Fprintf(stdout, "\nSerializing v2 in text form to standard output: ")
	w := bufio.NewWriter(stdout)
	if err := vector.WriteText(w, v2); err != nil {
		return err
	}
	fmt.Fprintln(stdout)

	fmt.Fprintf(stdout, "\nDeserializing a vector in text form from standard input (waiting for input): ")
	if err := v2.ReadTextFrom(stdin); err != nil {
		return err
	}
	fmt.Fprintln(stdout)

	fmt.Fprintf(stdout, "Restored vector: %s\n", v2)
	return nil
}
