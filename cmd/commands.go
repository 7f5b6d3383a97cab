// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	vector "github.com/facebookincubator/go-vector"
)

// encode reads a text vector from r and writes it in binary form to a
// new file at output
func encode(r io.Reader, output string, checksum bool) error {
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		return fmt.Errorf("refusing to over-write existing file: %s", output)
	}
	v, err := vector.ReadText(r)
	if err != nil {
		return fmt.Errorf("encode: can't parse input: %w", err)
	}
	config := vector.DefaultConfig
	config.Checksum = checksum
	if err := vector.WriteFile(vector.NewBinaryCodec(config), output, v); err != nil {
		return fmt.Errorf("error writing vector: %w", err)
	}
	log.Printf("wrote %d bytes to %s", config.EncodedSize(v.Dim()), output)
	return nil
}

// decode prints the binary vector stored at path in text form
func decode(path string, w io.Writer) error {
	v, err := vector.ReadFile(vector.NewBinaryCodec(vector.DefaultConfig), path)
	if err != nil {
		return fmt.Errorf("decode: can't read input file: %w", err)
	}
	if err := vector.WriteText(bufio.NewWriter(w), v); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

// describe prints the header of the binary vector stored at path and
// the configuration needed to read it back
func describe(path string, w io.Writer) error {
	h, err := vector.ReadHeaderFromPath(path)
	if err != nil {
		return fmt.Errorf("describe: can't read input file: %w", err)
	}
	fmt.Fprintf(w, "Vector format version %d\n", h.Version)
	not := "no "
	if h.HasChecksum() {
		not = ""
	}
	fmt.Fprintf(w, "%d elements, %schecksum\n", h.Dim, not)

	config := vector.DefaultConfig
	config.Checksum = h.HasChecksum()
	fmt.Fprintf(w, "%d bytes expected\n", config.EncodedSize(int(h.Dim)))
	config.ExplainIndent(w, "  ")
	return nil
}

func dot(args []string, w io.Writer) error {
	a, b, err := vectorPair("dot", args)
	if err != nil {
		return err
	}
	product, err := vector.Dot(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, vector.FormatElement(product))
	return nil
}

func sum(args []string, w io.Writer) error {
	a, b, err := vectorPair("sum", args)
	if err != nil {
		return err
	}
	s, err := vector.Sum(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s)
	return nil
}

func scale(args []string, w io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("scale: expected a vector and a scalar, got %d arguments", len(args))
	}
	v, err := parseArg(args[0])
	if err != nil {
		return err
	}
	k, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("scale: bad scalar: %w", err)
	}
	fmt.Fprintln(w, vector.Multiply(v, k))
	return nil
}

func vectorPair(cmd string, args []string) (a, b vector.Vector, err error) {
	if len(args) != 2 {
		return a, b, fmt.Errorf("%s: expected two vectors, got %d arguments", cmd, len(args))
	}
	if a, err = parseArg(args[0]); err != nil {
		return
	}
	b, err = parseArg(args[1])
	return
}

func parseArg(s string) (vector.Vector, error) {
	var v vector.Vector
	if err := v.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return v, fmt.Errorf("can't parse vector %q: %w", s, err)
	}
	return v, nil
}
