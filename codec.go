// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vector

import (
	"encoding"
	"io"
	"os"
)

// Codec encodes and decodes vectors to and from streams.  It is
// implemented by both BinaryCodec and TextCodec.
type Codec interface {
	Encode(w io.Writer, v Vector) error
	Decode(r io.Reader) (Vector, error)
}

var _ Codec = (*BinaryCodec)(nil)
var _ Codec = (*TextCodec)(nil)

var _ io.WriterTo = Vector{}
var _ io.ReaderFrom = (*Vector)(nil)
var _ encoding.BinaryMarshaler = Vector{}
var _ encoding.BinaryUnmarshaler = (*Vector)(nil)
var _ encoding.TextMarshaler = Vector{}
var _ encoding.TextUnmarshaler = (*Vector)(nil)

// WriteFile encodes v with c into the file at path, creating or
// truncating it
func WriteFile(c Codec, path string, v Vector) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioErr("create", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErr("close", cerr)
		}
	}()
	return c.Encode(f, v)
}

// ReadFile decodes a single vector with c from the file at path
func ReadFile(c Codec, path string) (Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return Vector{}, ioErr("open", err)
	}
	defer f.Close()
	return c.Decode(f)
}
