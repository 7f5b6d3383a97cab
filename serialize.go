// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vector

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// binaryVersion is a version number for the on disk representation
// format.  Any time incompatible changes are made, it is bumped
const binaryVersion = uint16(0x0001)

const binaryMagic = "VECT"

const (
	// flagChecksum marks a checksum trailer after the elements
	flagChecksum = uint16(1 << 0)

	headerSize   = 16
	checksumSize = 8

	// elements are decoded this many at a time so that a corrupt
	// length prefix cannot force a large allocation up front
	readChunkElements = 1024

	// largest dimension whose element data is addressable on this host
	maxAddressableDim = uint64(math.MaxInt / bytesPerElement)
)

// Header describes a serialized vector.  Fields are stored little
// endian in the order declared.
type Header struct {
	Magic   [4]byte
	Version uint16
	Flags   uint16
	// the number of float64 elements that follow the header
	Dim uint64
}

// HasChecksum reports whether a checksum trailer follows the elements
func (h Header) HasChecksum() bool {
	return h.Flags&flagChecksum != 0
}

func (h Header) validate(maxDim uint64) error {
	if string(h.Magic[:]) != binaryMagic {
		return decodeErr(0, fmt.Sprintf("invalid magic %q", h.Magic[:]), nil)
	}
	if h.Version != binaryVersion {
		return decodeErr(4, fmt.Sprintf("incompatible file format: version is %d, expected %d",
			h.Version, binaryVersion), nil)
	}
	if h.Flags&^flagChecksum != 0 {
		return decodeErr(6, fmt.Sprintf("unknown flags %#x", h.Flags), nil)
	}
	if maxDim > maxAddressableDim {
		maxDim = maxAddressableDim
	}
	if h.Dim > maxDim {
		return decodeErr(8, fmt.Sprintf("dimension %d exceeds limit of %d", h.Dim, maxDim), nil)
	}
	return nil
}

// BinaryCodec reads and writes vectors in the binary representation
type BinaryCodec struct {
	config Config
}

// NewBinaryCodec returns a binary codec using the supplied configuration
func NewBinaryCodec(config Config) *BinaryCodec {
	return &BinaryCodec{config: config}
}

// Encode writes v to w
func (c *BinaryCodec) Encode(w io.Writer, v Vector) error {
	_, err := c.writeTo(w, v)
	return err
}

// Decode reads a single vector from r
func (c *BinaryCodec) Decode(r io.Reader) (Vector, error) {
	var v Vector
	_, err := c.readFrom(r, &v)
	return v, err
}

func (c *BinaryCodec) writeTo(stream io.Writer, v Vector) (i int64, err error) {
	h := Header{
		Version: binaryVersion,
		Dim:     uint64(len(v.elements)),
	}
	copy(h.Magic[:], binaryMagic)
	if c.config.Checksum {
		h.Flags |= flagChecksum
	}
	if err = binary.Write(stream, binary.LittleEndian, h); err != nil {
		return i, ioErr("write header", err)
	}
	i += headerSize

	data := elementBytes(v.elements)
	n, err := stream.Write(data)
	i += int64(n)
	if err != nil {
		return i, ioErr("write elements", err)
	}

	if h.HasChecksum() {
		if err = binary.Write(stream, binary.LittleEndian, c.config.hashFn()(data)); err != nil {
			return i, ioErr("write checksum", err)
		}
		i += checksumSize
	}
	return
}

// readFrom replaces the contents of v only when the whole vector has
// been read successfully
func (c *BinaryCodec) readFrom(stream io.Reader, v *Vector) (i int64, err error) {
	h, err := readHeader(stream)
	if err != nil {
		return
	}
	i += headerSize
	if err = h.validate(c.config.maxDimension()); err != nil {
		return
	}

	elements, n, err := readElements(stream, int(h.Dim))
	i += n
	if err != nil {
		return i, readErr(i, "truncated elements", err)
	}

	if h.HasChecksum() {
		var sum uint64
		if err = binary.Read(stream, binary.LittleEndian, &sum); err != nil {
			return i, readErr(i, "truncated checksum", err)
		}
		if want := c.config.hashFn()(elementBytes(elements)); sum != want {
			return i, decodeErr(i, fmt.Sprintf("checksum mismatch: got %#x, expected %#x", sum, want), nil)
		}
		i += checksumSize
	}

	if len(elements) == 0 {
		elements = nil
	}
	v.elements = elements
	return
}

func readHeader(stream io.Reader) (h Header, err error) {
	if err = binary.Read(stream, binary.LittleEndian, &h); err != nil {
		return h, readErr(0, "truncated header", err)
	}
	return h, nil
}

// readErr classifies a read failure: running out of input is a
// decoding failure, anything else is the stream's fault
func readErr(offset int64, reason string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return decodeErr(offset, reason, err)
	}
	return ioErr("read", err)
}

// readElements decodes dim little endian elements from stream, growing
// the result as data arrives
func readElements(stream io.Reader, dim int) (elements []float64, n int64, err error) {
	chunk := dim
	if chunk > readChunkElements {
		chunk = readChunkElements
	}
	elements = make([]float64, 0, chunk)
	buf := make([]byte, chunk*bytesPerElement)
	for remaining := dim; remaining > 0; remaining -= chunk {
		if remaining < chunk {
			chunk = remaining
		}
		var np int
		np, err = io.ReadFull(stream, buf[:chunk*bytesPerElement])
		n += int64(np)
		if err != nil {
			return
		}
		elements = appendElements(elements, buf[:chunk*bytesPerElement])
	}
	return
}

// defaultBinaryCodec reflects the current value of DefaultConfig
func defaultBinaryCodec() *BinaryCodec {
	return NewBinaryCodec(DefaultConfig)
}

// WriteTo allows the vector to be written to a stream using
// DefaultConfig
func (v Vector) WriteTo(stream io.Writer) (int64, error) {
	return defaultBinaryCodec().writeTo(stream, v)
}

// ReadFrom replaces the vector's contents with a vector read from a
// stream.  On error the vector is left unchanged.
func (v *Vector) ReadFrom(stream io.Reader) (int64, error) {
	return defaultBinaryCodec().readFrom(stream, v)
}

// MarshalBinary implements encoding.BinaryMarshaler
func (v Vector) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(int(DefaultConfig.EncodedSize(len(v.elements))))
	if _, err := v.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.  Trailing
// bytes after the encoded vector are rejected.
func (v *Vector) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var nv Vector
	n, err := nv.ReadFrom(r)
	if err != nil {
		return err
	}
	if r.Len() > 0 {
		return decodeErr(n, fmt.Sprintf("%d trailing bytes", r.Len()), nil)
	}
	*v = nv
	return nil
}

// WriteBinary writes v to w using DefaultConfig
func WriteBinary(w io.Writer, v Vector) error {
	return defaultBinaryCodec().Encode(w, v)
}

// ReadBinary reads a vector written by WriteBinary
func ReadBinary(r io.Reader) (Vector, error) {
	return defaultBinaryCodec().Decode(r)
}

// ReadHeader reads and validates the header of a binary vector without
// reading its elements
func ReadHeader(r io.Reader) (Header, error) {
	h, err := readHeader(r)
	if err != nil {
		return h, err
	}
	if err = h.validate(^uint64(0)); err != nil {
		return h, err
	}
	return h, nil
}

// ReadHeaderFromPath reads the header of the binary vector stored at path
func ReadHeaderFromPath(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, ioErr("open", err)
	}
	defer f.Close()
	return ReadHeader(f)
}
