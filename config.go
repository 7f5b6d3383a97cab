// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vector

import (
	"fmt"
	"io"
)

// DefaultMaxDimension is the largest dimension a decoder will accept
// when no explicit configuration is provided.  It bounds the allocation
// made from an untrusted length prefix.
const DefaultMaxDimension = 1 << 26

// Config controls the behavior of the binary and text codecs
type Config struct {
	// The largest dimension accepted when decoding.  Zero means
	// DefaultMaxDimension
	MaxDimension uint64
	// Whether the binary encoder appends a checksum of the element
	// data.  Decoders verify a checksum whenever the header says one
	// is present, regardless of this setting
	Checksum bool
	// Hash function used for the checksum trailer.  This must match
	// between encoder and decoder
	HashFn HashFn
}

// DefaultConfig is the configuration used by the package level codec
// functions and the Vector methods.  By default a 64 bit murmur 2
// checksum is written after the elements.  It is read on every call,
// so changes take effect immediately.
var DefaultConfig = Config{
	MaxDimension: DefaultMaxDimension,
	Checksum:     true,
	HashFn:       murmurhash64,
}

func (c *Config) maxDimension() uint64 {
	if c.MaxDimension == 0 {
		return DefaultMaxDimension
	}
	return c.MaxDimension
}

func (c *Config) hashFn() HashFn {
	if c.HashFn == nil {
		return murmurhash64
	}
	return c.HashFn
}

// EncodedSize reports the number of bytes the binary codec produces
// for a vector of dimension dim.
func (c *Config) EncodedSize(dim int) int64 {
	n := int64(headerSize) + int64(dim)*bytesPerElement
	if c.Checksum {
		n += checksumSize
	}
	return n
}

// ExplainIndent will print an indented summary of the configuration to w
func (c *Config) ExplainIndent(w io.Writer, indent string) {
	fmt.Fprintf(w, "%sformat version %d\n", indent, binaryVersion)
	fmt.Fprintf(w, "%s%d max dimension accepted\n", indent, c.maxDimension())
	if c.Checksum {
		fmt.Fprintf(w, "%schecksum trailer enabled\n", indent)
	} else {
		fmt.Fprintf(w, "%schecksum trailer disabled\n", indent)
	}
}

// Explain will print a summary of the configuration to w
func (c *Config) Explain(w io.Writer) {
	c.ExplainIndent(w, "")
}
