// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// FormatElement renders f in its shortest round-trippable decimal
// form.  Integral values keep a trailing ".0" so that 3 renders as
// "3.0"; infinities and NaN render as "+Inf", "-Inf" and "NaN".
func FormatElement(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// ParseElement parses a single element token as written by
// FormatElement
func ParseElement(tok string) (float64, error) {
	return strconv.ParseFloat(tok, 64)
}

// TextCodec reads and writes vectors in the textual representation:
// the dimension followed by each element, separated by single spaces
type TextCodec struct {
	config Config
}

// NewTextCodec returns a text codec using the supplied configuration.
// Only MaxDimension applies to the text representation.
func NewTextCodec(config Config) *TextCodec {
	return &TextCodec{config: config}
}

type flusher interface {
	Flush() error
}

// Encode writes v to w on a single line with no trailing space or
// newline.  If w is buffered it is flushed.
func (c *TextCodec) Encode(w io.Writer, v Vector) error {
	if _, err := io.WriteString(w, formatText(v)); err != nil {
		return ioErr("write text", err)
	}
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return ioErr("flush text", err)
		}
	}
	return nil
}

// Decode reads whitespace delimited tokens from r: the dimension, then
// exactly that many elements.  r may be read beyond the last element.
func (c *TextCodec) Decode(r io.Reader) (Vector, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return c.scan(s)
}

func (c *TextCodec) scan(s *bufio.Scanner) (Vector, error) {
	var token int64
	next := func(what string) (string, error) {
		if !s.Scan() {
			if err := s.Err(); errors.Is(err, bufio.ErrTooLong) {
				return "", decodeErr(token, "token too long", err)
			} else if err != nil {
				return "", ioErr("read text", err)
			}
			return "", decodeErr(token, "missing "+what, io.ErrUnexpectedEOF)
		}
		token++
		return s.Text(), nil
	}

	tok, err := next("dimension")
	if err != nil {
		return Vector{}, err
	}
	dim, err := parseDim(tok, c.config.maxDimension())
	if err != nil {
		return Vector{}, decodeErr(0, fmt.Sprintf("bad dimension %q", tok), err)
	}
	if dim == 0 {
		return Vector{}, nil
	}

	// the count is untrusted, grow as tokens arrive
	capacity := dim
	if capacity > 1024 {
		capacity = 1024
	}
	elements := make([]float64, 0, capacity)
	for i := 0; i < dim; i++ {
		if tok, err = next(fmt.Sprintf("element %d of %d", i, dim)); err != nil {
			return Vector{}, err
		}
		e, err := ParseElement(tok)
		if err != nil {
			return Vector{}, decodeErr(token-1, fmt.Sprintf("bad element %q", tok), err)
		}
		elements = append(elements, e)
	}
	return Vector{elements: elements}, nil
}

// parseDim accepts a non-negative integer count.  An integral float
// such as "3.0" is accepted too.
func parseDim(tok string, maxDim uint64) (int, error) {
	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(tok, 64)
		if ferr != nil {
			return 0, err
		}
		if f < 0 || f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("not a non-negative integer")
		}
		if f > float64(maxDim) {
			return 0, fmt.Errorf("exceeds limit of %d", maxDim)
		}
		n = uint64(f)
	}
	if n > maxDim {
		return 0, fmt.Errorf("exceeds limit of %d", maxDim)
	}
	return int(n), nil
}

func formatText(v Vector) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(v.elements)))
	for _, e := range v.elements {
		sb.WriteByte(' ')
		sb.WriteString(FormatElement(e))
	}
	return sb.String()
}

// defaultTextCodec reflects the current value of DefaultConfig
func defaultTextCodec() *TextCodec {
	return NewTextCodec(DefaultConfig)
}

// WriteText writes v to w in the textual representation
func WriteText(w io.Writer, v Vector) error {
	return defaultTextCodec().Encode(w, v)
}

// ReadText reads a vector written by WriteText
func ReadText(r io.Reader) (Vector, error) {
	return defaultTextCodec().Decode(r)
}

// ReadTextFrom replaces the vector's contents with a vector read from
// r in the textual representation.  On error the vector is left
// unchanged.
func (v *Vector) ReadTextFrom(r io.Reader) error {
	nv, err := ReadText(r)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (v Vector) MarshalText() ([]byte, error) {
	return []byte(formatText(v)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  Tokens after the
// last element are rejected.
func (v *Vector) UnmarshalText(text []byte) error {
	s := bufio.NewScanner(strings.NewReader(string(text)))
	s.Split(bufio.ScanWords)
	nv, err := defaultTextCodec().scan(s)
	if err != nil {
		return err
	}
	if s.Scan() {
		return decodeErr(int64(nv.Dim()+1), fmt.Sprintf("unexpected trailing token %q", s.Text()), nil)
	}
	*v = nv
	return nil
}
