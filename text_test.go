// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vector

import (
	"bufio"
	"bytes"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	for _, tc := range []struct {
		v    Vector
		want string
	}{
		{New(3, 4, 5), "3 3.0 4.0 5.0"},
		{New(), "0"},
		{New(-0.125, 1e-7), "2 -0.125 1e-07"},
		{New(math.Inf(-1), math.NaN()), "2 -Inf NaN"},
	} {
		var sb strings.Builder
		require.NoError(t, WriteText(&sb, tc.v))
		assert.Equal(t, tc.want, sb.String())

		text, err := tc.v.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(text))
	}
}

func TestWriteTextFlushes(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, WriteText(w, New(1, 2)))
	assert.Equal(t, "2 1.0 2.0", buf.String())
}

func TestReadText(t *testing.T) {
	v, err := ReadText(strings.NewReader("3 3.0 4.0 5.0"))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, v.Elements())

	// any whitespace separates tokens, the count may be written as a float
	v, err = ReadText(strings.NewReader("\n 3.0\t1\n2   3e0 \n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, v.Elements())

	// tokens beyond the declared dimension are not part of the vector
	v, err = ReadText(strings.NewReader("1 7 8 9"))
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, v.Elements())

	v, err = ReadText(strings.NewReader("0"))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Dim())
}

func TestReadTextMalformed(t *testing.T) {
	for _, input := range []string{
		"",
		"   \n",
		"x 1 2",
		"-1",
		"2.5 1 2",
		"3 1 2",
		"2 1 two",
		"99999999999999999999 1",
		"1 " + strings.Repeat("1", 70000),
	} {
		v := New(1)
		err := v.ReadTextFrom(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrDecoding, "%q", input)
		var de *DecodeError
		assert.True(t, errors.As(err, &de), "%q", input)
		assert.Equal(t, "(1.0)", v.String(), "%q: target modified on error", input)
	}

	_, err := NewTextCodec(Config{MaxDimension: 2}).Decode(strings.NewReader("3 1 2 3"))
	assert.ErrorIs(t, err, ErrDecoding)
}

func TestReadTextErrorPosition(t *testing.T) {
	_, err := ReadText(strings.NewReader("3 1 oops 3"))
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, int64(2), de.Offset)
	assert.Contains(t, de.Error(), `"oops"`)
}

func TestReadTextIOFailure(t *testing.T) {
	_, err := ReadText(failingReader{})
	assert.ErrorIs(t, err, ErrIO)
	assert.NotErrorIs(t, err, ErrDecoding)

	err = WriteText(&failingWriter{}, New(1))
	assert.ErrorIs(t, err, ErrIO)
}

func TestReadTextFrom(t *testing.T) {
	v := New(3, 4, 5)
	require.NoError(t, v.ReadTextFrom(strings.NewReader("2 8 9\n")))
	assert.Equal(t, "(8.0, 9.0)", v.String())
}

func TestUnmarshalText(t *testing.T) {
	var v Vector
	require.NoError(t, v.UnmarshalText([]byte("2 1.5 -2")))
	assert.Equal(t, []float64{1.5, -2}, v.Elements())

	err := v.UnmarshalText([]byte("1 1 2"))
	assert.ErrorIs(t, err, ErrDecoding)
	assert.Equal(t, []float64{1.5, -2}, v.Elements())
}

func TestTextRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(77)) //intentionally fixed seed
	vectors := []Vector{
		New(),
		New(3, 4, 5),
		New(math.Inf(1), math.Inf(-1), math.NaN(), math.Copysign(0, -1), math.SmallestNonzeroFloat64, math.MaxFloat64),
	}
	for i := 0; i < 50; i++ {
		vectors = append(vectors, randomVector(r, r.Intn(100)))
	}
	for _, v := range vectors {
		var buf bytes.Buffer
		require.NoError(t, WriteText(&buf, v))
		got, err := ReadText(&buf)
		require.NoError(t, err)
		assert.True(t, v.Equal(got), "round trip of %s produced %s", v, got)
	}
}

func TestFormatElement(t *testing.T) {
	for f, want := range map[float64]string{
		0:     "0.0",
		3:     "3.0",
		-4:    "-4.0",
		0.1:   "0.1",
		1e6:   "1e+06",
		1e-5:  "1e-05",
		12.75: "12.75",
	} {
		assert.Equal(t, want, FormatElement(f))
		back, err := ParseElement(want)
		require.NoError(t, err)
		assert.Equal(t, f, back)
	}
	assert.Equal(t, "-0.0", FormatElement(math.Copysign(0, -1)))
}
