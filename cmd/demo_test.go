// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	vector "github.com/facebookincubator/go-vector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vector")
	var out bytes.Buffer
	require.NoError(t, demo(path, strings.NewReader("2 7.5 -1\n"), &out))

	got := out.String()
	assert.Contains(t, got, "Vector 2*v1: (2.0, 4.0, 6.0)")
	assert.Contains(t, got, "Vector v1+v2: (4.0, 6.0, 8.0)")
	assert.Contains(t, got, "Dot product of v1 and v2: 26.0")
	assert.Contains(t, got, "Restored vector: (1.0, 2.0, 3.0)")
	assert.Contains(t, got, "standard output: 3 3.0 4.0 5.0\n")
	assert.Contains(t, got, "Restored vector: (7.5, -1.0)")

	v, err := vector.ReadFile(vector.NewBinaryCodec(vector.DefaultConfig), path)
	require.NoError(t, err)
	assert.True(t, v.Equal(vector.New(1, 2, 3)), "file holds %s", v)
}

func TestDemoBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vector")
	err := demo(path, strings.NewReader("3 1 2"), &bytes.Buffer{})
	assert.ErrorIs(t, err, vector.ErrDecoding)
}

func TestParseArg(t *testing.T) {
	v, err := parseArg(" 2 1 2 ")
	require.NoError(t, err)
	assert.Equal(t, "(1.0, 2.0)", v.String())

	_, err = parseArg("2 1 2 3")
	assert.ErrorIs(t, err, vector.ErrDecoding)
}

func TestEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v.bin")
	require.NoError(t, encode(strings.NewReader("3 1 2.5 -3"), path, true))

	var out bytes.Buffer
	require.NoError(t, decode(path, &out))
	assert.Equal(t, "3 1.0 2.5 -3.0\n", out.String())

	err := encode(strings.NewReader("1 1"), path, true)
	assert.EqualError(t, err, "refusing to over-write existing file: "+path)

	err = encode(strings.NewReader("2 1"), filepath.Join(dir, "bad.bin"), true)
	assert.ErrorIs(t, err, vector.ErrDecoding)

	err = decode(filepath.Join(dir, "missing.bin"), &out)
	assert.ErrorIs(t, err, vector.ErrIO)
}

func TestEncodeChecksumFlag(t *testing.T) {
	dir := t.TempDir()
	with := filepath.Join(dir, "with.bin")
	without := filepath.Join(dir, "without.bin")
	require.NoError(t, encode(strings.NewReader("2 1 2"), with, true))
	require.NoError(t, encode(strings.NewReader("2 1 2"), without, false))

	h, err := vector.ReadHeaderFromPath(with)
	require.NoError(t, err)
	assert.True(t, h.HasChecksum())
	h, err = vector.ReadHeaderFromPath(without)
	require.NoError(t, err)
	assert.False(t, h.HasChecksum())

	for _, path := range []string{with, without} {
		v, err := vector.ReadFile(vector.NewBinaryCodec(vector.DefaultConfig), path)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, v.Elements())
	}
}

func TestDescribe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.bin")
	require.NoError(t, encode(strings.NewReader("2 1 2"), path, false))

	var out bytes.Buffer
	require.NoError(t, describe(path, &out))
	assert.Equal(t, "Vector format version 1\n"+
		"2 elements, no checksum\n"+
		"32 bytes expected\n"+
		"  format version 1\n"+
		"  67108864 max dimension accepted\n"+
		"  checksum trailer disabled\n", out.String())

	err := describe(filepath.Join(t.TempDir(), "missing"), &out)
	assert.ErrorIs(t, err, vector.ErrIO)
}

func TestArithmeticCommands(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, dot([]string{"3 1 2 3", "3 3 4 5"}, &out))
	assert.Equal(t, "26.0\n", out.String())

	out.Reset()
	require.NoError(t, sum([]string{"3 1 2 3", "3 3 4 5"}, &out))
	assert.Equal(t, "(4.0, 6.0, 8.0)\n", out.String())

	out.Reset()
	require.NoError(t, scale([]string{"3 1 2 3", "2"}, &out))
	assert.Equal(t, "(2.0, 4.0, 6.0)\n", out.String())

	assert.ErrorIs(t, dot([]string{"2 1 2", "3 1 2 3"}, &out), vector.ErrDimensionMismatch)
	assert.ErrorIs(t, sum([]string{"2 1 2", "1 1"}, &out), vector.ErrDimensionMismatch)
	assert.ErrorIs(t, sum([]string{"2 1 x", "2 1 2"}, &out), vector.ErrDecoding)
	assert.EqualError(t, dot([]string{"1 1"}, &out), "dot: expected two vectors, got 1 arguments")
	assert.EqualError(t, scale([]string{"1 1"}, &out), "scale: expected a vector and a scalar, got 1 arguments")

	err := scale([]string{"1 1", "two"}, &out)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "scale: bad scalar")
	}
}
