// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vector

import (
	"encoding/binary"
	"math"
	"unsafe"
)

const bytesPerElement = 8

var isLittleEndian bool

func init() {
	buf := []byte{0x1, 0x0}
	val := (*uint16)(unsafe.Pointer(unsafe.SliceData(buf)))
	isLittleEndian = *val == uint16(1)
}

func floatBits(f float64) uint64 {
	return math.Float64bits(f)
}

func unsafeFloat64SliceToBytes(space []float64) []byte {
	if len(space) == 0 {
		return nil
	}
	data := (*byte)(unsafe.Pointer(unsafe.SliceData(space)))
	return unsafe.Slice(data, len(space)*bytesPerElement)
}

// elementBytes returns the little endian representation of v.  On
// little endian hosts the result aliases v and must not be modified.
func elementBytes(v []float64) []byte {
	if isLittleEndian {
		// no copy
		return unsafeFloat64SliceToBytes(v)
	}
	out := make([]byte, len(v)*bytesPerElement)
	for i, e := range v {
		binary.LittleEndian.PutUint64(out[i*bytesPerElement:], math.Float64bits(e))
	}
	return out
}

// appendElements decodes the little endian elements in b and appends
// them to dst
func appendElements(dst []float64, b []byte) []float64 {
	for off := 0; off+bytesPerElement <= len(b); off += bytesPerElement {
		dst = append(dst, math.Float64frombits(binary.LittleEndian.Uint64(b[off:])))
	}
	return dst
}
