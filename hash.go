// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vector

import "github.com/aviddiviner/go-murmur"

// HashFn is the signature for checksum functions used by the binary codec
type HashFn func([]byte) uint64

const checksumSeed = uint64(0x76656374)

func murmurhash64(v []byte) uint64 {
	return murmur.MurmurHash64A(v, checksumSeed)
}
