// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

// newableObject is a generic type whose purpose is to enforce that ssz.Object
// is specifically implemented on a struct pointer. That's needed to allow us
// to instantiate new structs via `new` when parsing.
type newableObject[U any] interface {
	Object
	*U
}

// commonBytesLengths is a generic type whose purpose is to permit that fixed
// binary blobs of different lengths can be passed to the same method. Add any
// size used by a worked-example type here; Go generics can't express "array of
// arbitrary length" with one shorthand.
type commonBytesLengths interface {
	~[]byte |
		~[4]byte |
		~[8]byte |
		~[16]byte |
		~[20]byte | // address
		~[32]byte | // hash / root
		~[48]byte | // BLS public key
		~[64]byte |
		~[96]byte | // BLS signature
		~[256]byte // logs bloom
}
