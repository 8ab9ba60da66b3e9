// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import "encoding/binary"

// OffsetBytes is the wire width of an SSZ offset: a 4-byte little-endian
// unsigned integer pointing at a dynamic field's payload, measured in bytes
// from the start of the containing composite's serialization.
const OffsetBytes = 4

// ReadOffset decodes a 4-byte little-endian offset from the head of b. It
// fails with ErrInvalidLengthPrefix if fewer than OffsetBytes bytes remain.
func ReadOffset(b []byte) (uint32, error) {
	if len(b) < OffsetBytes {
		return 0, &InvalidLengthPrefixError{Len: len(b), Expected: OffsetBytes}
	}
	return binary.LittleEndian.Uint32(b), nil
}

// WriteOffset writes value as a 4-byte little-endian offset into the head of
// buf. It is a contract violation for the caller to ever request an offset
// beyond 2^32-1; the codec never produces values that large on its own, since
// no supported message exceeds 4GiB.
func WriteOffset(buf []byte, value uint32) {
	binary.LittleEndian.PutUint32(buf, value)
}

// SanitizeOffset validates a freshly decoded offset against the structural
// rules of §4.1: it must not point into the fixed header, the first offset of
// a composite must exactly equal the fixed header length, offsets must be
// monotonically non-decreasing, and no offset may exceed the total message
// length.
//
// prev is nil for the first offset of a composite. fixedBytes is nil when the
// fixed-header length is not statically known at the call site (e.g. when
// sanitizing offsets read from an already-descended sub-slice where the
// caller only cares about monotonicity and bounds).
func SanitizeOffset(off uint32, prev *uint32, totalBytes uint32, fixedBytes *uint32) (uint32, error) {
	if fixedBytes != nil && off < *fixedBytes {
		return 0, &OffsetIntoFixedPortionError{Offset: off}
	}
	if prev == nil && fixedBytes != nil && off != *fixedBytes {
		return 0, &OffsetSkipsVariableBytesError{Offset: off}
	}
	if off > totalBytes {
		return 0, &OffsetOutOfBoundsError{Offset: off}
	}
	if prev != nil && *prev > off {
		return 0, &OffsetsAreDecreasingError{Offset: off}
	}
	return off, nil
}
