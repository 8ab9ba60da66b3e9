// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every structural decode failure wraps exactly one of these,
// so callers can branch with errors.Is without parsing message text.
var (
	// ErrInvalidByteLength is returned when a fixed-width read requested more
	// bytes than remained on the cursor.
	ErrInvalidByteLength = errors.New("ssz: invalid byte length")

	// ErrInvalidLengthPrefix is returned when fewer than OffsetBytes bytes
	// were available to read a 4-byte offset.
	ErrInvalidLengthPrefix = errors.New("ssz: invalid length prefix")

	// ErrOutOfBoundsByte is returned when an index computation walked past
	// the end of the input buffer.
	ErrOutOfBoundsByte = errors.New("ssz: out of bounds byte index")

	// ErrOffsetIntoFixedPortion is returned when an offset points inside the
	// fixed header instead of at or beyond it.
	ErrOffsetIntoFixedPortion = errors.New("ssz: offset into fixed portion")

	// ErrOffsetSkipsVariableBytes is returned when the first offset of a
	// dynamic composite does not equal the fixed header length.
	ErrOffsetSkipsVariableBytes = errors.New("ssz: offset skips variable bytes")

	// ErrOffsetsAreDecreasing is returned when an offset is smaller than the
	// offset that preceded it.
	ErrOffsetsAreDecreasing = errors.New("ssz: offsets are decreasing")

	// ErrOffsetOutOfBounds is returned when an offset points beyond the end
	// of the input buffer.
	ErrOffsetOutOfBounds = errors.New("ssz: offset out of bounds")

	// ErrInvalidListFixedBytesLen is returned when the first offset of a
	// dynamic list is not a positive multiple of OffsetBytes.
	ErrInvalidListFixedBytesLen = errors.New("ssz: invalid list fixed bytes length")

	// ErrZeroLengthItem is returned when a static element type claims a zero
	// byte serialized length, which would make item counting ambiguous.
	ErrZeroLengthItem = errors.New("ssz: zero length item")

	// ErrBytesInvalid is the catch-all for semantic violations: bit
	// collection overflow, boolean out of range, container length mismatch,
	// and other conversions that cannot be expressed by the structural
	// errors above.
	ErrBytesInvalid = errors.New("ssz: bytes invalid")

	// ErrStaticObjectBehavedDynamic is returned when an object declares
	// itself static but wrote or read a variable-length tail.
	ErrStaticObjectBehavedDynamic = errors.New("ssz: static object behaved dynamic")

	// ErrBatchLengthMismatch is returned by DecodeAll when the number of
	// blobs does not match the number of destination objects.
	ErrBatchLengthMismatch = errors.New("ssz: batch length mismatch")
)

// InvalidByteLengthError reports that a fixed read requested more bytes than
// remained in the input.
type InvalidByteLengthError struct {
	Len      int // bytes actually available
	Expected int // bytes the read required
}

func (e *InvalidByteLengthError) Error() string {
	return fmt.Sprintf("%v: have %d bytes, want %d", ErrInvalidByteLength, e.Len, e.Expected)
}

func (e *InvalidByteLengthError) Unwrap() error { return ErrInvalidByteLength }

// InvalidLengthPrefixError reports that fewer than OffsetBytes bytes were
// available when an offset was expected.
type InvalidLengthPrefixError struct {
	Len      int
	Expected int
}

func (e *InvalidLengthPrefixError) Error() string {
	return fmt.Sprintf("%v: have %d bytes, want %d", ErrInvalidLengthPrefix, e.Len, e.Expected)
}

func (e *InvalidLengthPrefixError) Unwrap() error { return ErrInvalidLengthPrefix }

// OutOfBoundsByteError reports an index computation that walked past the end
// of the input buffer.
type OutOfBoundsByteError struct {
	Index int
}

func (e *OutOfBoundsByteError) Error() string {
	return fmt.Sprintf("%v: index %d", ErrOutOfBoundsByte, e.Index)
}

func (e *OutOfBoundsByteError) Unwrap() error { return ErrOutOfBoundsByte }

// OffsetIntoFixedPortionError reports an offset that points inside the fixed
// header of the composite being decoded.
type OffsetIntoFixedPortionError struct {
	Offset uint32
}

func (e *OffsetIntoFixedPortionError) Error() string {
	return fmt.Sprintf("%v: %d", ErrOffsetIntoFixedPortion, e.Offset)
}

func (e *OffsetIntoFixedPortionError) Unwrap() error { return ErrOffsetIntoFixedPortion }

// OffsetSkipsVariableBytesError reports that the first offset of a dynamic
// composite did not equal the fixed header length.
type OffsetSkipsVariableBytesError struct {
	Offset uint32
}

func (e *OffsetSkipsVariableBytesError) Error() string {
	return fmt.Sprintf("%v: %d", ErrOffsetSkipsVariableBytes, e.Offset)
}

func (e *OffsetSkipsVariableBytesError) Unwrap() error { return ErrOffsetSkipsVariableBytes }

// OffsetsAreDecreasingError reports an offset smaller than the one before it.
type OffsetsAreDecreasingError struct {
	Offset uint32
}

func (e *OffsetsAreDecreasingError) Error() string {
	return fmt.Sprintf("%v: %d", ErrOffsetsAreDecreasing, e.Offset)
}

func (e *OffsetsAreDecreasingError) Unwrap() error { return ErrOffsetsAreDecreasing }

// OffsetOutOfBoundsError reports an offset beyond the end of the input.
type OffsetOutOfBoundsError struct {
	Offset uint32
}

func (e *OffsetOutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: %d", ErrOffsetOutOfBounds, e.Offset)
}

func (e *OffsetOutOfBoundsError) Unwrap() error { return ErrOffsetOutOfBounds }

// InvalidListFixedBytesLenError reports a first list offset that is not a
// positive multiple of OffsetBytes.
type InvalidListFixedBytesLenError struct {
	Offset uint32
}

func (e *InvalidListFixedBytesLenError) Error() string {
	return fmt.Sprintf("%v: %d", ErrInvalidListFixedBytesLen, e.Offset)
}

func (e *InvalidListFixedBytesLenError) Unwrap() error { return ErrInvalidListFixedBytesLen }

// BytesInvalidError is the catch-all semantic violation error. Msg explains
// which invariant broke.
type BytesInvalidError struct {
	Msg string
}

func (e *BytesInvalidError) Error() string { return fmt.Sprintf("%v: %s", ErrBytesInvalid, e.Msg) }

func (e *BytesInvalidError) Unwrap() error { return ErrBytesInvalid }

func bytesInvalidf(format string, args ...any) error {
	return &BytesInvalidError{Msg: fmt.Sprintf(format, args...)}
}
