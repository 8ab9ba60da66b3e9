// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"unsafe"

	"github.com/holiman/uint256"
)

// Decoder walks a byte buffer through a pair of cursors, mirroring §4.1's
// (fixed, variable) split: fixed is the composite's current fixed-size
// header, variable is its dynamic tail. It does not surface per-call errors;
// an error halts all further reads silently, and callers check err once at
// the end (DecodeFromBytes/DecodeFromStream do this for you).
//
// offsets/idx/baseline/end track the decoded offset table of the composite
// currently being read. DefineDynamicXyzContent calls consume them strictly
// in field order via nextContentLength, matching the order
// DefineDynamicXyzOffset populated them in. Entering a nested dynamic
// object's own scope (withScope) saves and restores this bookkeeping around
// the nested DefineSSZ call, so recursion never corrupts an enclosing
// composite's position.
type Decoder struct {
	fixed    *Cursor
	variable *Cursor
	total    uint32

	err   error
	codec *Codec
	dyn   bool

	offsets  []uint32
	idx      int
	baseline uint32
	end      uint32
}

func (dec *Decoder) reset(fixed *Cursor, total uint32) {
	dec.fixed, dec.variable, dec.total = fixed, nil, total
	dec.err, dec.dyn = nil, false
	dec.offsets, dec.idx, dec.baseline, dec.end = nil, 0, 0, total
}

// startDynamics opens the current composite's offset region: it carves the
// remaining bytes of dec.fixed into a fresh (fixed, variable) pair split at
// fixedLen, per §4.1's invariant that the first offset always equals the
// fixed header length.
func (dec *Decoder) startDynamics(fixedLen uint32) {
	if dec.err != nil {
		return
	}
	full := dec.fixed.Rest()
	if uint32(len(full)) < fixedLen {
		dec.err = &InvalidByteLengthError{Len: len(full), Expected: int(fixedLen)}
		return
	}
	dec.fixed = NewCursor(full[:fixedLen])
	dec.variable = NewCursor(full[fixedLen:])
	dec.total = uint32(len(full))
	dec.offsets, dec.idx, dec.baseline, dec.end = nil, 0, fixedLen, uint32(len(full))
	dec.dyn = true
}

// withScope decodes a self-contained nested blob (a nested dynamic object's
// own fixed+variable serialization, or a sequence element's own slice) by
// temporarily repointing the decoder's cursors and offset bookkeeping at
// blob, then restoring the enclosing composite's position once fn returns.
func (dec *Decoder) withScope(blob []byte, fn func()) {
	if dec.err != nil {
		return
	}
	savedFixed, savedVariable, savedTotal := dec.fixed, dec.variable, dec.total
	savedOffsets, savedIdx, savedBaseline, savedEnd := dec.offsets, dec.idx, dec.baseline, dec.end

	dec.fixed, dec.variable, dec.total = NewCursor(blob), nil, uint32(len(blob))

	fn()

	dec.fixed, dec.variable, dec.total = savedFixed, savedVariable, savedTotal
	dec.offsets, dec.idx, dec.baseline, dec.end = savedOffsets, savedIdx, savedBaseline, savedEnd
}

// decodeOffset reads the next 4-byte offset off dec.fixed and sanitizes it
// against the running offset table of the composite being decoded (§4.1).
func (dec *Decoder) decodeOffset() {
	if dec.err != nil {
		return
	}
	raw, err := dec.fixed.Take(OffsetBytes)
	if err != nil {
		dec.err = err
		return
	}
	off, err := ReadOffset(raw)
	if err != nil {
		dec.err = err
		return
	}
	var prev *uint32
	var fixedBytes *uint32
	if len(dec.offsets) == 0 {
		fixedBytes = &dec.baseline
	} else {
		prev = &dec.offsets[len(dec.offsets)-1]
	}
	sanitized, err := SanitizeOffset(off, prev, dec.end, fixedBytes)
	if err != nil {
		dec.err = err
		return
	}
	dec.offsets = append(dec.offsets, sanitized)
	dec.dyn = true
}

// nextContentLength pops the length of the next dynamic field's payload off
// the decoded offset table, deriving the end boundary from the following
// offset (or the composite's own end, for the last dynamic field).
func (dec *Decoder) nextContentLength() (uint32, error) {
	if dec.err != nil {
		return 0, dec.err
	}
	if dec.idx >= len(dec.offsets) {
		return 0, bytesInvalidf("no decoded offset left to resolve a dynamic field")
	}
	start := dec.offsets[dec.idx]
	end := dec.end
	if dec.idx+1 < len(dec.offsets) {
		end = dec.offsets[dec.idx+1]
	}
	dec.idx++
	if end < start {
		return 0, &OffsetsAreDecreasingError{Offset: end}
	}
	return end - start, nil
}

// DecodeBool parses a boolean, rejecting any byte value other than 0 or 1.
func DecodeBool[T ~bool](dec *Decoder, v *T) {
	if dec.err != nil {
		return
	}
	b, err := dec.fixed.Take(1)
	if err != nil {
		dec.err = err
		return
	}
	switch b[0] {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		dec.err = bytesInvalidf("boolean byte %#x is neither 0 nor 1", b[0])
	}
}

// DecodeUint8 parses a uint8.
func DecodeUint8[T ~uint8](dec *Decoder, n *T) {
	if dec.err != nil {
		return
	}
	b, err := dec.fixed.Take(1)
	if err != nil {
		dec.err = err
		return
	}
	*n = T(b[0])
}

// DecodeUint16 parses a little-endian uint16.
func DecodeUint16[T ~uint16](dec *Decoder, n *T) {
	if dec.err != nil {
		return
	}
	b, err := dec.fixed.Take(2)
	if err != nil {
		dec.err = err
		return
	}
	*n = T(binary.LittleEndian.Uint16(b))
}

// DecodeUint32 parses a little-endian uint32.
func DecodeUint32[T ~uint32](dec *Decoder, n *T) {
	if dec.err != nil {
		return
	}
	b, err := dec.fixed.Take(4)
	if err != nil {
		dec.err = err
		return
	}
	*n = T(binary.LittleEndian.Uint32(b))
}

// DecodeUint64 parses a little-endian uint64.
func DecodeUint64[T ~uint64](dec *Decoder, n *T) {
	if dec.err != nil {
		return
	}
	b, err := dec.fixed.Take(8)
	if err != nil {
		dec.err = err
		return
	}
	*n = T(binary.LittleEndian.Uint64(b))
}

// DecodeUint128 parses a 128-bit little-endian word verbatim.
func DecodeUint128(dec *Decoder, n *Uint128) {
	if dec.err != nil {
		return
	}
	b, err := dec.fixed.Take(16)
	if err != nil {
		dec.err = err
		return
	}
	copy(n[:], b)
}

// DecodeUint256 parses a 256-bit little-endian word using uint256's own
// wire unmarshaller.
func DecodeUint256(dec *Decoder, n **uint256.Int) {
	if dec.err != nil {
		return
	}
	b, err := dec.fixed.Take(32)
	if err != nil {
		dec.err = err
		return
	}
	if *n == nil {
		*n = new(uint256.Int)
	}
	(*n).UnmarshalSSZ(b)
}

// DecodeStaticBytes parses a fixed-size binary blob verbatim.
//
// The indexing below should have been `(*blob)[:]`, but Go's generics
// compiler cannot slice a type parameter whose constraint unions array types
// of different lengths: https://github.com/golang/go/issues/51740.
func DecodeStaticBytes[T commonBytesLengths](dec *Decoder, blob *T) {
	if dec.err != nil {
		return
	}
	if len(*blob) == 0 {
		return
	}
	b, err := dec.fixed.Take(len(*blob))
	if err != nil {
		dec.err = err
		return
	}
	copy(unsafe.Slice(&(*blob)[0], len(*blob)), b)
}

// DecodeCheckedStaticBytes parses a plain []byte field whose static size is
// only known at runtime.
func DecodeCheckedStaticBytes(dec *Decoder, blob *[]byte, size uint64) {
	if dec.err != nil {
		return
	}
	b, err := dec.fixed.Take(int(size))
	if err != nil {
		dec.err = err
		return
	}
	*blob = append((*blob)[:0], b...)
}

// DecodeDynamicBytesOffset records the offset slot of a dynamic []byte.
func DecodeDynamicBytesOffset(dec *Decoder, blob *[]byte) {
	dec.decodeOffset()
}

// DecodeDynamicBytesContent is the lazy data reader of DecodeDynamicBytesOffset.
func DecodeDynamicBytesContent(dec *Decoder, blob *[]byte, maxSize uint64) {
	if dec.err != nil {
		return
	}
	length, err := dec.nextContentLength()
	if err != nil {
		dec.err = err
		return
	}
	if uint64(length) > maxSize {
		dec.err = bytesInvalidf("dynamic bytes length %d exceeds maximum %d", length, maxSize)
		return
	}
	b, err := dec.variable.Take(int(length))
	if err != nil {
		dec.err = err
		return
	}
	*blob = append((*blob)[:0], b...)
}

// DecodeStaticObject parses a nested static SSZ object inline from the
// current fixed cursor.
func DecodeStaticObject[T newableObject[U], U any](dec *Decoder, obj *T) {
	if dec.err != nil {
		return
	}
	if any(*obj) == nil {
		*obj = T(new(U))
	}
	(*obj).DefineSSZ(dec.codec)
}

// DecodeDynamicObjectOffset records the offset slot of a nested dynamic SSZ
// object.
func DecodeDynamicObjectOffset[T newableObject[U], U any](dec *Decoder, obj *T) {
	dec.decodeOffset()
}

// DecodeDynamicObjectContent is the lazy data reader of
// DecodeDynamicObjectOffset: it carves out the nested object's own
// self-contained blob and decodes it in a fresh scope.
func DecodeDynamicObjectContent[T newableObject[U], U any](dec *Decoder, obj *T) {
	if dec.err != nil {
		return
	}
	length, err := dec.nextContentLength()
	if err != nil {
		dec.err = err
		return
	}
	blob, err := dec.variable.Take(int(length))
	if err != nil {
		dec.err = err
		return
	}
	if any(*obj) == nil {
		*obj = T(new(U))
	}
	dec.withScope(blob, func() {
		(*obj).DefineSSZ(dec.codec)
	})
}

// DecodeArrayOfStaticBytes parses a Vector<T,N> of static binary blobs.
func DecodeArrayOfStaticBytes[T commonBytesLengths](dec *Decoder, blobs []T) {
	for i := range blobs {
		DecodeStaticBytes(dec, &blobs[i])
	}
}

// DecodeSliceOfStaticBytesOffset records the offset slot of a List<T,N> of
// static binary blobs.
func DecodeSliceOfStaticBytesOffset[T commonBytesLengths](dec *Decoder, blobs *[]T) {
	dec.decodeOffset()
}

// DecodeSliceOfStaticBytesContent is the lazy data reader of
// DecodeSliceOfStaticBytesOffset.
func DecodeSliceOfStaticBytesContent[T commonBytesLengths](dec *Decoder, blobs *[]T, maxItems uint64) {
	if dec.err != nil {
		return
	}
	length, err := dec.nextContentLength()
	if err != nil {
		dec.err = err
		return
	}
	if length == 0 {
		*blobs = (*blobs)[:0]
		return
	}
	payload, err := dec.variable.Take(int(length))
	if err != nil {
		dec.err = err
		return
	}
	var zero T
	itemSize := uint32(len(zero))
	if itemSize == 0 {
		dec.err = ErrZeroLengthItem
		return
	}
	if length%itemSize != 0 {
		dec.err = bytesInvalidf("slice payload %d not divisible by item size %d", length, itemSize)
		return
	}
	itemCount := length / itemSize
	if uint64(itemCount) > maxItems {
		dec.err = bytesInvalidf("decoded %d items, max %d", itemCount, maxItems)
		return
	}
	if uint32(cap(*blobs)) < itemCount {
		*blobs = make([]T, itemCount)
	} else {
		*blobs = (*blobs)[:itemCount]
	}
	for i := uint32(0); i < itemCount; i++ {
		copy(unsafe.Slice(&(*blobs)[i][0], len((*blobs)[i])), payload[i*itemSize:(i+1)*itemSize])
	}
}

// DecodeSliceOfDynamicBytesOffset records the offset slot of a
// List<List<byte,M>,N>.
func DecodeSliceOfDynamicBytesOffset(dec *Decoder, blobs *[][]byte) {
	dec.decodeOffset()
}

// DecodeSliceOfDynamicBytesContent is the lazy data reader of
// DecodeSliceOfDynamicBytesOffset.
func DecodeSliceOfDynamicBytesContent(dec *Decoder, blobs *[][]byte, maxItems uint64, maxSize uint64) {
	if dec.err != nil {
		return
	}
	length, err := dec.nextContentLength()
	if err != nil {
		dec.err = err
		return
	}
	if length == 0 {
		*blobs = (*blobs)[:0]
		return
	}
	payload, err := dec.variable.Take(int(length))
	if err != nil {
		dec.err = err
		return
	}
	items, err := splitDynamicSequencePayload(payload, -1)
	if err != nil {
		dec.err = err
		return
	}
	if uint64(len(items)) > maxItems {
		dec.err = bytesInvalidf("decoded %d items, max %d", len(items), maxItems)
		return
	}
	if uint32(cap(*blobs)) < uint32(len(items)) {
		*blobs = make([][]byte, len(items))
	} else {
		*blobs = (*blobs)[:len(items)]
	}
	for i, b := range items {
		if uint64(len(b)) > maxSize {
			dec.err = bytesInvalidf("dynamic bytes length %d exceeds maximum %d", len(b), maxSize)
			return
		}
		(*blobs)[i] = append([]byte(nil), b...)
	}
}

// DecodeArrayOfDynamicBytesContent is the lazy data reader of
// DecodeArrayOfDynamicBytesOffset: unlike a List, the element count n is the
// vector's fixed length, not inferred from the first decoded offset.
func DecodeArrayOfDynamicBytesContent(dec *Decoder, blobs *[][]byte, n uint64, maxSize uint64) {
	if dec.err != nil {
		return
	}
	length, err := dec.nextContentLength()
	if err != nil {
		dec.err = err
		return
	}
	payload, err := dec.variable.Take(int(length))
	if err != nil {
		dec.err = err
		return
	}
	items, err := splitDynamicSequencePayload(payload, int(n))
	if err != nil {
		dec.err = err
		return
	}
	if uint64(len(items)) != n {
		dec.err = bytesInvalidf("decoded %d vector items, want %d", len(items), n)
		return
	}
	if uint32(cap(*blobs)) < uint32(len(items)) {
		*blobs = make([][]byte, len(items))
	} else {
		*blobs = (*blobs)[:len(items)]
	}
	for i, b := range items {
		if uint64(len(b)) > maxSize {
			dec.err = bytesInvalidf("dynamic bytes length %d exceeds maximum %d", len(b), maxSize)
			return
		}
		(*blobs)[i] = append([]byte(nil), b...)
	}
}

// DecodeSliceOfStaticObjectsOffset records the offset slot of a List<T,N> of
// static SSZ objects.
func DecodeSliceOfStaticObjectsOffset[T newableObject[U], U any](dec *Decoder, objects *[]T) {
	dec.decodeOffset()
}

// DecodeSliceOfStaticObjectsContent is the lazy data reader of
// DecodeSliceOfStaticObjectsOffset.
func DecodeSliceOfStaticObjectsContent[T newableObject[U], U any](dec *Decoder, objects *[]T, maxItems uint64) {
	if dec.err != nil {
		return
	}
	length, err := dec.nextContentLength()
	if err != nil {
		dec.err = err
		return
	}
	if length == 0 {
		*objects = (*objects)[:0]
		return
	}
	payload, err := dec.variable.Take(int(length))
	if err != nil {
		dec.err = err
		return
	}
	itemSize := T(new(U)).SizeSSZ()
	if itemSize == 0 {
		dec.err = ErrZeroLengthItem
		return
	}
	if length%itemSize != 0 {
		dec.err = bytesInvalidf("slice payload %d not divisible by item size %d", length, itemSize)
		return
	}
	itemCount := length / itemSize
	if uint64(itemCount) > maxItems {
		dec.err = bytesInvalidf("decoded %d items, max %d", itemCount, maxItems)
		return
	}
	if uint32(cap(*objects)) < itemCount {
		*objects = make([]T, itemCount)
	} else {
		*objects = (*objects)[:itemCount]
	}
	for i := uint32(0); i < itemCount; i++ {
		if any((*objects)[i]) == nil {
			(*objects)[i] = T(new(U))
		}
		elem := payload[i*itemSize : (i+1)*itemSize]
		dec.withScope(elem, func() {
			(*objects)[i].DefineSSZ(dec.codec)
		})
		if dec.err != nil {
			return
		}
	}
}

// DecodeSliceOfDynamicObjectsOffset records the offset slot of a List<T,N>
// of dynamic SSZ objects.
func DecodeSliceOfDynamicObjectsOffset[T newableObject[U], U any](dec *Decoder, objects *[]T) {
	dec.decodeOffset()
}

// DecodeSliceOfDynamicObjectsContent is the lazy data reader of
// DecodeSliceOfDynamicObjectsOffset.
func DecodeSliceOfDynamicObjectsContent[T newableObject[U], U any](dec *Decoder, objects *[]T, maxItems uint64) {
	if dec.err != nil {
		return
	}
	length, err := dec.nextContentLength()
	if err != nil {
		dec.err = err
		return
	}
	if length == 0 {
		*objects = (*objects)[:0]
		return
	}
	payload, err := dec.variable.Take(int(length))
	if err != nil {
		dec.err = err
		return
	}
	items, err := splitDynamicSequencePayload(payload, -1)
	if err != nil {
		dec.err = err
		return
	}
	if uint64(len(items)) > maxItems {
		dec.err = bytesInvalidf("decoded %d items, max %d", len(items), maxItems)
		return
	}
	if uint32(cap(*objects)) < uint32(len(items)) {
		*objects = make([]T, len(items))
	} else {
		*objects = (*objects)[:len(items)]
	}
	for i, blob := range items {
		if any((*objects)[i]) == nil {
			(*objects)[i] = T(new(U))
		}
		elem := blob
		dec.withScope(elem, func() {
			(*objects)[i].DefineSSZ(dec.codec)
		})
		if dec.err != nil {
			return
		}
	}
}

// DecodeArrayOfDynamicObjectsContent is the lazy data reader of
// DecodeArrayOfDynamicObjectsOffset: unlike a List, the element count n is
// the vector's fixed length, not inferred from the first decoded offset.
func DecodeArrayOfDynamicObjectsContent[T newableObject[U], U any](dec *Decoder, objects *[]T, n uint64) {
	if dec.err != nil {
		return
	}
	length, err := dec.nextContentLength()
	if err != nil {
		dec.err = err
		return
	}
	payload, err := dec.variable.Take(int(length))
	if err != nil {
		dec.err = err
		return
	}
	items, err := splitDynamicSequencePayload(payload, int(n))
	if err != nil {
		dec.err = err
		return
	}
	if uint64(len(items)) != n {
		dec.err = bytesInvalidf("decoded %d vector items, want %d", len(items), n)
		return
	}
	if uint32(cap(*objects)) < uint32(len(items)) {
		*objects = make([]T, len(items))
	} else {
		*objects = (*objects)[:len(items)]
	}
	for i, blob := range items {
		if any((*objects)[i]) == nil {
			(*objects)[i] = T(new(U))
		}
		elem := blob
		dec.withScope(elem, func() {
			(*objects)[i].DefineSSZ(dec.codec)
		})
		if dec.err != nil {
			return
		}
	}
}
