// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"io"
	"unsafe"

	"github.com/holiman/uint256"
)

// Encoder is a thin wrapper around an io.Writer implementing the write side
// of §4.2's codec contract. It does not buffer: every EncodeXyz call appends
// directly to the wrapped stream, in strict monotonic order (§5).
//
// The encoder does not surface per-call errors. An error halts all further
// writes silently; callers check err once at the end (EncodeToStream does
// this for you). This keeps generated DefineSSZ bodies free of error-checking
// noise.
type Encoder struct {
	out   io.Writer
	codec *Codec // self-reference, so Encode*Object can hand obj.DefineSSZ a *Codec

	err error
	dyn bool // true once any dynamic field has been written

	offset uint32 // running offset cursor for the current dynamic composite

	buf    [32]byte
	bufInt uint256.Int
}

func (enc *Encoder) reset(w io.Writer) {
	enc.out, enc.err, enc.dyn, enc.offset = w, nil, false, 0
}

// startDynamics seeds the running offset cursor with the fixed header length
// of the composite currently being written (see Codec.StartDynamics).
func (enc *Encoder) startDynamics(fixedLen uint32) {
	enc.offset = fixedLen
}

func (enc *Encoder) write(p []byte) {
	if enc.err != nil {
		return
	}
	_, enc.err = enc.out.Write(p)
}

func (enc *Encoder) writeOffsetValue(offset uint32) {
	if enc.err != nil {
		return
	}
	binary.LittleEndian.PutUint32(enc.buf[:4], offset)
	_, enc.err = enc.out.Write(enc.buf[:4])
}

// EncodeBool serializes a boolean as a single byte.
func EncodeBool[T ~bool](enc *Encoder, v T) {
	if v {
		enc.write([]byte{1})
	} else {
		enc.write([]byte{0})
	}
}

// EncodeUint8 serializes a uint8.
func EncodeUint8[T ~uint8](enc *Encoder, n T) {
	enc.write([]byte{byte(n)})
}

// EncodeUint16 serializes a little-endian uint16.
func EncodeUint16[T ~uint16](enc *Encoder, n T) {
	binary.LittleEndian.PutUint16(enc.buf[:2], uint16(n))
	enc.write(enc.buf[:2])
}

// EncodeUint32 serializes a little-endian uint32.
func EncodeUint32[T ~uint32](enc *Encoder, n T) {
	binary.LittleEndian.PutUint32(enc.buf[:4], uint32(n))
	enc.write(enc.buf[:4])
}

// EncodeUint64 serializes a little-endian uint64.
func EncodeUint64[T ~uint64](enc *Encoder, n T) {
	binary.LittleEndian.PutUint64(enc.buf[:8], uint64(n))
	enc.write(enc.buf[:8])
}

// EncodeUint128 serializes a 128-bit little-endian word verbatim.
func EncodeUint128(enc *Encoder, n *Uint128) {
	if n == nil {
		enc.write(make([]byte, 16))
		return
	}
	enc.write(n[:])
}

// EncodeUint256 serializes a 256-bit little-endian word using uint256's own
// wire marshaller (MarshalSSZInto already writes little-endian).
func EncodeUint256(enc *Encoder, n *uint256.Int) {
	if n == nil {
		enc.write(make([]byte, 32))
		return
	}
	n.MarshalSSZInto(enc.buf[:32])
	enc.write(enc.buf[:32])
}

// EncodeStaticBytes serializes a fixed-size binary blob verbatim.
//
// The indexing below should have been `(*blob)[:]`, but Go's generics
// compiler cannot slice a type parameter whose constraint unions array types
// of different lengths: https://github.com/golang/go/issues/51740.
func EncodeStaticBytes[T commonBytesLengths](enc *Encoder, blob *T) {
	if len(*blob) == 0 {
		return
	}
	enc.write(unsafe.Slice(&(*blob)[0], len(*blob)))
}

// EncodeCheckedStaticBytes serializes a plain []byte field whose static size
// is only known at runtime (verified by the caller via size).
func EncodeCheckedStaticBytes(enc *Encoder, blob []byte) {
	enc.write(blob)
}

// EncodeDynamicBytesOffset serializes the offset slot of a dynamic []byte.
func EncodeDynamicBytesOffset(enc *Encoder, blob []byte) {
	enc.dyn = true
	enc.writeOffsetValue(enc.offset)
	enc.offset += uint32(len(blob))
}

// EncodeDynamicBytesContent writes the payload for EncodeDynamicBytesOffset.
func EncodeDynamicBytesContent(enc *Encoder, blob []byte) {
	enc.write(blob)
}

// EncodeStaticObject serializes a nested static SSZ object inline.
func EncodeStaticObject[T newableObject[U], U any](enc *Encoder, obj T) {
	if enc.err != nil {
		return
	}
	if any(obj) == nil {
		obj = zeroValue[T, U]()
	}
	obj.DefineSSZ(enc.codec)
}

// EncodeDynamicObjectOffset serializes the offset slot of a nested dynamic
// SSZ object.
func EncodeDynamicObjectOffset[T newableObject[U], U any](enc *Encoder, obj T) {
	if enc.err != nil {
		return
	}
	enc.dyn = true
	enc.writeOffsetValue(enc.offset)
	if any(obj) == nil {
		obj = zeroValue[T, U]()
	}
	enc.offset += obj.SizeSSZ()
}

// EncodeDynamicObjectContent writes the payload for EncodeDynamicObjectOffset.
// The nested object's own DefineSSZ is responsible for calling
// Codec.StartDynamics if it is itself dynamic.
func EncodeDynamicObjectContent[T newableObject[U], U any](enc *Encoder, obj T) {
	if enc.err != nil {
		return
	}
	if any(obj) == nil {
		obj = zeroValue[T, U]()
	}
	obj.DefineSSZ(enc.codec)
}

// EncodeArrayOfStaticBytes serializes a Vector<T,N> of static binary blobs by
// concatenating each element's own serialization.
func EncodeArrayOfStaticBytes[T commonBytesLengths](enc *Encoder, blobs []T) {
	for i := range blobs {
		EncodeStaticBytes(enc, &blobs[i])
	}
}

// EncodeSliceOfStaticBytesOffset serializes the offset slot of a List<T,N> of
// static binary blobs.
func EncodeSliceOfStaticBytesOffset[T commonBytesLengths](enc *Encoder, blobs []T) {
	enc.dyn = true
	enc.writeOffsetValue(enc.offset)

	var elemLen int
	if len(blobs) > 0 {
		elemLen = len(blobs[0])
	}
	enc.offset += uint32(len(blobs) * elemLen)
}

// EncodeSliceOfStaticBytesContent writes the payload for
// EncodeSliceOfStaticBytesOffset: a pure concatenation, per §4.5.
func EncodeSliceOfStaticBytesContent[T commonBytesLengths](enc *Encoder, blobs []T) {
	EncodeArrayOfStaticBytes(enc, blobs)
}

// EncodeSliceOfDynamicBytesOffset serializes the offset slot of a
// List<List<byte,M>,N>.
func EncodeSliceOfDynamicBytesOffset(enc *Encoder, blobs [][]byte) {
	enc.dyn = true
	enc.writeOffsetValue(enc.offset)

	size := uint32(len(blobs)) * OffsetBytes
	for _, b := range blobs {
		size += uint32(len(b))
	}
	enc.offset += size
}

// EncodeSliceOfDynamicBytesContent writes the intra-header of offsets
// followed by each blob, per §4.5's dynamic sequence layout.
func EncodeSliceOfDynamicBytesContent(enc *Encoder, blobs [][]byte) {
	if enc.err != nil {
		return
	}
	sizes := make([]uint32, len(blobs))
	for i, b := range blobs {
		sizes[i] = uint32(len(b))
	}
	writeDynamicSequenceHeader(enc, sizes)
	for _, b := range blobs {
		enc.write(b)
	}
}

// EncodeArrayOfDynamicBytesOffset serializes the offset slot of a
// Vector<List<byte,M>,N>: the wire layout is identical to a List's, since the
// vector's element count is carried by len(blobs) rather than an extra
// length prefix.
func EncodeArrayOfDynamicBytesOffset(enc *Encoder, blobs [][]byte) {
	EncodeSliceOfDynamicBytesOffset(enc, blobs)
}

// EncodeArrayOfDynamicBytesContent writes the payload for
// EncodeArrayOfDynamicBytesOffset.
func EncodeArrayOfDynamicBytesContent(enc *Encoder, blobs [][]byte) {
	EncodeSliceOfDynamicBytesContent(enc, blobs)
}

// EncodeSliceOfStaticObjectsOffset serializes the offset slot of a List<T,N>
// of static SSZ objects.
func EncodeSliceOfStaticObjectsOffset[T newableObject[U], U any](enc *Encoder, objects []T) {
	enc.dyn = true
	enc.writeOffsetValue(enc.offset)

	var size uint32
	if len(objects) > 0 {
		size = uint32(len(objects)) * objects[0].SizeSSZ()
	}
	enc.offset += size
}

// EncodeSliceOfStaticObjectsContent writes the payload for
// EncodeSliceOfStaticObjectsOffset: a pure concatenation.
func EncodeSliceOfStaticObjectsContent[T newableObject[U], U any](enc *Encoder, objects []T) {
	for _, obj := range objects {
		EncodeStaticObject[T, U](enc, obj)
	}
}

// EncodeSliceOfDynamicObjectsOffset serializes the offset slot of a
// List<T,N> of dynamic SSZ objects.
func EncodeSliceOfDynamicObjectsOffset[T newableObject[U], U any](enc *Encoder, objects []T) {
	enc.dyn = true
	enc.writeOffsetValue(enc.offset)

	size := uint32(len(objects)) * OffsetBytes
	for _, obj := range objects {
		size += obj.SizeSSZ()
	}
	enc.offset += size
}

// EncodeSliceOfDynamicObjectsContent writes the intra-header of offsets
// followed by each object's own serialization.
func EncodeSliceOfDynamicObjectsContent[T newableObject[U], U any](enc *Encoder, objects []T) {
	if enc.err != nil {
		return
	}
	sizes := make([]uint32, len(objects))
	for i, obj := range objects {
		sizes[i] = obj.SizeSSZ()
	}
	writeDynamicSequenceHeader(enc, sizes)
	for _, obj := range objects {
		obj.DefineSSZ(enc.codec)
	}
}

// EncodeArrayOfDynamicObjectsOffset serializes the offset slot of a
// Vector<T,N> of dynamic SSZ objects: the wire layout is identical to a
// List's, since the vector's element count is carried by len(objects) rather
// than an extra length prefix.
func EncodeArrayOfDynamicObjectsOffset[T newableObject[U], U any](enc *Encoder, objects []T) {
	EncodeSliceOfDynamicObjectsOffset[T, U](enc, objects)
}

// EncodeArrayOfDynamicObjectsContent writes the payload for
// EncodeArrayOfDynamicObjectsOffset.
func EncodeArrayOfDynamicObjectsContent[T newableObject[U], U any](enc *Encoder, objects []T) {
	EncodeSliceOfDynamicObjectsContent[T, U](enc, objects)
}
