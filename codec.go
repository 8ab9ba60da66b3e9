// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Codec is a unified SSZ encoder and decoder: a container's DefineSSZ runs
// its field schema against a Codec exactly once, and the Codec's enc/dec
// split decides whether that walk writes or reads. Exactly one of enc/dec is
// non-nil for any live Codec.
type Codec struct {
	enc *Encoder
	dec *Decoder
}

// DefineEncoder uses a dedicated encoder in case a type's SSZ conversion is
// for some reason asymmetric (e.g. encoding depends on field values, decoding
// depends on outer context such as a schema version).
func (c *Codec) DefineEncoder(impl func(enc *Encoder)) {
	if c.enc != nil {
		impl(c.enc)
	}
}

// DefineDecoder is the decode-side counterpart of DefineEncoder.
func (c *Codec) DefineDecoder(impl func(dec *Decoder)) {
	if c.dec != nil {
		impl(c.dec)
	}
}

// StartDynamics opens a dynamic composite's own offset region. fixedLen is
// the sum of fixed_len across every field the composite declares (§4.6,
// invariant 1): on encode it seeds the running offset cursor that every
// subsequent DefineXyzOffset call advances; on decode it is the reference
// point every subsequent offset is sanitized against (§4.1's
// OffsetSkipsVariableBytes / OffsetIntoFixedPortion checks).
//
// Every container whose StaticSSZ reports false must call this exactly once,
// as the first statement of DefineSSZ, before defining any field.
func (c *Codec) StartDynamics(fixedLen uint32) {
	if c.enc != nil {
		c.enc.startDynamics(fixedLen)
	}
	if c.dec != nil {
		c.dec.startDynamics(fixedLen)
	}
}

// DefineBool defines the next field as a 1-byte boolean.
func DefineBool[T ~bool](c *Codec, v *T) {
	if c.enc != nil {
		EncodeBool(c.enc, *v)
		return
	}
	DecodeBool(c.dec, v)
}

// DefineUint8 defines the next field as a uint8.
func DefineUint8[T ~uint8](c *Codec, n *T) {
	if c.enc != nil {
		EncodeUint8(c.enc, *n)
		return
	}
	DecodeUint8(c.dec, n)
}

// DefineUint16 defines the next field as a uint16.
func DefineUint16[T ~uint16](c *Codec, n *T) {
	if c.enc != nil {
		EncodeUint16(c.enc, *n)
		return
	}
	DecodeUint16(c.dec, n)
}

// DefineUint32 defines the next field as a uint32.
func DefineUint32[T ~uint32](c *Codec, n *T) {
	if c.enc != nil {
		EncodeUint32(c.enc, *n)
		return
	}
	DecodeUint32(c.dec, n)
}

// DefineUint64 defines the next field as a uint64.
func DefineUint64[T ~uint64](c *Codec, n *T) {
	if c.enc != nil {
		EncodeUint64(c.enc, *n)
		return
	}
	DecodeUint64(c.dec, n)
}

// DefineUint128 defines the next field as a 128-bit little-endian word.
func DefineUint128(c *Codec, n *Uint128) {
	if c.enc != nil {
		EncodeUint128(c.enc, n)
		return
	}
	DecodeUint128(c.dec, n)
}

// DefineUint256 defines the next field as a 256-bit little-endian word.
func DefineUint256(c *Codec, n **uint256.Int) {
	if c.enc != nil {
		EncodeUint256(c.enc, *n)
		return
	}
	DecodeUint256(c.dec, n)
}

// DefineStaticBytes defines the next field as a static binary blob (a byte
// array of fixed length N, e.g. Address, Hash, LogsBloom).
func DefineStaticBytes[T commonBytesLengths](c *Codec, blob *T) {
	if c.enc != nil {
		EncodeStaticBytes(c.enc, blob)
		return
	}
	DecodeStaticBytes(c.dec, blob)
}

// DefineCheckedStaticBytes defines the next field as a static binary blob
// backed by a plain byte slice, which needs a runtime size check against size.
func DefineCheckedStaticBytes(c *Codec, blob *[]byte, size uint64) {
	if c.enc != nil {
		if c.enc.err == nil && uint64(len(*blob)) != size {
			c.enc.err = bytesInvalidf("static blob length %d, want %d", len(*blob), size)
			return
		}
		EncodeCheckedStaticBytes(c.enc, *blob)
		return
	}
	DecodeCheckedStaticBytes(c.dec, blob, size)
}

// DefineDynamicBytesOffset defines the next field as the offset slot of a
// dynamic binary blob.
func DefineDynamicBytesOffset(c *Codec, blob *[]byte) {
	if c.enc != nil {
		EncodeDynamicBytesOffset(c.enc, *blob)
		return
	}
	DecodeDynamicBytesOffset(c.dec, blob)
}

// DefineDynamicBytesContent is the paired content writer/reader for
// DefineDynamicBytesOffset.
func DefineDynamicBytesContent(c *Codec, blob *[]byte, maxSize uint64) {
	if c.enc != nil {
		EncodeDynamicBytesContent(c.enc, *blob)
		return
	}
	DecodeDynamicBytesContent(c.dec, blob, maxSize)
}

// DefineStaticObject defines the next field as a nested static SSZ object.
func DefineStaticObject[T newableObject[U], U any](c *Codec, obj *T) {
	if c.enc != nil {
		EncodeStaticObject(c.enc, *obj)
		return
	}
	DecodeStaticObject(c.dec, obj)
}

// DefineDynamicObjectOffset defines the next field as the offset slot of a
// nested dynamic SSZ object.
func DefineDynamicObjectOffset[T newableObject[U], U any](c *Codec, obj *T) {
	if c.enc != nil {
		EncodeDynamicObjectOffset(c.enc, *obj)
		return
	}
	DecodeDynamicObjectOffset(c.dec, obj)
}

// DefineDynamicObjectContent is the paired content writer/reader for
// DefineDynamicObjectOffset.
func DefineDynamicObjectContent[T newableObject[U], U any](c *Codec, obj *T) {
	if c.enc != nil {
		EncodeDynamicObjectContent(c.enc, *obj)
		return
	}
	DecodeDynamicObjectContent(c.dec, obj)
}

// DefineArrayOfBits defines the next field as a BitVector<N>, backed by a
// fixed-size []byte of ceil(N/8) bytes.
func DefineArrayOfBits(c *Codec, bits *BitVector, n uint64) {
	if c.enc != nil {
		EncodeArrayOfBits(c.enc, *bits)
		return
	}
	DecodeArrayOfBits(c.dec, bits, n)
}

// DefineSliceOfBitsOffset defines the next field as the offset slot of a
// BitList<N>.
func DefineSliceOfBitsOffset(c *Codec, bits *bitfield.Bitlist) {
	if c.enc != nil {
		EncodeSliceOfBitsOffset(c.enc, *bits)
		return
	}
	DecodeSliceOfBitsOffset(c.dec, bits)
}

// DefineSliceOfBitsContent is the paired content writer/reader for
// DefineSliceOfBitsOffset.
func DefineSliceOfBitsContent(c *Codec, bits *bitfield.Bitlist, maxBits uint64) {
	if c.enc != nil {
		EncodeSliceOfBitsContent(c.enc, *bits)
		return
	}
	DecodeSliceOfBitsContent(c.dec, bits, maxBits)
}

// DefineArrayOfStaticBytes defines the next field as a Vector<T,N> of static
// binary blobs.
func DefineArrayOfStaticBytes[T commonBytesLengths](c *Codec, blobs []T) {
	if c.enc != nil {
		EncodeArrayOfStaticBytes(c.enc, blobs)
		return
	}
	DecodeArrayOfStaticBytes(c.dec, blobs)
}

// DefineSliceOfStaticBytesOffset defines the next field as the offset slot of
// a List<T,N> of static binary blobs.
func DefineSliceOfStaticBytesOffset[T commonBytesLengths](c *Codec, blobs *[]T) {
	if c.enc != nil {
		EncodeSliceOfStaticBytesOffset(c.enc, *blobs)
		return
	}
	DecodeSliceOfStaticBytesOffset(c.dec, blobs)
}

// DefineSliceOfStaticBytesContent is the paired content writer/reader for
// DefineSliceOfStaticBytesOffset.
func DefineSliceOfStaticBytesContent[T commonBytesLengths](c *Codec, blobs *[]T, maxItems uint64) {
	if c.enc != nil {
		EncodeSliceOfStaticBytesContent(c.enc, *blobs)
		return
	}
	DecodeSliceOfStaticBytesContent(c.dec, blobs, maxItems)
}

// DefineSliceOfDynamicBytesOffset defines the next field as the offset slot
// of a List<List<byte,M>,N>.
func DefineSliceOfDynamicBytesOffset(c *Codec, blobs *[][]byte) {
	if c.enc != nil {
		EncodeSliceOfDynamicBytesOffset(c.enc, *blobs)
		return
	}
	DecodeSliceOfDynamicBytesOffset(c.dec, blobs)
}

// DefineSliceOfDynamicBytesContent is the paired content writer/reader for
// DefineSliceOfDynamicBytesOffset.
func DefineSliceOfDynamicBytesContent(c *Codec, blobs *[][]byte, maxItems uint64, maxSize uint64) {
	if c.enc != nil {
		EncodeSliceOfDynamicBytesContent(c.enc, *blobs)
		return
	}
	DecodeSliceOfDynamicBytesContent(c.dec, blobs, maxItems, maxSize)
}

// DefineArrayOfDynamicBytesOffset defines the next field as the offset slot
// of a Vector<List<byte,M>,N>: a fixed-length vector whose element type is
// itself dynamic (§4.5), carrying its own intra-header of N offsets.
func DefineArrayOfDynamicBytesOffset(c *Codec, blobs *[][]byte) {
	if c.enc != nil {
		EncodeArrayOfDynamicBytesOffset(c.enc, *blobs)
		return
	}
	DecodeSliceOfDynamicBytesOffset(c.dec, blobs)
}

// DefineArrayOfDynamicBytesContent is the paired content writer/reader for
// DefineArrayOfDynamicBytesOffset. Unlike a List, n is the vector's fixed
// element count, not an upper bound inferred from the first offset.
func DefineArrayOfDynamicBytesContent(c *Codec, blobs *[][]byte, n uint64, maxSize uint64) {
	if c.enc != nil {
		EncodeArrayOfDynamicBytesContent(c.enc, *blobs)
		return
	}
	DecodeArrayOfDynamicBytesContent(c.dec, blobs, n, maxSize)
}

// DefineSliceOfStaticObjectsOffset defines the next field as the offset slot
// of a List<T,N> of static SSZ objects.
func DefineSliceOfStaticObjectsOffset[T newableObject[U], U any](c *Codec, objects *[]T) {
	if c.enc != nil {
		EncodeSliceOfStaticObjectsOffset(c.enc, *objects)
		return
	}
	DecodeSliceOfStaticObjectsOffset(c.dec, objects)
}

// DefineSliceOfStaticObjectsContent is the paired content writer/reader for
// DefineSliceOfStaticObjectsOffset.
func DefineSliceOfStaticObjectsContent[T newableObject[U], U any](c *Codec, objects *[]T, maxItems uint64) {
	if c.enc != nil {
		EncodeSliceOfStaticObjectsContent(c.enc, *objects)
		return
	}
	DecodeSliceOfStaticObjectsContent(c.dec, objects, maxItems)
}

// DefineSliceOfDynamicObjectsOffset defines the next field as the offset slot
// of a List<T,N> of dynamic SSZ objects.
func DefineSliceOfDynamicObjectsOffset[T newableObject[U], U any](c *Codec, objects *[]T) {
	if c.enc != nil {
		EncodeSliceOfDynamicObjectsOffset(c.enc, *objects)
		return
	}
	DecodeSliceOfDynamicObjectsOffset(c.dec, objects)
}

// DefineSliceOfDynamicObjectsContent is the paired content writer/reader for
// DefineSliceOfDynamicObjectsOffset.
func DefineSliceOfDynamicObjectsContent[T newableObject[U], U any](c *Codec, objects *[]T, maxItems uint64) {
	if c.enc != nil {
		EncodeSliceOfDynamicObjectsContent(c.enc, *objects)
		return
	}
	DecodeSliceOfDynamicObjectsContent(c.dec, objects, maxItems)
}

// DefineArrayOfDynamicObjectsOffset defines the next field as the offset slot
// of a Vector<T,N> of dynamic SSZ objects: a fixed-length vector whose
// element type is itself dynamic (§4.5), carrying its own intra-header of N
// offsets.
func DefineArrayOfDynamicObjectsOffset[T newableObject[U], U any](c *Codec, objects *[]T) {
	if c.enc != nil {
		EncodeArrayOfDynamicObjectsOffset[T, U](c.enc, *objects)
		return
	}
	DecodeSliceOfDynamicObjectsOffset(c.dec, objects)
}

// DefineArrayOfDynamicObjectsContent is the paired content writer/reader for
// DefineArrayOfDynamicObjectsOffset. Unlike a List, n is the vector's fixed
// element count, not an upper bound inferred from the first offset.
func DefineArrayOfDynamicObjectsContent[T newableObject[U], U any](c *Codec, objects *[]T, n uint64) {
	if c.enc != nil {
		EncodeArrayOfDynamicObjectsContent[T, U](c.enc, *objects)
		return
	}
	DecodeArrayOfDynamicObjectsContent(c.dec, objects, n)
}
