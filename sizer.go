// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

// SizeDynamicBytes returns the serialized size of the dynamic part of a
// dynamic []byte field.
func SizeDynamicBytes(blob []byte) uint32 {
	return uint32(len(blob))
}

// SizeDynamicObject returns the serialized size of a nested dynamic SSZ
// object, substituting the shared zero value for a nil pointer so that
// SizeSSZ can be measured on a half-initialized struct.
func SizeDynamicObject[T newableObject[U], U any](obj T) uint32 {
	if any(obj) == nil {
		obj = zeroValue[T, U]()
	}
	return obj.SizeSSZ()
}

// SizeSliceOfDynamicBytes returns the serialized size of the dynamic part of
// a List<List<byte,M>,N>: one offset per element plus each element's own
// payload.
func SizeSliceOfDynamicBytes(blobs [][]byte) uint32 {
	var size uint32
	for _, blob := range blobs {
		size += OffsetBytes + uint32(len(blob))
	}
	return size
}

// SizeSliceOfStaticBytes returns the serialized size of the dynamic part of a
// List<T,N> of static binary blobs: a pure concatenation, so every element
// shares the same size.
func SizeSliceOfStaticBytes[T commonBytesLengths](blobs []T) uint32 {
	if len(blobs) == 0 {
		return 0
	}
	return uint32(len(blobs) * len(blobs[0]))
}

// SizeSliceOfStaticObjects returns the serialized size of the dynamic part
// of a List<T,N> of static SSZ objects: a pure concatenation, so every
// element shares the same size.
func SizeSliceOfStaticObjects[T Object](objects []T) uint32 {
	if len(objects) == 0 {
		return 0
	}
	return uint32(len(objects)) * objects[0].SizeSSZ()
}

// SizeSliceOfDynamicObjects returns the serialized size of the dynamic part
// of a List<T,N> of dynamic SSZ objects: one offset per element plus each
// element's own size.
func SizeSliceOfDynamicObjects[T Object](objects []T) uint32 {
	var size uint32 = uint32(len(objects)) * OffsetBytes
	for _, obj := range objects {
		size += obj.SizeSSZ()
	}
	return size
}

// SizeSliceOfBits returns the serialized size of a BitList<N>'s dynamic
// part: its sentinel-terminated byte representation is already the wire
// form, so this is simply its length. An empty (nil) bitlist is written as a
// single sentinel byte, so it counts as 1.
func SizeSliceOfBits(bits []byte) uint32 {
	if len(bits) == 0 {
		return 1
	}
	return uint32(len(bits))
}
