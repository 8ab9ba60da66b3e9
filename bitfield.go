// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import "github.com/prysmaticlabs/go-bitfield"

// BitVector is a packed, little-endian BitVector<N>: exactly N bits packed
// into ceil(N/8) bytes (minimum 1), static regardless of N (§4.4). Unlike
// BitList, a BitVector carries no sentinel bit — its length is a type-level
// constant (N) known to both sides of the wire.
//
// go-bitfield only ships a handful of hardcoded Bitvector<N> sizes (the ones
// Ethereum mainnet happens to need), so it cannot serve an arbitrary N here;
// BitVector is a thin byte-packed type built directly from spec.md §4.4.
type BitVector []byte

// NewBitVector allocates a zero-valued BitVector<n>.
func NewBitVector(n uint64) BitVector {
	return make(BitVector, bitVectorByteLen(n))
}

func bitVectorByteLen(n uint64) int {
	l := int((n + 7) / 8)
	if l == 0 {
		l = 1
	}
	return l
}

// BitAt reports whether bit i is set.
func (b BitVector) BitAt(i uint64) bool {
	return b[i/8]&(1<<(i%8)) != 0
}

// SetBitAt sets or clears bit i.
func (b BitVector) SetBitAt(i uint64, v bool) {
	if v {
		b[i/8] |= 1 << (i % 8)
	} else {
		b[i/8] &^= 1 << (i % 8)
	}
}

// EncodeArrayOfBits serializes a BitVector<N> verbatim.
func EncodeArrayOfBits(enc *Encoder, bits BitVector) {
	enc.write(bits)
}

// DecodeArrayOfBits parses a BitVector<N>, verifying that the unused high
// bits of the final byte are zero (§4.4).
func DecodeArrayOfBits(dec *Decoder, bits *BitVector, n uint64) {
	if dec.err != nil {
		return
	}
	size := bitVectorByteLen(n)
	b, err := dec.fixed.Take(size)
	if err != nil {
		dec.err = err
		return
	}
	if used := n % 8; used != 0 {
		mask := byte(0xff << used)
		if b[len(b)-1]&mask != 0 {
			dec.err = bytesInvalidf("bitvector<%d> has non-zero padding bits in last byte", n)
			return
		}
	}
	*bits = append((*bits)[:0], b...)
}

// EncodeSliceOfBitsOffset serializes the offset slot of a BitList<N>. A
// bitfield.Bitlist already stores its sentinel-terminated wire bytes
// verbatim, so its on-wire length is simply len(bits); an empty (nil) one is
// written as a single sentinel byte by EncodeSliceOfBitsContent.
func EncodeSliceOfBitsOffset(enc *Encoder, bits bitfield.Bitlist) {
	if enc.err != nil {
		return
	}
	enc.dyn = true
	enc.writeOffsetValue(enc.offset)
	if len(bits) == 0 {
		enc.offset++
		return
	}
	enc.offset += uint32(len(bits))
}

// EncodeSliceOfBitsContent writes the BitList<N> payload (sentinel included).
func EncodeSliceOfBitsContent(enc *Encoder, bits bitfield.Bitlist) {
	if len(bits) == 0 {
		bits = bitfield.NewBitlist(0)
	}
	enc.write(bits)
}

// DecodeSliceOfBitsOffset records the offset slot of a BitList<N>.
func DecodeSliceOfBitsOffset(dec *Decoder, _ *bitfield.Bitlist) {
	dec.decodeOffset()
}

// DecodeSliceOfBitsContent parses the BitList<N> payload, requiring a
// sentinel bit and a decoded length not exceeding maxBits (§4.4, §7).
func DecodeSliceOfBitsContent(dec *Decoder, bits *bitfield.Bitlist, maxBits uint64) {
	if dec.err != nil {
		return
	}
	length, err := dec.nextContentLength()
	if err != nil {
		dec.err = err
		return
	}
	if length == 0 {
		dec.err = bytesInvalidf("bitlist payload is empty, missing sentinel bit")
		return
	}
	b, err := dec.variable.Take(int(length))
	if err != nil {
		dec.err = err
		return
	}
	if b[len(b)-1] == 0 {
		dec.err = bytesInvalidf("bitlist last byte carries no sentinel bit")
		return
	}
	bl := bitfield.Bitlist(append([]byte(nil), b...))
	if bl.Len() > maxBits {
		dec.err = bytesInvalidf("bitlist length %d exceeds maximum %d", bl.Len(), maxBits)
		return
	}
	*bits = bl
}
