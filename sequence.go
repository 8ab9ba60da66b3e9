// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

// splitDynamicSequencePayload implements the shared decode algorithm of §4.5
// for a Vector<T,N>/List<T,N> of dynamic element type T: an intra-header run
// of 4-byte offsets followed by per-element payloads, both measured from the
// start of payload.
//
// knownCount is the element count for a Vector (its N is fixed, not
// inferred); pass -1 for a List, whose count is derived from the first
// offset per §4.5 ("num_items = first_offset / OFFSET_BYTES").
func splitDynamicSequencePayload(payload []byte, knownCount int) ([][]byte, error) {
	total := uint32(len(payload))

	var numItems int
	switch {
	case knownCount >= 0:
		numItems = knownCount
	case len(payload) == 0:
		return nil, nil
	default:
		first, err := ReadOffset(payload)
		if err != nil {
			return nil, err
		}
		if first == 0 || first%OffsetBytes != 0 {
			return nil, &InvalidListFixedBytesLenError{Offset: first}
		}
		numItems = int(first / OffsetBytes)
	}
	if numItems == 0 {
		return nil, nil
	}
	fixedBytes := uint32(numItems) * OffsetBytes
	if uint32(len(payload)) < fixedBytes {
		return nil, &InvalidByteLengthError{Len: len(payload), Expected: int(fixedBytes)}
	}

	offsets := make([]uint32, numItems)
	var prev *uint32
	for i := 0; i < numItems; i++ {
		raw, err := ReadOffset(payload[i*OffsetBytes:])
		if err != nil {
			return nil, err
		}
		var fb *uint32
		if i == 0 {
			fb = &fixedBytes
		}
		sanitized, err := SanitizeOffset(raw, prev, total, fb)
		if err != nil {
			return nil, err
		}
		offsets[i] = sanitized
		prev = &offsets[i]
	}

	out := make([][]byte, numItems)
	for i := 0; i < numItems; i++ {
		start := offsets[i]
		end := total
		if i+1 < numItems {
			end = offsets[i+1]
		}
		if end < start {
			return nil, bytesInvalidf("dynamic sequence element %d has negative length", i)
		}
		out[i] = payload[start:end]
	}
	return out, nil
}

// writeDynamicSequenceHeader writes the intra-header of len(sizes) 4-byte
// offsets for a Vector/List of dynamic elements, given each element's own
// serialized size. The first offset equals the header's own length; the
// caller writes the elements' content right after it.
func writeDynamicSequenceHeader(enc *Encoder, sizes []uint32) {
	if enc.err != nil {
		return
	}
	offset := uint32(len(sizes)) * OffsetBytes
	for _, size := range sizes {
		enc.writeOffsetValue(offset)
		offset += size
	}
}
