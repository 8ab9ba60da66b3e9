// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz_test

import (
	"errors"
	"testing"

	"github.com/karalabe/ssz"
)

func TestEncodeDecodeAll(t *testing.T) {
	in := []ssz.Object{
		&smallStatic{A: 1, B: 2},
		&smallStatic{A: 3, B: 4},
		&smallStatic{A: 5, B: 6},
	}

	blobs, err := ssz.EncodeAll(in)
	if err != nil {
		t.Fatalf("encode all: %v", err)
	}
	if len(blobs) != len(in) {
		t.Fatalf("blob count: have %d, want %d", len(blobs), len(in))
	}

	out := make([]ssz.Object, len(in))
	for i := range out {
		out[i] = new(smallStatic)
	}
	if err := ssz.DecodeAll(blobs, out); err != nil {
		t.Fatalf("decode all: %v", err)
	}
	for i := range in {
		if *out[i].(*smallStatic) != *in[i].(*smallStatic) {
			t.Fatalf("item %d mismatch: have %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestDecodeAllLengthMismatch(t *testing.T) {
	err := ssz.DecodeAll([][]byte{{0x00}}, nil)
	if !errors.Is(err, ssz.ErrBatchLengthMismatch) {
		t.Fatalf("unexpected error: %v", err)
	}
}
