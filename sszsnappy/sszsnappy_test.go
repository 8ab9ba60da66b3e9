// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package sszsnappy_test

import (
	"bytes"
	"testing"

	"github.com/karalabe/ssz"
	"github.com/karalabe/ssz/sszsnappy"
)

type withdrawal struct {
	Index   uint64
	Address ssz.Address
	Amount  uint64
}

func (w *withdrawal) StaticSSZ() bool { return true }
func (w *withdrawal) SizeSSZ() uint32 { return 36 }
func (w *withdrawal) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineUint64(codec, &w.Index)
	ssz.DefineStaticBytes(codec, &w.Address)
	ssz.DefineUint64(codec, &w.Amount)
}

func TestStreamRoundTrip(t *testing.T) {
	in := &withdrawal{Index: 7, Address: ssz.Address{0x01, 0x02}, Amount: 1_000_000}

	var buf bytes.Buffer
	if err := sszsnappy.EncodeToStream(&buf, in); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out withdrawal
	if err := sszsnappy.DecodeFromStream(&buf, &out, in.SizeSSZ()); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip mismatch: have %+v, want %+v", out, *in)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	in := &withdrawal{Index: 99, Address: ssz.Address{0xff}, Amount: 42}

	blob, err := sszsnappy.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out withdrawal
	if err := sszsnappy.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip mismatch: have %+v, want %+v", out, *in)
	}
}
