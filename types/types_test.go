// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package types_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/karalabe/ssz"
	"github.com/karalabe/ssz/types"
	"github.com/prysmaticlabs/go-bitfield"
)

func hashOf(b byte) (h ssz.Hash) {
	for i := range h {
		h[i] = b
	}
	return h
}

func pubkeyOf(b byte) (k ssz.BLSPubkey) {
	for i := range k {
		k[i] = b
	}
	return k
}

func sigOf(b byte) (s ssz.BLSSignature) {
	for i := range s {
		s[i] = b
	}
	return s
}

func TestCheckpointRoundTrip(t *testing.T) {
	in := &types.Checkpoint{Epoch: 12345, Root: hashOf(0xab)}

	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if uint32(len(blob)) != in.SizeSSZ() {
		t.Fatalf("encoded length %d != SizeSSZ() %d", len(blob), in.SizeSSZ())
	}
	var out types.Checkpoint
	if err := ssz.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip mismatch: have %+v, want %+v", out, *in)
	}
}

func TestEth1DataRoundTrip(t *testing.T) {
	in := &types.Eth1Data{
		DepositRoot:  hashOf(0x01),
		DepositCount: 7,
		BlockHash:    hashOf(0x02),
	}
	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out types.Eth1Data
	if err := ssz.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip mismatch: have %+v, want %+v", out, *in)
	}
}

func TestValidatorRoundTrip(t *testing.T) {
	in := &types.Validator{
		Pubkey:                     pubkeyOf(0x11),
		WithdrawalCredentials:      hashOf(0x22),
		EffectiveBalance:           32_000_000_000,
		Slashed:                    true,
		ActivationEligibilityEpoch: 1,
		ActivationEpoch:            2,
		ExitEpoch:                  18446744073709551615,
		WithdrawableEpoch:          3,
	}
	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out types.Validator
	if err := ssz.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip mismatch: have %+v, want %+v", out, *in)
	}
}

func TestBeaconBlockHeaderRoundTrip(t *testing.T) {
	in := &types.BeaconBlockHeader{
		Slot:          100,
		ProposerIndex: 5,
		ParentRoot:    hashOf(0x03),
		StateRoot:     hashOf(0x04),
		BodyRoot:      hashOf(0x05),
	}
	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out types.BeaconBlockHeader
	if err := ssz.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip mismatch: have %+v, want %+v", out, *in)
	}
}

func TestVoluntaryExitRoundTrip(t *testing.T) {
	in := &types.VoluntaryExit{Epoch: 9, ValidatorIndex: 42}

	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(blob, []byte{
		0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x2a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}) {
		t.Fatalf("unexpected encoding: %x", blob)
	}
	var out types.VoluntaryExit
	if err := ssz.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip mismatch: have %+v, want %+v", out, *in)
	}
}

func TestAttestationDataRoundTrip(t *testing.T) {
	in := &types.AttestationData{
		Slot:            10,
		Index:           1,
		BeaconBlockRoot: hashOf(0x06),
		Source:          &types.Checkpoint{Epoch: 1, Root: hashOf(0x07)},
		Target:          &types.Checkpoint{Epoch: 2, Root: hashOf(0x08)},
	}
	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out types.AttestationData
	if err := ssz.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Slot != in.Slot || out.Index != in.Index || out.BeaconBlockRoot != in.BeaconBlockRoot {
		t.Fatalf("scalar field mismatch: have %+v, want %+v", out, *in)
	}
	if *out.Source != *in.Source || *out.Target != *in.Target {
		t.Fatalf("checkpoint mismatch: have source=%+v target=%+v, want source=%+v target=%+v",
			*out.Source, *out.Target, *in.Source, *in.Target)
	}
}

func TestDepositRoundTrip(t *testing.T) {
	proof := make([]ssz.Hash, 33)
	for i := range proof {
		proof[i] = hashOf(byte(i))
	}
	in := &types.Deposit{
		Proof: proof,
		Data: &types.DepositData{
			Pubkey:                pubkeyOf(0x09),
			WithdrawalCredentials: hashOf(0x0a),
			Amount:                32_000_000_000,
			Signature:             sigOf(0x0b),
		},
	}
	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var out types.Deposit
	if err := ssz.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(out.Proof, in.Proof) {
		t.Fatalf("proof mismatch")
	}
	if *out.Data != *in.Data {
		t.Fatalf("data mismatch: have %+v, want %+v", *out.Data, *in.Data)
	}
}

func TestDepositZeroValueDecodePreallocatesProof(t *testing.T) {
	// A zero-valued Deposit has a nil Proof slice; decoding into it must
	// not silently skip the 33-element vector just because the slice
	// starts out empty (see deposit_ssz.go's preallocation guard).
	in := &types.Deposit{
		Proof: make([]ssz.Hash, 33),
		Data:  &types.DepositData{Pubkey: pubkeyOf(0x01), Signature: sigOf(0x02)},
	}
	for i := range in.Proof {
		in.Proof[i] = hashOf(byte(i + 1))
	}

	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out types.Deposit
	if err := ssz.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Proof) != 33 {
		t.Fatalf("decoded proof length: have %d, want 33", len(out.Proof))
	}
	if !reflect.DeepEqual(out.Proof, in.Proof) {
		t.Fatalf("proof mismatch")
	}
}

func TestAttestationRoundTrip(t *testing.T) {
	bits := bitfield.NewBitlist(12)
	bits.SetBitAt(0, true)
	bits.SetBitAt(5, true)
	bits.SetBitAt(11, true)

	in := &types.Attestation{
		AggregationBits: bits,
		Data: &types.AttestationData{
			Slot:            3,
			Index:           0,
			BeaconBlockRoot: hashOf(0x0c),
			Source:          &types.Checkpoint{Epoch: 1, Root: hashOf(0x0d)},
			Target:          &types.Checkpoint{Epoch: 2, Root: hashOf(0x0e)},
		},
		Signature: sigOf(0x0f),
	}

	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if uint32(len(blob)) != in.SizeSSZ() {
		t.Fatalf("encoded length %d != SizeSSZ() %d", len(blob), in.SizeSSZ())
	}

	var out types.Attestation
	if err := ssz.DecodeFromBytes(blob, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(out.AggregationBits, in.AggregationBits) {
		t.Fatalf("aggregation bits: have %x, want %x", out.AggregationBits, in.AggregationBits)
	}
	if out.Signature != in.Signature {
		t.Fatalf("signature mismatch")
	}
	if out.Data.Slot != in.Data.Slot || *out.Data.Source != *in.Data.Source || *out.Data.Target != *in.Data.Target {
		t.Fatalf("data mismatch: have %+v, want %+v", *out.Data, *in.Data)
	}
}
