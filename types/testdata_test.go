// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package types_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/karalabe/ssz"
	"github.com/karalabe/ssz/types"
	"gopkg.in/yaml.v3"
)

// checkpointFixture mirrors one entry of the teacher's own
// consensus-spec-tests golden vectors: a plain-value YAML description of a
// container alongside its expected SSZ encoding.
type checkpointFixture struct {
	Epoch uint64 `yaml:"epoch"`
	Root  string `yaml:"root"`
	SSZ   string `yaml:"ssz"`
}

func TestCheckpointConsensusFixture(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "checkpoint.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	var fixture checkpointFixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	rootBytes, err := hex.DecodeString(strings.TrimPrefix(fixture.Root, "0x"))
	if err != nil {
		t.Fatalf("decode root: %v", err)
	}
	wantSSZ, err := hex.DecodeString(strings.TrimPrefix(fixture.SSZ, "0x"))
	if err != nil {
		t.Fatalf("decode ssz: %v", err)
	}

	in := &types.Checkpoint{Epoch: fixture.Epoch}
	copy(in.Root[:], rootBytes)

	blob, err := ssz.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if hex.EncodeToString(blob) != hex.EncodeToString(wantSSZ) {
		t.Fatalf("encoded mismatch: have %x, want %x", blob, wantSSZ)
	}

	var out types.Checkpoint
	if err := ssz.DecodeFromBytes(wantSSZ, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != *in {
		t.Fatalf("decoded fixture mismatch: have %+v, want %+v", out, *in)
	}
}
