// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package types contains a handful of worked-example consensus-layer
// container types, hand-wired against the ssz package the way a sszgen run
// would leave them: a plain struct here, a StaticSSZ/SizeSSZ/DefineSSZ trio
// in the matching _ssz.go file.
package types

import (
	"github.com/karalabe/ssz"
	"github.com/prysmaticlabs/go-bitfield"
)

// Checkpoint is a (epoch, block root) pair used to anchor justification and
// finalization votes.
type Checkpoint struct {
	Epoch uint64
	Root  ssz.Hash
}

// Eth1Data tracks the deposit contract's state as observed by a block
// proposer.
type Eth1Data struct {
	DepositRoot  ssz.Hash
	DepositCount uint64
	BlockHash    ssz.Hash
}

// Validator is a registry entry for one staked validator.
type Validator struct {
	Pubkey                     ssz.BLSPubkey
	WithdrawalCredentials      ssz.Hash
	EffectiveBalance           uint64
	Slashed                    bool
	ActivationEligibilityEpoch uint64
	ActivationEpoch            uint64
	ExitEpoch                  uint64
	WithdrawableEpoch          uint64
}

// BeaconBlockHeader is the header-only projection of a beacon block: enough
// to authenticate it without carrying the full body.
type BeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    ssz.Hash
	StateRoot     ssz.Hash
	BodyRoot      ssz.Hash
}

// VoluntaryExit signals a validator's intent to leave the active set.
type VoluntaryExit struct {
	Epoch          uint64
	ValidatorIndex uint64
}

// AttestationData is the payload a committee member votes on.
type AttestationData struct {
	Slot            uint64
	Index           uint64
	BeaconBlockRoot ssz.Hash
	Source          *Checkpoint
	Target          *Checkpoint
}

// DepositData is the deposit-contract leaf a Deposit proves membership of.
type DepositData struct {
	Pubkey                ssz.BLSPubkey
	WithdrawalCredentials ssz.Hash
	Amount                uint64
	Signature             ssz.BLSSignature
}

// Deposit proves a DepositData leaf's inclusion in the deposit contract's
// incremental Merkle tree via a fixed-depth sibling proof.
type Deposit struct {
	Proof []ssz.Hash `ssz-size:"33"`
	Data  *DepositData
}

// Attestation is a committee member's vote, accompanied by a bitlist of
// which committee members it was aggregated from.
type Attestation struct {
	AggregationBits bitfield.Bitlist `ssz-max:"2048"`
	Data            *AttestationData
	Signature       ssz.BLSSignature
}
