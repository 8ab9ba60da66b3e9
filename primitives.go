// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

// Uint128 is a 128-bit little-endian word, stored verbatim as 16 bytes. SSZ
// treats it as an opaque fixed-size primitive (§4.3): this package offers no
// arithmetic on it, only the codec; convert to/from math/big at the call
// site if arithmetic is needed.
type Uint128 [16]byte

// Address is the 20-byte opaque static primitive used for account addresses.
type Address [20]byte

// Hash is the 32-byte opaque static primitive used for roots and digests.
type Hash [32]byte

// LogsBloom is the 256-byte opaque static primitive used for log blooms.
type LogsBloom [256]byte

// BLSPubkey is the 48-byte opaque static primitive for a BLS public key.
// Cryptographic validation is out of scope (spec.md §1): the codec only
// moves the bytes.
type BLSPubkey [48]byte

// BLSSignature is the 96-byte opaque static primitive for a BLS signature.
type BLSSignature [96]byte
