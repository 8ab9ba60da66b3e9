// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import "golang.org/x/sync/errgroup"

// EncodeAll serializes a slice of independent objects concurrently, one
// EncodeToBytes call per goroutine. Every object owns its own Codec drawn
// from the package pool, so there is no shared mutable state between the
// calls: this is a direct demonstration that two independent codec calls on
// disjoint buffers are safe to run in parallel.
//
// The returned slice preserves the input order. Every object is encoded even
// if another one fails; the first error encountered is returned and partial
// output is discarded.
func EncodeAll(objs []Object) ([][]byte, error) {
	out := make([][]byte, len(objs))

	var g errgroup.Group
	for i, obj := range objs {
		i, obj := i, obj
		g.Go(func() error {
			blob, err := EncodeToBytes(obj)
			if err != nil {
				return err
			}
			out[i] = blob
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeAll parses a slice of independently encoded SSZ messages
// concurrently into the supplied objects, which must already be sized
// one-to-one with blobs. Every blob is decoded even if another one fails; the
// first error encountered is returned.
func DecodeAll(blobs [][]byte, objs []Object) error {
	if len(blobs) != len(objs) {
		return ErrBatchLengthMismatch
	}
	var g errgroup.Group
	for i := range blobs {
		i := i
		g.Go(func() error {
			return DecodeFromBytes(blobs[i], objs[i])
		})
	}
	return g.Wait()
}
