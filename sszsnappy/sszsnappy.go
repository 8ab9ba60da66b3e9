// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sszsnappy streams SSZ messages through snappy framing, the wire
// format consensus-layer p2p req/resp and gossip protocols layer SSZ
// payloads on top of.
package sszsnappy

import (
	"bytes"
	"io"

	"github.com/golang/snappy"
	"github.com/karalabe/ssz"
)

// EncodeToStream serializes obj and writes it to w compressed as a single
// snappy frame stream. The writer is flushed before returning so every byte
// is visible to the peer, but w itself is not closed.
func EncodeToStream(w io.Writer, obj ssz.Object) error {
	sw := snappy.NewBufferedWriter(w)
	if err := ssz.EncodeToStream(sw, obj); err != nil {
		return err
	}
	return sw.Flush()
}

// EncodeToBytes serializes obj into a freshly allocated, snappy-compressed
// byte slice.
func EncodeToBytes(obj ssz.Object) ([]byte, error) {
	var buf byteBuffer
	if err := EncodeToStream(&buf, obj); err != nil {
		return nil, err
	}
	return buf.b, nil
}

// DecodeFromStream reads a snappy frame stream from r and decodes it into
// obj, whose uncompressed size is already known to be size bytes.
func DecodeFromStream(r io.Reader, obj ssz.Object, size uint32) error {
	return ssz.DecodeFromStream(snappy.NewReader(r), obj, size)
}

// DecodeFromBytes decodes obj out of a fully buffered snappy frame stream,
// such as the one EncodeToBytes produces.
func DecodeFromBytes(blob []byte, obj ssz.Object) error {
	raw, err := io.ReadAll(snappy.NewReader(bytes.NewReader(blob)))
	if err != nil {
		return err
	}
	return ssz.DecodeFromBytes(raw, obj)
}

// byteBuffer is a minimal growable io.Writer, avoiding a bytes.Buffer import
// just to collect the output of a single EncodeToStream call.
type byteBuffer struct{ b []byte }

func (w *byteBuffer) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}
