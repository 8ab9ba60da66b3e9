// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ssz contains a few coding helpers to implement SSZ codecs.
package ssz

import (
	"fmt"
	"io"
	"sync"
)

// Object defines the methods a type needs to implement to be used as an SSZ
// encodable and decodable object.
type Object interface {
	// StaticSSZ returns whether the object is static in size (i.e. always
	// takes up the same space to encode) or variable.
	//
	// Note, this method *must* be implemented on the pointer type and should
	// simply return true or false. It *will* be called on nil.
	StaticSSZ() bool

	// SizeSSZ returns the total size of an SSZ object.
	SizeSSZ() uint32

	// DefineSSZ runs the object's schema definition against an SSZ codec.
	DefineSSZ(codec *Codec)
}

// MaxSizer is implemented by List<T,N>-bearing objects that can report an
// upper bound on their own serialized size without knowing concrete field
// values, e.g. for pre-allocating a destination buffer.
type MaxSizer interface {
	Object

	// MaxSizeSSZ returns the maximum number of bytes the object could ever
	// take to serialize, across every legal value of its dynamic fields.
	MaxSizeSSZ() uint32
}

var codecPool = sync.Pool{
	New: func() any {
		c := &Codec{enc: new(Encoder), dec: new(Decoder)}
		c.enc.codec, c.dec.codec = c, c
		return c
	},
}

// EncodeToStream serializes obj into w as a single SSZ-encoded message.
func EncodeToStream(w io.Writer, obj Object) error {
	codec := codecPool.Get().(*Codec)
	defer codecPool.Put(codec)

	codec.enc.reset(w)
	dec := codec.dec
	codec.dec = nil

	obj.DefineSSZ(codec)
	codec.dec = dec

	if codec.enc.err == nil && codec.enc.dyn && obj.StaticSSZ() {
		return fmt.Errorf("%w: %T", ErrStaticObjectBehavedDynamic, obj)
	}
	return codec.enc.err
}

// EncodeToBytes serializes obj into a freshly allocated byte slice, sized
// exactly to obj.SizeSSZ().
func EncodeToBytes(obj Object) ([]byte, error) {
	buf := make([]byte, obj.SizeSSZ())
	if err := EncodeToStream(&byteSliceWriter{buf, 0}, obj); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeFromStream parses an object with the given total byte size out of r.
func DecodeFromStream(r io.Reader, obj Object, size uint32) error {
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	return DecodeFromBytes(buf, obj)
}

// DecodeFromBytes parses an object out of a fully buffered SSZ message.
func DecodeFromBytes(blob []byte, obj Object) error {
	codec := codecPool.Get().(*Codec)
	defer codecPool.Put(codec)

	codec.dec.reset(NewCursor(blob), uint32(len(blob)))
	enc := codec.enc
	codec.enc = nil

	obj.DefineSSZ(codec)
	codec.enc = enc

	if codec.dec.err == nil && codec.dec.dyn && obj.StaticSSZ() {
		return fmt.Errorf("%w: %T", ErrStaticObjectBehavedDynamic, obj)
	}
	return codec.dec.err
}

// byteSliceWriter is an io.Writer backed by a pre-sized, pre-allocated
// buffer, avoiding the copy+grow churn of bytes.Buffer for EncodeToBytes,
// whose destination size is already known from SizeSSZ.
type byteSliceWriter struct {
	buf []byte
	pos int
}

func (w *byteSliceWriter) Write(p []byte) (int, error) {
	n := copy(w.buf[w.pos:], p)
	w.pos += n
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}
