// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	sszTagIdent     = "ssz"
	sszSizeTagIdent = "ssz-size"
	sszMaxTagIdent  = "ssz-max"
)

// sszTag describes the ssz-relevant annotations found on one struct field.
type sszTag struct {
	skip bool // ssz:"-" or ssz:"skip_encode": field excluded entirely from
	// the codec's metadata and write/read paths, as if it didn't exist.

	skipDecode bool // ssz:"skip_decode": field is still written on encode
	// (it occupies its normal place in the fixed/dynamic layout) but is reset
	// to its Go zero value on decode instead of being populated from the
	// wire.

	bits  bool  // ssz:"bits"; recorded only, resolveOpset does not consult it (bit fields are recognized by their ssz.BitVector / bitfield.Bitlist type)
	size  []int // ssz-size:"32" or ssz-size:"?,32"; 0 in a slot means dynamic there
	limit []int // ssz-max:"1024"; list-length cap, one entry per dynamic dimension
}

// parseTag parses the struct tag of a single field. An empty tag is valid
// and simply means "infer everything from the Go type".
func parseTag(input string) (*sszTag, error) {
	if len(input) == 0 {
		return new(sszTag), nil
	}
	tag := new(sszTag)

	set := func(v int, ident string) {
		if ident == sszMaxTagIdent {
			tag.limit = append(tag.limit, v)
		} else {
			tag.size = append(tag.size, v)
		}
	}
	for _, field := range strings.Fields(input) {
		parts := strings.SplitN(field, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid struct tag %q", field)
		}
		ident, remain := parts[0], strings.Trim(parts[1], "\"")

		switch ident {
		case sszTagIdent:
			switch remain {
			case "-", "skip_encode":
				tag.skip = true
			case "skip_decode":
				tag.skipDecode = true
			case "bits":
				tag.bits = true
			}
		case sszMaxTagIdent, sszSizeTagIdent:
			for _, p := range strings.Split(remain, ",") {
				if p == "?" {
					set(0, ident)
					continue
				}
				num, err := strconv.Atoi(p)
				if err != nil {
					return nil, fmt.Errorf("invalid %s tag %q: %w", ident, field, err)
				}
				set(num, ident)
			}
		}
	}
	return tag, nil
}
