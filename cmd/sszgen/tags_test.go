// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"reflect"
	"testing"
)

func TestParseTagEmpty(t *testing.T) {
	tag, err := parseTag("")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tag.skip || tag.bits || len(tag.size) != 0 || len(tag.limit) != 0 {
		t.Fatalf("unexpected non-zero tag: %+v", tag)
	}
}

func TestParseTagSkip(t *testing.T) {
	tag, err := parseTag(`ssz:"-"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !tag.skip {
		t.Fatalf("expected skip=true")
	}
}

func TestParseTagSize(t *testing.T) {
	tag, err := parseTag(`ssz-size:"32"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(tag.size, []int{32}) {
		t.Fatalf("size: have %v, want [32]", tag.size)
	}
}

func TestParseTagMax(t *testing.T) {
	tag, err := parseTag(`ssz-max:"1048576,1073741824"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(tag.limit, []int{1048576, 1073741824}) {
		t.Fatalf("limit: have %v, want [1048576 1073741824]", tag.limit)
	}
}

func TestParseTagDynamicDimension(t *testing.T) {
	tag, err := parseTag(`ssz-size:"?,32"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(tag.size, []int{0, 32}) {
		t.Fatalf("size: have %v, want [0 32]", tag.size)
	}
}

func TestParseTagCombined(t *testing.T) {
	tag, err := parseTag(`ssz-size:"20" ssz-max:"16"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(tag.size, []int{20}) || !reflect.DeepEqual(tag.limit, []int{16}) {
		t.Fatalf("unexpected tag: %+v", tag)
	}
}

func TestParseTagSkipEncode(t *testing.T) {
	for _, raw := range []string{`ssz:"-"`, `ssz:"skip_encode"`} {
		tag, err := parseTag(raw)
		if err != nil {
			t.Fatalf("parse %s: %v", raw, err)
		}
		if !tag.skip || tag.skipDecode {
			t.Fatalf("%s: unexpected tag: %+v", raw, tag)
		}
	}
}

func TestParseTagSkipDecode(t *testing.T) {
	tag, err := parseTag(`ssz:"skip_decode"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !tag.skipDecode || tag.skip {
		t.Fatalf("unexpected tag: %+v", tag)
	}
}

func TestParseTagInvalid(t *testing.T) {
	if _, err := parseTag(`ssz-size:"notanumber"`); err == nil {
		t.Fatal("expected an error for a non-numeric ssz-size tag")
	}
}

func TestPkgName(t *testing.T) {
	cases := map[string]string{
		"github.com/karalabe/ssz/types": "types",
		"bytes":                         "bytes",
	}
	for path, want := range cases {
		if got := pkgName(path); got != want {
			t.Errorf("pkgName(%q) = %q, want %q", path, got, want)
		}
	}
}
