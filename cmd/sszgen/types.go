// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import "go/types"

// isUint256 reports whether typ is uint256.Int from holiman/uint256, the one
// non-struct type the generator special-cases as a 32-byte static number
// instead of walking its fields.
func isUint256(typ types.Type) bool {
	named, ok := typ.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == "Int" && obj.Pkg() != nil && obj.Pkg().Path() == "github.com/holiman/uint256"
}

// isBitlist reports whether typ is bitfield.Bitlist from
// prysmaticlabs/go-bitfield, a dynamically sized, sentinel-terminated bitset.
func isBitlist(typ types.Type) bool {
	named, ok := typ.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == "Bitlist" && obj.Pkg() != nil && obj.Pkg().Path() == "github.com/prysmaticlabs/go-bitfield"
}

// isBitVector reports whether typ is ssz.BitVector, a fixed-length packed
// bitset whose Go representation ([]byte underneath) would otherwise be
// mistaken for a dynamic byte slice.
func isBitVector(typ types.Type) bool {
	named, ok := typ.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == "BitVector" && obj.Pkg() != nil && obj.Pkg().Path() == sszPkgPath
}

// isStaticType reports whether a Go type maps to a static-size SSZ encoding,
// recursing into named struct types to inspect their own fields. Results are
// memoized per named type to keep repeated lookups and mutually-referencing
// containers cheap.
func (p *parseContext) isStaticType(typ types.Type) (bool, error) {
	switch t := typ.(type) {
	case *types.Basic:
		return true, nil
	case *types.Array:
		return p.isStaticType(t.Elem())
	case *types.Slice:
		// A slice of fixed-size byte-array elements is only static when tagged
		// ssz-size (a Vector); resolveSliceOpset enforces the tag itself, so a
		// bare type-only check conservatively calls it dynamic.
		return false, nil
	case *types.Pointer:
		if isUint256(t.Elem()) {
			return true, nil
		}
		return p.isStaticType(t.Elem())
	case *types.Named:
		if isUint256(t) || isBitVector(t) {
			return true, nil
		}
		if isBitlist(t) {
			return false, nil
		}
		if strct, ok := t.Underlying().(*types.Struct); ok {
			return p.isStaticStruct(t, strct)
		}
		return p.isStaticType(t.Underlying())
	default:
		return false, nil
	}
}

func (p *parseContext) isStaticStruct(named *types.Named, strct *types.Struct) (bool, error) {
	if v, ok := p.staticCache[named]; ok {
		return v, nil
	}
	// Assume static while recursing so a field referencing its own container
	// type (impossible in valid SSZ, but cheap to guard) can't loop forever.
	p.staticCache[named] = true

	static := true
	for i := 0; i < strct.NumFields(); i++ {
		field := strct.Field(i)
		if !field.Exported() {
			continue
		}
		tag, err := parseTag(strct.Tag(i))
		if err != nil {
			return false, err
		}
		if tag.skip {
			continue
		}
		var fieldStatic bool
		if _, ok := field.Type().(*types.Slice); ok {
			// A slice's staticness hangs on its ssz-size/ssz-max tags, which
			// isStaticType cannot see: resolve it the way the field's own
			// codec is picked.
			os, err := p.resolveOpset(field.Type(), tag)
			if err != nil {
				return false, err
			}
			fieldStatic = os.sizeDynamic() == ""
		} else {
			fieldStatic, err = p.isStaticType(field.Type())
			if err != nil {
				return false, err
			}
		}
		if !fieldStatic {
			static = false
		}
	}
	p.staticCache[named] = static
	return static, nil
}
