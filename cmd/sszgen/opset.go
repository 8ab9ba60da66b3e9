// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"go/types"
)

// opset is a group of methods that define how different pieces of an ssz codec
// operate on a given struct field. It may be static or dynamic.
type opset interface {
	// define renders the ssz.DefineXYZ(...) call placed in the fixed section
	// (the only call emitted for a static field, the offset call for a
	// dynamic one).
	define(field string) string

	// defineContent renders the ssz.DefineXYZContent(...) call placed in the
	// dynamic section. Empty for a static field.
	defineContent(field string) string

	// sizeDynamic is the ssz.SizeXYZ helper invoked from SizeSSZ to measure
	// the field's dynamic-tail contribution. Empty for a static field.
	sizeDynamic() string

	// bytes is the field's static contribution, in bytes: its own size for a
	// static field, ssz.OffsetBytes for a dynamic one. 0 means the size can
	// only be resolved at generation time through staticFieldSize.
	bytes() int
}

// opsetStatic describes a field whose serialized size never varies.
type opsetStatic struct {
	defineCall string // DefineXYZ method name
	extra      []string
	size       int
	byValue    bool // call takes obj.Field directly, not &obj.Field

	// preallocLen, when non-zero, is the fixed slice length the field must
	// carry before en/decoding, for a Vector backed by a Go slice: unlike a
	// Go array, its length isn't implied by the type, so the zero-valued
	// struct a decode starts from needs it created explicitly.
	preallocLen int
	preallocElem string
}

func (os *opsetStatic) define(field string) string {
	call := renderCall(os.defineCall, field, os.extra, os.byValue)
	if os.preallocLen == 0 {
		return call
	}
	return fmt.Sprintf("if len(obj.%s) == 0 {\n\t\tobj.%s = make([]%s, %d)\n\t}\n\t%s",
		field, field, os.preallocElem, os.preallocLen, call)
}
func (os *opsetStatic) defineContent(field string) string { return "" }
func (os *opsetStatic) sizeDynamic() string               { return "" }
func (os *opsetStatic) bytes() int                        { return os.size }

// opsetDynamic describes a field whose serialized size is only known once its
// value is known: the fixed header carries a 4-byte offset, the payload is
// appended to the dynamic tail.
type opsetDynamic struct {
	offsetCall  string // DefineXYZOffset method name
	contentCall string // DefineXYZContent method name
	contentArgs []string
	size        string // ssz.SizeXYZ helper used by the generated SizeSSZ
}

func (os *opsetDynamic) define(field string) string {
	return renderCall(os.offsetCall, field, nil, false)
}
func (os *opsetDynamic) defineContent(field string) string {
	return renderCall(os.contentCall, field, os.contentArgs, false)
}
func (os *opsetDynamic) sizeDynamic() string { return os.size }
func (os *opsetDynamic) bytes() int          { return offsetBytes }

const offsetBytes = 4

func renderCall(method, field string, extra []string, byValue bool) string {
	ref := "&obj." + field
	if byValue {
		ref = "obj." + field
	}
	call := fmt.Sprintf("ssz.%s(codec, %s", method, ref)
	for _, e := range extra {
		call += ", " + e
	}
	return call + ")"
}

// resolveOpset picks the opset needed to move a single struct field, based on
// its Go type and any parsed ssz/ssz-size/ssz-max tags.
func (p *parseContext) resolveOpset(typ types.Type, tag *sszTag) (opset, error) {
	switch t := typ.(type) {
	case *types.Basic:
		return resolveBasicOpset(t)
	case *types.Pointer:
		return p.resolvePointerOpset(t)
	case *types.Array:
		if b, ok := t.Elem().(*types.Basic); ok && b.Kind() == types.Uint8 {
			return &opsetStatic{defineCall: "DefineStaticBytes", extra: nil, size: int(t.Len()), byValue: false}, nil
		}
		return nil, fmt.Errorf("unsupported array element type: %s", t.Elem())
	case *types.Slice:
		return p.resolveSliceOpset(t, tag)
	case *types.Named:
		if isUint256(t) {
			return &opsetStatic{defineCall: "DefineUint256", extra: nil, size: 32, byValue: false}, nil
		}
		if isBitVector(t) {
			if len(tag.size) == 0 {
				return nil, fmt.Errorf("ssz.BitVector field needs an ssz-size tag giving its bit count")
			}
			n := tag.size[0]
			return &opsetStatic{defineCall: "DefineArrayOfBits", extra: []string{fmt.Sprintf("%d", n)}, size: (n + 7) / 8, byValue: false}, nil
		}
		if isBitlist(t) {
			if len(tag.limit) == 0 {
				return nil, fmt.Errorf("bitfield.Bitlist field needs an ssz-max tag giving its bit limit")
			}
			return &opsetDynamic{"DefineSliceOfBitsOffset", "DefineSliceOfBitsContent", []string{fmt.Sprintf("%d", tag.limit[0])}, "SizeSliceOfBits"}, nil
		}
		return p.resolveOpset(t.Underlying(), tag)
	default:
		return nil, fmt.Errorf("unsupported field type: %s", typ)
	}
}

func resolveBasicOpset(typ *types.Basic) (*opsetStatic, error) {
	switch typ.Kind() {
	case types.Bool:
		return &opsetStatic{defineCall: "DefineBool", extra: nil, size: 1, byValue: false}, nil
	case types.Uint8:
		return &opsetStatic{defineCall: "DefineUint8", extra: nil, size: 1, byValue: false}, nil
	case types.Uint16:
		return &opsetStatic{defineCall: "DefineUint16", extra: nil, size: 2, byValue: false}, nil
	case types.Uint32:
		return &opsetStatic{defineCall: "DefineUint32", extra: nil, size: 4, byValue: false}, nil
	case types.Uint64:
		return &opsetStatic{defineCall: "DefineUint64", extra: nil, size: 8, byValue: false}, nil
	default:
		return nil, fmt.Errorf("unsupported basic type: %s", typ)
	}
}

// resolvePointerOpset handles *uint256.Int and pointers to nested containers,
// dispatching to a static or dynamic object opset depending on whether the
// pointee type was found to carry any dynamic field of its own.
func (p *parseContext) resolvePointerOpset(typ *types.Pointer) (opset, error) {
	if isUint256(typ.Elem()) {
		return &opsetStatic{defineCall: "DefineUint256", extra: nil, size: 32, byValue: false}, nil
	}
	named, ok := typ.Elem().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("unsupported pointer type: %s", typ)
	}
	static, err := p.isStaticType(named)
	if err != nil {
		return nil, err
	}
	if static {
		return &opsetStatic{defineCall: "DefineStaticObject", extra: nil, size: 0, byValue: false}, nil
	}
	return &opsetDynamic{"DefineDynamicObjectOffset", "DefineDynamicObjectContent", nil, "SizeDynamicObject"}, nil
}

// fixedByteArrayLen reports the array length of typ if it is (possibly
// through one level of named-type wrapping) a fixed-size byte array such as
// ssz.Hash or ssz.Address.
func fixedByteArrayLen(typ types.Type) (int, bool) {
	if named, ok := typ.(*types.Named); ok {
		typ = named.Underlying()
	}
	arr, ok := typ.(*types.Array)
	if !ok {
		return 0, false
	}
	if b, ok := arr.Elem().(*types.Basic); !ok || b.Kind() != types.Uint8 {
		return 0, false
	}
	return int(arr.Len()), true
}

// resolveSliceOpset handles both Vector<T,N> and List<T,N> represented as Go
// slices: a Go slice of fixed-size byte-array elements is static when tagged
// with ssz-size (its outer length never changes), dynamic when tagged with
// ssz-max (a true SSZ List). A []byte is a static blob when tagged ssz-size
// and a dynamic List when tagged ssz-max. A [][]byte or a slice of pointers to
// dynamic objects is a Vector when tagged ssz-size and a List when tagged
// ssz-max, dynamic either way; a slice of pointers to static objects is only
// supported as a List (ssz-max).
func (p *parseContext) resolveSliceOpset(typ *types.Slice, tag *sszTag) (opset, error) {
	if n, ok := fixedByteArrayLen(typ.Elem()); ok {
		switch {
		case len(tag.size) > 0:
			return &opsetStatic{
				defineCall:  "DefineArrayOfStaticBytes",
				size:        tag.size[0] * n,
				byValue:     true,
				preallocLen: tag.size[0],
				preallocElem: types.TypeString(typ.Elem(), func(pkg *types.Package) string {
					if pkg == p.pkg {
						return ""
					}
					return pkg.Name()
				}),
			}, nil
		case len(tag.limit) > 0:
			args := []string{fmt.Sprintf("%d", tag.limit[0])}
			return &opsetDynamic{"DefineSliceOfStaticBytesOffset", "DefineSliceOfStaticBytesContent", args, "SizeSliceOfStaticBytes"}, nil
		default:
			return nil, fmt.Errorf("slice-of-static-bytes field needs an ssz-size (Vector) or ssz-max (List) tag")
		}
	}
	switch elem := typ.Elem().(type) {
	case *types.Basic:
		if elem.Kind() == types.Uint8 {
			if len(tag.size) > 0 {
				return &opsetStatic{defineCall: "DefineCheckedStaticBytes", extra: []string{fmt.Sprintf("%d", tag.size[0])}, size: tag.size[0], byValue: false}, nil
			}
			if len(tag.limit) == 0 {
				return nil, fmt.Errorf("[]byte field needs an ssz-max tag (List) or ssz-size tag (fixed-length blob)")
			}
			args := []string{fmt.Sprintf("%d", tag.limit[0])}
			return &opsetDynamic{"DefineDynamicBytesOffset", "DefineDynamicBytesContent", args, "SizeDynamicBytes"}, nil
		}
		return nil, fmt.Errorf("unsupported slice element type: %s", elem)
	case *types.Slice:
		if b, ok := elem.Elem().(*types.Basic); ok && b.Kind() == types.Uint8 {
			// A Vector<List<byte,M>,N> carries its outer length in ssz-size
			// instead of ssz-max: the element type is dynamic, so per §4.5
			// the field is still an offset slot, just with a known count.
			if len(tag.size) > 0 && tag.size[0] > 0 {
				if len(tag.limit) < 1 {
					return nil, fmt.Errorf("vector-of-dynamic-bytes field needs an ssz-max tag giving its inner byte limit")
				}
				args := []string{fmt.Sprintf("%d", tag.size[0]), fmt.Sprintf("%d", tag.limit[0])}
				return &opsetDynamic{"DefineArrayOfDynamicBytesOffset", "DefineArrayOfDynamicBytesContent", args, "SizeSliceOfDynamicBytes"}, nil
			}
			if len(tag.limit) < 2 {
				return nil, fmt.Errorf("[][]byte field needs a two-dimensional ssz-max tag (item count, item byte limit)")
			}
			args := []string{fmt.Sprintf("%d", tag.limit[0]), fmt.Sprintf("%d", tag.limit[1])}
			return &opsetDynamic{"DefineSliceOfDynamicBytesOffset", "DefineSliceOfDynamicBytesContent", args, "SizeSliceOfDynamicBytes"}, nil
		}
		return nil, fmt.Errorf("unsupported slice element type: %s", elem)
	case *types.Pointer:
		named, ok := elem.Elem().(*types.Named)
		if !ok {
			return nil, fmt.Errorf("unsupported slice element type: %s", elem)
		}
		static, err := p.isStaticType(named)
		if err != nil {
			return nil, err
		}
		// A Vector<T,N> of dynamic objects carries its fixed count in
		// ssz-size rather than ssz-max (§4.5): same offset-header wire
		// layout as the List counterpart, just with a known element count.
		if !static && len(tag.size) > 0 && tag.size[0] > 0 {
			args := []string{fmt.Sprintf("%d", tag.size[0])}
			return &opsetDynamic{"DefineArrayOfDynamicObjectsOffset", "DefineArrayOfDynamicObjectsContent", args, "SizeSliceOfDynamicObjects"}, nil
		}
		if len(tag.limit) == 0 {
			return nil, fmt.Errorf("slice-of-object field needs an ssz-max tag giving its item count limit")
		}
		args := []string{fmt.Sprintf("%d", tag.limit[0])}
		if static {
			return &opsetDynamic{"DefineSliceOfStaticObjectsOffset", "DefineSliceOfStaticObjectsContent", args, "SizeSliceOfStaticObjects"}, nil
		}
		return &opsetDynamic{"DefineSliceOfDynamicObjectsOffset", "DefineSliceOfDynamicObjectsContent", args, "SizeSliceOfDynamicObjects"}, nil
	default:
		return nil, fmt.Errorf("unsupported slice element type: %s", elem)
	}
}
