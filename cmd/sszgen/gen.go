// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"go/types"
	"sort"
)

const sszPkgPath = "github.com/karalabe/ssz"

// genContext tracks the imports a generated file needs, so the final output
// carries exactly the packages it references and nothing else.
type genContext struct {
	pkg     *types.Package
	imports map[string]string
}

func newGenContext(pkg *types.Package) *genContext {
	return &genContext{pkg: pkg, imports: make(map[string]string)}
}

func (ctx *genContext) addImport(path string, alias string) {
	if path == ctx.pkg.Path() {
		return
	}
	ctx.imports[path] = alias
}

func (ctx *genContext) header() []byte {
	var paths sort.StringSlice
	for path := range ctx.imports {
		paths = append(paths, path)
	}
	paths.Sort()

	var b bytes.Buffer
	fmt.Fprintf(&b, "package %s\n\n", ctx.pkg.Name())
	if len(paths) == 0 {
		return b.Bytes()
	}
	fmt.Fprint(&b, "import (\n")
	for _, path := range paths {
		if alias := ctx.imports[path]; alias != "" {
			fmt.Fprintf(&b, "\t%s %q\n", alias, path)
		} else {
			fmt.Fprintf(&b, "\t%q\n", path)
		}
	}
	fmt.Fprint(&b, ")\n")
	return b.Bytes()
}

// generate renders the StaticSSZ/SizeSSZ/DefineSSZ method trio for one
// container type.
func generate(ctx *genContext, typ *sszContainer) ([]byte, error) {
	var codes [][]byte
	for _, fn := range []func(ctx *genContext, typ *sszContainer) ([]byte, error){
		generateStaticSSZ,
		generateSizeSSZ,
		generateDefineSSZ,
	} {
		code, err := fn(ctx, typ)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return bytes.Join(codes, []byte("\n")), nil
}

func generateStaticSSZ(ctx *genContext, typ *sszContainer) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprint(&b, "// StaticSSZ returns whether the object is static in size.\n")
	fmt.Fprintf(&b, "func (obj *%s) StaticSSZ() bool { return %v }\n", typ.named.Obj().Name(), typ.static)
	return b.Bytes(), nil
}

// staticFieldSize renders the literal/expression that computes one static
// field's contribution to the struct's static section, in bytes.
func staticFieldSize(ctx *genContext, typ *sszContainer, i int) string {
	if n := typ.opsets[i].bytes(); n > 0 {
		return fmt.Sprintf("%d", n)
	}
	// Runtime-determined size: a nested static object or a fixed-length
	// array of static objects, resolved through a throwaway zero value.
	if ptr, ok := typ.types[i].(*types.Pointer); ok {
		return qualifiedSizeExpr(ctx, ptr.Elem().(*types.Named))
	}
	arr := typ.types[i].(*types.Array)
	elem := arr.Elem().(*types.Pointer).Elem().(*types.Named)
	return fmt.Sprintf("%d*%s", arr.Len(), qualifiedSizeExpr(ctx, elem))
}

func qualifiedSizeExpr(ctx *genContext, named *types.Named) string {
	pkg := named.Obj().Pkg()
	if pkg == nil || pkg.Path() == ctx.pkg.Path() {
		return fmt.Sprintf("(*%s)(nil).SizeSSZ()", named.Obj().Name())
	}
	ctx.addImport(pkg.Path(), "")
	return fmt.Sprintf("(*%s.%s)(nil).SizeSSZ()", pkg.Name(), named.Obj().Name())
}

func generateSizeSSZ(ctx *genContext, typ *sszContainer) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprint(&b, "// SizeSSZ returns the total size of the ssz object.\n")
	fmt.Fprintf(&b, "func (obj *%s) SizeSSZ() (size uint32) {\n", typ.named.Obj().Name())
	fmt.Fprint(&b, "\tsize = ")
	for i := range typ.opsets {
		if i > 0 {
			fmt.Fprint(&b, " + ")
		}
		if typ.opsets[i].sizeDynamic() != "" {
			fmt.Fprint(&b, "ssz.OffsetBytes")
		} else {
			fmt.Fprint(&b, staticFieldSize(ctx, typ, i))
		}
	}
	fmt.Fprint(&b, "\n")

	for i, field := range typ.fields {
		if helper := typ.opsets[i].sizeDynamic(); helper != "" {
			fmt.Fprintf(&b, "\tsize += ssz.%s(obj.%s)\n", helper, field)
		}
	}
	fmt.Fprint(&b, "\treturn size\n}\n")
	return b.Bytes(), nil
}

func generateDefineSSZ(ctx *genContext, typ *sszContainer) ([]byte, error) {
	var b bytes.Buffer

	ctx.addImport(sszPkgPath, "")

	fmt.Fprint(&b, "// DefineSSZ defines how an object is encoded/decoded.\n")
	fmt.Fprintf(&b, "func (obj *%s) DefineSSZ(codec *ssz.Codec) {\n", typ.named.Obj().Name())
	if !typ.static {
		fmt.Fprint(&b, "\tcodec.StartDynamics(")
		fmt.Fprint(&b, fixedSectionLength(ctx, typ))
		fmt.Fprint(&b, ")\n\n")
	}
	for i, field := range typ.fields {
		fmt.Fprintf(&b, "\t%s\n", typ.opsets[i].define(field))
		if typ.skipDecode[i] && typ.opsets[i].sizeDynamic() == "" {
			fmt.Fprintf(&b, "\t%s\n", skipDecodeHook(ctx, typ, i))
		}
	}
	if !typ.static {
		fmt.Fprint(&b, "\n")
		for i, field := range typ.fields {
			if call := typ.opsets[i].defineContent(field); call != "" {
				fmt.Fprintf(&b, "\t%s\n", call)
				if typ.skipDecode[i] {
					fmt.Fprintf(&b, "\t%s\n", skipDecodeHook(ctx, typ, i))
				}
			}
		}
	}
	fmt.Fprint(&b, "}\n")
	return b.Bytes(), nil
}

// skipDecodeHook renders the DefineDecoder call that resets a skip_decode
// field to its Go zero value after the codec has walked past its bytes on
// the wire, using the same asymmetric-encoder/decoder escape hatch the
// Codec exposes for hand-written custom conversions.
func skipDecodeHook(ctx *genContext, typ *sszContainer, i int) string {
	field := typ.fields[i]
	qualifier := func(pkg *types.Package) string {
		if pkg == nil || pkg.Path() == ctx.pkg.Path() {
			return ""
		}
		ctx.addImport(pkg.Path(), "")
		return pkg.Name()
	}
	zero := types.TypeString(typ.types[i], qualifier)
	return fmt.Sprintf("codec.DefineDecoder(func(dec *ssz.Decoder) { obj.%s = *new(%s) })", field, zero)
}

// fixedSectionLength renders the literal total width, in bytes, of the
// struct's fixed section (every static field's own size, plus one 4-byte
// offset placeholder per dynamic field).
func fixedSectionLength(ctx *genContext, typ *sszContainer) string {
	var parts []string
	for i := range typ.opsets {
		if typ.opsets[i].sizeDynamic() != "" {
			parts = append(parts, "ssz.OffsetBytes")
		} else {
			parts = append(parts, staticFieldSize(ctx, typ, i))
		}
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " + " + p
	}
	return out
}
