// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"go/types"
)

// sszContainer describes a single Go struct type that the generator emits a
// SizeSSZ/StaticSSZ/DefineSSZ trio for. The four slices are kept in lockstep,
// one entry per ssz-eligible field, in declaration order.
type sszContainer struct {
	named *types.Named

	fields     []string     // exported Go field name
	types      []types.Type // field's Go type, for sizing static byte/array fields
	opsets     []opset      // dispatcher picked for the field
	skipDecode []bool       // ssz:"skip_decode": field is written but not read back

	static bool // true if every field is static, i.e. the whole struct is
}

// parseContext carries the state shared while walking every container of a
// single package: the package being analyzed and a staticness memo to avoid
// re-deriving the same nested type's shape over and over.
type parseContext struct {
	pkg         *types.Package
	staticCache map[*types.Named]bool
}

// parsePackage builds one sszContainer per requested type name. An empty
// names list processes every exported top-level struct in the package.
func parsePackage(pkg *types.Package, names []string) ([]*sszContainer, error) {
	if len(names) == 0 {
		for _, n := range pkg.Scope().Names() {
			obj := pkg.Scope().Lookup(n)
			if tn, ok := obj.(*types.TypeName); ok && tn.Exported() {
				if _, ok := tn.Type().Underlying().(*types.Struct); ok {
					names = append(names, n)
				}
			}
		}
	}
	ctx := &parseContext{pkg: pkg, staticCache: make(map[*types.Named]bool)}

	containers := make([]*sszContainer, 0, len(names))
	for _, name := range names {
		named, err := lookupType(pkg.Scope(), name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		strct, ok := named.Underlying().(*types.Struct)
		if !ok {
			return nil, fmt.Errorf("%s: not a struct type", name)
		}
		container, err := ctx.buildContainer(named, strct)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		containers = append(containers, container)
	}
	return containers, nil
}

// lookupType resolves a plain identifier to the named type it declares.
func lookupType(scope *types.Scope, name string) (*types.Named, error) {
	obj := scope.Lookup(name)
	if obj == nil {
		return nil, errors.New("no such identifier in package")
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, errors.New("identifier is not a type")
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, errors.New("identifier is not a named type")
	}
	return named, nil
}

func (p *parseContext) buildContainer(named *types.Named, strct *types.Struct) (*sszContainer, error) {
	container := &sszContainer{named: named, static: true}

	for i := 0; i < strct.NumFields(); i++ {
		field := strct.Field(i)
		if !field.Exported() {
			continue
		}
		tag, err := parseTag(strct.Tag(i))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name(), err)
		}
		if tag.skip {
			continue
		}
		os, err := p.resolveOpset(field.Type(), tag)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name(), err)
		}
		if os.sizeDynamic() != "" {
			container.static = false
		}
		container.fields = append(container.fields, field.Name())
		container.types = append(container.types, field.Type())
		container.opsets = append(container.opsets, os)
		container.skipDecode = append(container.skipDecode, tag.skipDecode)
	}
	if len(container.fields) == 0 {
		return nil, errors.New("container needs at least one named (non-skipped) field")
	}
	return container, nil
}
