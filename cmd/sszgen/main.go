// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command sszgen generates SizeSSZ/StaticSSZ/DefineSSZ method trios for Go
// structs, so hand-written container types don't need a manually maintained
// codec. Typical usage, via a go:generate directive in the target package:
//
//	//go:generate go run github.com/karalabe/ssz/cmd/sszgen -type Checkpoint,Eth1Data -out checkpoint_ssz.go
package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	var (
		typeFlag    = flag.String("type", "", "comma-separated list of struct types to generate a codec for (empty: every exported struct in the package)")
		outFlag     = flag.String("out", "", "output file (default: <package>_ssz.go in the current directory)")
		includeFlag = flag.String("include", ".", "import path or directory of the package to scan")
	)
	flag.Parse()

	if err := run(*typeFlag, *outFlag, *includeFlag); err != nil {
		log.Fatalf("sszgen: %v", err)
	}
}

func run(typeList, out, include string) error {
	var names []string
	if typeList != "" {
		names = strings.Split(typeList, ",")
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, include)
	if err != nil {
		return fmt.Errorf("loading package %s: %w", include, err)
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("expected exactly one package at %s, found %d", include, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return fmt.Errorf("package %s failed to type-check: %v", include, pkg.Errors[0])
	}
	log.Printf("sszgen: scanning %s", pkg.PkgPath)

	containers, err := parsePackage(pkg.Types, names)
	if err != nil {
		return err
	}
	log.Printf("sszgen: generating codecs for %d type(s)", len(containers))

	ctx := newGenContext(pkg.Types)
	var body [][]byte
	for _, container := range containers {
		code, err := generate(ctx, container)
		if err != nil {
			return fmt.Errorf("generating %s: %w", container.named.Obj().Name(), err)
		}
		body = append(body, code)
	}

	var raw []byte
	raw = append(raw, "// Code generated by github.com/karalabe/ssz/cmd/sszgen. DO NOT EDIT.\n\n"...)
	raw = append(raw, ctx.header()...)
	raw = append(raw, '\n')
	for _, b := range body {
		raw = append(raw, b...)
		raw = append(raw, '\n')
	}
	formatted, err := format.Source(raw)
	if err != nil {
		// Still write the unformatted source, it's far easier to debug a
		// generator bug by reading the raw output than a format error alone.
		formatted = raw
	}

	if out == "" {
		out = strings.ToLower(pkg.Name) + "_ssz.go"
	}
	if err := os.WriteFile(out, formatted, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	log.Printf("sszgen: wrote %s", out)
	return nil
}
