// Copyright (c) 2020 the Toolman project authors.
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/toolman-lang/toolman/codegen"
	"github.com/toolman-lang/toolman/compiler"
)

// cmdCompile implements `toolman compile <src.tm> [--out=<dir>]
// [--target=go|ts|java]`, spec.md §6's CLI surface verbatim, wrapped in
// a subcommand per SPEC_FULL.md §4.12. Exit 0 on success, 1 on compile
// diagnostics, 2 on I/O or usage errors.
type cmdCompile struct {
	outDir string
	target string
}

func (*cmdCompile) help() *commandHelp {
	return &commandHelp{
		usage:   "compile <src.tm>",
		summary: "Compile a single schema file",
	}
}

func (cmd *cmdCompile) flags(flags *pflag.FlagSet) {
	flags.StringVar(&cmd.outDir, "out", ".", "directory to write generated source into")
	flags.StringVar(&cmd.target, "target", "go", "target language: go, ts, or java")
}

func (cmd *cmdCompile) run(_ context.Context, argv []string) int {
	if len(argv) < 1 {
		fmt.Fprintln(os.Stderr, "usage: toolman compile [--out=<dir>] [--target=go|ts|java] <src.tm>")
		return 2
	}
	srcPath := argv[0]

	emitter, outName, err := emitterForTarget(cmd.target, filepath.Base(srcPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	src, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	c := compiler.NewCompiler()
	result, err := c.CompileSource(srcPath, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if len(result.Errors) > 0 {
		for _, diag := range result.Errors {
			fmt.Fprintln(os.Stderr, diag.Error())
		}
		return 1
	}

	if err := os.MkdirAll(cmd.outDir, 0o777); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	outPath := filepath.Join(cmd.outDir, outName)
	fp, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	genErr := codegen.Generate(fp, result.Document, emitter)
	closeErr := fp.Close()
	if genErr != nil {
		fmt.Fprintln(os.Stderr, genErr)
		return 2
	}
	if closeErr != nil {
		fmt.Fprintln(os.Stderr, closeErr)
		return 2
	}
	return 0
}

// emitterForTarget resolves the --target flag to a codegen.Emitter and
// the output file name it should be written to.
func emitterForTarget(target, srcBase string) (codegen.Emitter, string, error) {
	stem := srcBase[:len(srcBase)-len(filepath.Ext(srcBase))]
	switch target {
	case "go":
		return codegen.NewGoEmitter(stem), stem + ".go", nil
	case "ts", "typescript":
		return codegen.NewTypeScriptEmitter(), stem + ".ts", nil
	case "java":
		return codegen.NewJavaEmitter(), stem + ".java", nil
	default:
		return nil, "", fmt.Errorf("toolman: unsupported --target %q (want go, ts, or java)", target)
	}
}
