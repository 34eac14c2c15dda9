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
	"github.com/toolman-lang/toolman/project"
)

// cmdCodegen implements `toolman codegen --config=toolman.toml`: batch
// mode driven by project.Config (SPEC_FULL.md §4.11/§4.12), compiling
// and emitting every configured unit in one invocation.
type cmdCodegen struct {
	configPath string
}

func (*cmdCodegen) help() *commandHelp {
	return &commandHelp{
		usage:   "codegen",
		summary: "Compile every unit described by a toolman.toml project file",
	}
}

func (cmd *cmdCodegen) flags(flags *pflag.FlagSet) {
	flags.StringVar(&cmd.configPath, "config", "toolman.toml", "path to the project config file")
}

func (cmd *cmdCodegen) run(_ context.Context, _ []string) int {
	cfg, err := project.Load(cmd.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	hadCompileErrors := false
	for _, unit := range cfg.Units {
		if !cmd.runUnit(cfg, unit, &hadCompileErrors) {
			return 2
		}
	}
	if hadCompileErrors {
		return 1
	}
	return 0
}

// runUnit compiles and emits one unit, returning false on a fatal
// (I/O) error. Compile diagnostics do not abort the batch — they are
// reported and tracked in hadCompileErrors so remaining units still
// run, matching the "continue with best effort" recovery policy.
func (cmd *cmdCodegen) runUnit(cfg *project.Config, unit project.Unit, hadCompileErrors *bool) bool {
	srcPath := cfg.SourcePath(unit)
	src, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}

	result, err := compiler.NewCompiler().CompileSource(srcPath, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	if len(result.Errors) > 0 {
		for _, diag := range result.Errors {
			fmt.Fprintln(os.Stderr, diag.Error())
		}
		*hadCompileErrors = true
		return true
	}

	outDir := cfg.OutDirPath(unit)
	if err := os.MkdirAll(outDir, 0o777); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}

	stem := filepath.Base(srcPath)
	stem = stem[:len(stem)-len(filepath.Ext(stem))]

	for _, target := range unit.Targets {
		emitter, outName, err := emitterForTarget(string(target), stem+".tm")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		fp, err := os.Create(filepath.Join(outDir, outName))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		genErr := codegen.Generate(fp, result.Document, emitter)
		closeErr := fp.Close()
		if genErr != nil {
			fmt.Fprintln(os.Stderr, genErr)
			return false
		}
		if closeErr != nil {
			fmt.Fprintln(os.Stderr, closeErr)
			return false
		}
	}
	return true
}
