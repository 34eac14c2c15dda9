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

package docgen_test

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/toolman-lang/toolman/docgen"
)

func sampleRoot() *cobra.Command {
	root := &cobra.Command{Use: "toolman", Short: "Compile .tm schemas to target-language source"}

	compile := &cobra.Command{
		Use:   "compile <src.tm>",
		Short: "Compile a single schema file",
		Run:   func(*cobra.Command, []string) {},
	}
	compile.Flags().String("target", "go", "target language")
	compile.Flags().String("out", ".", "output directory")

	codegenCmd := &cobra.Command{
		Use:   "codegen",
		Short: "Compile a batch of schemas described by toolman.toml",
		Run:   func(*cobra.Command, []string) {},
	}
	codegenCmd.Flags().String("config", "toolman.toml", "project config path")

	root.AddCommand(compile, codegenCmd)
	return root
}

func TestBuildReferenceIncludesEverySubcommand(t *testing.T) {
	md := docgen.BuildReference(sampleRoot())

	for _, want := range []string{
		"# toolman",
		"## toolman compile",
		"## toolman codegen",
		"--target",
		"--config",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected reference markdown to contain %q, got:\n%s", want, md)
		}
	}
}

func TestRenderManProducesTroff(t *testing.T) {
	md := docgen.BuildReference(sampleRoot())
	troff := docgen.RenderMan([]byte(md))
	if len(troff) == 0 {
		t.Fatalf("expected non-empty troff output")
	}
	if !strings.Contains(string(troff), `.TH`) {
		t.Fatalf("expected troff output to contain a .TH header, got:\n%s", troff)
	}
}
