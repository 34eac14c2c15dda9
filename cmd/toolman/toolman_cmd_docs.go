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

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toolman-lang/toolman/docgen"
)

// cmdDocs implements `toolman docs man`, rendering the CLI reference
// built from root's own command tree to a troff man page (C13).
type cmdDocs struct {
	outPath string
	root    *cobra.Command
}

func (*cmdDocs) help() *commandHelp {
	return &commandHelp{
		usage:   "docs man",
		summary: "Render the CLI reference to a man page",
	}
}

func (cmd *cmdDocs) flags(flags *pflag.FlagSet) {
	flags.StringVar(&cmd.outPath, "out", "", "file to write the man page to (default: stdout)")
}

func (cmd *cmdDocs) run(_ context.Context, argv []string) int {
	if len(argv) < 1 || argv[0] != "man" {
		fmt.Fprintln(os.Stderr, "usage: toolman docs man [--out=<file>]")
		return 2
	}

	markdown := docgen.BuildReference(cmd.root)
	troff := docgen.RenderMan([]byte(markdown))

	if cmd.outPath == "" {
		if _, err := os.Stdout.Write(troff); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		return 0
	}
	if err := os.WriteFile(cmd.outPath, troff, 0o666); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return 0
}
