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

// Package docgen renders the toolman CLI reference to a man page: a
// markdown document built from the cobra command tree, converted to
// troff the same way uplang-go's own CLI documentation is built.
package docgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
)

// BuildReference walks root's command tree and renders one markdown
// section per command, in the shape `toolman docs man` feeds to
// RenderMan: a level-1 heading for root, a level-2 heading per direct
// subcommand, its usage line, and its flag summary.
func BuildReference(root *cobra.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", root.Name(), root.Short)

	cmds := append([]*cobra.Command(nil), root.Commands()...)
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })

	for _, cmd := range cmds {
		if !cmd.IsAvailableCommand() {
			continue
		}
		writeCommandSection(&b, cmd)
	}
	return b.String()
}

func writeCommandSection(b *strings.Builder, cmd *cobra.Command) {
	fmt.Fprintf(b, "## %s\n\n", cmd.CommandPath())
	if cmd.Short != "" {
		fmt.Fprintf(b, "%s\n\n", cmd.Short)
	}
	fmt.Fprintf(b, "```\n%s\n```\n\n", cmd.UseLine())

	flagUsage := cmd.Flags().FlagUsages()
	if strings.TrimSpace(flagUsage) != "" {
		b.WriteString("Flags:\n\n```\n")
		b.WriteString(flagUsage)
		b.WriteString("```\n\n")
	}
}

// RenderMan converts a markdown CLI reference (as produced by
// BuildReference) to troff, ready to write to a `.1`/`.8` man page
// file.
func RenderMan(markdown []byte) []byte {
	return md2man.Render(markdown)
}
