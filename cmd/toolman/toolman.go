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
)

// command is the shape every toolman subcommand implements: its own
// flag set plus a run entry point returning the process exit code.
// Grounded on bin/idol/idol.go's command interface — a thin adapter
// that lets each subcommand own its flags/exit-code logic while cobra
// only handles usage text and dispatch.
type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, argv []string) int
}

type commandHelp struct {
	usage   string
	summary string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	root := &cobra.Command{
		Use:   "toolman COMMAND [options]",
		Short: "Compile .tm schemas into Go, TypeScript, or Java source",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, root.UsageString())
		return errUsage
	}

	exitCode := 0
	commands := []command{
		&cmdCompile{},
		&cmdCodegen{},
		&cmdDocs{root: root},
	}
	for _, cmd := range commands {
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			RunE: func(_ *cobra.Command, args []string) error {
				exitCode = cmd.run(ctx, args)
				return nil
			},
		}
		cmd.flags(cobraCmd.Flags())
		root.AddCommand(cobraCmd)
	}

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if err == errUsage {
			return 2
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return exitCode
}

var errUsage = fmt.Errorf("toolman: no command given")
