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

// Package project loads toolman.toml: the batch-mode configuration for
// compiling a tree of .tm schemas without a flag per unit on the
// command line.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Target is a recognized codegen output language.
type Target string

const (
	TargetGo         Target = "go"
	TargetTypeScript Target = "typescript"
	TargetJava       Target = "java"
)

func (t Target) valid() bool {
	switch t {
	case TargetGo, TargetTypeScript, TargetJava:
		return true
	default:
		return false
	}
}

// Unit is one [[unit]] table: a single .tm source file, the targets to
// emit it as, and the directory to write generated output into.
type Unit struct {
	Source  string   `toml:"source"`
	Targets []Target `toml:"targets"`
	OutDir  string   `toml:"out_dir"`
}

// Config is the parsed form of a toolman.toml file: one or more
// compilation units. Grounded on chazu-maggie/manifest.Manifest's
// Load/FindAndLoad shape (toml.Unmarshal into a struct, then resolve
// paths relative to the config file's own directory).
type Config struct {
	Units []Unit `toml:"unit"`

	// Dir is the directory containing the loaded toolman.toml, used to
	// resolve every Unit.Source/OutDir relative to it. Set by Load.
	Dir string `toml:"-"`
}

// Load parses the toolman.toml file at path and validates its
// structure (at least one unit; per unit a non-empty source and at
// least one target, every target recognized) — see spec.md's note that project.Config performs only
// structural validation, not compiler's semantic checks.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("project: parse %s: %w", path, err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("project: resolve directory of %s: %w", path, err)
	}
	cfg.Dir = dir

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Units) == 0 {
		return fmt.Errorf("project: toolman.toml declares no [[unit]] entries")
	}
	for i, u := range c.Units {
		if u.Source == "" {
			return fmt.Errorf("project: unit %d: source is required", i)
		}
		if len(u.Targets) == 0 {
			return fmt.Errorf("project: unit %d (%s): at least one target is required", i, u.Source)
		}
		for _, t := range u.Targets {
			if !t.valid() {
				return fmt.Errorf("project: unit %d (%s): unrecognized target %q", i, u.Source, t)
			}
		}
	}
	return nil
}

// SourcePath returns u's schema path resolved against cfg's directory.
func (c *Config) SourcePath(u Unit) string {
	return filepath.Join(c.Dir, u.Source)
}

// OutDirPath returns u's output directory resolved against cfg's
// directory, defaulting to cfg's own directory when OutDir is unset.
func (c *Config) OutDirPath(u Unit) string {
	if u.OutDir == "" {
		return c.Dir
	}
	return filepath.Join(c.Dir, u.OutDir)
}
