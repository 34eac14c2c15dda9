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

package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/toolman-lang/toolman/project"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "toolman.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
[[unit]]
source = "schemas/account.tm"
targets = ["go", "typescript"]
out_dir = "gen"

[[unit]]
source = "schemas/billing.tm"
targets = ["java"]
`)

	cfg, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(cfg.Units))
	}

	u := cfg.Units[0]
	wantSource := filepath.Join(cfg.Dir, "schemas/account.tm")
	if got := cfg.SourcePath(u); got != wantSource {
		t.Fatalf("SourcePath = %q, want %q", got, wantSource)
	}
	wantOut := filepath.Join(cfg.Dir, "gen")
	if got := cfg.OutDirPath(u); got != wantOut {
		t.Fatalf("OutDirPath = %q, want %q", got, wantOut)
	}

	u2 := cfg.Units[1]
	if got := cfg.OutDirPath(u2); got != cfg.Dir {
		t.Fatalf("expected default OutDirPath to be the config directory, got %q", got)
	}
}

func TestLoadRejectsEmptySource(t *testing.T) {
	path := writeConfig(t, `
[[unit]]
targets = ["go"]
`)
	if _, err := project.Load(path); err == nil {
		t.Fatalf("expected an error for a unit with no source")
	}
}

func TestLoadRejectsUnknownTarget(t *testing.T) {
	path := writeConfig(t, `
[[unit]]
source = "schemas/account.tm"
targets = ["cobol"]
`)
	if _, err := project.Load(path); err == nil {
		t.Fatalf("expected an error for an unrecognized target")
	}
}

func TestLoadRejectsNoUnits(t *testing.T) {
	path := writeConfig(t, `# empty config`)
	if _, err := project.Load(path); err == nil {
		t.Fatalf("expected an error for a config with no units")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := project.Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
