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

// Package codegen drives target-language emitters over a resolved
// toolman.Document. An Emitter never sees the compiler or the parser —
// only the Document and an io.Writer — so adding a target language
// never touches the resolution pipeline.
package codegen

import (
	"fmt"
	"io"

	"github.com/toolman-lang/toolman"
)

// Emitter is the before/after hook contract a target language
// implements. Generate calls the hooks in a fixed order: document,
// struct group, enum group, and finally the per-declaration Struct/Enum
// calls within each group, in the Document's declaration order.
//
// Grounded on original_source/src/generator.h's Generator base class,
// whose virtual before_generate_*/after_generate_* pairs bracket the
// per-declaration generate_struct/generate_enum calls the same way.
type Emitter interface {
	BeforeDocument(w io.Writer, doc *toolman.Document) error
	AfterDocument(w io.Writer, doc *toolman.Document) error

	BeforeStructs(w io.Writer, doc *toolman.Document) error
	Struct(w io.Writer, s *toolman.StructType) error
	AfterStructs(w io.Writer, doc *toolman.Document) error

	BeforeEnums(w io.Writer, doc *toolman.Document) error
	Enum(w io.Writer, e *toolman.EnumType) error
	AfterEnums(w io.Writer, doc *toolman.Document) error
}

// Generate drives e's hooks over doc, in the order:
// BeforeDocument, BeforeStructs, Struct(...)*, AfterStructs,
// BeforeEnums, Enum(...)*, AfterEnums, AfterDocument.
//
// It stops and returns the first error any hook produces; a partially
// written w may contain output from whichever hooks already ran.
func Generate(w io.Writer, doc *toolman.Document, e Emitter) error {
	if err := e.BeforeDocument(w, doc); err != nil {
		return fmt.Errorf("codegen: BeforeDocument: %w", err)
	}

	if err := e.BeforeStructs(w, doc); err != nil {
		return fmt.Errorf("codegen: BeforeStructs: %w", err)
	}
	for _, s := range doc.Structs {
		if err := e.Struct(w, s); err != nil {
			return fmt.Errorf("codegen: Struct(%s): %w", s.Name, err)
		}
	}
	if err := e.AfterStructs(w, doc); err != nil {
		return fmt.Errorf("codegen: AfterStructs: %w", err)
	}

	if err := e.BeforeEnums(w, doc); err != nil {
		return fmt.Errorf("codegen: BeforeEnums: %w", err)
	}
	for _, en := range doc.Enums {
		if err := e.Enum(w, en); err != nil {
			return fmt.Errorf("codegen: Enum(%s): %w", en.Name, err)
		}
	}
	if err := e.AfterEnums(w, doc); err != nil {
		return fmt.Errorf("codegen: AfterEnums: %w", err)
	}

	return e.AfterDocument(w, doc)
}

// noopHooks implements every Emitter hook as a no-op. Concrete emitters
// embed it and override only the hooks they need: all three shipped
// emitters implement Struct/Enum, and only GoEmitter also overrides
// BeforeDocument (for its package clause).
type noopHooks struct{}

func (noopHooks) BeforeDocument(io.Writer, *toolman.Document) error { return nil }
func (noopHooks) AfterDocument(io.Writer, *toolman.Document) error  { return nil }
func (noopHooks) BeforeStructs(io.Writer, *toolman.Document) error  { return nil }
func (noopHooks) AfterStructs(io.Writer, *toolman.Document) error   { return nil }
func (noopHooks) BeforeEnums(io.Writer, *toolman.Document) error    { return nil }
func (noopHooks) AfterEnums(io.Writer, *toolman.Document) error     { return nil }
