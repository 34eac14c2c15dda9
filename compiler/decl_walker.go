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

package compiler

import (
	"github.com/toolman-lang/toolman"
	"github.com/toolman-lang/toolman/parser"
)

// walkDecls is the declaration phase (spec §4.5): it visits only the
// document's top-level structDecl/enumDecl nodes, giving each an opaque
// handle in scope without resolving any field type or literal. It never
// descends into fields — a struct's own members can reference names
// declared later in the same file or in a sibling import, so nothing
// about a field can be resolved until every top-level name exists.
//
// Each handle declared here is later populated in place by the reference
// phase (refWalker).
func walkDecls(doc *parser.Document, scope *toolman.Scope, sourcePath string) []*Error {
	var errs []*Error
	for _, decl := range doc.Decls {
		switch d := decl.(type) {
		case *parser.StructDecl:
			info := stmtInfo(d.Name.SpanVal, sourcePath)
			handle := &toolman.StructType{Name: d.Name.Name, IsPublic: d.Public, Info: info}
			if prior, inserted := scope.Declare(d.Name.Name, handle); !inserted {
				errs = append(errs, errDuplicateDecl(d.Name.Name, prior.StmtInfo(), info))
			}
		case *parser.EnumDecl:
			info := stmtInfo(d.Name.SpanVal, sourcePath)
			handle := &toolman.EnumType{Name: d.Name.Name, IsPublic: d.Public, Info: info}
			if prior, inserted := scope.Declare(d.Name.Name, handle); !inserted {
				errs = append(errs, errDuplicateDecl(d.Name.Name, prior.StmtInfo(), info))
			}
		}
	}
	return errs
}

func stmtInfo(span parser.Span, sourcePath string) toolman.StmtInfo {
	return toolman.StmtInfo{
		Lines:      span.Lines,
		Columns:    span.Columns,
		SourcePath: sourcePath,
	}
}
