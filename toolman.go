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

// Package toolman holds the shared intermediate representation produced by
// compiling a .tm schema: types, literals, fields, and the resolved
// Document that per-target code emitters consume.
package toolman

// LineRange is an inclusive [start, end] pair of 1-based source lines.
type LineRange struct {
	Start uint32
	End   uint32
}

// ColumnRange is an inclusive [start, end] pair of 0-based byte offsets
// within a line's token span.
type ColumnRange struct {
	Start uint32
	End   uint32
}

// StmtInfo locates a construct in source: the lines and columns it spans,
// plus the path of the file it was declared in. Every Type and Field
// carries one.
type StmtInfo struct {
	Lines      LineRange
	Columns    ColumnRange
	SourcePath string
}
