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
	"fmt"
	"strings"

	"github.com/toolman-lang/toolman"
)

// ErrorKind is one of the diagnostic kinds spec §7 names. FileNotFound
// and ImportCycle are fatal (returned directly, not accumulated); every
// other kind is non-fatal and collected onto a CompileResult.
type ErrorKind uint8

const (
	KindFileNotFound ErrorKind = iota
	KindParseError
	KindDuplicateDecl
	KindCustomTypeNotFound
	KindMapKeyTypeMustBePrimitive
	KindLiteralElementTypeMismatch
	KindDuplicateFieldName
	KindDuplicateEnumVariant
	KindDuplicateEnumValue
	KindImportCycle
)

func (k ErrorKind) String() string {
	switch k {
	case KindFileNotFound:
		return "FileNotFound"
	case KindParseError:
		return "ParseError"
	case KindDuplicateDecl:
		return "DuplicateDecl"
	case KindCustomTypeNotFound:
		return "CustomTypeNotFound"
	case KindMapKeyTypeMustBePrimitive:
		return "MapKeyTypeMustBePrimitive"
	case KindLiteralElementTypeMismatch:
		return "LiteralElementTypeMismatch"
	case KindDuplicateFieldName:
		return "DuplicateFieldName"
	case KindDuplicateEnumVariant:
		return "DuplicateEnumVariant"
	case KindDuplicateEnumValue:
		return "DuplicateEnumValue"
	case KindImportCycle:
		return "ImportCycle"
	default:
		return "Unknown"
	}
}

// Error is a toolman diagnostic: a kind, a human message, the StmtInfo of
// the construct it concerns, and (for duplicate-style kinds) the StmtInfo
// of the prior declaration it conflicts with. It formats itself as the
// CLI surface (spec §6) requires: "path:line:col: kind: message".
type Error struct {
	Kind    ErrorKind
	Message string
	Info    toolman.StmtInfo
	Prior   *toolman.StmtInfo
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	return fmt.Sprintf(
		"%s:%d:%d: %s: %s",
		e.Info.SourcePath, e.Info.Lines.Start, e.Info.Columns.Start,
		e.Kind, e.Message,
	)
}

func displayType(t toolman.Type) string {
	if t == nil {
		return "?"
	}
	return t.Display()
}

func errFileNotFound(path string) *Error {
	return &Error{
		Kind:    KindFileNotFound,
		Message: fmt.Sprintf("no such file %q", path),
		Info:    toolman.StmtInfo{SourcePath: path},
	}
}

func errImportCycle(chain []string) *Error {
	return &Error{
		Kind:    KindImportCycle,
		Message: fmt.Sprintf("import cycle: %s", strings.Join(chain, " -> ")),
		Info:    toolman.StmtInfo{SourcePath: chain[len(chain)-1]},
	}
}

func errParseError(message string, info toolman.StmtInfo) *Error {
	return &Error{Kind: KindParseError, Message: message, Info: info}
}

func errDuplicateDecl(name string, prior, second toolman.StmtInfo) *Error {
	return &Error{
		Kind:    KindDuplicateDecl,
		Message: fmt.Sprintf("%q is already declared at %s:%d", name, prior.SourcePath, prior.Lines.Start),
		Info:    second,
		Prior:   &prior,
	}
}

func errCustomTypeNotFound(name string, info toolman.StmtInfo, suggestion string) *Error {
	msg := fmt.Sprintf("type %q not found", name)
	if suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return &Error{Kind: KindCustomTypeNotFound, Message: msg, Info: info}
}

func errMapKeyTypeMustBePrimitive(found toolman.Type, info toolman.StmtInfo) *Error {
	return &Error{
		Kind:    KindMapKeyTypeMustBePrimitive,
		Message: fmt.Sprintf("map key type must be primitive, found `%s`", displayType(found)),
		Info:    info,
	}
}

func errLiteralElementTypeMismatch(expected, found toolman.Type, info toolman.StmtInfo) *Error {
	return &Error{
		Kind: KindLiteralElementTypeMismatch,
		Message: fmt.Sprintf(
			"mismatched types: expected `%s`, found `%s`",
			displayType(expected), displayType(found),
		),
		Info: info,
	}
}

func errDuplicateFieldName(name string, prior, second toolman.StmtInfo) *Error {
	return &Error{
		Kind:    KindDuplicateFieldName,
		Message: fmt.Sprintf("field %q already declared at line %d", name, prior.Lines.Start),
		Info:    second,
		Prior:   &prior,
	}
}

func errDuplicateEnumVariant(name string, prior, second toolman.StmtInfo) *Error {
	return &Error{
		Kind:    KindDuplicateEnumVariant,
		Message: fmt.Sprintf("variant %q already declared at line %d", name, prior.Lines.Start),
		Info:    second,
		Prior:   &prior,
	}
}

func errDuplicateEnumValue(value int64, prior, second toolman.StmtInfo) *Error {
	return &Error{
		Kind:    KindDuplicateEnumValue,
		Message: fmt.Sprintf("value %d already used at line %d", value, prior.Lines.Start),
		Info:    second,
		Prior:   &prior,
	}
}
