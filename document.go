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

package toolman

// Document is the output root of a compilation: the resolved struct and
// enum declarations of one source file, in declaration order. Emitters
// (package codegen) consume a *Document read-only.
type Document struct {
	Structs []*StructType
	Enums   []*EnumType
	Source  string
}

// PushStruct appends a completed struct to the document.
func (d *Document) PushStruct(s *StructType) {
	d.Structs = append(d.Structs, s)
}

// PushEnum appends a completed enum to the document.
func (d *Document) PushEnum(e *EnumType) {
	d.Enums = append(d.Enums, e)
}

// StructByName returns the struct with the given name, if any.
func (d *Document) StructByName(name string) (*StructType, bool) {
	for _, s := range d.Structs {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// EnumByName returns the enum with the given name, if any.
func (d *Document) EnumByName(name string) (*EnumType, bool) {
	for _, e := range d.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}
