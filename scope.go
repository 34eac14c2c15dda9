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

import "slices"

// Scope is a named lookup of declared types within one compiled file.
// Insertion is once: redeclaring a name leaves the scope unmodified and
// hands the caller the prior entry so it can report DuplicateDecl.
//
// A Type handle returned by Declare/Lookup is shared: every reference to
// the same declared name within a compilation resolves to the identical
// pointer, which is what makes Type.Equals reduce to identity for
// StructType/EnumType (invariant §3.5).
type Scope struct {
	names map[string]Type
	order []string
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{names: make(map[string]Type)}
}

// Declare inserts name -> t. If name is already declared, Declare does
// not mutate the scope and returns (prior, false) so the caller can build
// a DuplicateDecl diagnostic referencing prior's StmtInfo. Otherwise it
// returns (t, true).
func (s *Scope) Declare(name string, t Type) (prior Type, inserted bool) {
	if existing, ok := s.names[name]; ok {
		return existing, false
	}
	s.names[name] = t
	s.order = append(s.order, name)
	return t, true
}

// Lookup returns the type declared under name, if any.
func (s *Scope) Lookup(name string) (Type, bool) {
	t, ok := s.names[name]
	return t, ok
}

// Names returns every declared name, in declaration order.
func (s *Scope) Names() []string {
	return slices.Clone(s.order)
}

// Merge copies every entry of other into s, reporting each name already
// present in s to the conflict callback (used for import resolution:
// collisions become DuplicateDecl diagnostics, see compiler.Compiler).
func (s *Scope) Merge(other *Scope, conflict func(name string, prior, incoming Type)) {
	for _, name := range other.order {
		incoming := other.names[name]
		if prior, ok := s.names[name]; ok {
			conflict(name, prior, incoming)
			continue
		}
		s.names[name] = incoming
		s.order = append(s.order, name)
	}
}
