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

package codegen

import "strings"

// ToSnakeCase transforms a camelCase or PascalCase identifier to
// snake_case: aMultiWord -> a_multi_word, CamelCase -> camel_case, name
// -> name. Ported from original_source/src/generator.h's `underscore`.
func ToSnakeCase(in string) string {
	if in == "" {
		return in
	}
	var b strings.Builder
	b.WriteByte(lower(in[0]))
	for i := 1; i < len(in); i++ {
		c := in[i]
		if isUpper(c) {
			b.WriteByte('_')
			b.WriteByte(lower(c))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ToCamelCase transforms a snake_case identifier to camelCase:
// a_multi_word -> aMultiWord, some_name -> someName, name -> name.
// Ported from original_source/src/generator.h's `camelcase`.
func ToCamelCase(in string) string {
	var b strings.Builder
	upperNext := false
	for i := 0; i < len(in); i++ {
		c := in[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteByte(upper(c))
			upperNext = false
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Capitalize upper-cases the first byte of in, leaving the rest
// unchanged. Ported from original_source/src/generator.h's `capitalize`.
func Capitalize(in string) string {
	if in == "" {
		return in
	}
	return string(upper(in[0])) + in[1:]
}

// Decapitalize lower-cases the first byte of in, leaving the rest
// unchanged. Ported from original_source/src/generator.h's `decapitalize`.
func Decapitalize(in string) string {
	if in == "" {
		return in
	}
	return string(lower(in[0])) + in[1:]
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
