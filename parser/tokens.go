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

package parser

import "fmt"

// TokenKind enumerates the lexical categories of .tm source.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenInt
	TokenFloat
	TokenString
	TokenDocComment
	TokenLineComment
	// punctuation / keywords are their own kinds so the parser can switch
	// on Kind directly instead of re-comparing Text everywhere.
	TokenLBrace    // {
	TokenRBrace    // }
	TokenLBracket  // [
	TokenRBracket  // ]
	TokenColon     // :
	TokenSemicolon // ;
	TokenComma     // ,
	TokenEquals    // =
	TokenQuestion  // ?

	TokenKwPub
	TokenKwStruct
	TokenKwEnum
	TokenKwImport
	TokenKwTrue
	TokenKwFalse
	TokenKwBool
	TokenKwI32
	TokenKwU32
	TokenKwI64
	TokenKwU64
	TokenKwF32
	TokenKwF64
	TokenKwString
	TokenKwAny
)

var keywords = map[string]TokenKind{
	"pub":    TokenKwPub,
	"struct": TokenKwStruct,
	"enum":   TokenKwEnum,
	"import": TokenKwImport,
	"true":   TokenKwTrue,
	"false":  TokenKwFalse,
	"bool":   TokenKwBool,
	"i32":    TokenKwI32,
	"u32":    TokenKwU32,
	"i64":    TokenKwI64,
	"u64":    TokenKwU64,
	"f32":    TokenKwF32,
	"f64":    TokenKwF64,
	"string": TokenKwString,
	"any":    TokenKwAny,
}

// Token is one lexed unit: its kind, literal text, and source position.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   uint32
	Column uint32 // 0-based byte offset within Line's source line
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %q", t.Line, t.Column, t.Text)
}
