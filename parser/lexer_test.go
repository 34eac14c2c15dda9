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

import "testing"

func TestLexerKeywordsAndPunctuation(t *testing.T) {
	toks := newLexer(`pub struct S { x: i32? = 5; }`).tokenize()

	want := []TokenKind{
		TokenKwPub, TokenKwStruct, TokenIdent, TokenLBrace,
		TokenIdent, TokenColon, TokenKwI32, TokenQuestion, TokenEquals, TokenInt, TokenSemicolon,
		TokenRBrace, TokenEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got kind %d, want %d (%q)", i, toks[i].Kind, k, toks[i].Text)
		}
	}
}

func TestLexerDocVsLineComment(t *testing.T) {
	toks := newLexer("/// doc\n// plain\nid").tokenize()
	if toks[0].Kind != TokenDocComment {
		t.Fatalf("expected first token to be a doc comment, got %+v", toks[0])
	}
	if toks[1].Kind != TokenLineComment {
		t.Fatalf("expected second token to be a plain comment, got %+v", toks[1])
	}
}

func TestLexerStringEscapes(t *testing.T) {
	toks := newLexer(`"hello\nworld"`).tokenize()
	if toks[0].Kind != TokenString || toks[0].Text != "hello\nworld" {
		t.Fatalf("unexpected string token: %+v", toks[0])
	}
}

func TestLexerFloatVsInt(t *testing.T) {
	toks := newLexer(`5 5.5 -3`).tokenize()
	if toks[0].Kind != TokenInt || toks[1].Kind != TokenFloat || toks[2].Kind != TokenInt {
		t.Fatalf("unexpected number kinds: %+v", toks[:3])
	}
	if toks[2].Text != "-3" {
		t.Fatalf("expected negative int text, got %q", toks[2].Text)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := newLexer(`"unterminated`)
	l.tokenize()
	if len(l.errs) == 0 {
		t.Fatalf("expected an error for the unterminated string")
	}
}
