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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toolman-lang/toolman"
)

// Parse tokenizes and parses .tm source text into a *Document. It always
// returns a tree — even a partially built one when errs is non-empty —
// so callers (the compiler's walkers) can keep going and surface further
// diagnostics in the same pass.
func Parse(src []byte) (*Document, []*ParseError) {
	lex := newLexer(string(src))
	toks := lex.tokenize()

	// Doc/line comments are not part of the grammar's expression tree;
	// strip them out here and remember which ones immediately precede
	// each token so parseStructField can claim them.
	p := &parser{toks: filterComments(toks)}
	doc := p.parseDocument()
	return doc, append(lex.errs, p.errs...)
}

func filterComments(toks []Token) []Token {
	var out []Token
	var pendingDoc []string
	for _, t := range toks {
		switch t.Kind {
		case TokenLineComment:
			pendingDoc = nil // a plain // comment breaks a doc run
		case TokenDocComment:
			pendingDoc = append(pendingDoc, strings.TrimSpace(strings.TrimPrefix(t.Text, "///")))
		default:
			if len(pendingDoc) > 0 {
				out = append(out, Token{Kind: tokenDocMarker, Text: strings.Join(pendingDoc, "\n"), Line: t.Line, Column: t.Column})
				pendingDoc = nil
			}
			out = append(out, t)
		}
	}
	return out
}

// tokenDocMarker is a synthetic kind produced only by filterComments,
// carrying the joined text of the doc comment run immediately preceding
// the next real token.
const tokenDocMarker TokenKind = 255

type parser struct {
	toks []Token
	pos  int
	errs []*ParseError
}

func (p *parser) peek() Token {
	// Skip over any pending doc marker without consuming it; callers that
	// care about doc comments call takeDocComments first.
	i := p.pos
	if i < len(p.toks) && p.toks[i].Kind == tokenDocMarker {
		i++
	}
	if i >= len(p.toks) {
		return Token{Kind: TokenEOF}
	}
	return p.toks[i]
}

func (p *parser) takeDocComments() []string {
	if p.pos < len(p.toks) && p.toks[p.pos].Kind == tokenDocMarker {
		text := p.toks[p.pos].Text
		p.pos++
		return strings.Split(text, "\n")
	}
	return nil
}

func (p *parser) advance() Token {
	if p.pos < len(p.toks) && p.toks[p.pos].Kind == tokenDocMarker {
		p.pos++
	}
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) errorf(span Span, format string, args ...any) {
	p.errs = append(p.errs, &ParseError{Message: fmt.Sprintf(format, args...), Span: span})
}

func (p *parser) expect(kind TokenKind, what string) (Token, bool) {
	t := p.peek()
	if t.Kind != kind {
		p.errorf(spanOf(t, t), "expected %s, found %q", what, t.Text)
		return t, false
	}
	return p.advance(), true
}

func (p *parser) parseDocument() *Document {
	doc := &Document{}
	start := p.peek()
	for p.peek().Kind == TokenKwImport {
		doc.Imports = append(doc.Imports, p.parseImport())
	}
	for {
		switch p.peek().Kind {
		case TokenEOF:
			end := p.peek()
			doc.SpanVal = spanOf(start, end)
			return doc
		case TokenKwPub:
			// `pub` prefixes both structs and enums: look one real token
			// past it to pick the production.
			i := p.pos
			if i < len(p.toks) && p.toks[i].Kind == tokenDocMarker {
				i++
			}
			if i+1 < len(p.toks) && p.toks[i+1].Kind == TokenKwEnum {
				doc.Decls = append(doc.Decls, p.parseEnumDecl())
			} else {
				doc.Decls = append(doc.Decls, p.parseStructDecl())
			}
		case TokenKwStruct:
			doc.Decls = append(doc.Decls, p.parseStructDecl())
		case TokenKwEnum:
			doc.Decls = append(doc.Decls, p.parseEnumDecl())
		default:
			bad := p.advance()
			p.errorf(spanOf(bad, bad), "expected 'struct' or 'enum', found %q", bad.Text)
		}
	}
}

func (p *parser) parseImport() *Import {
	kw := p.advance() // 'import'
	pathTok, _ := p.expect(TokenString, "import path string")
	end := pathTok
	if semi, ok := p.expect(TokenSemicolon, "';'"); ok {
		end = semi
	}
	return &Import{SpanVal: spanOf(kw, end), Path: pathTok.Text}
}

func (p *parser) parseIdent() *Ident {
	t, _ := p.expect(TokenIdent, "identifier")
	return &Ident{SpanVal: spanOf(t, t), Name: t.Text}
}

func (p *parser) parseStructDecl() *StructDecl {
	start := p.peek()
	public := false
	if p.peek().Kind == TokenKwPub {
		p.advance()
		public = true
	}
	p.expect(TokenKwStruct, "'struct'")
	name := p.parseIdent()
	p.expect(TokenLBrace, "'{'")

	var fields []*StructField
	for p.peek().Kind != TokenRBrace && p.peek().Kind != TokenEOF {
		fields = append(fields, p.parseStructField())
	}
	end, _ := p.expect(TokenRBrace, "'}'")

	return &StructDecl{
		SpanVal: spanOf(start, end),
		Public:  public,
		Name:    name,
		Fields:  fields,
	}
}

func (p *parser) parseStructField() *StructField {
	docs := p.takeDocComments()
	start := p.peek()
	name := p.parseIdent()

	optional := false
	if p.peek().Kind == TokenQuestion {
		p.advance()
		optional = true
	}
	p.expect(TokenColon, "':'")
	fieldType := p.parseFieldType()

	var init *StructFieldInit
	if p.peek().Kind == TokenEquals {
		p.advance()
		init = p.parseStructFieldInit()
	}

	end := p.peek()
	if p.peek().Kind == TokenSemicolon {
		end = p.advance()
	}

	return &StructField{
		SpanVal:     spanOf(start, end),
		DocComments: docs,
		Name:        name,
		Optional:    optional,
		Type:        fieldType,
		Init:        init,
	}
}

func (p *parser) parseFieldType() *FieldType {
	start := p.peek()
	ft := &FieldType{}
	switch start.Kind {
	case TokenKwBool, TokenKwI32, TokenKwU32, TokenKwI64, TokenKwU64, TokenKwF32, TokenKwF64, TokenKwString, TokenKwAny:
		tok := p.advance()
		ft.Primitive = &PrimitiveType{SpanVal: spanOf(tok, tok), PrimKind: primitiveKindOf(tok.Kind)}
	case TokenIdent:
		id := p.parseIdent()
		ft.Custom = &CustomTypeName{SpanVal: id.SpanVal, Name: id}
	case TokenLBracket:
		ft.List = p.parseListType()
	case TokenLBrace:
		ft.Map = p.parseMapType()
	default:
		bad := p.advance()
		p.errorf(spanOf(bad, bad), "expected a type, found %q", bad.Text)
		ft.Primitive = &PrimitiveType{SpanVal: spanOf(bad, bad), PrimKind: toolman.Any}
	}
	ft.SpanVal = spanOf(start, p.prevToken())
	return ft
}

func (p *parser) prevToken() Token {
	i := p.pos - 1
	for i >= 0 && p.toks[i].Kind == tokenDocMarker {
		i--
	}
	if i < 0 {
		return Token{}
	}
	return p.toks[i]
}

func primitiveKindOf(k TokenKind) toolman.PrimitiveKind {
	switch k {
	case TokenKwBool:
		return toolman.Bool
	case TokenKwI32:
		return toolman.I32
	case TokenKwU32:
		return toolman.U32
	case TokenKwI64:
		return toolman.I64
	case TokenKwU64:
		return toolman.U64
	case TokenKwF32:
		return toolman.F32
	case TokenKwF64:
		return toolman.F64
	case TokenKwString:
		return toolman.String
	default:
		return toolman.Any
	}
}

func (p *parser) parseListType() *ListType {
	start, _ := p.expect(TokenLBracket, "'['")
	elemStart := p.peek()
	inner := p.parseFieldType()
	elem := &ListElementType{SpanVal: spanOf(elemStart, p.prevToken()), Type: inner}
	end, _ := p.expect(TokenRBracket, "']'")
	return &ListType{SpanVal: spanOf(start, end), Elem: elem}
}

func (p *parser) parseMapType() *MapType {
	start, _ := p.expect(TokenLBrace, "'{'")
	keyStart := p.peek()
	keyInner := p.parseFieldType()
	key := &MapKeyType{SpanVal: spanOf(keyStart, p.prevToken()), Type: keyInner}
	p.expect(TokenColon, "':'")
	valStart := p.peek()
	valInner := p.parseFieldType()
	val := &MapValueType{SpanVal: spanOf(valStart, p.prevToken()), Type: valInner}
	end, _ := p.expect(TokenRBrace, "'}'")
	return &MapType{SpanVal: spanOf(start, end), Key: key, Value: val}
}

func (p *parser) parseEnumDecl() *EnumDecl {
	start := p.peek()
	public := false
	if p.peek().Kind == TokenKwPub {
		p.advance()
		public = true
	}
	p.expect(TokenKwEnum, "'enum'")
	name := p.parseIdent()
	p.expect(TokenLBrace, "'{'")

	var fields []*EnumField
	for p.peek().Kind != TokenRBrace && p.peek().Kind != TokenEOF {
		fields = append(fields, p.parseEnumField())
	}
	end, _ := p.expect(TokenRBrace, "'}'")

	return &EnumDecl{SpanVal: spanOf(start, end), Public: public, Name: name, Fields: fields}
}

func (p *parser) parseEnumField() *EnumField {
	start := p.peek()
	name := p.parseIdent()
	p.expect(TokenEquals, "'='")
	valTok, ok := p.expect(TokenInt, "integer")
	var value int64
	if ok {
		value, _ = strconv.ParseInt(valTok.Text, 10, 64)
	}
	end := valTok
	if p.peek().Kind == TokenComma {
		end = p.advance()
	} else if p.peek().Kind == TokenSemicolon {
		end = p.advance()
	}
	return &EnumField{SpanVal: spanOf(start, end), Name: name, Value: value}
}

// --- literals ---

func (p *parser) parseStructFieldInit() *StructFieldInit {
	start := p.peek()
	sfi := &StructFieldInit{}
	switch start.Kind {
	case TokenLBracket:
		sfi.List = p.parseListLiteral()
	case TokenLBrace:
		sfi.Map = p.parseMapLiteral()
	default:
		sfi.Primitive = p.parsePrimitiveLiteral()
	}
	sfi.SpanVal = spanOf(start, p.prevToken())
	return sfi
}

func (p *parser) parsePrimitiveLiteral() *PrimitiveLiteral {
	t := p.advance()
	lit := &PrimitiveLiteral{SpanVal: spanOf(t, t)}
	switch t.Kind {
	case TokenKwTrue:
		lit.PrimKind = toolman.Bool
		lit.Bool = true
	case TokenKwFalse:
		lit.PrimKind = toolman.Bool
		lit.Bool = false
	case TokenInt:
		lit.PrimKind = toolman.I64
		lit.Int, _ = strconv.ParseInt(t.Text, 10, 64)
	case TokenFloat:
		lit.PrimKind = toolman.F64
		lit.Float, _ = strconv.ParseFloat(t.Text, 64)
	case TokenString:
		lit.PrimKind = toolman.String
		lit.Str = t.Text
	default:
		p.errorf(spanOf(t, t), "expected a literal value, found %q", t.Text)
		lit.PrimKind = toolman.Any
	}
	return lit
}

func (p *parser) parseListLiteral() *ListLiteral {
	start, _ := p.expect(TokenLBracket, "'['")
	var elems []*ListLiteralElem
	for p.peek().Kind != TokenRBracket && p.peek().Kind != TokenEOF {
		elems = append(elems, p.parseListLiteralElem())
		if p.peek().Kind == TokenComma {
			p.advance()
		} else {
			break
		}
	}
	end, _ := p.expect(TokenRBracket, "']'")
	return &ListLiteral{SpanVal: spanOf(start, end), Elems: elems}
}

func (p *parser) parseListLiteralElem() *ListLiteralElem {
	start := p.peek()
	elem := &ListLiteralElem{}
	switch start.Kind {
	case TokenLBracket:
		elem.List = p.parseListLiteral()
	case TokenLBrace:
		elem.Map = p.parseMapLiteral()
	default:
		elem.Primitive = p.parsePrimitiveLiteral()
	}
	elem.SpanVal = spanOf(start, p.prevToken())
	return elem
}

func (p *parser) parseMapLiteral() *MapLiteral {
	start, _ := p.expect(TokenLBrace, "'{'")
	var entries []*MapEntry
	for p.peek().Kind != TokenRBrace && p.peek().Kind != TokenEOF {
		entries = append(entries, p.parseMapEntry())
		if p.peek().Kind == TokenComma {
			p.advance()
		} else {
			break
		}
	}
	end, _ := p.expect(TokenRBrace, "'}'")
	return &MapLiteral{SpanVal: spanOf(start, end), Entries: entries}
}

func (p *parser) parseMapEntry() *MapEntry {
	start := p.peek()
	keyPrim := p.parsePrimitiveLiteral()
	key := &MapKeyLiteral{SpanVal: keyPrim.SpanVal, Primitive: keyPrim}
	p.expect(TokenColon, "':'")
	valStart := p.peek()
	value := &MapValueLiteral{SpanVal: valStart.spanSelf()}
	switch valStart.Kind {
	case TokenLBracket:
		value.List = p.parseListLiteral()
	case TokenLBrace:
		value.Map = p.parseMapLiteral()
	default:
		value.Primitive = p.parsePrimitiveLiteral()
	}
	value.SpanVal = spanOf(valStart, p.prevToken())
	return &MapEntry{SpanVal: spanOf(start, p.prevToken()), Key: key, Value: value}
}

func (t Token) spanSelf() Span { return spanOf(t, t) }
