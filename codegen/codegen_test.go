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

package codegen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/toolman-lang/toolman/codegen"
	"github.com/toolman-lang/toolman/compiler"
	"github.com/toolman-lang/toolman/internal/testutil"
)

func compileDoc(t *testing.T, src string) *compilerDocResult {
	t.Helper()
	res, err := compiler.NewCompiler().CompileSource("/virtual/codegen.tm", []byte(src))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 0, len(res.Errors))
	return &compilerDocResult{res}
}

// compilerDocResult exists only to give the test file a short local
// name for compiler.CompileResult.
type compilerDocResult struct {
	compiler.CompileResult
}

const sampleSchema = `
pub struct Address {
	street: string;
	zip_code?: string;
}

pub struct Person {
	full_name: string;
	age: u32;
	tags: [string];
	scores: {string: i32};
	home: Address;
}

pub enum Status {
	ACTIVE = 0,
	INACTIVE = 1,
}
`

func TestNamesRoundTrip(t *testing.T) {
	if got := codegen.ToSnakeCase("aMultiWord"); got != "a_multi_word" {
		t.Fatalf("ToSnakeCase(aMultiWord) = %q", got)
	}
	if got := codegen.ToSnakeCase("CamelCase"); got != "camel_case" {
		t.Fatalf("ToSnakeCase(CamelCase) = %q", got)
	}
	if got := codegen.ToCamelCase("a_multi_word"); got != "aMultiWord" {
		t.Fatalf("ToCamelCase(a_multi_word) = %q", got)
	}
	if got := codegen.Capitalize("name"); got != "Name" {
		t.Fatalf("Capitalize(name) = %q", got)
	}
	if got := codegen.Decapitalize("Name"); got != "name" {
		t.Fatalf("Decapitalize(Name) = %q", got)
	}
}

func TestGoEmitterMinimalStructGolden(t *testing.T) {
	res := compileDoc(t, `pub struct Point { x: i32; y: i32; }`)

	var buf bytes.Buffer
	testutil.AssertNoError(t, codegen.Generate(&buf, res.Document, codegen.NewGoEmitter("geom")))

	want := "package geom\n\n" +
		"type Point struct {\n" +
		"\tX int32 `json:\"x\"`\n" +
		"\tY int32 `json:\"y\"`\n" +
		"}\n\n"
	testutil.ExpectNoDiff(t, want, buf.String())
}

func TestGoEmitterStructAndEnum(t *testing.T) {
	res := compileDoc(t, sampleSchema)

	var buf bytes.Buffer
	if err := codegen.Generate(&buf, res.Document, codegen.NewGoEmitter("schema")); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"package schema",
		"type Person struct {",
		"FullName string `json:\"full_name\"`",
		"Age uint32 `json:\"age\"`",
		"Tags []string `json:\"tags\"`",
		"Scores map[string]int32 `json:\"scores\"`",
		"Home Address `json:\"home\"`",
		"type Address struct {",
		"ZipCode *string `json:\"zip_code\"`",
		"type Status int32",
		"StatusActive Status = 0",
		"StatusInactive Status = 1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected generated Go to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTypeScriptEmitterStructAndEnum(t *testing.T) {
	res := compileDoc(t, sampleSchema)

	var buf bytes.Buffer
	if err := codegen.Generate(&buf, res.Document, codegen.NewTypeScriptEmitter()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"export interface Person {",
		"fullName: string;",
		"age: number;",
		"tags: string[];",
		"scores: { [key: string]: number };",
		"home: Address;",
		"zipCode?: string;",
		"export enum Status {",
		"ACTIVE = 0,",
		"INACTIVE = 1,",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected generated TypeScript to contain %q, got:\n%s", want, out)
		}
	}
}

func TestJavaEmitterStructAndEnum(t *testing.T) {
	res := compileDoc(t, sampleSchema)

	var buf bytes.Buffer
	if err := codegen.Generate(&buf, res.Document, codegen.NewJavaEmitter()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"public class Person {",
		"private String fullName;",
		"private int age;",
		"private List<String> tags;",
		"private Map<String, Integer> scores;",
		"private Address home;",
		"public String getFullName() {",
		"public void setAge(int age) {",
		"public enum Status {",
		"ACTIVE(0),",
		"INACTIVE(1);",
		"public int getValue() {",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected generated Java to contain %q, got:\n%s", want, out)
		}
	}
}
