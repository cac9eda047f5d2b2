package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"coltc/internal/diag"
	"coltc/internal/lexer"
	"coltc/internal/source"
	"coltc/internal/token"
)

func scanSource(t *testing.T, src string) *token.Buffer {
	t.Helper()
	buf := token.NewBuffer()
	lexer.Scan(source.FromString("test.colt", src), buf, diag.Nop{}, lexer.Options{})
	return buf
}

func TestTokensPretty(t *testing.T) {
	buf := scanSource(t, "var x = 1;\n")
	var out bytes.Buffer
	if err := TokensPretty(&out, buf, PrettyOpts{}); err != nil {
		t.Fatalf("pretty failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{"var", "x", "i64 literal", " 1 at 1:9", "at 1:1", "<eof>"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestTokensJSON(t *testing.T) {
	buf := scanSource(t, "x\n")
	var out bytes.Buffer
	if err := TokensJSON(&out, "test.colt", buf); err != nil {
		t.Fatalf("json failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{`"path": "test.colt"`, `"lexeme": "identifier"`, `"value": "x"`} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestTokenDumpRoundTrip(t *testing.T) {
	buf := scanSource(t, "var answer = 42u8;\n")
	var out bytes.Buffer
	if err := TokensMsgpack(&out, "test.colt", buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	dump, err := DecodeTokenDump(&out)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if dump.Path != "test.colt" {
		t.Fatalf("path = %q", dump.Path)
	}
	if len(dump.Tokens) != buf.Len() {
		t.Fatalf("got %d tokens, want %d", len(dump.Tokens), buf.Len())
	}
	if dump.Tokens[1].Value != "answer" {
		t.Fatalf("identifier value = %q", dump.Tokens[1].Value)
	}
	if dump.Tokens[3].Lexeme != "u8 literal" || dump.Tokens[3].Value != "42" {
		t.Fatalf("literal token = %+v", dump.Tokens[3])
	}
}

func TestDecodeRejectsTruncatedDump(t *testing.T) {
	var out bytes.Buffer
	buf := scanSource(t, "x\n")
	if err := TokensMsgpack(&out, "test.colt", buf); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeTokenDump(bytes.NewReader(out.Bytes()[:3])); err == nil {
		t.Fatalf("expected an error for a truncated dump")
	}
}

func TestDiagnostics(t *testing.T) {
	items := []diag.Diagnostic{
		{Code: diag.LexUnknownChar, Severity: diag.SevError, Line: 1, Column: 5, Message: "unknown character '@'"},
	}
	var out bytes.Buffer
	err := Diagnostics(&out, "test.colt", items, []string{"var @ = 1;"}, PrettyOpts{})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "test.colt:1:5: ERROR[1001]: unknown character '@'") {
		t.Fatalf("header missing:\n%s", text)
	}
	if !strings.Contains(text, "    var @ = 1;\n        ^\n") {
		t.Fatalf("context line missing:\n%s", text)
	}
}

func TestDiagnosticsJSON(t *testing.T) {
	items := []diag.Diagnostic{
		{Code: diag.LexBadNumber, Severity: diag.SevError, Line: 2, Column: 1, Message: "u8 literal out of range"},
	}
	var out bytes.Buffer
	if err := DiagnosticsJSON(&out, "test.colt", items); err != nil {
		t.Fatalf("json failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{`"severity": "ERROR"`, `"code": 1005`, `"count": 1`} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}
