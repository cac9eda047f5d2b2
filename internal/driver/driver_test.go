package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"coltc/internal/source"
	"coltc/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.colt", "var x = 1;\n")

	res, err := Tokenize(path, Options{})
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	tokens := res.Buffer.Tokens()
	want := []token.Lexeme{
		token.KwVar, token.Ident, token.Assign, token.I64Lit,
		token.Semicolon, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Lexeme() != w {
			t.Fatalf("token %d = %v, want %v", i, tokens[i].Lexeme(), w)
		}
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "missing.colt"), Options{}); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestTokenizeFileCollectsDiagnostics(t *testing.T) {
	res := TokenizeFile(source.FromString("bad.colt", "var @ = 1;\n"), Options{})
	if !res.Bag.HasErrors() {
		t.Fatalf("expected a diagnostic for the unknown character")
	}
}

func TestTokenizeTimings(t *testing.T) {
	res := TokenizeFile(source.FromString("t.colt", "var x = 1;\n"), Options{Timings: true})
	if len(res.Timing.Phases) != 1 || res.Timing.Phases[0].Name != "lex" {
		t.Fatalf("timing report = %+v", res.Timing)
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.colt", "var b = 2;\n")
	writeFile(t, dir, "a.colt", "var a = 1;\n")
	writeFile(t, dir, "note.txt", "not a source file")

	results, err := TokenizeDir(context.Background(), dir, Options{}, 2)
	if err != nil {
		t.Fatalf("tokenize dir failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Results follow the sorted file order.
	if filepath.Base(results[0].Path) != "a.colt" || filepath.Base(results[1].Path) != "b.colt" {
		t.Fatalf("result order: %s, %s", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		if r.Result.Buffer.Len() == 0 {
			t.Fatalf("%s: empty token stream", r.Path)
		}
	}
}

func TestTokenizeAllKeepsLoadErrorsPerFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "ok.colt", "var a = 1;\n")
	missing := filepath.Join(dir, "missing.colt")

	results, err := TokenizeAll(context.Background(), []string{good, missing}, Options{}, 0)
	if err != nil {
		t.Fatalf("tokenize all failed: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("good file errored: %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Fatalf("missing file did not error")
	}
}

func TestTimerSummary(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin("lex")
	timer.End(idx, "10 tokens")
	report := timer.Report()
	if len(report.Phases) != 1 || report.Phases[0].Name != "lex" {
		t.Fatalf("report = %+v", report)
	}
	if timer.Summary() == "" {
		t.Fatalf("empty summary")
	}
}
