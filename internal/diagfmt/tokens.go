package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"coltc/internal/token"
)

// tokenDumpSchema versions the msgpack token dump; bump it when
// TokenOutput changes shape.
const tokenDumpSchema uint16 = 1

// TokenOutput is one token in serialized form. Positions are 1-based.
type TokenOutput struct {
	Lexeme string `json:"lexeme" msgpack:"lexeme"`
	Value  string `json:"value,omitempty" msgpack:"value,omitempty"`
	Line   uint32 `json:"line" msgpack:"line"`
	Column uint32 `json:"column" msgpack:"column"`
	Size   uint32 `json:"size" msgpack:"size"`
}

// TokenDump is the root of the JSON and msgpack token stream output.
type TokenDump struct {
	Schema uint16        `json:"schema" msgpack:"schema"`
	Path   string        `json:"path" msgpack:"path"`
	Tokens []TokenOutput `json:"tokens" msgpack:"tokens"`
}

// tokenValue renders the payload a token carries, empty for tokens
// whose lexeme already says everything.
func tokenValue(buf *token.Buffer, tkn token.Token) string {
	switch l := tkn.Lexeme(); {
	case l == token.Ident:
		return buf.Identifier(tkn)
	case l == token.StringLit:
		return fmt.Sprintf("%q", buf.StringLiteral(tkn))
	case l == token.BoolLit:
		return fmt.Sprintf("%t", buf.BoolLiteral(tkn))
	case l == token.CharLit:
		return fmt.Sprintf("%q", buf.CharLiteral(tkn))
	case l == token.F32Lit:
		return fmt.Sprintf("%g", buf.Float32Literal(tkn))
	case l == token.F64Lit:
		return fmt.Sprintf("%g", buf.Float64Literal(tkn))
	case token.IsPayloadLiteral(l):
		return fmt.Sprintf("%d", buf.Literal(tkn))
	}
	return ""
}

func makeTokenDump(path string, buf *token.Buffer) TokenDump {
	dump := TokenDump{
		Schema: tokenDumpSchema,
		Path:   path,
		Tokens: make([]TokenOutput, 0, buf.Len()),
	}
	for _, tkn := range buf.Tokens() {
		info := buf.Info(tkn)
		dump.Tokens = append(dump.Tokens, TokenOutput{
			Lexeme: tkn.Lexeme().String(),
			Value:  tokenValue(buf, tkn),
			Line:   info.LineStart + 1,
			Column: info.Column + 1,
			Size:   info.Size,
		})
	}
	return dump
}

var (
	keywordColor = color.New(color.FgMagenta)
	literalColor = color.New(color.FgCyan)
	identColor   = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func lexemeColor(l token.Lexeme) *color.Color {
	switch {
	case l == token.Error:
		return errorColor
	case l == token.Ident:
		return identColor
	case token.IsLiteral(l):
		return literalColor
	case token.IsKeyword(l):
		return keywordColor
	}
	return nil
}

// TokensPretty writes one token per line with its position and payload.
func TokensPretty(w io.Writer, buf *token.Buffer, opts PrettyOpts) error {
	for i, tkn := range buf.Tokens() {
		name := tkn.Lexeme().String()
		if opts.Color {
			if c := lexemeColor(tkn.Lexeme()); c != nil {
				name = c.Sprint(name)
			}
		}
		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, name); err != nil {
			return err
		}
		if value := tokenValue(buf, tkn); value != "" {
			if _, err := fmt.Fprintf(w, " %s", value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d\n", buf.Line(tkn), buf.Column(tkn)); err != nil {
			return err
		}
	}
	return nil
}

// TokensJSON writes the token stream as indented JSON.
func TokensJSON(w io.Writer, path string, buf *token.Buffer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(makeTokenDump(path, buf))
}

// TokensMsgpack writes the token stream as a msgpack blob for tooling.
func TokensMsgpack(w io.Writer, path string, buf *token.Buffer) error {
	return msgpack.NewEncoder(w).Encode(makeTokenDump(path, buf))
}

// DecodeTokenDump reads back a msgpack token dump.
func DecodeTokenDump(r io.Reader) (*TokenDump, error) {
	var dump TokenDump
	if err := msgpack.NewDecoder(r).Decode(&dump); err != nil {
		return nil, err
	}
	if dump.Schema != tokenDumpSchema {
		return nil, fmt.Errorf("unsupported token dump schema %d", dump.Schema)
	}
	return &dump, nil
}
