package rewrite

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind identifies the type of a lexed item.
type Kind int

const (
	Number     Kind = iota // 12, 0.5, 1e-7
	Register               // A, X, Ans, MatA, and the P and C markers
	Identifier             // lower-case name: sin, log10, pi
	String                 // quoted literal, quotes included
	LeftParen              // '('
	RightParen             // ')'
	Comma                  // ','
	Space                  // run of blanks
	Other                  // any other single character
)

// Token is one lexed item. Pos is its byte offset in the input.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%q", t.Kind, t.Text)
}

// Lex splits an internal expression into tokens. Concatenating the Text of
// the result reproduces the input exactly.
func Lex(input string) ([]Token, error) {
	var toks []Token
	pos := 0
	for pos < len(input) {
		start := pos
		c := input[pos]
		var kind Kind
		switch {
		case isDigit(c) || (c == '.' && pos+1 < len(input) && isDigit(input[pos+1])):
			kind = Number
			pos = scanNumber(input, pos)
		case c == '"':
			kind = String
			end, err := scanString(input, pos)
			if err != nil {
				return nil, err
			}
			pos = end
		case isUpper(c):
			kind = Register
			pos = scanRegister(input, pos)
		case isLower(c) || c == '_':
			kind = Identifier
			pos++
			for pos < len(input) && (isLower(input[pos]) || isDigit(input[pos]) || input[pos] == '_') {
				pos++
			}
		case c == '(':
			kind = LeftParen
			pos++
		case c == ')':
			kind = RightParen
			pos++
		case c == ',':
			kind = Comma
			pos++
		case c == ' ' || c == '\t':
			kind = Space
			for pos < len(input) && (input[pos] == ' ' || input[pos] == '\t') {
				pos++
			}
		default:
			kind = Other
			_, w := utf8.DecodeRuneInString(input[pos:])
			pos += w
		}
		toks = append(toks, Token{Kind: kind, Text: input[start:pos], Pos: start})
	}
	return toks, nil
}

func scanNumber(s string, pos int) int {
	for pos < len(s) && (isDigit(s[pos]) || s[pos] == '.') {
		pos++
	}
	// Exponent, as in a formatted answer like 1e-7 or 1e+21.
	if pos < len(s) && s[pos] == 'e' {
		p := pos + 1
		if p < len(s) && (s[p] == '+' || s[p] == '-') {
			p++
		}
		if p < len(s) && isDigit(s[p]) {
			for p < len(s) && isDigit(s[p]) {
				p++
			}
			pos = p
		}
	}
	return pos
}

func scanString(s string, pos int) (int, error) {
	for p := pos + 1; p < len(s); p++ {
		switch s[p] {
		case '\\':
			p++
		case '"':
			return p + 1, nil
		}
	}
	return 0, fmt.Errorf("unterminated string at offset %d", pos)
}

// scanRegister reads an upper-case name. Registers are single letters
// except for Ans and the MatA..MatD / VctA..VctD stores, so "5P2" lexes as
// Number, Register "P", Number.
func scanRegister(s string, pos int) int {
	rest := s[pos:]
	if strings.HasPrefix(rest, "Ans") {
		return pos + 3
	}
	for _, prefix := range []string{"Mat", "Vct"} {
		if strings.HasPrefix(rest, prefix) && len(rest) > 3 && isUpper(rest[3]) {
			return pos + 4
		}
	}
	return pos + 1
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
