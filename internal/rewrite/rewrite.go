// Package rewrite turns the calculator's internal expression into text the
// evaluation backend accepts. Two constructs need it: the infix nPr / nCr
// operators, and the function body passed to integrate( and deriv(, which
// must reach the helper unevaluated.
package rewrite

import (
	"fmt"
	"strconv"
	"strings"
)

// Markers and the functions they become.
var infix = map[string]string{
	"P": "permutations",
	"C": "combinations",
}

// Calculus functions whose first argument is a function of X.
var calculus = map[string]bool{
	"integrate": true,
	"deriv":     true,
}

// Expression applies both rewrites, in order.
func Expression(src string) (string, error) {
	s, err := Combinatorics(src)
	if err != nil {
		return "", err
	}
	return QuoteCalculus(s)
}

type piece struct {
	text    string
	operand bool
}

// Combinatorics rewrites "aPb" to permutations(a, b) and "aCb" to
// combinations(a, b). An operand is a number, a register, Ans, a bare name
// such as pi, or the result of an earlier rewrite, so 5P2P1 groups to the
// left. A C with no operand on one side is the register C.
func Combinatorics(src string) (string, error) {
	toks, err := Lex(src)
	if err != nil {
		return "", err
	}
	var out []piece
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		fn, marker := infix[tok.Text]
		if marker && tok.Kind == Register {
			left := len(out) > 0 && out[len(out)-1].operand
			right := i+1 < len(toks) && isOperand(toks, i+1)
			if left && right {
				lhs := out[len(out)-1].text
				out[len(out)-1] = piece{
					text:    fmt.Sprintf("%s(%s, %s)", fn, lhs, toks[i+1].Text),
					operand: true,
				}
				i++
				continue
			}
			if tok.Text == "P" {
				return "", fmt.Errorf("permutation at offset %d needs an operand on both sides", tok.Pos)
			}
		}
		out = append(out, piece{text: tok.Text, operand: isOperand(toks, i)})
	}
	var b strings.Builder
	for _, p := range out {
		b.WriteString(p.text)
	}
	return b.String(), nil
}

func isOperand(toks []Token, i int) bool {
	switch toks[i].Kind {
	case Number:
		return true
	case Register:
		return toks[i].Text != "P"
	case Identifier:
		// A name followed by "(" is a function call, not a value.
		return i+1 >= len(toks) || toks[i+1].Kind != LeftParen
	}
	return false
}

// QuoteCalculus turns integrate(body, ...) into integrate("body", ...), and
// likewise for deriv. The body is everything up to the first comma at its
// own nesting depth, so bodies that contain calls with several arguments
// survive intact. A body that is already a string literal is left alone.
func QuoteCalculus(src string) (string, error) {
	toks, err := Lex(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		b.WriteString(tok.Text)
		if tok.Kind != Identifier || !calculus[tok.Text] || i+1 >= len(toks) || toks[i+1].Kind != LeftParen {
			continue
		}
		b.WriteString(toks[i+1].Text)
		i++
		end, ok := firstArgument(toks, i+1)
		if !ok || end == i+1 {
			continue
		}
		if end == i+2 && toks[i+1].Kind == String {
			continue
		}
		body := src[toks[i+1].Pos:toks[end].Pos]
		b.WriteString(strconv.Quote(strings.TrimSpace(body)))
		i = end - 1
	}
	return b.String(), nil
}

// firstArgument returns the index of the comma that ends the argument
// starting at toks[start]. ok is false when the argument list closes or the
// input ends first.
func firstArgument(toks []Token, start int) (end int, ok bool) {
	depth := 0
	for j := start; j < len(toks); j++ {
		switch toks[j].Kind {
		case LeftParen:
			depth++
		case RightParen:
			if depth == 0 {
				return j, false
			}
			depth--
		case Comma:
			if depth == 0 {
				return j, true
			}
		}
	}
	return len(toks), false
}
