package grammar

import (
	"fmt"
	"strconv"
)

// TokKind is the category of a token.
type TokKind int8

// Token categories
const (
	NoToken  TokKind = iota
	Number           // floating point literal
	Operator         // one of ( ) + - * / % =
	Print            // statement delimiter ';'
	Name             // variable name
	Quit             // keyword 'q' or 'quit'
	Let              // keyword 'L' or 'let'
)

// PrintDelimiter terminates statements.
const PrintDelimiter = ';'

// operators are the single-rune tokens.
const operators = "()+-*/%;="

func (k TokKind) String() string {
	switch k {
	case NoToken:
		return "<none>"
	case Number:
		return "number"
	case Operator:
		return "operator"
	case Print:
		return "print"
	case Name:
		return "name"
	case Quit:
		return "quit"
	case Let:
		return "let"
	}
	return fmt.Sprintf("<illegal token kind: %d>", k)
}

// Token is a lexical unit. Tokens are values and are never shared.
type Token struct {
	Kind  TokKind
	Op    rune    // for operators and the print delimiter
	Value float64 // for numbers
	Name  string  // for names
}

// NumberToken creates a token for a numeric literal.
func NumberToken(v float64) Token {
	return Token{Kind: Number, Value: v}
}

// OpToken creates a token for an operator rune. The print delimiter gets
// a category of its own.
func OpToken(r rune) Token {
	if r == PrintDelimiter {
		return Token{Kind: Print, Op: r}
	}
	return Token{Kind: Operator, Op: r}
}

// NameToken creates a token for a variable name.
func NameToken(name string) Token {
	return Token{Kind: Name, Name: name}
}

// KeywordToken creates a token for keyword k.
func KeywordToken(k TokKind) Token {
	return Token{Kind: k}
}

// Is is a predicate: is t the operator or delimiter r?
func (t Token) Is(r rune) bool {
	return (t.Kind == Operator || t.Kind == Print) && t.Op == r
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case Operator, Print:
		return string(t.Op)
	case Name:
		return t.Name
	}
	return t.Kind.String()
}

func isOperator(r rune) bool {
	for _, op := range operators {
		if r == op {
			return true
		}
	}
	return false
}
