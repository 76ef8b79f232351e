package evaluator

import (
	"errors"
	"io"

	"github.com/npillmayer/pmcalc"
	"github.com/npillmayer/pmcalc/corelang"
	"github.com/npillmayer/pmcalc/grammar"
	"github.com/npillmayer/pmcalc/variables"
)

// Evaluator evaluates expressions and declarations, reading tokens from a
// token source and resolving names in a symbol table.
//
// Every grammar level reads as many tokens as it needs and pushes back at most
// one token of lookahead. Errors are returned unchanged to the caller; after an
// error the token source should be re-synchronized with Ignore.
type Evaluator struct {
	tokens  *grammar.TokenSource
	symbols *variables.SymbolTable
}

// NewEvaluator creates an evaluator for a token source and a symbol table.
// The evaluator does not own either of them.
func NewEvaluator(tokens *grammar.TokenSource, symtab *variables.SymbolTable) *Evaluator {
	return &Evaluator{
		tokens:  tokens,
		symbols: symtab,
	}
}

// Symbols returns the symbol table of the evaluator.
func (ev *Evaluator) Symbols() *variables.SymbolTable {
	return ev.symbols
}

// Expression evaluates
//
//    expression : term { ('+'|'-') term }
//
// The token following the expression is pushed back.
// End of input terminates an expression like any other token not belonging to it.
func (ev *Evaluator) Expression() (float64, error) {
	left, err := ev.term()
	if err != nil {
		return 0, err
	}
	for {
		t, err := ev.tokens.Get()
		if errors.Is(err, io.EOF) {
			return left, nil
		} else if err != nil {
			return 0, err
		}
		if t.Kind != grammar.Operator || !corelang.IsSumOp(t.Op) {
			return left, ev.tokens.Putback(t)
		}
		right, err := ev.term()
		if err != nil {
			return 0, err
		}
		if left, err = corelang.Apply(t.Op, left, right); err != nil {
			return 0, err
		}
	}
}

// term evaluates
//
//    term : primary { ('*'|'/'|'%') primary }
//
func (ev *Evaluator) term() (float64, error) {
	left, err := ev.primary()
	if err != nil {
		return 0, err
	}
	for {
		t, err := ev.tokens.Get()
		if errors.Is(err, io.EOF) {
			return left, nil
		} else if err != nil {
			return 0, err
		}
		if t.Kind != grammar.Operator || !corelang.IsTermOp(t.Op) {
			return left, ev.tokens.Putback(t)
		}
		right, err := ev.primary()
		if err != nil {
			return 0, err
		}
		if left, err = corelang.Apply(t.Op, left, right); err != nil {
			return 0, err
		}
	}
}

// primary evaluates
//
//    primary : number | name | '(' expression ')' | '-' primary | '+' primary
//
// Unary operators apply to the primary immediately following them, so
// -2*3 is (-2)*3.
func (ev *Evaluator) primary() (float64, error) {
	t, err := ev.tokens.Get()
	if err != nil {
		return 0, err
	}
	switch {
	case t.Is('('):
		d, err := ev.Expression()
		if err != nil {
			return 0, err
		}
		if t, err = ev.tokens.Get(); err != nil {
			return 0, err
		}
		if !t.Is(')') {
			return 0, ev.unexpected(t, "')' expected")
		}
		return d, nil
	case t.Is('-'):
		d, err := ev.primary()
		if err != nil {
			return 0, err
		}
		return corelang.Negate(d), nil
	case t.Is('+'):
		return ev.primary()
	case t.Kind == grammar.Number:
		return t.Value, nil
	case t.Kind == grammar.Name:
		return ev.symbols.Value(t.Name)
	}
	return 0, ev.unexpected(t, "primary expected")
}

// unexpected creates a syntax error for a token which does not fit the
// grammar. The token is pushed back, so that re-synchronizing will not skip
// over a statement delimiter.
func (ev *Evaluator) unexpected(t grammar.Token, format string, args ...interface{}) error {
	tracer().Debugf("unexpected token %q", t)
	if err := ev.tokens.Putback(t); err != nil {
		return err
	}
	return pmcalc.Errorf(pmcalc.SyntaxError, format, args...)
}
