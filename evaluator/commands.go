package evaluator

import (
	"github.com/npillmayer/pmcalc/grammar"
)

// Statement evaluates
//
//    statement : 'let' declaration | expression
//
// It is the entry point for every statement. The statement delimiter is not
// consumed.
func (ev *Evaluator) Statement() (float64, error) {
	t, err := ev.tokens.Get()
	if err != nil {
		return 0, err
	}
	if t.Kind == grammar.Let {
		return ev.Declaration()
	}
	if err = ev.tokens.Putback(t); err != nil {
		return 0, err
	}
	return ev.Expression()
}

// Declaration evaluates
//
//    declaration : name '=' expression
//
// with the 'let' keyword already consumed. The name is defined in the symbol
// table with the value of the expression, which is also returned. Names may be
// declared only once.
func (ev *Evaluator) Declaration() (float64, error) {
	t, err := ev.tokens.Get()
	if err != nil {
		return 0, err
	}
	if t.Kind != grammar.Name {
		return 0, ev.unexpected(t, "name expected in declaration")
	}
	name := t.Name
	if t, err = ev.tokens.Get(); err != nil {
		return 0, err
	}
	if !t.Is('=') {
		return 0, ev.unexpected(t, "= missing in declaration of %s", name)
	}
	d, err := ev.Expression()
	if err != nil {
		return 0, err
	}
	tracer().P("var", name).Debugf("declaration")
	return ev.symbols.Define(name, d)
}
