/*
Package evaluator evaluates statements of the calculator language.

Evaluation is direct: a recursive descent parser pulls tokens from a
grammar.TokenSource and computes values on the fly, without constructing a
syntax tree. The grammar, from lowest to highest binding power:

   statement   : 'let' declaration | expression
   declaration : name '=' expression
   expression  : term { ('+'|'-') term }
   term        : primary { ('*'|'/'|'%') primary }
   primary     : number | name | '(' expression ')' | '-' primary | '+' primary

An Interpreter drives a read-eval-print session on top of an Evaluator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmcalc.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("pmcalc.evaluator")
}
