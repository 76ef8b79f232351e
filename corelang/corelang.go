/*
Package corelang implements the core of the calculator language: the arithmetic
of its operators and the constants every session starts with.

Language Features

Numbers are IEEE 754 doubles. Operators are

   unary:   + -
   term:    * / %
   sum:     + -

Division and remainder by exactly zero are errors. The remainder operator is
not a modulo operation: like C's fmod, the sign of the result follows the
dividend, i.e. -7 % 2 = -1.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmcalc.core'.
func tracer() tracing.Trace {
	return tracing.Select("pmcalc.core")
}
