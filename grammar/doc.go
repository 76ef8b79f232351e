/*
Package grammar implements the lexical level of the calculator language.

Statements are read from a single text stream, which may well be an interactive
terminal. Input is therefore never read ahead further than necessary: a
TokenSource pulls runes one at a time, groups them into tokens and lets the
parser push back exactly one token for a single token of lookahead.

   > let r = 2.5;
   = 2.5
   > pi * r * r;
   = 19.635

After an error clients call TokenSource.Ignore to skip to the end of the
offending statement.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmcalc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("pmcalc.grammar")
}
