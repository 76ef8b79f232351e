package corelang

import (
	"fmt"

	"github.com/npillmayer/pmcalc/variables"
)

// Predefined constants
const (
	Pi = 3.1415926535897932385
	E  = 2.7182818284590452354
)

// standardConstants are declared for every session, in this order.
var standardConstants = []struct {
	name  string
	value float64
}{
	{"pi", Pi},
	{"e", E},
}

// LoadStandardConstants declares the standard constants in symtab. It fails if
// any of them has already been declared.
func LoadStandardConstants(symtab *variables.SymbolTable) error {
	for _, c := range standardConstants {
		if _, err := symtab.Define(c.name, c.value); err != nil {
			return fmt.Errorf("loading standard constants: %w", err)
		}
	}
	tracer().Debugf("loaded %d standard constants", len(standardConstants))
	return nil
}
