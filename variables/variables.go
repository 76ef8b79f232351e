package variables

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/pmcalc"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmcalc.variables'.
func tracer() tracing.Trace {
	return tracing.Select("pmcalc.variables")
}

// SymbolTable maps variable names to numeric values. Names are kept in
// lexicographic order, which is the order Each will visit them.
//
// A SymbolTable is not safe for concurrent use.
type SymbolTable struct {
	table *treemap.Map
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		table: treemap.NewWithStringComparator(),
	}
}

// IsDeclared is a predicate: has name been entered into the table?
func (st *SymbolTable) IsDeclared(name string) bool {
	_, found := st.table.Get(name)
	return found
}

// Value returns the value of a variable. If the variable has not been declared,
// an error of kind pmcalc.NameError is returned.
func (st *SymbolTable) Value(name string) (float64, error) {
	v, found := st.table.Get(name)
	if !found {
		tracer().P("var", name).Debugf("lookup of undeclared variable")
		return 0, pmcalc.Errorf(pmcalc.NameError, "undefined variable %s", name)
	}
	return v.(float64), nil
}

// Set sets the value of a variable, declaring it if necessary.
func (st *SymbolTable) Set(name string, value float64) {
	tracer().P("var", name).Debugf("set to %g", value)
	st.table.Put(name, value)
}

// Define declares a variable and initializes it with value, which is returned.
// Every name may be defined only once; a second definition is an error of
// kind pmcalc.NameError and leaves the existing value untouched.
func (st *SymbolTable) Define(name string, value float64) (float64, error) {
	if st.IsDeclared(name) {
		tracer().P("var", name).Debugf("attempt to re-declare variable")
		return 0, pmcalc.Errorf(pmcalc.NameError, "%s declared twice", name)
	}
	st.Set(name, value)
	return value, nil
}

// Len returns the number of variables in the table.
func (st *SymbolTable) Len() int {
	return st.table.Size()
}

// Each calls f for every variable, ordered by name.
func (st *SymbolTable) Each(f func(name string, value float64)) {
	st.table.Each(func(k interface{}, v interface{}) {
		f(k.(string), v.(float64))
	})
}
