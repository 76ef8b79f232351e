package variables_test

import (
	"testing"

	"github.com/npillmayer/pmcalc"
	"github.com/npillmayer/pmcalc/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.variables")
	defer teardown()
	//
	symtab := variables.NewSymbolTable()
	if symtab.IsDeclared("x") {
		t.Error("expected x to be undeclared in a fresh table")
	}
	v, err := symtab.Define("x", 5)
	if err != nil || v != 5 {
		t.Fatalf("expected definition of x to return 5, got %g, %v", v, err)
	}
	if !symtab.IsDeclared("x") {
		t.Error("expected x to be declared")
	}
	_, err = symtab.Define("x", 2)
	if k, ok := pmcalc.KindOf(err); !ok || k != pmcalc.NameError {
		t.Errorf("expected second definition to fail with a name error, got %v", err)
	} else if err.Error() != "x declared twice" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if v, _ := symtab.Value("x"); v != 5 {
		t.Errorf("expected x to keep its first value 5, is %g", v)
	}
}

func TestUndefinedVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.variables")
	defer teardown()
	//
	symtab := variables.NewSymbolTable()
	_, err := symtab.Value("y")
	if k, ok := pmcalc.KindOf(err); !ok || k != pmcalc.NameError {
		t.Errorf("expected lookup of y to fail with a name error, got %v", err)
	} else if err.Error() != "undefined variable y" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if symtab.Len() != 0 || symtab.IsDeclared("y") {
		t.Error("expected failed lookup to leave the table unchanged")
	}
}

func TestSetOverwrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.variables")
	defer teardown()
	//
	symtab := variables.NewSymbolTable()
	symtab.Set("a", 1)
	symtab.Set("a", 2)
	if v, err := symtab.Value("a"); err != nil || v != 2 {
		t.Errorf("expected a = 2, got %g, %v", v, err)
	}
	if symtab.Len() != 1 {
		t.Errorf("expected 1 variable, have %d", symtab.Len())
	}
}

func TestEachIsOrdered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.variables")
	defer teardown()
	//
	symtab := variables.NewSymbolTable()
	for _, name := range []string{"pi", "e", "radius", "area"} {
		symtab.Define(name, 1)
	}
	var names []string
	symtab.Each(func(name string, _ float64) {
		names = append(names, name)
	})
	expect := []string{"area", "e", "pi", "radius"}
	if len(names) != len(expect) {
		t.Fatalf("expected %d names, have %v", len(expect), names)
	}
	for i, n := range expect {
		if names[i] != n {
			t.Errorf("expected name #%d to be %q, is %q", i, n, names[i])
		}
	}
}
