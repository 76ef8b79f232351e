package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/pmcalc"
	"github.com/npillmayer/pmcalc/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBatchSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.cli")
	defer teardown()
	//
	var out, errout bytes.Buffer
	code := calculate(context.Background(), settingsFrom(nil),
		strings.NewReader("1+1; let r = 2; pi * r * r; 1/0;"), &out, &errout)
	if code != pmcalc.ExitOK {
		t.Errorf("expected exit code %d, have %d", pmcalc.ExitOK, code)
	}
	if out.String() != "> = 2\n> = 2\n> = 12.5664\n> > " {
		t.Errorf("unexpected output %q", out.String())
	}
	if errout.String() != "divide by zero\n" {
		t.Errorf("unexpected error output %q", errout.String())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestFailingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.cli")
	defer teardown()
	//
	var out, errout bytes.Buffer
	code := calculate(context.Background(), settingsFrom(nil), failingReader{}, &out, &errout)
	if code != pmcalc.ExitUnknown {
		t.Errorf("expected exit code %d, have %d", pmcalc.ExitUnknown, code)
	}
	if errout.String() != "device unplugged\n" {
		t.Errorf("unexpected error output %q", errout.String())
	}
}

func TestSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.cli")
	defer teardown()
	//
	k := koanf.New(".")
	k.Load(confmap.Provider(map[string]interface{}{
		"prompt":    "calc> ",
		"format":    "decimal",
		"precision": 2,
		"symbols":   true,
	}, "."), nil)
	s := settingsFrom(k)
	if s.prompt != "calc> " || s.format != pmcalc.DecimalFormat || s.precision != 2 || !s.symbols {
		t.Errorf("settings not taken from configuration: %+v", s)
	}
	if s.interactive {
		t.Error("expected session not to be forced interactive")
	}
}

func TestSymbolListing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.cli")
	defer teardown()
	//
	s := settingsFrom(nil)
	s.prompt = ""
	s.symbols = true
	var out, errout bytes.Buffer
	code := calculate(context.Background(), s, strings.NewReader("let radius = 3;"), &out, &errout)
	if code != pmcalc.ExitOK {
		t.Fatalf("expected exit code %d, have %d: %s", pmcalc.ExitOK, code, errout.String())
	}
	listing := out.String()
	for _, expected := range []string{"Variables", "radius", "pi", "3.14159", "2.71828"} {
		if !strings.Contains(listing, expected) {
			t.Errorf("expected listing to contain %q, have\n%s", expected, listing)
		}
	}
}

func TestFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.cli")
	defer teardown()
	//
	symtab := variables.NewSymbolTable()
	symtab.Define("x", 0.125)
	var b bytes.Buffer
	f := Formatter{NumberFormat: pmcalc.DecimalFormat, Precision: 2}
	if ok, err := f.Format(symtab, &b); !ok || err != nil {
		t.Fatalf("expected symbol table to be formatted, have %v, %v", ok, err)
	}
	if !strings.Contains(b.String(), "0.13") {
		t.Errorf("expected value rendered with 2 decimal places, have\n%s", b.String())
	}
	if ok, _ := f.Format(42, &b); ok {
		t.Error("expected formatter to reject an int")
	}
}
