package pmcalc

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRenderGeneral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc")
	defer teardown()
	//
	for i, x := range []struct {
		v   float64
		out string
	}{
		{v: 14, out: "14"},
		{v: 5, out: "5"},
		{v: -1, out: "-1"},
		{v: 0.5, out: "0.5"},
		{v: math.Pi, out: "3.14159"},
		{v: math.E, out: "2.71828"},
		{v: 1e6, out: "1e+06"},
		{v: 123456, out: "123456"},
		{v: 0.0001, out: "0.0001"},
	} {
		if s := GeneralFormat.Render(x.v, DefaultPrecision); s != x.out {
			t.Errorf("test %d: expected %v to render as %q, is %q", i, x.v, x.out, s)
		}
	}
}

func TestRenderDecimal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc")
	defer teardown()
	//
	if s := DecimalFormat.Render(math.Pi, 2); s != "3.14" {
		t.Errorf("expected pi to render as 3.14, is %q", s)
	}
	if s := DecimalFormat.Render(1e6, 0); s != "1000000" {
		t.Errorf("expected 1e6 to render as 1000000, is %q", s)
	}
	for i, x := range []struct {
		v      float64
		format NumberFormat
		s      string
	}{
		{v: math.Inf(1), format: DecimalFormat, s: "inf"},
		{v: math.Inf(-1), format: GeneralFormat, s: "-inf"},
		{v: math.NaN(), format: GeneralFormat, s: "nan"},
	} {
		if s := x.format.Render(x.v, 2); s != x.s {
			t.Errorf("test %d: expected %g to render as %q, is %q", i, x.v, x.s, s)
		}
	}
}

func TestFormatFromString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc")
	defer teardown()
	//
	if FormatFromString("decimal") != DecimalFormat {
		t.Error("expected 'decimal' to select decimal format")
	}
	if FormatFromString("general") != GeneralFormat {
		t.Error("expected 'general' to select general format")
	}
	if FormatFromString("roman") != GeneralFormat {
		t.Error("expected unknown format to fall back to general format")
	}
}
