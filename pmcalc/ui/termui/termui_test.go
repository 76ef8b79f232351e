package termui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestColorWriter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.cli")
	defer teardown()
	//
	var b bytes.Buffer
	cw := NewColorWriter(&b, prtxt.FgRed)
	msg := "divide by zero\n"
	n, err := cw.Write([]byte(msg))
	if err != nil || n != len(msg) {
		t.Fatalf("expected %d bytes written, have %d, %v", len(msg), n, err)
	}
	out := b.String()
	if !strings.Contains(out, "divide by zero") || !strings.HasSuffix(out, "\n") {
		t.Errorf("expected colored message with trailing newline, have %q", out)
	}
	if strings.Contains(strings.TrimSuffix(out, "\n"), "\n") {
		t.Errorf("expected newline to stay outside of color codes, have %q", out)
	}
}

func TestDefaultFormatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmcalc.cli")
	defer teardown()
	//
	var b bytes.Buffer
	df := DefaultFormatter{}
	if ok, err := df.Format("hello", &b); !ok || err != nil {
		t.Errorf("expected string to be formatted, have %v, %v", ok, err)
	}
	tw := table.NewWriter()
	tw.AppendRow(table.Row{"pi", "3.14159"})
	if ok, _ := df.Format(tw, &b); !ok {
		t.Error("expected table to be formatted")
	}
	if ok, _ := df.Format(42, &b); ok {
		t.Error("expected int not to be formatted")
	}
	if out := b.String(); !strings.HasPrefix(out, "hello\n") || !strings.Contains(out, "3.14159") {
		t.Errorf("unexpected output %q", out)
	}
}
