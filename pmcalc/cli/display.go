package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/pmcalc"
	"github.com/npillmayer/pmcalc/pmcalc/ui/termui"
	"github.com/npillmayer/pmcalc/variables"
)

// Formatter formats calculator objects for the terminal. Items it does not
// know are handed to termui.DefaultFormatter.
type Formatter struct {
	termui.DefaultFormatter
	NumberFormat pmcalc.NumberFormat
	Precision    int
}

var _ termui.Formatter = Formatter{}

// Format is part of interface termui.Formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch x := item.(type) {
	case *variables.SymbolTable:
		return f.DefaultFormatter.Format(f.symbolTable(x), w)
	}
	return f.DefaultFormatter.Format(item, w)
}

func (f Formatter) symbolTable(symtab *variables.SymbolTable) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Variables")
	tw.AppendHeader(table.Row{"name", "value"})
	symtab.Each(func(name string, value float64) {
		tw.AppendRow(table.Row{name, f.NumberFormat.Render(value, f.Precision)})
	})
	tw.SetStyle(table.StyleLight)
	return tw
}
