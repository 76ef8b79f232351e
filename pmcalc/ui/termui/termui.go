// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'pmcalc.cli'.
func trace() tracing.Trace {
	return tracing.Select("pmcalc.cli")
}

// Formatter writes items to a writer. It returns false if it does not know how
// to format an item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings and tables.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		if _, err := io.WriteString(w, t); err != nil {
			return false, err
		}
		_, err := w.Write([]byte{'\n'})
		return true, err
	case table.Writer:
		if t == nil {
			_, err := io.WriteString(w, "(empty table)\n")
			return true, err
		}
		_, err := io.WriteString(w, t.Render()+"\n")
		return true, err
	}
	trace().Debugf("no format for object of type %T", item)
	return false, nil
}

// ---------------------------------------------------------------------------

// ColorWriter colorizes everything written through it.
type ColorWriter struct {
	w     io.Writer
	color prtxt.Colors
}

// NewColorWriter wraps w, writing text in color c.
func NewColorWriter(w io.Writer, c ...prtxt.Color) *ColorWriter {
	return &ColorWriter{
		w:     w,
		color: prtxt.Colors(c),
	}
}

var _ io.Writer = (*ColorWriter)(nil)

func (cw *ColorWriter) Write(b []byte) (n int, err error) {
	if len(b) == 0 {
		return 0, nil
	}
	s := string(b)
	trailing := ""
	if s[len(s)-1] == '\n' {
		s, trailing = s[:len(s)-1], "\n"
	}
	if _, err = fmt.Fprint(cw.w, cw.color.Sprint(s)+trailing); err != nil {
		return 0, err
	}
	return len(b), nil
}
