package pmcalc

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmcalc'.
func tracer() tracing.Trace {
	return tracing.Select("pmcalc")
}

// Exit codes of the application.
const (
	ExitOK      = 0 // session ended by quit or end of input
	ExitFailure = 1 // a failure of a known kind, see ErrorKind
	ExitUnknown = 2 // anything else
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// ExitCodeFor maps an error escaping the session to a process exit code.
// Errors of a known kind map to ExitFailure, all others to ExitUnknown.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	if _, ok := KindOf(err); ok {
		return ExitFailure
	}
	tracer().Errorf("unrecognized failure: %v", err)
	return ExitUnknown
}
