package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pmcalc.cli'
func tracer() tracing.Trace {
	return tracing.Select("pmcalc.cli")
}
