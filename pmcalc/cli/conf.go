package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/pmcalc"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".")
	// Configuration is located with an application-key of 'PMCALC', config-files
	// are in NestedText-format (nt)
	konf := koanfadapter.New(k, "PMCALC", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		pmcalc.Exit(pmcalc.ExitFailure)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		pmcalc.Exit(pmcalc.ExitFailure)
	}
	pmcalc.Configuration = k
}

// mergeFlags loads the command line flags on top of the configuration. Flags
// not given on the command line keep a configured value.
func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	if err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil); err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return nil
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go")
	if dest := konf.GetString("tracing.destination"); dest != "" {
		paths := locatePaths()
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			dest = "file://" + paths.LogDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
		tracing.Infof("tracing to %q", dest)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof("pmcalc V%s configured", version)
	return nil
}

func locatePaths() AppPaths {
	paths, err := DefaultAppPaths("PMCALC")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
