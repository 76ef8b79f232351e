package cli

import (
	"os"
	"path/filepath"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	HistoryFile() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

func appHome(appTag string) (a appPaths, err error) {
	a = appPaths{tag: appTag}
	a.home, err = os.UserHomeDir()
	if err != nil {
		a.home = ""
		return
	}
	return
}

// HistoryFile is the file where the REPL keeps the lines entered, next to the
// log files. The directory is created if necessary; if this fails, the history
// file is located in the temp directory.
func (a appPaths) HistoryFile() string {
	dir := a.LogDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		tracer().Infof("cannot create directory for history: %v", err)
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pmcalc-history")
}
