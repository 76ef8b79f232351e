// Package cli implements the pmcalc command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/pmcalc"
	"github.com/npillmayer/pmcalc/corelang"
	"github.com/npillmayer/pmcalc/evaluator"
	"github.com/npillmayer/pmcalc/grammar"
	"github.com/npillmayer/pmcalc/pmcalc/ui/termui"
	"github.com/npillmayer/pmcalc/variables"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1 experimental"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pmcalc",
	Short: "A desk calculator for arithmetic expressions with variables",
	Long: `Welcome to PMCALC V0.1 (experimental)

PMCALC evaluates arithmetic expressions, separated by ';', and prints
their results. Variables are declared with 'let name = expression;',
the constants pi and e are predefined. 'q' quits.

PMCALC runs in interactive mode if input is a terminal, offering line
editing and a history of lines. Otherwise statements are read from
standard input in batch-mode.

`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	Run:          runCalcCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by pmcalc.main().
func Execute() {
	if rootCmd.Execute() != nil {
		pmcalc.Exit(pmcalc.ExitUnknown)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().String("prompt", evaluator.DefaultPrompt, "Prompt shown before every statement")
	rootCmd.PersistentFlags().String("format", "general", "Number format of results: general | decimal")
	rootCmd.PersistentFlags().Int("precision", pmcalc.DefaultPrecision, "Significant digits (general) or decimal places (decimal)")
	rootCmd.PersistentFlags().BoolP("symbols", "s", false, "List variables at end of session")
}

func runCalcCmd(cmd *cobra.Command, args []string) {
	tracing.Infof("pmcalc calculator called")
	code := calculate(pmcalc.SignalContext, settingsFrom(pmcalc.Configuration),
		os.Stdin, os.Stdout, os.Stderr)
	pmcalc.Exit(code)
}

// settings for a calculator session
type settings struct {
	interactive bool
	prompt      string
	format      pmcalc.NumberFormat
	precision   int
	symbols     bool
}

func settingsFrom(k *koanf.Koanf) settings {
	s := settings{
		prompt:    evaluator.DefaultPrompt,
		format:    pmcalc.GeneralFormat,
		precision: pmcalc.DefaultPrecision,
	}
	if k == nil {
		return s
	}
	s.interactive = k.Bool("interactive")
	s.symbols = k.Bool("symbols")
	if k.Exists("prompt") {
		s.prompt = k.String("prompt")
	}
	if k.Exists("format") {
		s.format = pmcalc.FormatFromString(k.String("format"))
	}
	if k.Exists("precision") {
		s.precision = k.Int("precision")
	}
	return s
}

// calculate runs a calculator session and returns the exit code for the
// process. If the session is interactive, in and the writers are replaced by
// a terminal line reader and its outputs.
func calculate(ctx context.Context, s settings, in io.Reader, out, errout io.Writer) int {
	symtab := variables.NewSymbolTable()
	if err := corelang.LoadStandardConstants(symtab); err != nil {
		fmt.Fprintln(errout, err.Error())
		return pmcalc.ExitFailure
	}
	if s.interactive || isTerminal(in) {
		lr, err := termui.NewLineReader("pmcalc", version, locatePaths().HistoryFile())
		if err != nil {
			fmt.Fprintf(errout, "cannot open terminal: %v\n", err)
			return pmcalc.ExitFailure
		}
		defer lr.Close()
		lr.Welcome()
		in = lr
		out, errout = lr.Outputs()
		return session(ctx, s, symtab, in, out, errout, evaluator.WithPrompter(lr))
	}
	return session(ctx, s, symtab, in, out, errout)
}

func session(ctx context.Context, s settings, symtab *variables.SymbolTable,
	in io.Reader, out, errout io.Writer, opts ...evaluator.Option) int {
	//
	opts = append([]evaluator.Option{
		evaluator.WithOutput(out, errout),
		evaluator.WithPrompt(s.prompt),
		evaluator.WithNumberFormat(s.format, s.precision),
	}, opts...)
	intp := evaluator.NewInterpreter(grammar.NewTokenSource(in), symtab, opts...)
	err := intp.Run(ctx)
	if s.symbols {
		f := Formatter{NumberFormat: s.format, Precision: s.precision}
		if _, ferr := f.Format(intp.Symbols(), out); ferr != nil {
			tracer().Errorf("cannot list variables: %v", ferr)
		}
	}
	if err != nil {
		fmt.Fprintln(errout, err.Error())
	}
	return pmcalc.ExitCodeFor(err)
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
