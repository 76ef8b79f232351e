package evaluator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/pmcalc"
	"github.com/npillmayer/pmcalc/grammar"
	"github.com/npillmayer/pmcalc/variables"
)

// DefaultPrompt is shown before every statement.
const DefaultPrompt = "> "

// Prompter shows a prompt before a statement is read.
type Prompter interface {
	Prompt(string)
}

// Interpreter runs a read-eval-print session: it reads statements from a token
// source, evaluates them and prints the results. Errors in statements are
// reported and the session continues with the next statement.
type Interpreter struct {
	evaluator *Evaluator
	tokens    *grammar.TokenSource
	out       io.Writer // results
	errout    io.Writer // error messages
	prompter  Prompter
	prompt    string
	format    pmcalc.NumberFormat
	precision int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets the writers for results and for error messages.
func WithOutput(out, errout io.Writer) Option {
	return func(intp *Interpreter) {
		intp.out = out
		intp.errout = errout
	}
}

// WithPrompt sets the prompt string. The default is DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(intp *Interpreter) {
		intp.prompt = prompt
	}
}

// WithPrompter sets the component responsible for showing prompts. By default
// prompts are written to the result output.
func WithPrompter(p Prompter) Option {
	return func(intp *Interpreter) {
		intp.prompter = p
	}
}

// WithNumberFormat sets the format for printing results.
func WithNumberFormat(format pmcalc.NumberFormat, precision int) Option {
	return func(intp *Interpreter) {
		intp.format = format
		intp.precision = precision
	}
}

// NewInterpreter creates an interpreter reading from tokens and using symtab
// for variables. Without options results go to stdout and errors to stderr.
func NewInterpreter(tokens *grammar.TokenSource, symtab *variables.SymbolTable,
	opts ...Option) *Interpreter {
	//
	intp := &Interpreter{
		evaluator: NewEvaluator(tokens, symtab),
		tokens:    tokens,
		out:       os.Stdout,
		errout:    os.Stderr,
		prompt:    DefaultPrompt,
		format:    pmcalc.GeneralFormat,
		precision: pmcalc.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(intp)
	}
	if intp.prompter == nil {
		intp.prompter = writerPrompter{w: intp.out}
	}
	return intp
}

// Symbols returns the symbol table of the session.
func (intp *Interpreter) Symbols() *variables.SymbolTable {
	return intp.evaluator.Symbols()
}

// Run executes statements until the quit keyword is read or input is exhausted.
// It will also stop before the next statement if ctx is done.
//
// Errors of statements are recoverable: they are written to the error output,
// the rest of the statement is skipped and the session continues. Run returns
// an error only if recovery is impossible, e.g. for a failing input stream or
// a pmcalc.InternalError.
func (intp *Interpreter) Run(ctx context.Context) error {
	tracer().Infof("calculator session starts")
	for {
		select {
		case <-ctx.Done():
			tracer().Infof("calculator session interrupted")
			return nil
		default:
		}
		done, err := intp.step()
		if done {
			tracer().Infof("calculator session ends")
			return nil
		} else if err == nil {
			continue
		}
		if !pmcalc.IsRecoverable(err) {
			tracer().Errorf("calculator session aborts: %v", err)
			return err
		}
		fmt.Fprintln(intp.errout, err.Error())
		if err = intp.tokens.Ignore(grammar.PrintDelimiter); err != nil {
			return err
		}
	}
}

// step reads and evaluates a single statement, skipping empty statements. It
// returns true if the session is over.
func (intp *Interpreter) step() (bool, error) {
	intp.prompter.Prompt(intp.prompt)
	t, err := intp.tokens.Get()
	for err == nil && t.Kind == grammar.Print {
		t, err = intp.tokens.Get()
	}
	if errors.Is(err, io.EOF) {
		return true, nil
	} else if err != nil {
		return false, err
	}
	if t.Kind == grammar.Quit {
		return true, nil
	}
	if err = intp.tokens.Putback(t); err != nil {
		return false, err
	}
	v, err := intp.evaluator.Statement()
	if errors.Is(err, io.EOF) {
		tracer().Debugf("input ends within a statement")
		return true, nil
	} else if err != nil {
		return false, err
	}
	fmt.Fprintf(intp.out, "= %s\n", intp.format.Render(v, intp.precision))
	return false, nil
}

// writerPrompter writes prompts to a writer.
type writerPrompter struct {
	w io.Writer
}

func (wp writerPrompter) Prompt(prompt string) {
	io.WriteString(wp.w, prompt)
}
