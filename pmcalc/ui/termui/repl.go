package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var helpMessage = "Statements end with ';'. Declare variables with 'let x = …', quit with 'q'."
var continuationPrompt = "  "

// LineReader is an input stream for an interpreter, reading lines from the
// terminal with line editing and history. LineReader implements io.Reader:
// every line entered becomes available to the reader, terminated by a newline.
//
// Prompts are shown by readline when a line is requested. If a statement spans
// several lines, lines after the first are prompted with a continuation prompt.
type LineReader struct {
	readline *readline.Instance
	toolname string
	version  string
	pending  []byte // rest of the current line, not yet consumed
}

// NewLineReader creates a line reader for an interpreter tool and a given version.
// Lines entered are saved to histfile. If histfile is empty, history goes to
// a file in the temp directory.
func NewLineReader(toolname, version, histfile string) (*LineReader, error) {
	if histfile == "" {
		histfile = fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	}
	rl, err := newReadline(histfile)
	if err != nil {
		return nil, err
	}
	lr := &LineReader{
		readline: rl,
		toolname: toolname,
		version:  version,
	}
	return lr, nil
}

// Create a readline instance.
func newReadline(histfile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:              "",
		HistoryFile:         histfile,
		AutoComplete:        replCompleter,
		InterruptPrompt:     "^C",
		EOFPrompt:           "quit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
}

// Completer for keywords and predefined constants
var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("let"),
	readline.PcItem("quit"),
	readline.PcItem("pi"),
	readline.PcItem("e"),
)

// Welcome prints a welcome message to the error output of the terminal.
func (lr *LineReader) Welcome() {
	io.WriteString(lr.readline.Stderr(),
		fmt.Sprintf(welcomeMessage, lr.toolname, lr.version))
	io.WriteString(lr.readline.Stderr(), "\n"+helpMessage+"\n")
}

// Outputs returns stdout and stderr of this line reader. Error output is
// colorized.
func (lr *LineReader) Outputs() (io.Writer, io.Writer) {
	return lr.readline.Stdout(), NewColorWriter(lr.readline.Stderr(), prtxt.FgRed)
}

// Prompt sets the prompt for the next line to read.
func (lr *LineReader) Prompt(prompt string) {
	lr.readline.SetPrompt(prtxt.FgGreen.Sprint(prompt))
}

// Read is part of interface io.Reader. It blocks until the user has entered
// a line. Ctrl-C on an empty line and Ctrl-D end the input.
func (lr *LineReader) Read(b []byte) (int, error) {
	for len(lr.pending) == 0 {
		line, err := lr.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return 0, io.EOF
			}
			continue
		} else if err != nil {
			return 0, err
		}
		trace().Debugf("read line %q", line)
		lr.pending = []byte(line + "\n")
		lr.readline.SetPrompt(continuationPrompt)
	}
	n := copy(b, lr.pending)
	lr.pending = lr.pending[n:]
	return n, nil
}

// Close closes the terminal and saves the history.
func (lr *LineReader) Close() error {
	return lr.readline.Close()
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
