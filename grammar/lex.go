package grammar

import (
	"errors"
	"io"
	"strconv"

	"github.com/npillmayer/pmcalc"
)

// TokenSource groups the runes of an input stream into tokens. It holds a buffer
// for a single token, which the parser may push back to look ahead by one.
//
// A TokenSource is not safe for concurrent use.
type TokenSource struct {
	stream *runeStream
	full   bool  // is a token buffered?
	buffer Token // the token pushed back, if full
}

// NewTokenSource creates a token source reading from r. If r is not a
// *bufio.Reader, it will be wrapped into one.
func NewTokenSource(r io.Reader) *TokenSource {
	return &TokenSource{stream: newRuneStream(r)}
}

// Get returns the next token. A token pushed back with Putback is returned
// first, without reading any input. At end of input Get returns io.EOF.
// Unrecognized characters result in an error of kind pmcalc.LexError.
func (ts *TokenSource) Get() (Token, error) {
	if ts.full {
		ts.full = false
		tracer().Debugf("read buffered token %q", ts.buffer)
		return ts.buffer, nil
	}
	r, err := ts.stream.skipSpace()
	if err != nil {
		return Token{}, err
	}
	switch {
	case isOperator(r):
		return OpToken(r), nil
	case r == 'q':
		return KeywordToken(Quit), nil
	case r == 'L':
		return KeywordToken(Let), nil
	case r == '.' || isDigit(r):
		ts.stream.backup()
		return ts.number()
	case isLetter(r):
		return ts.identifier(r)
	}
	tracer().Debugf("bad token at %#U", r)
	return Token{}, pmcalc.Errorf(pmcalc.LexError, "bad token")
}

// Putback stores t in the token buffer. Only one token may be pushed back
// before the next call to Get, otherwise an error of kind pmcalc.InternalError
// is returned.
func (ts *TokenSource) Putback(t Token) error {
	if ts.full {
		tracer().Errorf("putback of %q into buffer holding %q", t, ts.buffer)
		return pmcalc.Errorf(pmcalc.InternalError, "putback() into a full buffer")
	}
	ts.buffer = t
	ts.full = true
	return nil
}

// Ignore discards input up to and including the next occurrence of delim.
// If the buffered token is delim, only the buffer is cleared. Reaching end of
// input is not an error.
func (ts *TokenSource) Ignore(delim rune) error {
	if ts.full && ts.buffer.Is(delim) {
		ts.full = false
		return nil
	}
	ts.full = false
	tracer().Debugf("skipping input up to %q", delim)
	for {
		r, err := ts.stream.skipSpace()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if r == delim {
			return nil
		}
	}
}

// number scans a floating point literal: digits, an optional fraction and an
// optional exponent. The exponent is consumed only if at least one digit
// follows the 'e'.
func (ts *TokenSource) number() (Token, error) {
	ts.digits()
	if la := ts.stream.peek(1); len(la) == 1 && la[0] == '.' {
		ts.stream.matchByte()
		ts.digits()
	}
	if ts.exponent() {
		ts.digits()
	}
	lexeme := ts.stream.take()
	v, err := strconv.ParseFloat(lexeme, 64)
	if errors.Is(err, strconv.ErrRange) {
		tracer().Debugf("number %q out of range, is %g", lexeme, v)
		return NumberToken(v), nil
	} else if err != nil {
		tracer().Debugf("malformed number %q: %v", lexeme, err)
		return Token{}, pmcalc.Errorf(pmcalc.LexError, "bad token")
	}
	return NumberToken(v), nil
}

// exponent matches the start of an exponent, i.e. 'e' followed by a digit or
// by a sign and a digit. Input is peeked no further than necessary, as reading
// ahead may block on an interactive stream.
func (ts *TokenSource) exponent() bool {
	if la := ts.stream.peek(1); len(la) < 1 || (la[0] != 'e' && la[0] != 'E') {
		return false
	}
	la := ts.stream.peek(2)
	if len(la) < 2 {
		return false
	}
	if isDigit(rune(la[1])) {
		ts.stream.matchByte()
		return true
	}
	if la[1] != '+' && la[1] != '-' {
		return false
	}
	if la = ts.stream.peek(3); len(la) < 3 || !isDigit(rune(la[2])) {
		return false
	}
	ts.stream.matchByte()
	ts.stream.matchByte()
	return true
}

func (ts *TokenSource) digits() {
	for {
		la := ts.stream.peek(1)
		if len(la) == 0 || !isDigit(rune(la[0])) {
			return
		}
		ts.stream.matchByte()
	}
}

// identifier collects a name starting with first. Names continue with ASCII
// letters, digits and underscores.
func (ts *TokenSource) identifier(first rune) (Token, error) {
	ts.stream.match(first)
	for {
		r, err := ts.stream.next()
		if err == io.EOF {
			break
		} else if err != nil {
			ts.stream.take()
			return Token{}, err
		}
		if !isLetter(r) && !isDigit(r) && r != '_' {
			ts.stream.backup()
			break
		}
		ts.stream.match(r)
	}
	switch name := ts.stream.take(); name {
	case "quit":
		return KeywordToken(Quit), nil
	case "let":
		return KeywordToken(Let), nil
	default:
		return NameToken(name), nil
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isLetter is true for ASCII letters only.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
