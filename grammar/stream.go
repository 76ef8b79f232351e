package grammar

import (
	"bufio"
	"bytes"
	"io"
	"unicode"
	"unicode/utf8"
)

// runeStream reads runes from an input stream and collects matched runes into
// a lexeme. Only the most recently read rune may be backed up, as with
// bufio.Reader.UnreadRune; bytes may be inspected ahead with peek.
type runeStream struct {
	isEof  bool
	reader *bufio.Reader
	lexeme bytes.Buffer
}

func newRuneStream(r io.Reader) *runeStream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &runeStream{reader: br}
}

// next reads the next rune. At end of input it returns utf8.RuneError and io.EOF.
func (rs *runeStream) next() (r rune, err error) {
	if rs.isEof {
		return utf8.RuneError, io.EOF
	}
	r, _, err = rs.reader.ReadRune()
	if err == io.EOF {
		tracer().Debugf("EOF for calculator input")
		rs.isEof = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return utf8.RuneError, err
	}
	return
}

// skipSpace reads the next rune which is not white space.
func (rs *runeStream) skipSpace() (r rune, err error) {
	for {
		if r, err = rs.next(); err != nil || !unicode.IsSpace(r) {
			return
		}
	}
}

// backup pushes the rune just read back onto the input.
func (rs *runeStream) backup() {
	if rs.isEof {
		return
	}
	if err := rs.reader.UnreadRune(); err != nil {
		tracer().Errorf("cannot back up rune: %v", err)
	}
}

// peek returns up to n bytes of upcoming input without consuming them.
// Fewer bytes are returned at end of input.
func (rs *runeStream) peek(n int) []byte {
	if rs.isEof {
		return nil
	}
	b, _ := rs.reader.Peek(n)
	return b
}

// matchByte consumes one byte of input and appends it to the lexeme.
// Callers have to make sure by peeking that the byte exists.
func (rs *runeStream) matchByte() {
	if b, err := rs.reader.ReadByte(); err == nil {
		rs.lexeme.WriteByte(b)
	}
}

func (rs *runeStream) match(r rune) {
	rs.lexeme.WriteRune(r)
}

// take returns the lexeme collected so far and resets it.
func (rs *runeStream) take() string {
	s := rs.lexeme.String()
	rs.lexeme.Reset()
	return s
}
