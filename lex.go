package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number, possibly signed.
	tokenNum
	// tokenOp is an operator.
	tokenOp
)

//go:generate stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators, in the
// order they appear on the keypad's rightmost columns.
const Operators = "+-*/%"

// altOperators maps alternate spellings to the rune in Operators at the same
// byte index in altTargets.
const (
	altOperators = "×÷"
	altTargets   = "*/"
)

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
	// operand is whether the next token is in operand position, where a sign
	// immediately followed by a digit belongs to the number.
	operand bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:     src,
		rune:    1,
		operand: true,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// peekDigit reports whether the next rune starts the digits of a number,
// without consuming it.
func (l *lexer) peekDigit() (bool, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	l.unreadRune()
	return '0' <= r && r <= '9' || r == '.', nil
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent times, the result is
// an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			l.operand = false
			return tok, nil
		case (r == '+' || r == '-') && l.operand:
			// A sign glued to digits in operand position is part of the
			// number: results like -5 are fed back in as operands.
			dig, err := l.peekDigit()
			if err != nil {
				return tok, err
			}
			if dig {
				l.buf.WriteRune(r)
				if err := l.scanNum(); err != nil {
					return tok, err
				}
				tok.text = l.buf.String()
				tok.kind = tokenNum
				l.operand = false
				return tok, nil
			}
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.text = operstrs[k]
				tok.kind = tokenOp
				l.operand = true
				return tok, nil
			}
			if k := strings.IndexRune(altOperators, r); k >= 0 {
				// Both alternates are two bytes wide.
				tok.text = altTargets[k/2 : k/2+1]
				tok.kind = tokenOp
				l.operand = true
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans the digits and decimal point of a number into the buffer.
// At most one decimal point is allowed, and there must be at least one digit.
func (l *lexer) scanNum() error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if unicode.IsSpace(r) || strings.ContainsRune(Operators+altOperators, r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch {
		case r == '.':
			if dot {
				return l.error("number")
			}
			dot = true
		case '0' <= r && r <= '9':
			dig = true
		default:
			return l.error("number")
		}
	}
	if !dig {
		return l.error("number")
	}
	return nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}
