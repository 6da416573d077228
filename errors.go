package calculator

import (
	"errors"
	"strconv"
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// SyntaxError indicates a token where the evaluator expected something else,
// e.g. two operators or two numbers in a row. It implements InputError.
type SyntaxError struct {
	// Col is the position of the unexpected token.
	Col int
	// Token is the unexpected token's text. It is empty at the end of the
	// input.
	Token string
	// Want is what the evaluator expected, "number" or "operator".
	Want string
}

func (err *SyntaxError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "expected "+err.Want+" at end of expression")
	}
	return errpos(err.Col, "expected "+err.Want+", got "+strconv.Quote(err.Token))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that the evaluator
// does not apply. A % that was not substituted before evaluation produces
// this. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division with a zero divisor.
// It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// DomainError is an error indicating an operation with no defined result,
// such as subtracting two infinities. It implements InputError.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was applied.
	Operator string
	// Reason describes why the operation failed.
	Reason string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, strconv.Quote(err.Operator)+" outside domain: "+err.Reason)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// KeyError is returned for a button label that is not on the keypad.
type KeyError struct {
	// Label is the label that was not recognized.
	Label string
}

func (err *KeyError) Error() string {
	return "unknown key " + strconv.Quote(err.Label)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// evaluating invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*DomainError)(nil)
)

// IsMalformed reports whether err is an evaluation error other than a division
// by zero, i.e. the expression itself could not be read.
func IsMalformed(err error) bool {
	var ie InputError
	if !errors.As(err, &ie) {
		return false
	}
	var dz *DivisionByZeroError
	return !errors.As(err, &dz)
}
