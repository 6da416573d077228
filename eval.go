package calculator

import (
	"errors"
	"io"
	"math/big"
	"strings"
)

// DefaultPrec is the default precision of calculations in bits. It matches
// the mantissa of a float64.
const DefaultPrec = 53

// Option is an option used when creating an Engine or evaluating an
// expression.
type Option interface {
	option()
}

type (
	precopt   uint
	renderopt func(Display)
)

func (precopt) option()   {}
func (renderopt) option() {}

// Prec sets the precision of calculations. A precision of 0 selects
// DefaultPrec.
func Prec(prec uint) Option {
	return precopt(prec)
}

// OnRender sets a function to call with the display after every operation on
// an Engine. It has no effect on Eval.
func OnRender(f func(Display)) Option {
	return renderopt(f)
}

// precof finds the last precision setting in opts.
func precof(opts []Option) uint {
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok && p != 0 {
			return uint(p)
		}
	}
	return DefaultPrec
}

// SubstitutePercent rewrites every % in s as /100. The rewrite is purely
// textual, so a % between two operands, as in "50 % 2", becomes "50 /100 2",
// which does not evaluate.
func SubstitutePercent(s string) string {
	return strings.ReplaceAll(s, "%", "/100")
}

// Eval evaluates an expression of numbers separated by the operators + - * /.
// Operators are applied strictly left to right in the order they appear, with
// no precedence: "2 + 3 * 4" is 20. A % is not understood; use
// SubstitutePercent first.
//
// Errors implement InputError. A zero divisor gives a *DivisionByZeroError;
// any other problem means the expression is malformed.
func Eval(src io.RuneScanner, opts ...Option) (*big.Float, error) {
	prec := precof(opts)
	scan := lex(src)
	acc, err := operand(scan, prec)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenEOF:
			return acc, nil
		case tokenNum:
			return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "operator"}
		case tokenOp:
			if !strings.Contains("+-*/", tok.text) {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			rhs, err := operand(scan, prec)
			if err != nil {
				return nil, err
			}
			if err := apply(acc, tok, rhs); err != nil {
				return nil, err
			}
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, opts ...Option) (*big.Float, error) {
	return Eval(strings.NewReader(src), opts...)
}

// operand scans a number token and converts it to a value.
func operand(scan *lexer, prec uint) (*big.Float, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		r, _, err := new(big.Float).SetPrec(prec).Parse(tok.text, 10)
		if err != nil {
			// The lexer only produces numbers that parse, so this is a lexer
			// bug, but it is still the input's fault as far as callers know.
			return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		return r, nil
	case tokenEOF:
		return nil, &SyntaxError{Col: tok.pos, Want: "number"}
	case tokenOp:
		return nil, &SyntaxError{Col: tok.pos, Token: tok.text, Want: "number"}
	default:
		panic("calculator: unknown token: " + tok.String())
	}
}

// apply sets acc to acc op rhs.
func apply(acc *big.Float, op lexToken, rhs *big.Float) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var nan big.ErrNaN
		if e, ok := r.(error); ok && errors.As(e, &nan) {
			err = &DomainError{Col: op.pos, Operator: op.text, Reason: nan.Error()}
			return
		}
		panic(r)
	}()
	switch op.text {
	case "+":
		acc.Add(acc, rhs)
	case "-":
		acc.Sub(acc, rhs)
	case "*":
		acc.Mul(acc, rhs)
	case "/":
		if rhs.Sign() == 0 {
			return &DivisionByZeroError{Col: op.pos}
		}
		acc.Quo(acc, rhs)
	default:
		panic("calculator: apply on " + op.String())
	}
	return nil
}

// Format formats a result for display. Integers have no fractional part, and
// other values use the fewest decimal digits that identify the value at its
// precision. Neither uses an exponent.
func Format(x *big.Float) string {
	switch {
	case x.Sign() == 0:
		// Also covers -0.
		return "0"
	case x.IsInf():
		return x.String()
	case x.IsInt():
		return x.Text('f', 0)
	default:
		return x.Text('f', -1)
	}
}
