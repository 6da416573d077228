package calculator

import (
	"math/big"
	"strings"
)

// ErrorText is shown on the input line when an evaluation fails.
const ErrorText = "Error"

// Display is what a calculator shows: the expression committed so far on top,
// and the number being entered below it.
type Display struct {
	Expression string
	Input      string
}

// Engine accumulates key presses into an expression and evaluates it. The
// zero value is an engine with empty buffers, default precision, and no render
// function. It is not safe to use an Engine concurrently.
type Engine struct {
	// input is the number being typed.
	input string
	// expr is the committed "operand operator " pairs. It ends with an
	// operator and a space whenever it is non-empty.
	expr string
	// shown is the expression most recently evaluated. It is displayed until
	// the next operation that changes state.
	shown     string
	evaluated bool

	prec   uint
	render func(Display)

	result *big.Float
	err    error
}

// New creates an engine with empty buffers.
func New(opts ...Option) *Engine {
	e := Engine{prec: precof(opts)}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil, precopt:
			// Already done, or nothing to do.
		case renderopt:
			e.render = opt
		default:
			panic("calculator: unknown option type")
		}
	}
	return &e
}

// Display returns the current display. It does not change the engine.
func (e *Engine) Display() Display {
	d := Display{Expression: e.expr, Input: e.input}
	if e.evaluated {
		d.Expression = e.shown + " ="
	}
	if d.Input == "" {
		d.Input = "0"
	}
	return d
}

// Buffers returns the committed expression and the input as they are held,
// without the placeholder or the evaluation marker that Display adds.
func (e *Engine) Buffers() (expr, input string) {
	return e.expr, e.input
}

// Err returns the error from the most recent evaluation, if it failed.
func (e *Engine) Err() error {
	return e.err
}

// Result returns a copy of the value of the most recent evaluation. The result
// is nil if there has been no evaluation or the last one failed.
func (e *Engine) Result() *big.Float {
	if e.result == nil {
		return nil
	}
	return new(big.Float).Copy(e.result)
}

// AppendDigit adds a digit or decimal point to the input. A second decimal
// point is ignored, as is anything other than 0-9 and the point. A digit
// replaces an input of just "0".
func (e *Engine) AppendDigit(ch rune) {
	defer e.notify()
	if (ch < '0' || ch > '9') && ch != '.' {
		return
	}
	if ch == '.' && strings.ContainsRune(e.input, '.') {
		return
	}
	e.settle()
	if e.input == "0" && ch != '.' {
		e.input = string(ch)
	} else {
		e.input += string(ch)
	}
}

// AppendOperator commits the input and op to the expression. If there is no
// input but the expression ends with an operator, op replaces that operator.
// With nothing entered at all, or if op is not one of Operators, AppendOperator
// does nothing.
func (e *Engine) AppendOperator(op rune) {
	defer e.notify()
	if !strings.ContainsRune(Operators, op) {
		return
	}
	if e.input == "" && e.expr == "" {
		return
	}
	e.settle()
	if e.input != "" {
		e.expr += e.input + " " + string(op) + " "
		e.input = ""
		return
	}
	t := strings.TrimSpace(e.expr)
	if t != "" && strings.ContainsRune(Operators, rune(t[len(t)-1])) {
		e.expr = t[:len(t)-1] + string(op) + " "
	}
}

// Evaluate evaluates the expression followed by the input. The input becomes
// the formatted result, or ErrorText if evaluation fails, and the expression
// is cleared. Until the next change, the display shows the evaluated
// expression followed by " =". Without both an expression and an input,
// Evaluate does nothing.
func (e *Engine) Evaluate() {
	defer e.notify()
	if e.expr == "" || e.input == "" {
		return
	}
	full := e.expr + e.input
	e.shown, e.evaluated = full, true
	e.expr = ""
	r, err := EvalString(SubstitutePercent(full), Prec(e.prec))
	e.result, e.err = r, err
	if err != nil {
		e.input = ErrorText
		return
	}
	e.input = Format(r)
}

// ClearAll empties both the expression and the input.
func (e *Engine) ClearAll() {
	defer e.notify()
	e.settle()
	e.input, e.expr = "", ""
	e.result, e.err = nil, nil
}

// ClearEntry empties the input and leaves the expression alone.
func (e *Engine) ClearEntry() {
	defer e.notify()
	e.settle()
	e.input = ""
}

// Press performs the operation of a key. Keys with no kind are ignored.
func (e *Engine) Press(k Key) {
	switch k.Kind {
	case KindDigit:
		e.AppendDigit(k.Rune())
	case KindOperator:
		e.AppendOperator(k.Rune())
	case KindEquals:
		e.Evaluate()
	case KindClearAll:
		e.ClearAll()
	case KindClearEntry:
		e.ClearEntry()
	}
}

// PressLabel presses the key with the given label. If there is no such key,
// the engine is unchanged and the error is a *KeyError.
func (e *Engine) PressLabel(label string) error {
	k, err := ParseKey(label)
	if err != nil {
		return err
	}
	e.Press(k)
	return nil
}

// settle drops the evaluation marker from the display.
func (e *Engine) settle() {
	e.shown, e.evaluated = "", false
}

func (e *Engine) notify() {
	if e.render != nil {
		e.render(e.Display())
	}
}
