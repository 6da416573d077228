package calculator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/calculator"
)

// press presses each key in a space-separated list of labels.
func press(t *testing.T, e *calculator.Engine, keys string) {
	t.Helper()
	for _, label := range strings.Fields(keys) {
		if err := e.PressLabel(label); err != nil {
			t.Fatalf("pressing %q: %v", label, err)
		}
	}
}

func TestEngine(t *testing.T) {
	cases := []struct {
		name  string
		keys  string
		expr  string
		input string
	}{
		{"empty", "", "", "0"},
		{"digits", "1 2 3", "", "123"},
		{"leading-zero", "0 5", "", "5"},
		{"zeros", "0 0 7", "", "7"},
		{"zero-point", "0 . 5", "", "0.5"},
		{"point", ". 5", "", ".5"},
		{"one-point", "1 . 2 . 3", "", "1.23"},
		{"double-point", "1 . . 5", "", "1.5"},
		{"op-on-empty", "+", "", "0"},
		{"commit", "5 +", "5 + ", "0"},
		{"replace-op", "5 + *", "5 * ", "0"},
		{"replace-ops", "5 + * - /", "5 / ", "0"},
		{"second-operand", "5 + 1 2", "5 + ", "12"},
		{"chain", "1 + 2 -", "1 + 2 - ", "0"},
		{"add", "2 + 3 =", "2 + 3 =", "5"},
		{"typed-order", "2 + 3 * 4 =", "2 + 3 * 4 =", "20"},
		{"divide", "7 / 2 =", "7 / 2 =", "3.5"},
		{"div-zero", "4 / 0 =", "4 / 0 =", "Error"},
		{"float64", "0 . 1 + 0 . 2 =", "0.1 + 0.2 =", "0.30000000000000004"},
		{"negative", "9 - 1 2 =", "9 - 12 =", "-3"},
		{"negative-operand", "9 - 1 2 = * 2 =", "-3 * 2 =", "-6"},
		{"continue", "2 + 3 = + 1 =", "5 + 1 =", "6"},
		{"equals-twice", "2 + 3 = =", "2 + 3 =", "5"},
		{"equals-alone", "5 =", "", "5"},
		{"equals-no-operand", "5 + =", "5 + ", "0"},
		{"type-after-result", "2 + 3 = 4", "", "54"},
		{"error-operand", "4 / 0 = + 1 =", "Error + 1 =", "Error"},
		{"clear-entry", "2 + 7 C", "2 + ", "0"},
		{"clear-entry-retype", "2 + 7 C 8 =", "2 + 8 =", "10"},
		{"clear-all", "2 + 7 AC", "", "0"},
		{"clear-after-result", "2 + 3 = C", "", "0"},
		{"clear-all-after-result", "2 + 3 = AC", "", "0"},
		// A % between operands is rewritten to /100, which leaves two numbers
		// in a row. This pins the current behavior rather than endorsing it.
		{"percent-binary", "5 0 % 2 =", "50 % 2 =", "Error"},
		{"alt-ops", "6 × 2 ÷ 3 =", "6 * 2 / 3 =", "4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := calculator.New()
			press(t, e, c.keys)
			want := calculator.Display{Expression: c.expr, Input: c.input}
			if diff := cmp.Diff(want, e.Display()); diff != "" {
				t.Errorf("keys %q gave wrong display (-want +got):\n%s", c.keys, diff)
			}
		})
	}
}

func TestEngineOperatorOnEmpty(t *testing.T) {
	for _, op := range calculator.Operators {
		e := calculator.New()
		e.AppendOperator(op)
		if expr, input := e.Buffers(); expr != "" || input != "" {
			t.Errorf("%c on empty engine gave expression %q and input %q", op, expr, input)
		}
	}
}

func TestEngineEvaluateClearsExpression(t *testing.T) {
	e := calculator.New()
	press(t, e, "2 + 3")
	e.Evaluate()
	if d := e.Display(); d.Expression != "2 + 3 =" || d.Input != "5" {
		t.Errorf("wrong display after evaluating:\n%s", spew.Sdump(d))
	}
	expr, input := e.Buffers()
	if expr != "" {
		t.Errorf("expression should be empty after evaluating, got %q", expr)
	}
	if input != "5" {
		t.Errorf("input should be 5 after evaluating, got %q", input)
	}
	if r := e.Result(); r == nil || calculator.Format(r) != "5" {
		t.Errorf("wrong result %v", r)
	}
	if err := e.Err(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestEngineClearEntry(t *testing.T) {
	e := calculator.New()
	press(t, e, "2 + 7")
	e.ClearEntry()
	expr, input := e.Buffers()
	if expr != "2 + " || input != "" {
		t.Errorf("wrong buffers after clear entry: expression %q, input %q", expr, input)
	}
	if d := e.Display(); d.Input != "0" {
		t.Errorf("empty input should display as 0, got %q", d.Input)
	}
}

func TestEngineErrors(t *testing.T) {
	cases := []struct {
		name string
		keys string
		zero bool
	}{
		{"div-zero", "4 / 0 =", true},
		{"percent", "5 0 % 2 =", false},
		{"error-operand", "4 / 0 = + 1 =", false},
		{"lone-point", "2 + . =", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := calculator.New()
			press(t, e, c.keys)
			if _, input := e.Buffers(); input != calculator.ErrorText {
				t.Errorf("input should be %q, got %q", calculator.ErrorText, input)
			}
			if r := e.Result(); r != nil {
				t.Errorf("failed evaluation left result %v", r)
			}
			err := e.Err()
			if err == nil {
				t.Fatal("no error")
			}
			var dz *calculator.DivisionByZeroError
			if errors.As(err, &dz) != c.zero {
				t.Errorf("%v: division by zero should be %t", err, c.zero)
			}
			if calculator.IsMalformed(err) == c.zero {
				t.Errorf("%v: malformed should be %t", err, !c.zero)
			}
			e.ClearAll()
			if e.Err() != nil {
				t.Errorf("error %v survived clear all", e.Err())
			}
		})
	}
}

func TestEngineDisplayIdempotent(t *testing.T) {
	for _, keys := range []string{"", "1 2", "1 +", "1 + 2 =", "4 / 0 =", "1 + 2 C"} {
		e := calculator.New()
		press(t, e, keys)
		a, b := e.Display(), e.Display()
		if a != b {
			t.Errorf("keys %q: display changed from %+v to %+v", keys, a, b)
		}
	}
}

func TestEngineRender(t *testing.T) {
	var got []calculator.Display
	e := calculator.New(calculator.OnRender(func(d calculator.Display) {
		got = append(got, d)
	}))
	press(t, e, "+ 1 + 2 =")
	want := []calculator.Display{
		{Expression: "", Input: "0"},
		{Expression: "", Input: "1"},
		{Expression: "1 + ", Input: "0"},
		{Expression: "1 + ", Input: "2"},
		{Expression: "1 + 2 =", Input: "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong renders (-want +got):\n%s", diff)
	}
}

func TestEnginePressLabelUnknown(t *testing.T) {
	e := calculator.New()
	press(t, e, "1 +")
	before := e.Display()
	err := e.PressLabel("x")
	var ke *calculator.KeyError
	if !errors.As(err, &ke) {
		t.Fatalf("%#v is not a *KeyError", err)
	}
	if ke.Label != "x" {
		t.Errorf("wrong label in error: %q", ke.Label)
	}
	if after := e.Display(); after != before {
		t.Errorf("unknown key changed display from %+v to %+v", before, after)
	}
}

func TestEngineIgnoresInvalidRunes(t *testing.T) {
	e := calculator.New()
	e.AppendDigit('x')
	e.AppendOperator('^')
	e.Press(calculator.Key{})
	if expr, input := e.Buffers(); expr != "" || input != "" {
		t.Errorf("invalid runes gave expression %q and input %q", expr, input)
	}
}

func TestEnginePrec(t *testing.T) {
	e := calculator.New(calculator.Prec(100))
	press(t, e, "1 / 3 =")
	r := e.Result()
	if r == nil {
		t.Fatalf("no result: %v", e.Err())
	}
	if r.Prec() != 100 {
		t.Errorf("wrong precision: want 100, got %d", r.Prec())
	}
}

func Example() {
	e := calculator.New()
	for _, k := range []string{"1", "2", "+", "*", "3", "="} {
		e.PressLabel(k)
		d := e.Display()
		fmt.Printf("%-8q %s\n", d.Expression, d.Input)
	}
	// Output:
	// ""       1
	// ""       12
	// "12 + "  0
	// "12 * "  0
	// "12 * "  3
	// "12 * 3 =" 36
}
