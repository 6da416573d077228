package calculator

import "strings"

// Kind is the kind of operation a key performs.
type Kind int8

const (
	kindNone Kind = iota

	KindDigit      // a digit or the decimal point
	KindOperator   // + - * / %
	KindEquals     // evaluate
	KindClearAll   // AC
	KindClearEntry // C
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindOperator:
		return "operator"
	case KindEquals:
		return "equals"
	case KindClearAll:
		return "clear all"
	case KindClearEntry:
		return "clear entry"
	default:
		return "none"
	}
}

// Key is a button on the keypad.
type Key struct {
	// Label is the text on the button. For digits and operators, it is the
	// single rune the button enters.
	Label string
	Kind  Kind
}

// Rune returns the rune a digit or operator key enters, or 0 for other keys.
func (k Key) Rune() rune {
	switch k.Kind {
	case KindDigit, KindOperator:
		for _, r := range k.Label {
			return r
		}
	}
	return 0
}

// ParseKey finds the key with the given label. Operators may also be written
// × and ÷, and the clear keys are case-insensitive.
func ParseKey(label string) (Key, error) {
	switch label {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		return Key{Label: label, Kind: KindDigit}, nil
	case "+", "-", "*", "/", "%":
		return Key{Label: label, Kind: KindOperator}, nil
	case "×":
		return Key{Label: "*", Kind: KindOperator}, nil
	case "÷":
		return Key{Label: "/", Kind: KindOperator}, nil
	case "=":
		return Key{Label: label, Kind: KindEquals}, nil
	}
	switch {
	case strings.EqualFold(label, "AC"):
		return Key{Label: "AC", Kind: KindClearAll}, nil
	case strings.EqualFold(label, "C"):
		return Key{Label: "C", Kind: KindClearEntry}, nil
	}
	return Key{}, &KeyError{Label: label}
}

// Button places a key on the keypad grid.
type Button struct {
	Key
	// Row and Col are the zero-based grid cell of the button's left edge.
	Row, Col int
	// Span is the number of columns the button covers.
	Span int
}

// keypad is five rows of four columns. The 0 key is two columns wide.
var keypad = []Button{
	{Key{"AC", KindClearAll}, 0, 0, 1},
	{Key{"C", KindClearEntry}, 0, 1, 1},
	{Key{"%", KindOperator}, 0, 2, 1},
	{Key{"/", KindOperator}, 0, 3, 1},
	{Key{"7", KindDigit}, 1, 0, 1},
	{Key{"8", KindDigit}, 1, 1, 1},
	{Key{"9", KindDigit}, 1, 2, 1},
	{Key{"*", KindOperator}, 1, 3, 1},
	{Key{"4", KindDigit}, 2, 0, 1},
	{Key{"5", KindDigit}, 2, 1, 1},
	{Key{"6", KindDigit}, 2, 2, 1},
	{Key{"-", KindOperator}, 2, 3, 1},
	{Key{"1", KindDigit}, 3, 0, 1},
	{Key{"2", KindDigit}, 3, 1, 1},
	{Key{"3", KindDigit}, 3, 2, 1},
	{Key{"+", KindOperator}, 3, 3, 1},
	{Key{"0", KindDigit}, 4, 0, 2},
	{Key{".", KindDigit}, 4, 2, 1},
	{Key{"=", KindEquals}, 4, 3, 1},
}

// Keypad dimensions.
const (
	KeypadRows = 5
	KeypadCols = 4
)

// Buttons returns the keypad layout in row-major order.
func Buttons() []Button {
	return append([]Button(nil), keypad...)
}
