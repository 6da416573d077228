// Package calculator implements the engine behind a keypad calculator.
//
// An Engine turns discrete button presses (digits, the decimal point, the
// operators + - * / %, equals, AC and C) into two display strings: the
// expression committed so far and the number currently being typed. Any
// presentation layer can drive it by pressing keys and rendering Display.
//
// Expressions are evaluated strictly in the order they were typed, so
// "2 + 3 * 4" is 20, not 14. There are no parentheses and no precedence.
// A percent sign is rewritten to "/100" before evaluation.
//
// Arithmetic uses math/big floats. The default precision of 53 bits gives the
// same results as float64 arithmetic.
package calculator
