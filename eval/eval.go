// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval computes the value of a postfix token sequence using an
// operand stack. It is the last stage of the evaluation pipeline.
package eval // import "pemdas.io/calc/eval"

import (
	"errors"
	"fmt"
	"math"

	"pemdas.io/calc/scan"
)

// Evaluation errors.
var (
	ErrMissingOperand      = errors.New("invalid expression: missing operand")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrMalformedExpression = errors.New("invalid expression: malformed expression or missing operators")
)

// Tracer receives a formatted line for each stack push and operator
// application. A nil Tracer disables tracing; the computed result is
// identical either way.
type Tracer func(format string, args ...any)

// Evaluate computes the value of a postfix token sequence.
func Evaluate(postfix []scan.Token) (float64, error) {
	return EvaluateTrace(postfix, nil)
}

// EvaluateTrace is Evaluate with an optional trace callback.
// The sequence must contain only Number and Operator tokens, as
// produced by parse.ToPostfix. Binary operators pop the right operand
// first, so source order is preserved: "8-3" applies 8-3, not 3-8.
func EvaluateTrace(postfix []scan.Token, trace Tracer) (float64, error) {
	if trace == nil {
		trace = func(string, ...any) {}
	}
	var stack []float64
	pop := func() float64 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return x
	}

	for _, tok := range postfix {
		if tok.Type == scan.Number {
			stack = append(stack, tok.Value)
			trace("Push %v onto stack", tok.Value)
			continue
		}
		switch tok.Op {
		case scan.Neg:
			if len(stack) < 1 {
				return 0, fmt.Errorf("%w for unary minus", ErrMissingOperand)
			}
			x := pop()
			stack = append(stack, -x)
			trace("Unary minus applied: -%v -> pushed %v", x, -x)
		case scan.Percent:
			if len(stack) < 1 {
				return 0, fmt.Errorf("%w for '%%'", ErrMissingOperand)
			}
			x := pop()
			r := x / 100
			stack = append(stack, r)
			trace("Percent applied: %v%% -> pushed %v", x, r)
		default:
			if len(stack) < 2 {
				return 0, fmt.Errorf("%w for binary operator", ErrMissingOperand)
			}
			y := pop()
			x := pop()
			r, err := apply(x, y, tok.Op)
			if err != nil {
				return 0, err
			}
			stack = append(stack, r)
			trace("Applying %s to %v and %v -> %v", tok.Op, x, y, r)
		}
	}

	if len(stack) != 1 {
		return 0, ErrMalformedExpression
	}
	return stack[0], nil
}

// apply computes x op y for a binary operator.
func apply(x, y float64, op scan.Op) (float64, error) {
	switch op {
	case scan.Add:
		return x + y, nil
	case scan.Sub:
		return x - y, nil
	case scan.Mul:
		return x * y, nil
	case scan.Div:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	case scan.Pow:
		return math.Pow(x, y), nil
	}
	return 0, fmt.Errorf("unknown operator: %s", op)
}
