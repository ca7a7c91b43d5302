// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse converts an infix token sequence into postfix (reverse
// Polish) order using the shunting-yard algorithm, resolving operator
// precedence and associativity so the evaluator never needs to.
package parse // import "pemdas.io/calc/parse"

import (
	"errors"

	"pemdas.io/calc/scan"
)

// Parse errors.
var (
	ErrUnmatchedRightParen = errors.New("mismatched parentheses: unexpected ')'")
	ErrUnmatchedLeftParen  = errors.New("mismatched parentheses: unclosed '('")
)

// Precedence returns the binding power of op. Higher binds tighter.
func Precedence(op scan.Op) int {
	switch op {
	case scan.Add, scan.Sub:
		return 1
	case scan.Mul, scan.Div:
		return 2
	case scan.Neg:
		return 3
	case scan.Pow:
		return 4
	case scan.Percent:
		return 5
	}
	return 0
}

// RightAssoc reports whether op is right-associative. Exponentiation,
// unary negation, and percent group right to left; the rest group left
// to right.
func RightAssoc(op scan.Op) bool {
	switch op {
	case scan.Pow, scan.Neg, scan.Percent:
		return true
	}
	return false
}

// ToPostfix transforms tokens from infix to postfix order in one linear
// pass over the input with an explicit operator stack. The result
// contains only Number and Operator tokens; parentheses are consumed
// here and unbalanced ones are reported as errors.
func ToPostfix(tokens []scan.Token) ([]scan.Token, error) {
	output := make([]scan.Token, 0, len(tokens))
	var stack []scan.Token

	for _, tok := range tokens {
		switch tok.Type {
		case scan.Number:
			output = append(output, tok)
		case scan.Operator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != scan.Operator {
					break
				}
				if !RightAssoc(tok.Op) && Precedence(top.Op) >= Precedence(tok.Op) ||
					RightAssoc(tok.Op) && Precedence(top.Op) > Precedence(tok.Op) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, tok)
		case scan.LeftParen:
			stack = append(stack, tok)
		case scan.RightParen:
			for {
				if len(stack) == 0 {
					return nil, ErrUnmatchedRightParen
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == scan.LeftParen {
					break
				}
				output = append(output, top)
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == scan.LeftParen {
			return nil, ErrUnmatchedLeftParen
		}
		output = append(output, top)
	}
	return output, nil
}
