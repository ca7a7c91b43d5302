// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pemdas.io/calc/parse"
	"pemdas.io/calc/scan"
)

// evaluate runs input through the full pipeline.
func evaluate(t *testing.T, input string) (float64, error) {
	t.Helper()
	tokens, err := scan.Tokenize(input)
	require.NoError(t, err, "input %q", input)
	postfix, err := parse.ToPostfix(tokens)
	require.NoError(t, err, "input %q", input)
	return Evaluate(postfix)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"8-3", 5},
		{"8-3-2", 3},
		{"7/2", 3.5},
		{"2^10", 1024},
		{"2^3^2", 512}, // 2^(3^2), not (2^3)^2
		{"-3^2", -9},   // -(3^2)
		{"(-3)^2", 9},
		{"--3", 3},
		{"-3", -3},
		{"50%", 0.5},
		{"50%+1", 1.5},
		{"200*50%", 100},
		{"2^(-1)", 0.5},
		{".5*4", 2},
	}
	for _, test := range tests {
		got, err := evaluate(t, test.input)
		require.NoError(t, err, "input %q", test.input)
		assert.InEpsilon(t, test.want, got, 1e-9, "input %q", test.input)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, input := range []string{"5/0", "1/(2-2)", "1/0%"} {
		got, err := evaluate(t, input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrDivisionByZero, "input %q", input)
		assert.False(t, math.IsInf(got, 0) || math.IsNaN(got), "input %q", input)
	}
}

func TestEvaluateMissingOperand(t *testing.T) {
	for _, input := range []string{"+", "1+", "*2", "%", "2 3 + +", "-"} {
		_, err := evaluate(t, input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrMissingOperand, "input %q", input)
	}
}

func TestEvaluateMalformedExpression(t *testing.T) {
	for _, input := range []string{"", "1 2", "(1)(2)"} {
		_, err := evaluate(t, input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrMalformedExpression, "input %q", input)
	}
}

func TestEvaluateTrace(t *testing.T) {
	tokens, err := scan.Tokenize("-8/2%")
	require.NoError(t, err)
	postfix, err := parse.ToPostfix(tokens)
	require.NoError(t, err)

	var lines []string
	got, err := EvaluateTrace(postfix, func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})
	require.NoError(t, err)
	assert.InEpsilon(t, -400.0, got, 1e-9)
	assert.Equal(t, []string{
		"Push 8 onto stack",
		"Unary minus applied: -8 -> pushed -8",
		"Push 2 onto stack",
		"Percent applied: 2% -> pushed 0.02",
		"Applying / to -8 and 0.02 -> -400",
	}, lines)

	// Tracing must not change the result.
	silent, err := Evaluate(postfix)
	require.NoError(t, err)
	assert.Equal(t, got, silent)
}
