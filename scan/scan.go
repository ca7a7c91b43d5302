// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan turns a line of text into a sequence of tokens:
// numbers, operators, and parentheses. It is the first stage of the
// evaluation pipeline and the only stage that sees raw input.
package scan // import "pemdas.io/calc/scan"

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Scan errors. Callers identify the failure with errors.Is; the wrapped
// message carries the offending text.
var (
	ErrMultipleDecimalPoints = errors.New("invalid number: multiple decimal points")
	ErrUnknownCharacter      = errors.New("unknown character")
)

// Type identifies the type of a token.
type Type int

const (
	Number Type = iota
	Operator
	LeftParen
	RightParen
)

func (t Type) String() string {
	switch t {
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Op identifies an operator. Neg is the synthetic unary-minus operator;
// it is produced only by the lookbehind rule in Tokenize, never directly
// from input text.
type Op int

const (
	NoOp Op = iota
	Add
	Sub
	Mul
	Div
	Pow
	Percent
	Neg
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Percent:
		return "%"
	case Neg:
		return "u"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Token represents one lexical element of an expression. Tokens are
// immutable and carry no position information.
type Token struct {
	Type  Type
	Op    Op      // set for Operator tokens only
	Value float64 // set for Number tokens only
	Text  string  // the source text of the token
}

func (t Token) String() string {
	switch t.Type {
	case Number:
		return fmt.Sprintf("Number: %v", t.Value)
	case Operator:
		return fmt.Sprintf("Operator: %s", t.Op)
	case LeftParen:
		return "Paren: ("
	case RightParen:
		return "Paren: )"
	}
	return t.Type.String()
}

const eof = -1

// scanner holds the state of a single call to Tokenize.
type scanner struct {
	input     string
	pos       int // current position in the input
	start     int // start position of the token being scanned
	lastWidth int // size of the rune most recently returned by next
	tokens    []Token
}

// Tokenize scans input left to right, one pass, and returns the token
// sequence. Whitespace separates tokens and is otherwise ignored. A '-'
// is classified as unary negation when no token has been emitted yet or
// the previous emitted token is an operator or a left parenthesis;
// classification looks at emitted tokens, not raw input position.
func Tokenize(input string) ([]Token, error) {
	s := &scanner{input: input}
	for {
		r := s.next()
		switch {
		case r == eof:
			return s.tokens, nil
		case isSpace(r):
			s.ignore()
		case r == '-' && s.unaryContext():
			s.emitOperator(Neg)
		case isDigit(r) || r == '.' && isDigit(s.peek()):
			s.backup()
			if err := s.scanNumber(); err != nil {
				return nil, err
			}
		case r == '+':
			s.emitOperator(Add)
		case r == '-':
			s.emitOperator(Sub)
		case r == '*':
			s.emitOperator(Mul)
		case r == '/':
			s.emitOperator(Div)
		case r == '^':
			s.emitOperator(Pow)
		case r == '%':
			s.emitOperator(Percent)
		case r == '(':
			s.emit(Token{Type: LeftParen, Text: "("})
		case r == ')':
			s.emit(Token{Type: RightParen, Text: ")"})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, r)
		}
	}
}

// next returns and consumes the next rune of the input.
func (s *scanner) next() rune {
	if s.pos >= len(s.input) {
		s.lastWidth = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += w
	s.lastWidth = w
	return r
}

// peek returns but does not consume the next rune of the input.
func (s *scanner) peek() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (s *scanner) backup() {
	s.pos -= s.lastWidth
}

// ignore skips over the pending input.
func (s *scanner) ignore() {
	s.start = s.pos
}

// emit appends a completed token and advances the token start.
func (s *scanner) emit(tok Token) {
	s.tokens = append(s.tokens, tok)
	s.start = s.pos
}

func (s *scanner) emitOperator(op Op) {
	s.emit(Token{Type: Operator, Op: op, Text: s.input[s.start:s.pos]})
}

// unaryContext reports whether a '-' just read is unary negation rather
// than binary subtraction.
func (s *scanner) unaryContext() bool {
	if len(s.tokens) == 0 {
		return true
	}
	last := s.tokens[len(s.tokens)-1]
	return last.Type == Operator || last.Type == LeftParen
}

// scanNumber scans a numeric literal: a run of digits with at most one
// decimal point. The first character has not been consumed.
func (s *scanner) scanNumber() error {
	hasDecimal := false
	for {
		r := s.next()
		if r == '.' {
			if hasDecimal {
				return fmt.Errorf("%w: %q", ErrMultipleDecimalPoints, s.input[s.start:s.pos])
			}
			hasDecimal = true
			continue
		}
		if !isDigit(r) {
			s.backup()
			break
		}
	}
	text := s.input[s.start:s.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Unreachable for the character set consumed, but don't guess.
		return fmt.Errorf("bad number syntax: %q", text)
	}
	s.emit(Token{Type: Number, Value: v, Text: text})
	return nil
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
