package lox

import "strconv"

// Literal is a constant value carried by a token or a literal expression. The
// set of implementations is closed: StringLiteral, BoolLiteral, NumberLiteral
// and Nil.
type Literal interface {
	String() string
	isLiteral()
}

type StringLiteral string

func (l StringLiteral) String() string { return string(l) }

func (StringLiteral) isLiteral() {}

type BoolLiteral bool

func (l BoolLiteral) String() string { return strconv.FormatBool(bool(l)) }

func (BoolLiteral) isLiteral() {}

// NumberLiteral is a double-precision Lox number. It is displayed in the
// shortest decimal form, so 123.0 prints as "123".
type NumberLiteral float64

func (l NumberLiteral) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64)
}

func (NumberLiteral) isLiteral() {}

type nilLiteral struct{}

// Nil is the only value of the nil literal.
var Nil Literal = nilLiteral{}

func (nilLiteral) String() string { return "nil" }

func (nilLiteral) isLiteral() {}
