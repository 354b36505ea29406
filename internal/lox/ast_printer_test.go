package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinter(t *testing.T) {
	expression := NewBinaryExpr(
		NewUnaryExpr(
			tok(MINUS, "-", 1),
			NewLiteralExpr(NumberLiteral(123)),
		),
		tok(STAR, "*", 1),
		NewGroupingExpr(NewLiteralExpr(NumberLiteral(45.67))),
	)

	printer := &AstPrinter{}
	assert.Equal(t, "(* (- 123) (group 45.67))", printer.Print(expression))
}

func TestAstPrinterLiterals(t *testing.T) {
	testCases := []struct {
		expr Expr
		want string
	}{
		{NewLiteralExpr(Nil), "nil"},
		{NewLiteralExpr(nil), "nil"},
		{NewLiteralExpr(BoolLiteral(true)), "true"},
		{NewLiteralExpr(BoolLiteral(false)), "false"},
		{NewLiteralExpr(NumberLiteral(10)), "10"},
		{NewLiteralExpr(NumberLiteral(0.5)), "0.5"},
		{NewLiteralExpr(StringLiteral("hello world")), "hello world"},
		{NewGroupingExpr(NewGroupingExpr(NewLiteralExpr(Nil))), "(group (group nil))"},
	}

	assert := assert.New(t)
	printer := &AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.want, printer.Print(tc.expr))
	}
}

func TestAstPrinterIsIdempotent(t *testing.T) {
	toks, err := Scan("!(1 + 2) == -3 * \"x\"")
	assert.NoError(t, err)
	expr, err := Parse(toks)
	assert.NoError(t, err)

	printer := &AstPrinter{}
	first := printer.Print(expr)
	assert.Equal(t, "(== (! (group (+ 1 2))) (* (- 3) x))", first)
	assert.Equal(t, first, printer.Print(expr))
}

// nodeCounter counts the nodes of a tree, exercising a visitor with a
// non-string result.
type nodeCounter struct{}

func (c nodeCounter) VisitBinaryExpr(expr *BinaryExpr) int {
	return 1 + Visit[int](expr.Left, c) + Visit[int](expr.Right, c)
}

func (c nodeCounter) VisitGroupingExpr(expr *GroupingExpr) int {
	return 1 + Visit[int](expr.Expression, c)
}

func (c nodeCounter) VisitLiteralExpr(expr *LiteralExpr) int {
	return 1
}

func (c nodeCounter) VisitUnaryExpr(expr *UnaryExpr) int {
	return 1 + Visit[int](expr.Right, c)
}

func TestVisitDispatchesByVariant(t *testing.T) {
	testCases := []struct {
		src   string
		nodes int
	}{
		{"1", 1},
		{"-1", 2},
		{"(1)", 2},
		{"1 + 2", 3},
		{"-123 * (45.67)", 5},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := Parse(mustScan(tc.src))

		assert.NoError(err)
		assert.Equal(tc.nodes, Visit[int](expr, nodeCounter{}), tc.src)
	}
}
