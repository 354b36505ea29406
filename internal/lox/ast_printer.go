package lox

import "strings"

// AstPrinter renders a syntax tree in a parenthesized prefix form, e.g.
// "(* (- 123) (group 45.67))".
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	return Visit[string](expr, printer)
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) string {
	return printer.parenthesize(expr.Op.Lexeme, expr.Left, expr.Right)
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) string {
	return printer.parenthesize("group", expr.Expression)
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) string {
	if expr.Value == nil {
		return Nil.String()
	}
	return expr.Value.String()
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) string {
	return printer.parenthesize(expr.Op.Lexeme, expr.Right)
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(Visit[string](expr, printer))
	}
	b.WriteString(")")
	return b.String()
}
