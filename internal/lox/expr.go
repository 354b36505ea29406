package lox

// Expr is a node of the expression syntax tree. Accept is the only way to
// observe which variant a node is.
type Expr interface {
	Accept(visitor ExprVisitor[any]) any
}

// ExprVisitor has one method for each expression variant, all returning R.
type ExprVisitor[R any] interface {
	VisitBinaryExpr(expr *BinaryExpr) R
	VisitGroupingExpr(expr *GroupingExpr) R
	VisitLiteralExpr(expr *LiteralExpr) R
	VisitUnaryExpr(expr *UnaryExpr) R
}

// Visit dispatches expr to the matching method of visitor and returns its
// typed result.
func Visit[R any](expr Expr, visitor ExprVisitor[R]) R {
	r, _ := expr.Accept(erasedVisitor[R]{visitor}).(R)
	return r
}

// erasedVisitor lifts an ExprVisitor[R] into an ExprVisitor[any] so nodes only
// need a single Accept method.
type erasedVisitor[R any] struct {
	visitor ExprVisitor[R]
}

func (v erasedVisitor[R]) VisitBinaryExpr(expr *BinaryExpr) any {
	return v.visitor.VisitBinaryExpr(expr)
}

func (v erasedVisitor[R]) VisitGroupingExpr(expr *GroupingExpr) any {
	return v.visitor.VisitGroupingExpr(expr)
}

func (v erasedVisitor[R]) VisitLiteralExpr(expr *LiteralExpr) any {
	return v.visitor.VisitLiteralExpr(expr)
}

func (v erasedVisitor[R]) VisitUnaryExpr(expr *UnaryExpr) any {
	return v.visitor.VisitUnaryExpr(expr)
}

type BinaryExpr struct {
	Left  Expr
	Op    *Token
	Right Expr
}

func NewBinaryExpr(Left Expr, Op *Token, Right Expr) *BinaryExpr {
	return &BinaryExpr{Left, Op, Right}
}

func (expr *BinaryExpr) Accept(visitor ExprVisitor[any]) any {
	return visitor.VisitBinaryExpr(expr)
}

type GroupingExpr struct {
	Expression Expr
}

func NewGroupingExpr(Expression Expr) *GroupingExpr {
	return &GroupingExpr{Expression}
}

func (expr *GroupingExpr) Accept(visitor ExprVisitor[any]) any {
	return visitor.VisitGroupingExpr(expr)
}

type LiteralExpr struct {
	Value Literal
}

func NewLiteralExpr(Value Literal) *LiteralExpr {
	return &LiteralExpr{Value}
}

func (expr *LiteralExpr) Accept(visitor ExprVisitor[any]) any {
	return visitor.VisitLiteralExpr(expr)
}

type UnaryExpr struct {
	Op    *Token
	Right Expr
}

func NewUnaryExpr(Op *Token, Right Expr) *UnaryExpr {
	return &UnaryExpr{Op, Right}
}

func (expr *UnaryExpr) Accept(visitor ExprVisitor[any]) any {
	return visitor.VisitUnaryExpr(expr)
}
