/*
Package lox is the front end of a Lox implementation: a scanner that turns
source text into tokens and a recursive-descent parser that turns tokens into
an expression tree.

	tokens, err := lox.Scan("-123 * (45.67)")
	expr, err := lox.Parse(tokens)
	(&lox.AstPrinter{}).Print(expr) // (* (- 123) (group 45.67))

Grammars

	expression --> equality ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | primary ;
	primary    --> NUMBER | STRING
	             | "true" | "false" | "nil"
	             | "(" expression ")" ;

Errors

Scanning stops at the first *LexError, parsing at the first *SyntaxError.
Both render in the usual diagnostic form:

	[line 1] Error: Unterminated string.
	[line 1] Error at end: Expect expression.
*/
package lox
