package lox

// Parser composes the syntax tree for the Lox language from the sequence of
// valid tokens that follow the following grammar rule.
//
// Grammar
//
//	expression --> equality ;
//	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
//	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
//	term       --> factor ( ( "-" | "+" ) factor )* ;
//	factor     --> unary ( ( "/" | "*" ) unary )* ;
//	unary      --> ( "!" | "-" ) unary
//	             | primary ;
//	primary    --> NUMBER | STRING
//	             | "true" | "false" | "nil"
//	             | "(" expression ")" ;
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser for the Lox language. The token sequence must
// end with an EOF token, as produced by the scanner.
func NewParser(tokens []*Token) (*Parser, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1] == nil || tokens[len(tokens)-1].Typ != EOF {
		return nil, ErrNoEOF
	}
	for _, tok := range tokens {
		if tok == nil {
			return nil, ErrNilToken
		}
	}
	return &Parser{0, tokens}, nil
}

// Parse builds the syntax tree of a single expression from the given tokens.
func Parse(tokens []*Token) (Expr, error) {
	parser, err := NewParser(tokens)
	if err != nil {
		return nil, err
	}
	return parser.Parse()
}

// Parse returns the parsed expression, or the first syntax error found. No
// tree is returned together with an error.
func (parser *Parser) Parse() (Expr, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

// Next returns the token the parser would read next. It is the EOF token once
// the whole stream has been consumed.
func (parser *Parser) Next() *Token {
	return parser.peek()
}

// expression --> equality ;
func (parser *Parser) expression() (Expr, error) {
	return parser.equality()
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `comparison` if does not hits "!=" or "==".
//
// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	return parser.binary(parser.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (Expr, error) {
	return parser.binary(parser.term, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	return parser.binary(parser.factor, MINUS, PLUS)
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	return parser.binary(parser.unary, SLASH, STAR)
}

// binary parses one precedence level of left-associative binary operators.
// The previous result becomes the left operand of each new node.
func (parser *Parser) binary(
	operand func() (Expr, error),
	operators ...TokenType,
) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.match(operators...) {
		op := parser.prev()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(expr, op, right)
	}
	return expr, nil
}

// unary --> ( "!" | "-" ) unary
//
//	| primary ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS) {
		op := parser.prev()
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, right), nil
	}
	return parser.primary()
}

// primary --> NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(FALSE) {
		return NewLiteralExpr(BoolLiteral(false)), nil
	}
	if parser.match(TRUE) {
		return NewLiteralExpr(BoolLiteral(true)), nil
	}
	if parser.match(NIL) {
		return NewLiteralExpr(Nil), nil
	}
	if parser.match(NUMBER, STRING) {
		return NewLiteralExpr(parser.prev().Literal), nil
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return NewGroupingExpr(expr), nil
	}
	return nil, NewSyntaxError(parser.peek(), "Expect expression.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) (*Token, error) {
	if parser.check(typ) {
		return parser.advance(), nil
	}
	return nil, NewSyntaxError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isAtEnd() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isAtEnd() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isAtEnd() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

// prev returns the most recently consumed token. Before anything has been
// consumed it returns the current token.
func (parser *Parser) prev() *Token {
	if parser.current == 0 {
		return parser.tokens[0]
	}
	return parser.tokens[parser.current-1]
}

// synchronize discards tokens until it reaches what is likely the start of
// the next statement: right after a ';', or right before a keyword that
// begins a declaration or statement.
func (parser *Parser) synchronize() {
	parser.advance()
	for !parser.isAtEnd() {
		if parser.prev().Typ == SEMICOLON {
			return
		}
		switch parser.peek().Typ {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		parser.advance()
	}
}
