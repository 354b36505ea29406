package lox

func tokEOF(line int) *Token {
	return NewToken(EOF, "", Nil, line)
}

func tok(typ TokenType, lexeme string, line int) *Token {
	return NewToken(typ, lexeme, Nil, line)
}

func num(lexeme string, value float64) *Token {
	return NewToken(NUMBER, lexeme, NumberLiteral(value), 1)
}

// mustScan scans src and panics on error. Only used for sources that are known
// to be valid.
func mustScan(src string) []*Token {
	toks, err := Scan(src)
	if err != nil {
		panic(err)
	}
	return toks
}
