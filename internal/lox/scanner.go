package lox

import (
	"errors"
	"fmt"
	"strconv"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line    int
	start   int
	current int
	source  []rune
	tokens  []*Token
}

// NewScanner creates a new Lox token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan tokenizes the given source in one pass.
func Scan(source string) ([]*Token, error) {
	return NewScanner([]rune(source)).Scan()
}

// Scan reads the source and collect all the tokens that were found from the
// source. Scanning stops at the first lexical error, in which case no tokens
// are returned.
func (scanner *Scanner) Scan() ([]*Token, error) {
	for scanner.hasNext() {
		scanner.start = scanner.current
		if err := scanner.scanToken(); err != nil {
			return nil, err
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", Nil, scanner.line),
	)
	return scanner.tokens, nil
}

func (scanner *Scanner) scanToken() error {
	switch r := scanner.advance(); r {
	// Whitespaces
	case ' ', '\r', '\t':
	case '\n':
		scanner.line++
	// Single character tokens
	case '(':
		scanner.addToken(LEFT_PAREN, Nil)
	case ')':
		scanner.addToken(RIGHT_PAREN, Nil)
	case '{':
		scanner.addToken(LEFT_BRACE, Nil)
	case '}':
		scanner.addToken(RIGHT_BRACE, Nil)
	case ',':
		scanner.addToken(COMMA, Nil)
	case '.':
		scanner.addToken(DOT, Nil)
	case '-':
		scanner.addToken(MINUS, Nil)
	case '+':
		scanner.addToken(PLUS, Nil)
	case ';':
		scanner.addToken(SEMICOLON, Nil)
	case '*':
		scanner.addToken(STAR, Nil)
	// Double character tokens
	case '!':
		scanner.addTokenIfNext('=', BANG_EQUAL, BANG)
	case '=':
		scanner.addTokenIfNext('=', EQUAL_EQUAL, EQUAL)
	case '<':
		scanner.addTokenIfNext('=', LESS_EQUAL, LESS)
	case '>':
		scanner.addTokenIfNext('=', GREATER_EQUAL, GREATER)
	// Long lexemes
	case '/':
		if scanner.match('/') {
			// consume the comment, but keep the \n at the end of line so line
			// counting can work correctly
			for scanner.peek() != '\n' && scanner.hasNext() {
				scanner.advance()
			}
		} else {
			scanner.addToken(SLASH, Nil)
		}
	// Literals
	case '"':
		return scanner.scanString()
	default:
		if isDigit(r) {
			return scanner.scanNumber()
		}
		if isBeginIdent(r) {
			scanner.scanIdentifier()
			return nil
		}
		return NewLexError(scanner.line, "Unexpected character.")
	}
	return nil
}

func (scanner *Scanner) scanString() error {
	// read until EOF or found a maching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		if scanner.peek() == '\n' {
			scanner.line++
		}
		scanner.advance()
	}
	if !scanner.hasNext() {
		return NewLexError(scanner.line, "Unterminated string.")
	}

	// consume '"'
	scanner.advance()
	// content between '"' pair
	literal := string(scanner.source[scanner.start+1 : scanner.current-1])
	scanner.addToken(STRING, StringLiteral(literal))
	return nil
}

func (scanner *Scanner) scanNumber() error {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	// out of range spans still yield the nearest value (±Inf or 0)
	literal, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: scanned number %q on line %d: %v",
			ErrInternal, lexeme, scanner.line, err)
	}
	scanner.addToken(NUMBER, NumberLiteral(literal))
	return nil
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType, Nil)
	} else {
		scanner.addToken(IDENTIFIER, Nil)
	}
}

// addTokenIfNext adds a token of type `matched` if the next rune is `expected`,
// otherwise adds a token of type `unmatched`
func (scanner *Scanner) addTokenIfNext(expected rune, matched, unmatched TokenType) {
	if scanner.match(expected) {
		scanner.addToken(matched, Nil)
	} else {
		scanner.addToken(unmatched, Nil)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ TokenType, literal Literal) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.line)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the rune at the next position, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || isDigit(r)
}

func isBeginIdent(r rune) bool {
	return isAlpha(r) || r == '_'
}
