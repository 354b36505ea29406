package lox

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal marks a broken scanner invariant. It never describes a
	// problem with the user's source.
	ErrInternal = errors.New("internal error")
	// ErrNoEOF is returned when a parser is given a token stream that is not
	// terminated by an EOF token.
	ErrNoEOF = errors.New("token stream is not terminated by EOF")
	// ErrNilToken is returned when a parser is given a token stream holding a
	// nil token.
	ErrNilToken = errors.New("token stream contains a nil token")
)

// LexError is reported by the scanner when it encounters a character sequence
// that does not form a valid token.
type LexError struct {
	Line    int
	Message string
}

// NewLexError creates a new scanning error
func NewLexError(line int, message string) error {
	return &LexError{line, message}
}

func (err *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", err.Line, err.Message)
}

// SyntaxError wraps the error message returned by the parser with the token
// where the error occured.
type SyntaxError struct {
	Token   *Token
	Message string
}

// NewSyntaxError creates a new parsing error
func NewSyntaxError(token *Token, message string) error {
	return &SyntaxError{token, message}
}

// Line returns the line of the offending token.
func (err *SyntaxError) Line() int {
	return err.Token.Line
}

// Where describes the location of the offending token, either "at end" or
// "at '<lexeme>'".
func (err *SyntaxError) Where() string {
	if err.Token.Typ == EOF {
		return "at end"
	}
	return fmt.Sprintf("at '%s'", err.Token.Lexeme)
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error %s: %s", err.Line(), err.Where(), err.Message)
}
