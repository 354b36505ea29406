package main

// This is the front end of the Lox programming language written in Go. It
// prints the syntax tree of every expression it reads.

import (
	"os"

	"github.com/ltungv/lox/gloxfront/cmd/glox/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
