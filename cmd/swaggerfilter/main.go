package main

import (
	"os"
)

func main() {
	os.Exit(newCLI(os.Stdin, os.Stdout, os.Stderr).execute(os.Args[1:]))
}
