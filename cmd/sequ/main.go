// Command sequ prints sequences of numbers, letters and roman numerals.
package main

import (
	"os"

	"github.com/roach88/sequ/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
