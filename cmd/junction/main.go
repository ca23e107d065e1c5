// Package main provides the junction CLI.
//
// Usage:
//
//	junction [flags] <command> [file]
//
// Commands:
//
//	aggregate - union the N shortest pairs, multiply the largest component sizes
//	connect   - find the pair that first connects every point
//	spanning  - minimum spanning tree over the ranked pairs
//	rankers   - list ranking strategies
//
// Input is one "x,y,z" point per line, read from the file argument or stdin.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/junction/cmd/junction/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
