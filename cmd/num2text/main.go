// Package main is the entry point for the num2text CLI.
package main

import (
	"os"

	"github.com/rahmat412/num2text-sub006/cmd/num2text/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
