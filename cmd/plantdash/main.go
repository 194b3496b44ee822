// Package main provides the plantdash command.
package main

import (
	"fmt"
	"os"

	"plantdash/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
