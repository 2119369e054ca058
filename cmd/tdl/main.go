package main

import (
	"fmt"
	"os"

	"github.com/tdl-lang/tdl/cmd/tdl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
