package main

import (
	"fmt"
	"os"

	"github.com/abhisek/brainquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "brainquiz:", err)
		os.Exit(1)
	}
}
