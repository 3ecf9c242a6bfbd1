package main

import (
	"os"

	"github.com/abhisek/wordmaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
