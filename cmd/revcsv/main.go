package main

import (
	"os"

	"github.com/revcsv-dev/revcsv/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
