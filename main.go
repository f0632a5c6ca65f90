package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/etapa/cmd"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		logging.Discard()
	}

	err := cmd.Execute()
	if err != nil && !cli.Reported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
