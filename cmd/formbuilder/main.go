package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-formbuilder/cmd/formbuilder/commands"
	"github.com/goliatone/go-formbuilder/internal/cli"
)

func main() {
	if err := commands.NewRootCommand(cli.NewApp()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
