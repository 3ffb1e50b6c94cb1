package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/printbreak/cmd/printbreak/commands"
	"github.com/arthur-debert/printbreak/internal/version"
)

func main() {
	rootCmd := commands.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PRINTBREAK",
		Section: "1",
		Source:  "printbreak " + version.Version,
		Manual:  "printbreak manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
