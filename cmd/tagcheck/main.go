package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/tagcheck/cmd/tagcheck/commands"
)

const (
	cmdName = "tagcheck"

	shortDesc = "Validate that manifest.json matches a release tag."
	longDesc  = `Tagcheck validates that the version recorded in a manifest.json file matches
an expected version string, typically derived from a source-control tag.

The manifest is resolved from the current working directory first, then from
the parent of the directory containing the tagcheck binary. Failures are
formatted as GitHub Actions error annotations, and the process exits non-zero
so a CI release job stops before publishing a mismatched artifact.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
