package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/tagcheck/internal/version"
)

// GetVersionString returns the version string reported by the CLI.
func GetVersionString() string {
	return fmt.Sprintf("%s+%s", version.Version, version.Revision)
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the tagcheck CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
