package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/fieldset"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fieldset",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fieldset version %s\n", strings.TrimSpace(fieldset.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
