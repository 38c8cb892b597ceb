package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/fieldset/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show the fields of a model",
	Long:  `Renders the selected model as a markdown table, styled when stdout is a terminal.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		def, description, err := definition(cmd)
		if err != nil {
			return err
		}

		plain, _ := cmd.Flags().GetBool("plain")
		styled := !plain && term.IsTerminal(int(os.Stdout.Fd()))
		render, err := tui.NewRenderer(styled)
		if err != nil {
			return fmt.Errorf("failed to init renderer: %w", err)
		}

		out, err := render(tui.DescribeMarkdown(def, description))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().Bool("plain", false, "Print raw markdown even on a terminal")
}
