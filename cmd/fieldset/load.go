package main

import (
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/fieldset/internal/presentation/tui"
	"github.com/aretw0/fieldset/pkg/model"
)

var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Validate records against the model",
	Long: `Reads a record (mapping) or a batch (sequence) from file or stdin, validates
every field and prints the alias-keyed data with per-field errors as JSON.
Exits with status 1 when any record is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, _, err := definition(cmd)
		if err != nil {
			return err
		}
		in, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		var profile *termenv.Profile
		if report, _ := cmd.Flags().GetBool("report"); report {
			p := termenv.ColorProfile()
			profile = &p
		}
		return runLoad(def, in, cmd.OutOrStdout(), profile)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Bool("report", false, "Print a text report instead of JSON")
}

// runLoad validates in and writes the results as JSON, or as a text report
// when profile is set. It returns errInvalidRecords if any record failed.
func runLoad(def *model.Definition, in input, out io.Writer, profile *termenv.Profile) error {
	var results []model.Result
	if in.isList {
		results = def.NewList().Loads(in.batch)
	} else {
		snap, report := def.New().Load(in.record)
		results = []model.Result{{Snapshot: snap, Errors: report}}
	}

	var err error
	switch {
	case profile != nil:
		err = tui.WriteReport(out, *profile, results)
	case in.isList:
		err = writeJSON(out, results)
	default:
		err = writeJSON(out, results[0])
	}
	if err != nil {
		return err
	}

	for _, res := range results {
		if !res.Errors.Valid() {
			return errInvalidRecords
		}
	}
	return nil
}
