package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/fieldset/pkg/model"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Copy records into the model without validation",
	Long: `Reads a record (mapping) or a batch (sequence) from file or stdin and prints
the stored values, keyed by attribute name, as JSON.`,
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
		return runDump(def, in, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(def *model.Definition, in input, out io.Writer) error {
	var v any
	if in.isList {
		v = def.NewList().Dumps(in.batch)
	} else {
		v = def.New().Dump(in.record)
	}
	return writeJSON(out, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
