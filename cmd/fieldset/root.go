package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/aretw0/fieldset"
	"github.com/aretw0/fieldset/internal/logging"
	"github.com/aretw0/fieldset/pkg/model"
)

// errInvalidRecords makes load exit non-zero after its output was printed.
var errInvalidRecords = errors.New("one or more records are invalid")

var (
	logger   = logging.NewNop()
	registry *prometheus.Registry
)

var rootCmd = &cobra.Command{
	Use:   "fieldset",
	Short: "Fieldset validates flat records against declared models",
	Long: `Fieldset reads model definitions from a catalog file (YAML or JSON) or an
OpenAPI 3 document and runs records through them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		logger = logging.New(level)

		if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
			registry = prometheus.NewRegistry()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if registry != nil {
		if merr := writeMetrics(os.Stderr, registry); merr != nil {
			logger.Error("failed to write metrics", "error", merr)
		}
	}
	if err != nil {
		if !errors.Is(err, errInvalidRecords) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("schema", "", "Catalog file declaring the models (YAML or JSON)")
	flags.String("openapi", "", "OpenAPI 3 document to read the model from")
	flags.String("component", "", "Component schema name inside the OpenAPI document")
	flags.StringP("model", "m", "", "Model name inside the catalog")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Bool("metrics", false, "Print Prometheus metrics to stderr on exit")
}

// definition resolves the model selected by the persistent flags.
func definition(cmd *cobra.Command) (*model.Definition, string, error) {
	schemaPath, _ := cmd.Flags().GetString("schema")
	openapiPath, _ := cmd.Flags().GetString("openapi")

	opts := []fieldset.Option{fieldset.WithLogger(logger), fieldset.WithEventLog()}
	if registry != nil {
		opts = append(opts, fieldset.WithMetrics(registry))
	}

	switch {
	case schemaPath != "" && openapiPath != "":
		return nil, "", errors.New("--schema and --openapi cannot be used together")
	case openapiPath != "":
		component, _ := cmd.Flags().GetString("component")
		if component == "" {
			return nil, "", errors.New("--component is required with --openapi")
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		def, err := fieldset.OpenAPI(ctx, openapiPath, component, opts...)
		return def, "", err
	case schemaPath != "":
		cat, err := fieldset.Open(schemaPath, opts...)
		if err != nil {
			return nil, "", err
		}
		name, _ := cmd.Flags().GetString("model")
		if name == "" {
			names := cat.Names()
			if len(names) != 1 {
				return nil, "", fmt.Errorf("--model is required, catalog declares %v", names)
			}
			name = names[0]
		}
		def, err := cat.Get(name)
		if err != nil {
			return nil, "", err
		}
		return def, cat.Description(name), nil
	default:
		return nil, "", errors.New("one of --schema or --openapi is required")
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
