package main

import (
	"fmt"
	"io"
	"os"

	"github.com/on-the-ground/pure_ive_go/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	input   string
	asJSON  bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "recordctl",
		Short:         "Collection utilities for YAML/JSON records",
		Long:          "recordctl indexes, sorts, projects and trims lists and mappings of records read from YAML or JSON.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if opts.verbose {
				var err error
				if logger, err = zap.NewDevelopment(); err != nil {
					return fmt.Errorf("failed to build logger: %w", err)
				}
			}
			cmd.SetContext(log.WithZapLogger(cmd.Context(), logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.input, "input", "i", "-", "input file, - for stdin")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "write JSON instead of YAML")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(newKeyByCmd(opts))
	rootCmd.AddCommand(newSortByCmd(opts))
	rootCmd.AddCommand(newOmitCmd(opts))
	rootCmd.AddCommand(newValuesCmd(opts))
	rootCmd.AddCommand(newMapValuesCmd(opts))
	rootCmd.AddCommand(newDebounceCmd(opts))

	return rootCmd
}

// openInput opens the configured input, falling back to the command's stdin.
func (o *options) openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	if o.input == "" || o.input == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(o.input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// readDocument reads and decodes the whole input.
func (o *options) readDocument(cmd *cobra.Command) (any, error) {
	r, err := o.openInput(cmd)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return decodeDocument(data)
}

func (o *options) write(cmd *cobra.Command, v any) error {
	if o.asJSON {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	return writeYAML(cmd.OutOrStdout(), v)
}
