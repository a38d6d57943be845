package main

import (
	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/spf13/cobra"
)

func newKeyByCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keyby <field>",
		Short: "Index a list of records by a string field",
		Long: `Index a list of records by the value of a field.
Later records win when two share a key. Every record must carry a string
value in the field, otherwise the command fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.readDocument(cmd)
			if err != nil {
				return err
			}
			items, err := asSequence(doc)
			if err != nil {
				return err
			}
			keyed, err := pure.KeyBy(items, pure.Field[any](args[0]))
			if err != nil {
				return err
			}
			return opts.write(cmd, pure.RecordOf(keyed))
		},
	}
}

func newSortByCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sortby <field>...",
		Short: "Stable sort of a list of records by one or more fields",
		Long: `Sort a list of records by the given fields, left to right.
The first field that differs decides; records equal on every field keep
their input order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.readDocument(cmd)
			if err != nil {
				return err
			}
			items, err := asSequence(doc)
			if err != nil {
				return err
			}
			criteria := make([]pure.Selector[any], len(args))
			for i, field := range args {
				criteria[i] = pure.Field[any](field)
			}
			return opts.write(cmd, pure.SortBy(items, criteria...))
		},
	}
}

func newOmitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "omit <key>...",
		Short: "Drop keys from a mapping, or from every mapping in a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.readDocument(cmd)
			if err != nil {
				return err
			}
			if items, ok := doc.([]any); ok {
				out := make([]any, len(items))
				for i, item := range items {
					if rec, ok := item.(*pure.Record[any]); ok {
						out[i] = pure.Omit(rec, args...)
						continue
					}
					out[i] = item
				}
				return opts.write(cmd, out)
			}
			rec, err := asMapping(doc)
			if err != nil {
				return err
			}
			return opts.write(cmd, pure.Omit(rec, args...))
		},
	}
}

func newValuesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "values",
		Short: "List the values of a mapping in document order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.readDocument(cmd)
			if err != nil {
				return err
			}
			if doc == nil {
				return opts.write(cmd, []any{})
			}
			rec, err := asMapping(doc)
			if err != nil {
				return err
			}
			return opts.write(cmd, pure.Values(rec))
		},
	}
}

func newMapValuesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mapvalues <field>",
		Short: "Replace each record of a mapping by one of its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.readDocument(cmd)
			if err != nil {
				return err
			}
			rec, err := asMapping(doc)
			if err != nil {
				return err
			}
			field := args[0]
			projected := pure.MapValues(rec, func(v any, _ string, _ *pure.Record[any]) any {
				if f, ok := v.(pure.Fielder); ok {
					val, _ := f.Field(field)
					return val
				}
				return nil
			})
			return opts.write(cmd, projected)
		},
	}
}
