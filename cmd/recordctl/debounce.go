package main

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/on-the-ground/pure_ive_go/debounce"
	"github.com/on-the-ground/pure_ive_go/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newDebounceCmd(opts *options) *cobra.Command {
	var (
		delay      time.Duration
		bufferSize int
	)

	cmd := &cobra.Command{
		Use:   "debounce",
		Short: "Debounce input lines and print the values that settle",
		Long: `Feed every input line into a debounced cell and print each settled value.
Lines arriving faster than --delay coalesce, only the last one of a burst
settles. Whatever is still pending at end of input is flushed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.openInput(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = r.Close() }()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			cell := debounce.New(ctx, "", debounce.NewConfig(delay, bufferSize, 1))
			settled := cell.Subscribe()
			out := cmd.OutOrStdout()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				for ev := range settled {
					if _, err := fmt.Fprintf(out, "%s\t(coalesced %d)\n", ev.Value, ev.Updates); err != nil {
						return fmt.Errorf("failed to write output: %w", err)
					}
				}
				return nil
			})
			g.Go(func() error {
				defer cell.Close()
				scanner := bufio.NewScanner(r)
				for scanner.Scan() {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					cell.Update(scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				if cell.Flush() {
					log.Effect(ctx, log.LogDebug, "flushed pending line at end of input", nil)
				}
				return nil
			})
			return g.Wait()
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", debounce.DefaultDelay, "quiet period before a line settles")
	cmd.Flags().IntVar(&bufferSize, "buffer", debounce.DefaultBufferSize, "settled values buffered for the printer")
	return cmd
}
