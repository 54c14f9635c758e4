// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/touchkit/hscroll/internal/trace"
)

func newReplayCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "replay <trace.yaml>",
		Short: "Replay a recorded touch trace and report the scroll offsets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return errors.Errorf("format: unknown output format %q (expected text or yaml)", format)
			}
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open trace")
			}
			defer f.Close()
			tr, err := trace.Load(f)
			if err != nil {
				return errors.Wrapf(err, "load %s", args[0])
			}
			rep := trace.Replay(tr, a.scroller(a.log.WithName("replay")))
			a.log.Info("replayed trace", "path", args[0], "events", len(tr.Events), "final", rep.Final)
			if format == "yaml" {
				return rep.WriteYAML(cmd.OutOrStdout())
			}
			return rep.WriteText(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format: text or yaml")
	return cmd
}
