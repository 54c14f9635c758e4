// SPDX-License-Identifier: Unlicense OR MIT

// Command hscroll replays recorded touch traces against the
// horizontal scroll container and runs an interactive terminal demo
// where mouse drags stand in for touches.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/touchkit/hscroll/internal/config"
	"github.com/touchkit/hscroll/internal/logging"
	"github.com/touchkit/hscroll/widget"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hscroll: %v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by the subcommands once the
// persistent flags are parsed.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log logr.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logr.Discard()}
	var noColor bool
	cmd := &cobra.Command{
		Use:           "hscroll",
		Short:         "Exercise the touch-driven horizontal scroll container",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			return a.load(cmd)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	config.BindFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.AddCommand(newReplayCommand(a), newDemoCommand(a))
	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// scroller returns a container configured from the loaded settings.
func (a *app) scroller(log logr.Logger) *widget.HScroll {
	h := &widget.HScroll{Logger: log}
	a.cfg.Apply(h)
	return h
}
