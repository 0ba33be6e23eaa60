// vek - vector math toolbox
// Seeded random vectors and UUIDs, quantization, axis-angle conversion and
// terminal plots of point sets and glTF models.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/vek/internal/logging"
	"github.com/taigrr/vek/pkg/mathutil"
)

var version = "dev"

// config holds the persistent flags shared by every subcommand.
type config struct {
	logLevel  string
	logFormat string
	seed      uint32
	seeded    bool

	logger *logging.Logger
}

// source returns a seeded stream when --seed is given, and the shared
// generator otherwise.
func (c *config) source() mathutil.Source {
	if !c.seeded {
		return mathutil.DefaultSource()
	}
	return mathutil.NewRand(c.seed)
}

func newRootCmd() *cobra.Command {
	cfg := &config{logger: logging.Noop()}

	root := &cobra.Command{
		Use:   "vek",
		Short: "Vector math toolbox",
		Long: `vek - vector math toolbox

Generate seeded random vectors and UUIDs, quantize values, convert
rotations to axis-angle form, and plot point sets and glTF models in the
terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.Build(cmd.ErrOrStderr(), cfg.logFormat, cfg.logLevel)
			if err != nil {
				return err
			}
			cfg.logger = logger
			cfg.seeded = cmd.Flags().Changed("seed")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.logFormat, "log-format", "text", "Log format (text, json)")
	flags.Uint32Var(&cfg.seed, "seed", 0, "Seed for reproducible output")

	root.AddCommand(
		newUUIDCmd(cfg),
		newRandCmd(cfg),
		newQuantizeCmd(),
		newAxisAngleCmd(),
		newSphereCmd(cfg),
		newInfoCmd(cfg),
		newViewCmd(cfg),
	)
	return root
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
