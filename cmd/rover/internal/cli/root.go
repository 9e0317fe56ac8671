// Package cli wires the rover command tree.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return NewRootCmd(viper.New()).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Flags are bound to v, which also reads
// ROVER_* environment variables, so ROVER_LOG=debug.log works like --log.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "rover",
		Short: "Accessible composite widgets for the terminal",
		Long: `Rover drives tabs, accordions, steppers, carousels and range pickers
from one interaction engine: roving focus, selection, activation
policies and screen reader announcements.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadDotEnv(v.GetString("env"))
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "widget config file (default: built-in sample)")
	flags.String("env", ".env", "path to .env file (ignored if missing)")
	flags.String("log", "", "write logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	for _, name := range []string{"config", "env", "log", "log-level"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	v.SetEnvPrefix("ROVER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newDemoCmd(v), newInitCmd(v))
	return root
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
