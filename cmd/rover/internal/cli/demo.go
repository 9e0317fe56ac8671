package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/germanamz/rover/cmd/rover/internal/demo"
	"github.com/germanamz/rover/pkg/engine"
)

func newDemoCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "demo <" + strings.Join(demo.Kinds, "|") + ">",
		Short:     "Run an interactive widget demo",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: demo.Kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, cleanup, err := buildDemo(v, args[0])
			if err != nil {
				return err
			}
			defer cleanup()
			return demo.Run(cmd.Context(), w)
		},
	}

	cmd.Flags().Bool("linear", false, "stepper only: lock steps until they are reached")
	_ = v.BindPFlag("linear", cmd.Flags().Lookup("linear"))

	return cmd
}

// buildDemo resolves the configuration and builds the widget. The cleanup
// function destroys the engine and closes the log file.
func buildDemo(v *viper.Viper, kind string) (demo.Widget, func(), error) {
	cfg, err := resolveConfig(v.GetString("config"), kind)
	if err != nil {
		return demo.Widget{}, nil, err
	}

	log, closeLog, err := openLogger(v.GetString("log"), v.GetString("log-level"))
	if err != nil {
		return demo.Widget{}, nil, err
	}

	w, err := demo.Build(kind, cfg, demo.Options{
		Logger: log,
		Events: engine.NewEventBus(),
		Linear: v.GetBool("linear"),
	})
	if err != nil {
		_ = closeLog()
		return demo.Widget{}, nil, err
	}
	log.Info("demo started", "kind", kind, "widget", w.Engine.ID())

	return w, func() {
		w.Engine.Destroy()
		_ = closeLog()
	}, nil
}

// resolveConfig loads path when given and falls back to the built-in sample
// for kind.
func resolveConfig(path, kind string) (engine.Config, error) {
	if path == "" {
		return demo.Sample(kind)
	}

	cfg, err := engine.LoadConfig(path)
	if err != nil {
		return engine.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

