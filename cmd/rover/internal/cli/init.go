package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/germanamz/rover/cmd/rover/internal/initwizard"
)

func newInitCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a widget config file interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := initwizard.Run()
			if err != nil {
				return err
			}

			out := v.GetString("out")
			if err := writeConfig(out, data, v.GetBool("force")); err != nil {
				return err
			}

			cmd.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "rover.yaml", "where to write the config")
	cmd.Flags().Bool("force", false, "overwrite an existing file")
	_ = v.BindPFlag("out", cmd.Flags().Lookup("out"))
	_ = v.BindPFlag("force", cmd.Flags().Lookup("force"))

	return cmd
}

// writeConfig writes data to path, refusing to replace an existing file
// unless force is set.
func writeConfig(path string, data []byte, force bool) error {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flag, 0o600) //nolint:gosec // path comes from the user's own flag
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
