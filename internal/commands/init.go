package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/revcsv-dev/revcsv/internal/config"
)

// configFileName is the settings file written by init and read by the
// other commands.
const configFileName = "revcsv.yaml"

func newInitCommand() *cobra.Command {
	var website string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default revcsv.yaml settings file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir, website)
		},
	}

	cmd.Flags().StringVar(&website, "website", "", "source label stamped on output rows")

	return cmd
}

func runInit(cmd *cobra.Command, dir, website string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	set := config.Default()
	if website != "" {
		set.Website = website
	}
	if err := config.Save(path, set); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
