package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/revcsv-dev/revcsv/internal/config"
	"github.com/revcsv-dev/revcsv/internal/importer"
	"github.com/revcsv-dev/revcsv/internal/logger"
	"github.com/revcsv-dev/revcsv/internal/pipeline"
)

func newConvertCommand() *cobra.Command {
	var configPath string
	var outputPath string
	var dirMode bool

	cmd := &cobra.Command{
		Use:   "convert <file-or-directory>",
		Short: "Convert a Revolut export into a normalized CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSettings(configPath)
			if err != nil {
				return err
			}
			if dirMode {
				return runConvertDir(cmd, args[0], set)
			}
			return runConvertFile(cmd, args[0], outputPath, set)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", configFileName, "settings file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&dirMode, "dir", false, "convert every CSV in a directory, moving inputs to processed/")

	return cmd
}

// loadSettings reads the settings file. When the default file is simply
// absent, built-in defaults are used instead; an explicitly named file
// must exist.
func loadSettings(path string) (*config.Settings, error) {
	set, err := config.Load(path)
	if err == nil {
		return set, nil
	}
	if path == configFileName && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, err
}

func runConvertFile(cmd *cobra.Command, inPath, outPath string, set *config.Settings) error {
	log := logger.New()

	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	outcome, err := pipeline.New(set, log).Convert(cmd.Context(), f)
	if err != nil {
		return err
	}
	if outcome.ClassifierErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: remote classification failed: %v\n", outcome.ClassifierErr)
	}

	if outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), outcome.CSV)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(outcome.CSV), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Info().Str("file", outPath).Int("rows", len(outcome.Exported)).Msg("converted")
	return nil
}

func runConvertDir(cmd *cobra.Command, dir string, set *config.Settings) error {
	log := logger.New()

	files, err := importer.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no CSV files found")
		return nil
	}

	p := pipeline.New(set, log)
	for _, file := range files {
		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}
		outcome, err := p.Convert(cmd.Context(), f)
		f.Close()
		if err != nil {
			return fmt.Errorf("converting %s: %w", file.Name, err)
		}
		if outcome.ClassifierErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: remote classification failed for %s: %v\n",
				file.Name, outcome.ClassifierErr)
		}

		outPath := filepath.Join(dir, importer.OutputName(file.Name))
		if err := os.WriteFile(outPath, []byte(outcome.CSV), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		if err := importer.MarkProcessed(dir, file.Name); err != nil {
			return err
		}
		log.Info().Str("file", file.Name).Int("rows", len(outcome.Exported)).Msg("converted")
	}
	return nil
}
