package cmd

import (
	"context"
	"fmt"
	"os"

	"move-clipper/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

// DefaultOutput is the default output writer for commands
var DefaultOutput OutputWriter = os.Stdout

var rootCmd = &cobra.Command{
	Use:   "move-clipper",
	Short: "Extract per-move clips from gameplay footage",
	Long: `move-clipper cuts short clips out of gameplay recordings:

  - Move extractor: mark timestamps while watching, and clips are sized
    automatically from a per-character/per-move frame-count table
  - Manual trim by start/end timestamps
  - Frame-count table management

Running with no subcommand opens the interactive menu.

Example:
  move-clipper extract --source "set1.mp4"`,
	RunE: runMenu,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// The config file is optional: the defaults reproduce the
		// conventional videos/ + output/ + frame_data.json layout.
		cfg = config.Default()
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}

// Menu option labels
const (
	menuManualTrim = "Manual Clip Extraction"
	menuExtractor  = "Move Extractor"
	menuExit       = "Exit"
)

func runMenu(cmd *cobra.Command, args []string) error {
	return RunMenuWithDependencies(cmd.Context(), DefaultPrompter, DefaultOutput)
}

// RunMenuWithDependencies runs the interactive main menu with an injected
// prompter (for testing). Errors from the selected flow are reported and the
// menu comes back; only a cancelled prompt ends the session with an error.
func RunMenuWithDependencies(ctx context.Context, prompter Prompter, out OutputWriter) error {
	for {
		choice, err := prompter.Select("=== Command Line Video Editor ===", []string{menuManualTrim, menuExtractor, menuExit})
		if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}

		switch choice {
		case menuManualTrim:
			if err := runTrimInteractive(ctx, prompter, out); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case menuExtractor:
			if err := runExtractInteractive(ctx, prompter, out); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		case menuExit:
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}
	}
}
