package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"move-clipper/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
	Select(message string, options []string) (string, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

func (p *SurveyPrompter) Select(message string, options []string) (string, error) {
	result := ""
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

This command guides you through setting up the video and output
directories, the frame-data file location, and the clip padding.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to move-clipper setup!")
	fmt.Println()

	cfg := config.Default()

	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}

	if err := promptExtraction(prompter, cfg); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Save configuration
	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	video, err := prompter.Input("Where are your source videos?", cfg.Paths.VideoDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if video == "" {
		return fmt.Errorf("video directory is required")
	}
	cfg.Paths.VideoDirectory = video

	output, err := prompter.Input("Where should extracted clips go?", cfg.Paths.OutputDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if output == "" {
		return fmt.Errorf("output directory is required")
	}
	cfg.Paths.OutputDirectory = output

	frameData, err := prompter.Input("Where should the frame-count table live?", cfg.Paths.FrameDataPath)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if frameData == "" {
		return fmt.Errorf("frame data path is required")
	}
	cfg.Paths.FrameDataPath = frameData

	return nil
}

func promptExtraction(prompter Prompter, cfg *config.Config) error {
	padding, err := prompter.Input("Padding frames on each side of a move?", strconv.Itoa(cfg.Extraction.PaddingFrames))
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	frames, err := strconv.Atoi(padding)
	if err != nil || frames < 0 {
		return fmt.Errorf("padding frames must be a non-negative integer")
	}
	cfg.Extraction.PaddingFrames = frames

	prober, err := prompter.Select("Which duration prober should be used?", []string{"ffprobe", "opencv"})
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Extraction.Prober = prober

	return nil
}
