package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	apptrim "move-clipper/application/trim"
	"move-clipper/domain/clip"
	"move-clipper/infrastructure/ffmpeg"
	"move-clipper/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	trimSourcePath string
	trimStartTime  string
	trimEndTime    string
)

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Trim a video to specified timestamps",
	Long: `Trim a video file to the specified start and end timestamps.

Timestamps are plain seconds (possibly fractional) or mm:ss. The end time
is clamped to the video duration. The output is written to the configured
output directory as <name>_trimmed<ext>.

Example:
  move-clipper trim --source "set1.mp4" --start "1:30" --end "2:45"`,
	RunE: runTrim,
}

func init() {
	rootCmd.AddCommand(trimCmd)
	trimCmd.Flags().StringVar(&trimSourcePath, "source", "", "Source video (resolved against the configured video directory)")
	trimCmd.Flags().StringVar(&trimStartTime, "start", "", "Start time, seconds or mm:ss (required)")
	trimCmd.Flags().StringVar(&trimEndTime, "end", "", "End time, seconds or mm:ss (required)")
	trimCmd.MarkFlagRequired("source")
	trimCmd.MarkFlagRequired("start")
	trimCmd.MarkFlagRequired("end")
}

func runTrim(cmd *cobra.Command, args []string) error {
	return runTrimSession(cmd.Context(), trimSourcePath, trimStartTime, trimEndTime, DefaultOutput)
}

// runTrimInteractive is the menu entry point: it prompts for the inputs the
// trim subcommand takes as flags.
func runTrimInteractive(ctx context.Context, prompter Prompter, out OutputWriter) error {
	fmt.Fprintln(out, "=== Manual Clip Extraction ===")

	source, err := prompter.Input("Enter video filename (in the video directory):", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}
	start, err := prompter.Input("Enter start time (seconds or mm:ss):", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}
	end, err := prompter.Input("Enter end time (seconds or mm:ss):", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}

	return runTrimSession(ctx, source, start, end, out)
}

func runTrimSession(ctx context.Context, source, start, end string, out OutputWriter) error {
	cfg := GetConfig()

	extractor := ffmpeg.NewExtractor()
	verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := extractor.VerifyInstalled(verifyCtx); err != nil {
		return fmt.Errorf("ffmpeg verification failed: %w", err)
	}

	checker := filesystem.NewChecker()

	return RunTrimWithDependencies(
		ctx,
		extractor,
		checker,
		ffmpeg.NewProber(),
		checker,
		cfg.Paths.VideoDirectory,
		cfg.Paths.OutputDirectory,
		source,
		start,
		end,
		out,
	)
}

// RunTrimWithDependencies runs the trim command with injected dependencies (for testing)
func RunTrimWithDependencies(
	ctx context.Context,
	extractor clip.Extractor,
	checker clip.FileChecker,
	prober clip.DurationProber,
	dirs apptrim.DirMaker,
	videoDir string,
	outputDir string,
	source string,
	startTime string,
	endTime string,
	out OutputWriter,
) error {
	sourcePath := source
	if !filepath.IsAbs(sourcePath) {
		sourcePath = filepath.Join(videoDir, source)
	}

	service := apptrim.NewService(extractor, checker, prober, dirs, outputDir)

	fmt.Fprintf(out, "Trimming video from %s to %s...\n", startTime, endTime)

	result, err := service.Trim(ctx, apptrim.Input{
		SourcePath: sourcePath,
		StartTime:  startTime,
		EndTime:    endTime,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Trimmed video saved at: %s\n", result.OutputPath)
	return nil
}
