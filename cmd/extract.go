package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"move-clipper/application/extraction"
	"move-clipper/domain/clip"
	"move-clipper/infrastructure/ffmpeg"
	"move-clipper/infrastructure/filesystem"
	"move-clipper/infrastructure/framestore"
	"move-clipper/infrastructure/probe"

	"github.com/spf13/cobra"
)

var extractSourcePath string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Interactively extract move clips around marked timestamps",
	Long: `Extract short clips around timestamps you mark while reviewing footage.

Each clip is sized from the character/move frame-count table: the move's
frame count (at 60fps) is split evenly around the timestamp, padded, and
clamped to the video. Clips land under
<output>/<Character>/<Move>/<Character>_<Move>_NNN.mp4 with sequential
numbering per move.

Inside the session: type a move name, then mark timestamps (seconds or
mm:ss). Press ENTER on an empty timestamp to pick a new move, type
'changechar' to switch characters, or 'done' to finish.

Example:
  move-clipper extract --source "set1.mp4"`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractSourcePath, "source", "", "Source video (resolved against the configured video directory)")
	extractCmd.MarkFlagRequired("source")
}

func runExtract(cmd *cobra.Command, args []string) error {
	return runExtractSession(cmd.Context(), extractSourcePath, DefaultPrompter, DefaultOutput)
}

// runExtractInteractive is the menu entry point: it prompts for the source
// video first, then runs the same session as the extract subcommand.
func runExtractInteractive(ctx context.Context, prompter Prompter, out OutputWriter) error {
	fmt.Fprintln(out, "=== Move Extractor ===")
	source, err := prompter.Input("Enter video filename (in the video directory):", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}
	return runExtractSession(ctx, source, prompter, out)
}

func runExtractSession(ctx context.Context, source string, prompter Prompter, out OutputWriter) error {
	cfg := GetConfig()

	extractor := ffmpeg.NewExtractor()
	verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := extractor.VerifyInstalled(verifyCtx); err != nil {
		return fmt.Errorf("ffmpeg verification failed: %w", err)
	}

	var prober clip.DurationProber
	if cfg.Extraction.Prober == "opencv" {
		prober = probe.NewVideoProber()
	} else {
		prober = ffmpeg.NewProber()
	}

	store := framestore.NewStore(cfg.Paths.FrameDataPath)
	checker := filesystem.NewChecker()
	indexer := filesystem.NewIndexer(cfg.Extraction.OutputExtension)
	service := extraction.NewService(store, extractor, indexer, checker, cfg)

	return RunExtractorWithDependencies(ctx, service, store, checker, prober, cfg.Paths.VideoDirectory, source, prompter, out)
}

// RunExtractorWithDependencies runs the move-extractor session with injected
// dependencies (for testing). It owns the interactive state machine:
// character selection, move selection, and timestamp collection, with
// 'changechar' and 'done' as reserved move names.
func RunExtractorWithDependencies(
	ctx context.Context,
	service *extraction.Service,
	store *framestore.Store,
	checker clip.FileChecker,
	prober clip.DurationProber,
	videoDir string,
	source string,
	prompter Prompter,
	out OutputWriter,
) error {
	sourcePath := source
	if !filepath.IsAbs(sourcePath) {
		sourcePath = filepath.Join(videoDir, source)
	}

	if !checker.Exists(sourcePath) {
		return fmt.Errorf("%s not found in the video directory", source)
	}

	duration, err := prober.Duration(ctx, sourcePath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded video (%.2fs).\n", duration)

	table, reset, err := store.Load()
	if err != nil {
		return err
	}
	if reset {
		fmt.Fprintf(out, "Warning: %s was invalid and has been reset to empty.\n", store.Path())
	}

	character, err := promptCharacter(prompter, out, table)
	if err != nil {
		return err
	}
	announceMoveOptions(character, table, out)

	for {
		move, err := prompter.Input(fmt.Sprintf("Move for %s:", character), "")
		if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}
		move = strings.TrimSpace(move)
		if move == "" {
			continue
		}

		switch strings.ToLower(move) {
		case "done":
			fmt.Fprintln(out, "Exiting move extractor.")
			return nil
		case "changechar":
			character, err = promptCharacter(prompter, out, table)
			if err != nil {
				return err
			}
			announceMoveOptions(character, table, out)
			continue
		}

		move = table.ResolveMove(character, move)
		fmt.Fprintf(out, "Logging timestamps for %s - %s. Press ENTER with no input to choose another move.\n", character, move)

		if err := collectTimestamps(ctx, service, table, sourcePath, character, move, duration, prompter, out); err != nil {
			return err
		}
	}
}

// collectTimestamps loops reading timestamps for one character/move pair.
// Bad timestamps and failed extractions are reported and the loop continues;
// an empty input hands control back to move selection.
func collectTimestamps(
	ctx context.Context,
	service *extraction.Service,
	table clip.FrameTable,
	sourcePath string,
	character string,
	move string,
	duration float64,
	prompter Prompter,
	out OutputWriter,
) error {
	for {
		input, err := prompter.Input("Timestamp of move (seconds or mm:ss). Press ENTER to choose a new move:", "")
		if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			return nil
		}

		center, err := clip.ParseSeconds(input)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		if _, err := service.ExtractClip(ctx, extraction.Input{
			SourcePath: sourcePath,
			Character:  character,
			Move:       move,
			Center:     center,
			Duration:   duration,
		}, table, prompter, out); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
	}
}

// promptCharacter insists on a non-empty character name and resolves it
// against the stored table casing.
func promptCharacter(prompter Prompter, out OutputWriter, table clip.FrameTable) (string, error) {
	for {
		name, err := prompter.Input("Character:", "")
		if err != nil {
			return "", fmt.Errorf("prompt cancelled: %w", err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			fmt.Fprintln(out, "Character name is required.")
			continue
		}
		return table.ResolveCharacter(name), nil
	}
}

func announceMoveOptions(character string, table clip.FrameTable, out OutputWriter) {
	moves := table.Moves(character)
	if len(moves) > 0 {
		fmt.Fprintf(out, "Enter move names for %s (known moves: %s). Type 'done' when finished or 'changechar' to pick a new character.\n",
			character, strings.Join(moves, ", "))
		return
	}
	fmt.Fprintf(out, "No stored moves yet for %s. Type the move name to add one, 'done' to exit, or 'changechar' to pick a new character.\n", character)
}
