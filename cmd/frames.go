package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"move-clipper/infrastructure/framestore"

	"github.com/spf13/cobra"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Manage the character/move frame-count table",
	Long: `Inspect and edit the persisted frame-count table used to size clips.

Names are matched ignoring case and spacing, so 'ryu' and 'Ryu' address the
same entry.

Examples:
  move-clipper frames list
  move-clipper frames list Ryu
  move-clipper frames set Ryu Hadouken 40
  move-clipper frames remove Ryu Hadouken
  move-clipper frames remove Ryu`,
}

func init() {
	rootCmd.AddCommand(framesCmd)

	framesCmd.AddCommand(framesListCmd)
	framesCmd.AddCommand(framesSetCmd)
	framesCmd.AddCommand(framesRemoveCmd)
}

// --- LIST command ---

var framesListCmd = &cobra.Command{
	Use:   "list [character]",
	Short: "List frame-count entries",
	Long: `List all characters and moves, or the moves of one character.

Examples:
  move-clipper frames list
  move-clipper frames list "Chun Li"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFramesList,
}

func runFramesList(cmd *cobra.Command, args []string) error {
	character := ""
	if len(args) == 1 {
		character = args[0]
	}
	return RunFramesListWithDependencies(framestore.NewStore(GetConfig().Paths.FrameDataPath), character, DefaultOutput)
}

// RunFramesListWithDependencies runs the list command with injected dependencies
func RunFramesListWithDependencies(store *framestore.Store, character string, out OutputWriter) error {
	table, reset, err := store.Load()
	if err != nil {
		return err
	}
	if reset {
		fmt.Fprintf(out, "Warning: %s was invalid and has been reset to empty.\n", store.Path())
	}

	if len(table) == 0 {
		fmt.Fprintln(out, "No frame data recorded yet.")
		return nil
	}

	characters := table.Characters()
	if character != "" {
		resolved := table.ResolveCharacter(character)
		if _, ok := table[resolved]; !ok {
			return fmt.Errorf("no frame data for character %q", character)
		}
		characters = []string{resolved}
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHARACTER\tMOVE\tFRAMES")
	for _, char := range characters {
		for _, move := range table.Moves(char) {
			frames, _ := table.FrameCount(char, move)
			fmt.Fprintf(w, "%s\t%s\t%d\n", char, move, frames)
		}
	}
	return w.Flush()
}

// --- SET command ---

var framesSetCmd = &cobra.Command{
	Use:   "set <character> <move> <frames>",
	Short: "Add or update a frame-count entry",
	Long: `Add a move's frame count, or update it if the entry already exists.

The count is the move's duration in frames at 60fps.

Example:
  move-clipper frames set Ryu Hadouken 40`,
	Args: cobra.ExactArgs(3),
	RunE: runFramesSet,
}

func runFramesSet(cmd *cobra.Command, args []string) error {
	frames, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("frame count must be an integer, got %q", args[2])
	}
	return RunFramesSetWithDependencies(framestore.NewStore(GetConfig().Paths.FrameDataPath), args[0], args[1], frames, DefaultOutput)
}

// RunFramesSetWithDependencies runs the set command with injected dependencies
func RunFramesSetWithDependencies(store *framestore.Store, character, move string, frames int, out OutputWriter) error {
	table, reset, err := store.Load()
	if err != nil {
		return err
	}
	if reset {
		fmt.Fprintf(out, "Warning: %s was invalid and has been reset to empty.\n", store.Path())
	}

	charKey, moveKey, err := store.Set(table, character, move, frames)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Saved %s -> %s: %d frames.\n", charKey, moveKey, frames)
	return nil
}

// --- REMOVE command ---

var framesRemoveCmd = &cobra.Command{
	Use:   "remove <character> [move]",
	Short: "Remove a frame-count entry",
	Long: `Remove one move entry, or a character with all of its moves.

Examples:
  move-clipper frames remove Ryu Hadouken
  move-clipper frames remove Ryu`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFramesRemove,
}

func runFramesRemove(cmd *cobra.Command, args []string) error {
	move := ""
	if len(args) == 2 {
		move = args[1]
	}
	return RunFramesRemoveWithDependencies(framestore.NewStore(GetConfig().Paths.FrameDataPath), args[0], move, DefaultOutput)
}

// RunFramesRemoveWithDependencies runs the remove command with injected dependencies
func RunFramesRemoveWithDependencies(store *framestore.Store, character, move string, out OutputWriter) error {
	table, reset, err := store.Load()
	if err != nil {
		return err
	}
	if reset {
		fmt.Fprintf(out, "Warning: %s was invalid and has been reset to empty.\n", store.Path())
	}

	if move == "" {
		if err := store.RemoveCharacter(table, character); err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed character %q\n", character)
		return nil
	}

	if err := store.RemoveMove(table, character, move); err != nil {
		return err
	}
	fmt.Fprintf(out, "Removed move %q for character %q\n", move, character)
	return nil
}
