package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/ui"
)

var (
	dumpStateFlag string
	dumpTUIFlag   bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a serialized BattleState",
	Long: `dump loads a BattleState from --state and either prints a one-line
summary per active position, or, with --tui, renders it as a battle-position
grid in the terminal until any key is pressed.`,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpStateFlag, "state", "", "path to a serialized BattleState JSON file (required)")
	dumpCmd.Flags().BoolVar(&dumpTUIFlag, "tui", false, "render the state with the terminal UI instead of printing text")
	dumpCmd.MarkFlagRequired("state")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(dumpStateFlag)
	if err != nil {
		return fmt.Errorf("reading state file %s: %w", dumpStateFlag, err)
	}
	var state pokemon.BattleState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parsing state file %s: %w", dumpStateFlag, err)
	}

	if dumpTUIFlag {
		return dumpTUI(&state)
	}
	return dumpText(cmd, &state)
}

func dumpText(cmd *cobra.Command, state *pokemon.BattleState) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "turn %d, format %s (gen %d, %d active per side)\n", state.Turn, state.Format.FormatKind, state.Format.Generation, state.Format.ActivePerSide)
	for _, side := range []battleformat.Side{battleformat.SideOne, battleformat.SideTwo} {
		fmt.Fprintf(out, "%s:\n", side)
		for slot := 0; slot < state.Format.ActivePerSide; slot++ {
			pos := battleformat.Position{Side: side, Slot: slot}
			p := state.PokemonAt(pos)
			if p == nil {
				fmt.Fprintf(out, "  slot %d: (empty)\n", slot)
				continue
			}
			fmt.Fprintf(out, "  slot %d: %s L%d  %d/%d HP  %s\n", slot, p.Species, p.Level, p.CurrentHP, p.MaxHP, p.Status)
		}
	}
	return nil
}

func dumpTUI(state *pokemon.BattleState) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen)
	renderer.Render(state, "press any key to exit")

	for {
		ev := screen.PollEvent()
		if _, ok := ev.(*tcell.EventKey); ok {
			return nil
		}
	}
}
