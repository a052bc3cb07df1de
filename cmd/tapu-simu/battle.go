package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/teambuilder"
	"github.com/mingu600/tapu-simu/internal/telemetry"
	"github.com/mingu600/tapu-simu/internal/turnengine"
)

var (
	battleFormatFlag string
	battleGenFlag    int
	battleTeam1Flag  string
	battleTeam2Flag  string
	battlePolicy     string
	battleMaxTurns   int
)

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Run a battle between two teams to completion",
	Long: `battle loads two team files, runs the turn generator turn by turn
using a first-legal-move choice provider on both sides, and prints the
winner and turn count. Only Singles-format battles are supported end to
end today: GenerateTurn resolves exactly one choice per side (see
DESIGN.md), so --format is validated but Doubles/VGC/Triples team setup
cannot yet be driven through a full battle loop.`,
	RunE: runBattle,
}

func init() {
	battleCmd.Flags().StringVar(&battleFormatFlag, "format", "singles", "format kind: singles, doubles, vgc or triples")
	battleCmd.Flags().IntVar(&battleGenFlag, "gen", 9, "generation number (1-9)")
	battleCmd.Flags().StringVar(&battleTeam1Flag, "team1", "", "path to side one's team file (required)")
	battleCmd.Flags().StringVar(&battleTeam2Flag, "team2", "", "path to side two's team file (required)")
	battleCmd.Flags().StringVar(&battlePolicy, "policy", "deterministic", "branch policy: deterministic, crits, rolls or full")
	battleCmd.Flags().IntVar(&battleMaxTurns, "max-turns", 1000, "turn cap to guard against a non-terminating battle")
	battleCmd.MarkFlagRequired("team1")
	battleCmd.MarkFlagRequired("team2")
	rootCmd.AddCommand(battleCmd)
}

func runBattle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kind, err := parseFormatKind(battleFormatFlag)
	if err != nil {
		return err
	}
	if kind != battleformat.Singles {
		return fmt.Errorf("battle: only singles is supported end to end today (GenerateTurn resolves one choice per side; see DESIGN.md)")
	}
	policy, err := parseBranchPolicy(battlePolicy)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	repo, err := loadRepository(log)
	if err != nil {
		return err
	}

	team1, err := teambuilder.LoadTeam(battleTeam1Flag, repo)
	if err != nil {
		return err
	}
	team2, err := teambuilder.LoadTeam(battleTeam2Flag, repo)
	if err != nil {
		return err
	}

	format := battleformat.New(battleGenFlag, kind, len(team1))
	state := pokemon.New(format, team1, team2)
	for i := 0; i < format.ActivePerSide; i++ {
		state.One.SwitchIn(i, i)
		state.Two.SwitchIn(i, i)
	}

	tracer := telemetry.Tracer("cmd.battle")
	generator := turnengine.NewGenerator(format, policy, log, tracer)
	provider := firstReserveProvider{}

	for !state.IsTerminal() && state.Turn < battleMaxTurns {
		choice1 := firstLegalMoveChoice(state, battleformat.SideOne)
		choice2 := firstLegalMoveChoice(state, battleformat.SideTwo)

		branches := generator.GenerateTurn(ctx, state, choice1, choice2, provider)
		branch := mostLikelyBranch(branches)
		branch.Instructions.Apply(state)
		state.Turn++

		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "turn %d: applied %d instructions (p=%.4f)\n", state.Turn, len(branch.Instructions), branch.Probability)
		}
	}

	if !state.IsTerminal() {
		fmt.Fprintf(cmd.OutOrStdout(), "battle did not terminate within %d turns\n", battleMaxTurns)
		return nil
	}

	side, ok := state.Winner()
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "battle ended in a draw after %d turns\n", state.Turn)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s wins after %d turns\n", side, state.Turn)
	return nil
}

// mostLikelyBranch picks the branch with the highest probability, breaking
// ties by first-in-order; used to drive a single deterministic outcome
// stream through a battle loop rather than sampling (the CLI is a
// demonstration harness, not a statistical simulator).
func mostLikelyBranch(branches []turnengine.Branch) turnengine.Branch {
	best := branches[0]
	for _, b := range branches[1:] {
		if b.Probability > best.Probability {
			best = b
		}
	}
	return best
}

// firstLegalMoveChoice picks the lowest-indexed move with remaining PP for
// the Pokemon at (side, slot 0); falls back to switching in the first
// reserve if the active Pokemon has none, or to ChoiceNone if the slot is
// empty or the side has no legal action at all.
func firstLegalMoveChoice(state *pokemon.BattleState, side battleformat.Side) turnengine.Choice {
	pos := battleformat.Position{Side: side, Slot: 0}
	p := state.PokemonAt(pos)
	if p == nil {
		return turnengine.Choice{Kind: turnengine.ChoiceNone}
	}
	for i, mv := range p.Moves {
		if mv.PP > 0 {
			return turnengine.Choice{Kind: turnengine.ChoiceMove, MoveIndex: i}
		}
	}
	if reserves := state.Side(side).Reserves(); len(reserves) > 0 {
		teamIndex := teamIndexOf(state.Side(side).Team, reserves[0])
		return turnengine.Choice{Kind: turnengine.ChoiceSwitch, ReserveSlot: teamIndex}
	}
	return turnengine.Choice{Kind: turnengine.ChoiceNone}
}

func teamIndexOf(team []*pokemon.Pokemon, target *pokemon.Pokemon) int {
	for i, p := range team {
		if p == target {
			return i
		}
	}
	return -1
}

// firstReserveProvider is the SwitchProvider used by the battle loop:
// offers the side's first non-fainted reserve for a forced switch.
type firstReserveProvider struct{}

func (firstReserveProvider) ChooseReplacement(state *pokemon.BattleState, pos battleformat.Position) (int, bool) {
	reserves := state.Side(pos.Side).Reserves()
	if len(reserves) == 0 {
		return 0, false
	}
	return teamIndexOf(state.Side(pos.Side).Team, reserves[0]), true
}
