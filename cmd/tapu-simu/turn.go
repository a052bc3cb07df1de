package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/telemetry"
	"github.com/mingu600/tapu-simu/internal/turnengine"
)

var (
	turnStateFlag   string
	turnChoice1Flag string
	turnChoice2Flag string
	turnPolicyFlag  string
)

var turnCmd = &cobra.Command{
	Use:   "turn",
	Short: "Generate one turn's branches against a serialized state",
	Long: `turn loads a BattleState from --state, decodes --choice1/--choice2
as JSON turnengine.Choice values, and prints the resulting branch list as
JSON. Both choices apply to slot 0 of their side: GenerateTurn's public
signature resolves exactly one choice per side regardless of format (see
DESIGN.md), so this command cannot drive a Doubles/VGC/Triples format's
other active slots.`,
	RunE: runTurn,
}

func init() {
	turnCmd.Flags().StringVar(&turnStateFlag, "state", "", "path to a serialized BattleState JSON file (required)")
	turnCmd.Flags().StringVar(&turnChoice1Flag, "choice1", `{"Kind":0}`, "side one's choice, as JSON (turnengine.Choice)")
	turnCmd.Flags().StringVar(&turnChoice2Flag, "choice2", `{"Kind":0}`, "side two's choice, as JSON (turnengine.Choice)")
	turnCmd.Flags().StringVar(&turnPolicyFlag, "policy", "deterministic", "branch policy: deterministic, crits, rolls or full")
	turnCmd.MarkFlagRequired("state")
	rootCmd.AddCommand(turnCmd)
}

func runTurn(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	policy, err := parseBranchPolicy(turnPolicyFlag)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(turnStateFlag)
	if err != nil {
		return fmt.Errorf("reading state file %s: %w", turnStateFlag, err)
	}
	var state pokemon.BattleState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parsing state file %s: %w", turnStateFlag, err)
	}

	var choice1, choice2 turnengine.Choice
	if err := json.Unmarshal([]byte(turnChoice1Flag), &choice1); err != nil {
		return fmt.Errorf("parsing --choice1: %w", err)
	}
	if err := json.Unmarshal([]byte(turnChoice2Flag), &choice2); err != nil {
		return fmt.Errorf("parsing --choice2: %w", err)
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	tracer := telemetry.Tracer("cmd.turn")
	generator := turnengine.NewGenerator(state.Format, policy, log, tracer)
	branches := generator.GenerateTurn(ctx, &state, choice1, choice2)

	out, err := json.MarshalIndent(branches, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding branches: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
