// Package turnengine is the turn generator — the engine's "heart": a pure
// function (state, choice1, choice2) -> [(probability, []Instruction)],
// grounded on
// original_source/src/genx/instruction_generator.rs's
// generate_instructions_from_move_pair (order decision, per-actor
// instruction generation, redirection) and
// original_source/src/genx/format_instruction_generator.rs (per-move
// damage/status dispatch, critical-hit branching, spread-damage handling).
//
// Every chance point — sleep wake-up, paralysis, confusion, accuracy,
// critical hits, damage rolls, secondary effects, contact triggers — is
// expressed as a branch with an explicit probability rather than by
// consuming RNG.
// The branching policy controls how finely some of these
// points are enumerated; it never changes the reachable outcome set.
package turnengine

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/mechanics"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/targeting"
	"github.com/mingu600/tapu-simu/internal/telemetry"
)

// Branch is one fully-resolved turn outcome: the probability that this
// exact instruction sequence occurs, and the instructions themselves.
// Every Branch list a Generator emits sums its Probability fields to 1.0
// within a 1e-4 tolerance.
type Branch struct {
	Probability  float64
	Instructions instruction.Set
}

// Generator produces Branch lists from a pair of choices.
type Generator struct {
	Gen    mechanics.Generation
	Format *battleformat.Format
	Policy BranchPolicy
	Logger *zap.Logger
	Tracer trace.Tracer
}

// NewGenerator builds a Generator for the given format, deriving its
// Generation strategy from format.Generation.
func NewGenerator(format *battleformat.Format, policy BranchPolicy, logger *zap.Logger, tracer trace.Tracer) *Generator {
	return &Generator{
		Gen:    mechanics.For(format.Generation),
		Format: format,
		Policy: policy,
		Logger: logger,
		Tracer: tracer,
	}
}

// GenerateTurn is the turn generator's entry point: it resolves targets,
// decides actor order, runs each actor's sub-tree against the state
// resulting from the prior actor, appends end-of-turn residuals, and —
// when the caller passes a SwitchProvider — resolves any forced switches
// left pending from a faint. The provider is
// variadic so callers that only need phases 1-4 (e.g. pure branch-tree
// enumeration for search) can omit it entirely.
func (g *Generator) GenerateTurn(ctx context.Context, state *pokemon.BattleState, oneChoice, twoChoice Choice, provider ...SwitchProvider) []Branch {
	if g.Tracer != nil {
		var span trace.Span
		ctx, span = telemetry.StartSpan(ctx, g.Tracer, "turn.order", state)
		defer span.End()
	}

	onePos := battleformat.Position{Side: battleformat.SideOne, Slot: 0}
	twoPos := battleformat.Position{Side: battleformat.SideTwo, Slot: 0}

	oneChoice = g.resolveChoiceTargets(state, onePos, oneChoice)
	twoChoice = g.resolveChoiceTargets(state, twoPos, twoChoice)

	orders := determineOrder(state, g.Gen, actorTurn{onePos, oneChoice}, actorTurn{twoPos, twoChoice})
	if g.Logger != nil {
		g.Logger.Debug("turn order decided",
			zap.Int("turn", state.Turn),
			zap.Int("order_branches", len(orders)),
		)
	}

	var branches []Branch
	for _, order := range orders {
		branches = append(branches, g.runOrder(ctx, state, order)...)
	}
	if len(branches) == 0 {
		branches = []Branch{{Probability: 1.0}}
	}
	if len(provider) > 0 && provider[0] != nil {
		branches = g.resolveForcedSwitches(ctx, state, branches, provider[0])
	}
	if g.Logger != nil {
		g.Logger.Debug("turn generated", zap.Int("turn", state.Turn), zap.Int("branches", len(branches)))
	}
	return branches
}

// runOrder resolves one (first, second) ordering into its full branch set.
func (g *Generator) runOrder(ctx context.Context, state *pokemon.BattleState, order orderOutcome) []Branch {
	firstBranches := g.actorSubTree(ctx, state, order.First)

	var out []Branch
	for _, fb := range firstBranches {
		afterFirst := state.Clone()
		fb.Instructions.Apply(afterFirst)

		if !canAct(afterFirst, order.Second.Pos) {
			final := afterFirst
			residual := g.endOfTurnResiduals(final)
			out = append(out, Branch{
				Probability:  order.Probability * fb.Probability,
				Instructions: concatSets(fb.Instructions, residual),
			})
			continue
		}

		secondBranches := g.actorSubTree(ctx, afterFirst, order.Second)
		for _, sb := range secondBranches {
			final := afterFirst.Clone()
			sb.Instructions.Apply(final)
			residual := g.endOfTurnResiduals(final)
			out = append(out, Branch{
				Probability:  order.Probability * fb.Probability * sb.Probability,
				Instructions: concatSets(fb.Instructions, sb.Instructions, residual),
			})
		}
	}
	return out
}

// canAct reports whether the Pokemon at pos is able to move at all this
// turn (alive, not still scheduled for a forced switch from the prior
// actor's move).
func canAct(state *pokemon.BattleState, pos battleformat.Position) bool {
	p := state.PokemonAt(pos)
	return p != nil && !p.IsFainted()
}

// resolveChoiceTargets fills in Choice.Targets via internal/targeting when
// the caller left them empty. RandomNormal's
// candidate set is collapsed to its first candidate under every policy:
// branching that draw as a full per-candidate tree is left to a future
// iteration (see DESIGN.md open questions) since it multiplies branch
// count by the active-opponent count for every random-target move.
func (g *Generator) resolveChoiceTargets(state *pokemon.BattleState, pos battleformat.Position, choice Choice) Choice {
	if choice.Kind != ChoiceMove || len(choice.Targets) > 0 {
		return choice
	}
	p := state.PokemonAt(pos)
	if p == nil || choice.MoveIndex < 0 || choice.MoveIndex >= len(p.Moves) {
		return choice
	}
	move := p.Moves[choice.MoveIndex]
	candidates := targeting.Resolve(move.Target, pos, state.Format, state)
	if len(candidates) > 0 {
		choice.Targets = candidates
	}
	return choice
}

func concatSets(sets ...instruction.Set) instruction.Set {
	var out instruction.Set
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// expand is the core branch-combinator: for every existing branch, it
// clones+applies that branch's instructions to get the state the next
// phase should see, asks step for that phase's outcomes, and returns the
// cartesian product (probabilities multiplied, instructions concatenated).
// This is the same pattern every phase function in actor.go uses to chain
// chance points without ever consuming RNG.
func expand(current []Branch, state *pokemon.BattleState, step func(scratch *pokemon.BattleState) []Branch) []Branch {
	var out []Branch
	for _, b := range current {
		scratch := state.Clone()
		b.Instructions.Apply(scratch)
		for _, n := range step(scratch) {
			out = append(out, Branch{
				Probability:  b.Probability * n.Probability,
				Instructions: concatSets(b.Instructions, n.Instructions),
			})
		}
	}
	return out
}
