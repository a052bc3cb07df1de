package turnengine

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/field"
	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/telemetry"
)

// SwitchProvider supplies a forced switch-in replacement.
// Forced switches must be answerable synchronously — ChooseReplacement is a
// plain function call, not a chance point, so resolution never branches.
type SwitchProvider interface {
	// ChooseReplacement returns the team index to switch into pos, or
	// ok == false if the side has no legal replacement (the ForcedSwitch
	// flag is then left set for the caller to resolve battle termination from).
	ChooseReplacement(state *pokemon.BattleState, pos battleformat.Position) (teamIndex int, ok bool)
}

// resolveForcedSwitches closes out a turn's phase 5: every position still
// flagged ForcedSwitch (fainted during phase 3, or left pending from a
// prior turn) is offered to provider, in ActivePositions order, against
// the state as it stands after every earlier replacement in the same
// branch has already switched in and triggered its own entry hazards.
func (g *Generator) resolveForcedSwitches(ctx context.Context, state *pokemon.BattleState, branches []Branch, provider SwitchProvider) []Branch {
	if provider == nil {
		return branches
	}
	if g.Tracer != nil {
		var span trace.Span
		ctx, span = telemetry.StartSpan(ctx, g.Tracer, "turn.forced_switch", state)
		defer span.End()
	}

	out := make([]Branch, len(branches))
	for i, b := range branches {
		out[i] = g.resolveForcedSwitchesForBranch(state, b, provider)
	}
	return out
}

// resolveForcedSwitchesForBranch resolves one branch's forced slots in
// sequence, since a fainted Garchomp's replacement switching in can itself
// need to be checked against hazards before the next forced slot is asked
// about (e.g. a second Stealth Rock-weak replacement on the same side).
func (g *Generator) resolveForcedSwitchesForBranch(state *pokemon.BattleState, b Branch, provider SwitchProvider) Branch {
	scratch := state.Clone()
	b.Instructions.Apply(scratch)

	var extra instruction.Set
	for _, pos := range scratch.ActivePositions() {
		p := scratch.PokemonAt(pos)
		if p == nil || !p.ForcedSwitch {
			continue
		}
		teamIndex, ok := provider.ChooseReplacement(scratch, pos)
		if !ok {
			continue
		}

		sw := &instruction.Switch{Position: pos, NextIndex: teamIndex}
		sw.Apply(scratch)
		extra = append(extra, sw)

		if in := scratch.PokemonAt(pos); in != nil {
			in.ForcedSwitch = false
		}

		for _, h := range field.EntryHazards(scratch, pos, g.Gen) {
			h.Apply(scratch)
			extra = append(extra, h)
		}
	}

	return Branch{Probability: b.Probability, Instructions: concatSets(b.Instructions, extra)}
}
