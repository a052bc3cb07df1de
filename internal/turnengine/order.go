package turnengine

import (
	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/mechanics"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// actorTurn pairs one side's resolved choice with the position acting it
// out, for a single ordered slot in the turn.
type actorTurn struct {
	Pos    battleformat.Position
	Choice Choice
}

// orderOutcome is one possible (first, second) ordering of the turn's two
// actors, with the probability that this ordering occurs — 1.0 whenever
// priority or speed cleanly decides it, 0.5/0.5 on a genuine speed tie
// (instruction_generator.rs's determine_move_order resolves ties with a
// coin flip; this engine expresses that coin flip as a branch rather than
// consuming RNG).
type orderOutcome struct {
	Probability   float64
	First, Second actorTurn
}

// determineOrder replicates instruction_generator.rs's determine_move_order:
// higher priority acts first; equal priority compares effective speed
// (inverted under Trick Room); a genuine tie splits into two equally-likely
// branches instead of resolving via hidden RNG.
func determineOrder(state *pokemon.BattleState, gen mechanics.Generation, one, two actorTurn) []orderOutcome {
	prioOne := movePriority(state, one)
	prioTwo := movePriority(state, two)

	if prioOne != prioTwo {
		if prioOne > prioTwo {
			return []orderOutcome{{Probability: 1.0, First: one, Second: two}}
		}
		return []orderOutcome{{Probability: 1.0, First: two, Second: one}}
	}

	speedOne := effectiveSpeed(state, one.Pos)
	speedTwo := effectiveSpeed(state, two.Pos)
	if state.Field.TrickRoomActive() {
		speedOne, speedTwo = -speedOne, -speedTwo
	}

	switch {
	case speedOne > speedTwo:
		return []orderOutcome{{Probability: 1.0, First: one, Second: two}}
	case speedTwo > speedOne:
		return []orderOutcome{{Probability: 1.0, First: two, Second: one}}
	default:
		return []orderOutcome{
			{Probability: 0.5, First: one, Second: two},
			{Probability: 0.5, First: two, Second: one},
		}
	}
}

// movePriority returns a choice's effective priority: switches always act
// before moves, move priority otherwise, with
// Prankster (+1 status moves) and Gale Wings (+1 full-HP Flying moves)
// folded in per their Gen 7+ restrictions.
func movePriority(state *pokemon.BattleState, actor actorTurn) int {
	if actor.Choice.Kind == ChoiceSwitch {
		return 6 // switches precede every move priority bracket
	}
	if actor.Choice.Kind != ChoiceMove {
		return 0
	}
	p := state.PokemonAt(actor.Pos)
	if p == nil || actor.Choice.MoveIndex < 0 || actor.Choice.MoveIndex >= len(p.Moves) {
		return 0
	}
	move := p.Moves[actor.Choice.MoveIndex]
	priority := move.Priority

	switch p.Ability.ID {
	case "prankster":
		if move.Category == pokemon.CategoryStatus {
			priority++
		}
	case "galewings":
		if move.Type == typechart.Flying && p.CurrentHP == p.MaxHP {
			priority++
		}
	}
	return priority
}

// effectiveSpeed returns a position's Speed stat after stage modifiers
// (the stage-adjusted Computed stat). No Paralysis Speed cut is applied,
// here or where Computed stats are built.
func effectiveSpeed(state *pokemon.BattleState, pos battleformat.Position) int {
	p := state.PokemonAt(pos)
	if p == nil {
		return 0
	}
	return p.StatValue(pokemon.Speed)
}
