// Package targeting resolves a move's abstract TargetKind into concrete
// battle positions. Resolve is a pure function of its
// arguments: no RNG is consumed here, even for TargetRandomNormal, whose
// full candidate set is returned (the turn generator then uses the first
// candidate rather than drawing one). Grounded on
// original_source/src/core/targeting.rs's resolve_targets dispatch and
// original_source/src/genx/format_targeting.rs's format-specific adjacency
// rules.
package targeting

import (
	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/pokemon"
)

// Resolve returns the concrete positions a move used from userPos with the
// given target kind would affect. Field-target kinds (All/AllySide/FoeSide/
// AllyTeam) always return nil: their effect is expressed through
// non-position instructions, not through this resolver.
//
// For TargetRandomNormal, the returned slice is the *candidate set* (every
// active opposing position), not a single resolved target — callers that
// need to actually execute the move must draw one element themselves.
func Resolve(kind pokemon.TargetKind, userPos battleformat.Position, format *battleformat.Format, state *pokemon.BattleState) []battleformat.Position {
	opponentSide := userPos.Side.Opponent()

	switch kind {
	case pokemon.TargetSelf:
		return []battleformat.Position{userPos}

	case pokemon.TargetNormal, pokemon.TargetAdjacentFoe, pokemon.TargetAny:
		if pos, ok := defaultOpponentTarget(opponentSide, userPos.Slot, format, state); ok {
			return []battleformat.Position{pos}
		}
		return nil

	case pokemon.TargetAllAdjacentFoes:
		return activeOpponents(opponentSide, format, state)

	case pokemon.TargetAllAdjacent:
		out := activeOpponents(opponentSide, format, state)
		if ally, ok := allyPosition(userPos, format, state); ok {
			out = append(out, ally)
		}
		return out

	case pokemon.TargetAdjacentAlly:
		if format.IsSlotSingle() {
			return nil
		}
		if ally, ok := allyPosition(userPos, format, state); ok {
			return []battleformat.Position{ally}
		}
		return nil

	case pokemon.TargetAdjacentAllyOrSelf:
		// Default target is self; explicit ally selection is a choice-layer
		// override handled above this resolver.
		return []battleformat.Position{userPos}

	case pokemon.TargetAllies:
		if format.IsSlotSingle() {
			return nil
		}
		if ally, ok := allyPosition(userPos, format, state); ok {
			return []battleformat.Position{ally}
		}
		return nil

	case pokemon.TargetRandomNormal:
		return activeOpponents(opponentSide, format, state)

	case pokemon.TargetScripted:
		return resolveScripted(userPos, state)

	case pokemon.TargetAll, pokemon.TargetAllySide, pokemon.TargetFoeSide, pokemon.TargetAllyTeam:
		return nil

	default:
		return nil
	}
}

func defaultOpponentTarget(opponentSide battleformat.Side, userSlot int, format *battleformat.Format, state *pokemon.BattleState) (battleformat.Position, bool) {
	if format.IsSlotSingle() {
		pos := battleformat.Position{Side: opponentSide, Slot: 0}
		if state.PokemonAt(pos) != nil {
			return pos, true
		}
		return battleformat.Position{}, false
	}

	preferred := battleformat.Position{Side: opponentSide, Slot: userSlot}
	if state.PokemonAt(preferred) != nil {
		return preferred, true
	}

	for slot := 0; slot < format.ActivePerSide; slot++ {
		pos := battleformat.Position{Side: opponentSide, Slot: slot}
		if state.PokemonAt(pos) != nil {
			return pos, true
		}
	}
	return battleformat.Position{}, false
}

func activeOpponents(opponentSide battleformat.Side, format *battleformat.Format, state *pokemon.BattleState) []battleformat.Position {
	var out []battleformat.Position
	for slot := 0; slot < format.ActivePerSide; slot++ {
		pos := battleformat.Position{Side: opponentSide, Slot: slot}
		if state.PokemonAt(pos) != nil {
			out = append(out, pos)
		}
	}
	return out
}

// allyPosition returns the single in-formation ally adjacent to userPos.
// In Doubles/VGC this is simply "the other slot"; in Triples it is the
// slot directly beside the user's (per AdjacentSlots line geometry, minus
// the user's own slot). Singles has no ally.
func allyPosition(userPos battleformat.Position, format *battleformat.Format, state *pokemon.BattleState) (battleformat.Position, bool) {
	if format.IsSlotSingle() {
		return battleformat.Position{}, false
	}
	for _, slot := range format.AdjacentSlots(userPos.Slot) {
		if slot == userPos.Slot {
			continue
		}
		pos := battleformat.Position{Side: userPos.Side, Slot: slot}
		if state.PokemonAt(pos) != nil {
			return pos, true
		}
	}
	return battleformat.Position{}, false
}

// resolveScripted implements Counter/Mirror Coat-family targeting: hit the
// position that most recently dealt direct damage to the user this turn
//, tracked via Field.PerTurn.LastDamageTakenBy.
func resolveScripted(userPos battleformat.Position, state *pokemon.BattleState) []battleformat.Position {
	if attacker, ok := state.Field.PerTurn.LastDamageTakenBy[userPos]; ok {
		if state.PokemonAt(attacker) != nil {
			return []battleformat.Position{attacker}
		}
	}
	return nil
}
