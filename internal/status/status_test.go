package status

import (
	"testing"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

func newTestState() *pokemon.BattleState {
	format := battleformat.New(9, battleformat.Singles, 3)
	one := []*pokemon.Pokemon{
		{Species: "Gengar", Level: 50, CurrentHP: 100, MaxHP: 100, Types: []typechart.Type{typechart.Ghost, typechart.Poison}},
	}
	two := []*pokemon.Pokemon{
		{Species: "Snorlax", Level: 50, CurrentHP: 200, MaxHP: 200, Types: []typechart.Type{typechart.Normal}},
	}
	state := pokemon.New(format, one, two)
	state.One.SwitchIn(0, 0)
	state.Two.SwitchIn(0, 0)
	return state
}

func posTwoZero() battleformat.Position {
	return battleformat.Position{Side: battleformat.SideTwo, Slot: 0}
}

func TestCheckSucceedsWithNoImmunity(t *testing.T) {
	state := newTestState()
	reason := Check(state, Application{Status: pokemon.StatusParalysis, Target: posTwoZero(), Chance: 100})
	if reason != FailureNone {
		t.Fatalf("expected success, got %v", reason)
	}
}

func TestCheckRejectsTypeImmunity(t *testing.T) {
	state := newTestState()
	// Gengar is Poison-type; poison immune to poison status.
	pos := battleformat.Position{Side: battleformat.SideOne, Slot: 0}
	reason := Check(state, Application{Status: pokemon.StatusPoison, Target: pos, Chance: 100})
	if reason != FailureTypeImmunity {
		t.Fatalf("expected TypeImmunity, got %v", reason)
	}
}

func TestCheckRejectsAlreadyStatused(t *testing.T) {
	state := newTestState()
	target := state.PokemonAt(posTwoZero())
	target.Status = pokemon.StatusBurn

	sameStatus := Check(state, Application{Status: pokemon.StatusBurn, Target: posTwoZero()})
	if sameStatus != FailureAlreadyStatused {
		t.Fatalf("expected AlreadyStatused, got %v", sameStatus)
	}

	differentStatus := Check(state, Application{Status: pokemon.StatusParalysis, Target: posTwoZero()})
	if differentStatus != FailureConflictingStatus {
		t.Fatalf("expected ConflictingStatus, got %v", differentStatus)
	}
}

func TestCheckRejectsAbilityImmunity(t *testing.T) {
	state := newTestState()
	target := state.PokemonAt(posTwoZero())
	target.Ability.ID = "limber"
	reason := Check(state, Application{Status: pokemon.StatusParalysis, Target: posTwoZero()})
	if reason != FailureAbilityImmunity {
		t.Fatalf("expected AbilityImmunity, got %v", reason)
	}
}

func TestCheckRejectsItemImmunity(t *testing.T) {
	state := newTestState()
	target := state.PokemonAt(posTwoZero())
	target.Item.ID = "cheriberry"
	reason := Check(state, Application{Status: pokemon.StatusParalysis, Target: posTwoZero()})
	if reason != FailureItemImmunity {
		t.Fatalf("expected ItemImmunity, got %v", reason)
	}
}

func TestCheckRejectsSafeguard(t *testing.T) {
	state := newTestState()
	state.Two.Conditions[pokemon.SideSafeguard] = pokemon.SideConditionState{Layers: 1}
	reason := Check(state, Application{Status: pokemon.StatusParalysis, Target: posTwoZero()})
	if reason != FailureSafeguard {
		t.Fatalf("expected Safeguard, got %v", reason)
	}
}

func TestCheckRejectsMistyTerrainForGroundedTarget(t *testing.T) {
	state := newTestState()
	state.Field.Terrain.Kind = pokemon.TerrainMisty
	reason := Check(state, Application{Status: pokemon.StatusParalysis, Target: posTwoZero()})
	if reason != FailureMistyTerrain {
		t.Fatalf("expected MistyTerrain, got %v", reason)
	}
}

func TestApplyBuildsSetStatusInstruction(t *testing.T) {
	state := newTestState()
	instr, reason := Apply(state, Application{Status: pokemon.StatusParalysis, Target: posTwoZero(), Duration: 0})
	if reason != FailureNone {
		t.Fatalf("expected success, got %v", reason)
	}
	instr.Apply(state)
	if state.PokemonAt(posTwoZero()).Status != pokemon.StatusParalysis {
		t.Fatal("expected target to be paralyzed after Apply")
	}
	instr.Undo(state)
	if state.PokemonAt(posTwoZero()).Status != pokemon.StatusNone {
		t.Fatal("expected undo to clear status")
	}
}

func TestCheckVolatileRejectsAlreadyPresent(t *testing.T) {
	state := newTestState()
	target := state.PokemonAt(posTwoZero())
	target.Volatiles = pokemon.Volatiles{pokemon.VolatileConfusion: pokemon.VolatileState{}}
	reason := CheckVolatile(state, VolatileApplication{Status: pokemon.VolatileConfusion, Target: posTwoZero()})
	if reason != FailureAlreadyStatused {
		t.Fatalf("expected AlreadyStatused, got %v", reason)
	}
}

func TestCheckVolatileRejectsAbilityImmunity(t *testing.T) {
	state := newTestState()
	target := state.PokemonAt(posTwoZero())
	target.Ability.ID = "owntempo"
	reason := CheckVolatile(state, VolatileApplication{Status: pokemon.VolatileConfusion, Target: posTwoZero()})
	if reason != FailureAbilityImmunity {
		t.Fatalf("expected AbilityImmunity, got %v", reason)
	}
}

func TestCheckVolatileBlockedBySubstitute(t *testing.T) {
	state := newTestState()
	target := state.PokemonAt(posTwoZero())
	target.Volatiles = pokemon.Volatiles{pokemon.VolatileSubstitute: pokemon.VolatileState{}}
	target.SubstituteHP = 25
	reason := CheckVolatile(state, VolatileApplication{Status: pokemon.VolatileFlinch, Target: posTwoZero()})
	if reason != FailureSubstitute {
		t.Fatalf("expected Substitute, got %v", reason)
	}
}

func TestCheckVolatileBypassesSubstituteForAttract(t *testing.T) {
	state := newTestState()
	target := state.PokemonAt(posTwoZero())
	target.Volatiles = pokemon.Volatiles{pokemon.VolatileSubstitute: pokemon.VolatileState{}}
	target.SubstituteHP = 25
	reason := CheckVolatile(state, VolatileApplication{Status: pokemon.VolatileAttract, Target: posTwoZero()})
	if reason != FailureNone {
		t.Fatalf("expected Attract to bypass substitute, got %v", reason)
	}
}

func TestApplyVolatileRoundTrip(t *testing.T) {
	state := newTestState()
	instr, reason := ApplyVolatile(state, VolatileApplication{Status: pokemon.VolatileTaunt, Target: posTwoZero(), Duration: 3})
	if reason != FailureNone {
		t.Fatalf("expected success, got %v", reason)
	}
	instr.Apply(state)
	if !state.PokemonAt(posTwoZero()).Volatiles.Has(pokemon.VolatileTaunt) {
		t.Fatal("expected Taunt applied")
	}
	instr.Undo(state)
	if state.PokemonAt(posTwoZero()).Volatiles.Has(pokemon.VolatileTaunt) {
		t.Fatal("expected undo to remove Taunt")
	}
}

func TestSafeguardBlocksOnlySListedVolatiles(t *testing.T) {
	state := newTestState()
	state.Two.Conditions[pokemon.SideSafeguard] = pokemon.SideConditionState{Layers: 1}

	blocked := CheckVolatile(state, VolatileApplication{Status: pokemon.VolatileAttract, Target: posTwoZero()})
	if blocked != FailureSafeguard {
		t.Fatalf("expected Safeguard to block Attract, got %v", blocked)
	}

	allowed := CheckVolatile(state, VolatileApplication{Status: pokemon.VolatileFlinch, Target: posTwoZero()})
	if allowed != FailureNone {
		t.Fatalf("expected Safeguard to not block Flinch, got %v", allowed)
	}
}
