package field

import (
	"testing"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/mechanics"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

func newFieldTestState() *pokemon.BattleState {
	format := battleformat.New(9, battleformat.Singles, 3)
	one := []*pokemon.Pokemon{
		{Species: "Garchomp", Level: 50, CurrentHP: 180, MaxHP: 180, Types: []typechart.Type{typechart.Dragon, typechart.Ground}},
	}
	two := []*pokemon.Pokemon{
		{Species: "Skarmory", Level: 50, CurrentHP: 160, MaxHP: 160, Types: []typechart.Type{typechart.Steel, typechart.Flying}},
	}
	state := pokemon.New(format, one, two)
	state.One.SwitchIn(0, 0)
	state.Two.SwitchIn(0, 0)
	return state
}

func posOneZeroField() battleformat.Position {
	return battleformat.Position{Side: battleformat.SideOne, Slot: 0}
}

func TestEntryHazardsSpikesDamage(t *testing.T) {
	state := newFieldTestState()
	state.One.Conditions[pokemon.SideSpikes] = pokemon.SideConditionState{Layers: 2}
	instrs := EntryHazards(state, posOneZeroField(), mechanics.Gen9{})
	if len(instrs) != 1 {
		t.Fatalf("expected 1 hazard instruction, got %d", len(instrs))
	}
	if _, ok := instrs[0].(*instruction.Damage); !ok {
		t.Fatalf("expected *instruction.Damage, got %T", instrs[0])
	}
}

func TestEntryHazardsStealthRockIgnoresGrounding(t *testing.T) {
	state := newFieldTestState()
	// Skarmory is Flying, ungrounded, but Stealth Rock still hits flyers.
	state.Two.Conditions[pokemon.SideStealthRock] = pokemon.SideConditionState{Layers: 1}
	pos := battleformat.Position{Side: battleformat.SideTwo, Slot: 0}
	instrs := EntryHazards(state, pos, mechanics.Gen9{})
	if len(instrs) == 0 {
		t.Fatal("expected Stealth Rock to damage a Flying-type switch-in")
	}
}

func TestEntryHazardsStickyWebSkipsUngrounded(t *testing.T) {
	state := newFieldTestState()
	state.Two.Conditions[pokemon.SideStickyWeb] = pokemon.SideConditionState{Layers: 1}
	pos := battleformat.Position{Side: battleformat.SideTwo, Slot: 0}
	instrs := EntryHazards(state, pos, mechanics.Gen9{})
	if len(instrs) != 0 {
		t.Fatalf("expected Sticky Web to skip a Flying-type (ungrounded), got %d instructions", len(instrs))
	}
}

func TestEntryHazardsToxicSpikesSkipsUngrounded(t *testing.T) {
	state := newFieldTestState()
	state.Two.Conditions[pokemon.SideToxicSpikes] = pokemon.SideConditionState{Layers: 2}
	// Skarmory is Steel/Flying: ungrounded, so should not be poisoned.
	pos := battleformat.Position{Side: battleformat.SideTwo, Slot: 0}
	instrs := EntryHazards(state, pos, mechanics.Gen9{})
	if len(instrs) != 0 {
		t.Fatalf("expected ungrounded Pokemon to skip Toxic Spikes, got %d", len(instrs))
	}
}

func TestCanApplySideConditionRespectsLayerCap(t *testing.T) {
	state := newFieldTestState()
	state.One.Conditions[pokemon.SideSpikes] = pokemon.SideConditionState{Layers: 3}
	if CanApplySideCondition(state, battleformat.SideOne, pokemon.SideSpikes) {
		t.Fatal("expected Spikes at 3 layers to reject further application")
	}
}

func TestRapidSpinRemovesOnlyHazards(t *testing.T) {
	state := newFieldTestState()
	state.One.Conditions[pokemon.SideSpikes] = pokemon.SideConditionState{Layers: 1}
	state.One.Conditions[pokemon.SideReflect] = pokemon.SideConditionState{Layers: 1, RemainingTurns: 5}
	instrs := RapidSpin(state, battleformat.SideOne)
	if len(instrs) != 1 {
		t.Fatalf("expected Rapid Spin to remove only hazards, got %d instructions", len(instrs))
	}
}

func TestDefogRemovesHazardsBothSidesAndScreensOnlyTarget(t *testing.T) {
	state := newFieldTestState()
	state.One.Conditions[pokemon.SideSpikes] = pokemon.SideConditionState{Layers: 1}
	state.Two.Conditions[pokemon.SideStealthRock] = pokemon.SideConditionState{Layers: 1}
	state.Two.Conditions[pokemon.SideReflect] = pokemon.SideConditionState{Layers: 1, RemainingTurns: 5}
	state.One.Conditions[pokemon.SideLightScreen] = pokemon.SideConditionState{Layers: 1, RemainingTurns: 5}

	instrs := Defog(state, battleformat.SideOne)
	// Expect: SideOne Spikes removed, SideTwo StealthRock removed, SideTwo Reflect removed.
	// SideOne LightScreen (user's own screen) must remain.
	if len(instrs) != 3 {
		t.Fatalf("expected 3 removals, got %d", len(instrs))
	}
}

func TestSetWeatherExtendsWithMatchingRockItem(t *testing.T) {
	state := newFieldTestState()
	state.PokemonAt(posOneZeroField()).Item.ID = "heatrock"
	instr := SetWeather(state, pokemon.WeatherSun, posOneZeroField())
	if instr.Duration != ExtendedDuration {
		t.Fatalf("expected extended duration %d, got %d", ExtendedDuration, instr.Duration)
	}
}

func TestSetWeatherDefaultDurationWithoutItem(t *testing.T) {
	state := newFieldTestState()
	instr := SetWeather(state, pokemon.WeatherRain, posOneZeroField())
	if instr.Duration != DefaultWeatherDuration {
		t.Fatalf("expected default duration %d, got %d", DefaultWeatherDuration, instr.Duration)
	}
}

func TestContactEffectsSkippedWhenNoDamage(t *testing.T) {
	state := newFieldTestState()
	move := pokemon.Move{Flags: pokemon.Flags{Contact: true}}
	out := ContactEffects(state, move, posOneZeroField(), battleformat.Position{Side: battleformat.SideTwo, Slot: 0}, 0)
	if out != nil {
		t.Fatalf("expected no contact effects with zero damage, got %d", len(out))
	}
}

func TestContactEffectsStaticTriggersParalysisChance(t *testing.T) {
	state := newFieldTestState()
	state.PokemonAt(battleformat.Position{Side: battleformat.SideTwo, Slot: 0}).Ability.ID = "static"
	move := pokemon.Move{Flags: pokemon.Flags{Contact: true}}
	out := ContactEffects(state, move, posOneZeroField(), battleformat.Position{Side: battleformat.SideTwo, Slot: 0}, 40)
	if len(out) != 1 || out[0].Chance != 30.0 {
		t.Fatalf("expected single 30%% Static trigger, got %+v", out)
	}
}

func TestContactEffectsRoughSkinDealsFixedDamage(t *testing.T) {
	state := newFieldTestState()
	state.PokemonAt(battleformat.Position{Side: battleformat.SideTwo, Slot: 0}).Ability.ID = "roughskin"
	move := pokemon.Move{Flags: pokemon.Flags{Contact: true}}
	out := ContactEffects(state, move, posOneZeroField(), battleformat.Position{Side: battleformat.SideTwo, Slot: 0}, 40)
	if len(out) != 1 || out[0].Chance != 100.0 {
		t.Fatalf("expected guaranteed Rough Skin recoil, got %+v", out)
	}
}

func TestRecoilDamageComputesPercentOfDamageDealt(t *testing.T) {
	instr := RecoilDamage(posOneZeroField(), 100, 25)
	dmg, ok := instr.(*instruction.Damage)
	if !ok {
		t.Fatal("expected *instruction.Damage")
	}
	if dmg.Amount != 25 {
		t.Fatalf("expected 25 recoil damage, got %d", dmg.Amount)
	}
}

func TestRecoilDamageNilWhenNoDamageDealt(t *testing.T) {
	if RecoilDamage(posOneZeroField(), 0, 25) != nil {
		t.Fatal("expected nil recoil instruction with zero damage dealt")
	}
}

func TestDrainHealComputesPercentOfDamageDealt(t *testing.T) {
	instr := DrainHeal(posOneZeroField(), 100, 50)
	heal, ok := instr.(*instruction.Heal)
	if !ok {
		t.Fatal("expected *instruction.Heal")
	}
	if heal.Amount != 50 {
		t.Fatalf("expected 50 drain heal, got %d", heal.Amount)
	}
}
