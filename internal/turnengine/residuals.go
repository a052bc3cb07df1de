package turnengine

import (
	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// endOfTurnResiduals builds the end-of-turn phase:
// weather/terrain damage-or-healing, major-status damage, Leech Seed and
// trap damage, residual-healing items, then every duration decrement.
// Every effect here is deterministic given state — the chance-gated
// ability ticks (Shed Skin's 30% status cure, Moody's random stat
// choice) are left unmodeled since this phase returns a single
// instruction.Set rather than a branch list; see DESIGN.md.
func (g *Generator) endOfTurnResiduals(state *pokemon.BattleState) instruction.Set {
	var instrs instruction.Set

	for _, pos := range state.ActivePositions() {
		p := state.PokemonAt(pos)
		if p == nil || p.IsFainted() {
			continue
		}
		instrs = append(instrs, weatherDamage(state, pos, p)...)
	}
	for _, pos := range state.ActivePositions() {
		p := state.PokemonAt(pos)
		if p == nil || p.IsFainted() {
			continue
		}
		instrs = append(instrs, terrainHealing(state, pos, p)...)
	}
	for _, pos := range state.ActivePositions() {
		p := state.PokemonAt(pos)
		if p == nil || p.IsFainted() {
			continue
		}
		instrs = append(instrs, statusDamage(pos, p)...)
		instrs = append(instrs, leechSeedDamage(pos, p)...)
		instrs = append(instrs, trapDamage(pos, p)...)
		instrs = append(instrs, residualItemTick(pos, p)...)
	}

	instrs = append(instrs, decrementDurations(state)...)
	return instrs
}

// weatherDamage is 1/16 max HP for Sand (non-Rock/Ground/Steel, no Sand
// Veil/Sand Rush/Sand Force/Magic Guard/Overcoat) and Hail (non-Ice, no
// Ice Body/Snow Cloak/Magic Guard/Overcoat).
func weatherDamage(state *pokemon.BattleState, pos battleformat.Position, p *pokemon.Pokemon) instruction.Set {
	switch state.Field.Weather.Kind {
	case pokemon.WeatherSand:
		if p.HasType(typechart.Rock) || p.HasType(typechart.Ground) || p.HasType(typechart.Steel) {
			return nil
		}
		if sandImmuneAbility(p.Ability.ID) {
			return nil
		}
	case pokemon.WeatherHail, pokemon.WeatherSnow:
		if p.HasType(typechart.Ice) {
			return nil
		}
		if hailImmuneAbility(p.Ability.ID) {
			return nil
		}
	default:
		return nil
	}
	amount := p.MaxHP / 16
	if amount <= 0 {
		amount = 1
	}
	return instruction.Set{&instruction.Damage{Target: pos, Amount: amount}}
}

func sandImmuneAbility(id string) bool {
	switch id {
	case "sandveil", "sandrush", "sandforce", "magicguard", "overcoat":
		return true
	}
	return false
}

func hailImmuneAbility(id string) bool {
	switch id {
	case "icebody", "snowcloak", "magicguard", "overcoat":
		return true
	}
	return false
}

// terrainHealing is Grassy Terrain's 1/16 max HP heal for grounded
// Pokemon.
func terrainHealing(state *pokemon.BattleState, pos battleformat.Position, p *pokemon.Pokemon) instruction.Set {
	if state.Field.Terrain.Kind != pokemon.TerrainGrassy {
		return nil
	}
	if !p.IsGrounded(state.Field.GravityActive()) {
		return nil
	}
	if p.CurrentHP >= p.MaxHP {
		return nil
	}
	amount := p.MaxHP / 16
	if amount <= 0 {
		amount = 1
	}
	return instruction.Set{&instruction.Heal{Target: pos, Amount: amount}}
}

// statusDamage applies burn (1/16), poison (1/8), and badly-poisoned
// (n/16, n incrementing with StatusDuration) residual damage, skipped
// entirely under Magic Guard.
func statusDamage(pos battleformat.Position, p *pokemon.Pokemon) instruction.Set {
	if p.Ability.ID == "magicguard" {
		return nil
	}
	var amount int
	switch p.Status {
	case pokemon.StatusBurn:
		amount = p.MaxHP / 16
	case pokemon.StatusPoison:
		amount = p.MaxHP / 8
	case pokemon.StatusBadlyPoisoned:
		n := p.StatusDuration + 1
		amount = p.MaxHP * n / 16
	default:
		return nil
	}
	if amount <= 0 {
		amount = 1
	}
	instrs := instruction.Set{&instruction.Damage{Target: pos, Amount: amount}}
	if p.Status == pokemon.StatusBadlyPoisoned {
		instrs = append(instrs, &instruction.SetStatus{Target: pos, New: pokemon.StatusBadlyPoisoned, NewDuration: p.StatusDuration + 1})
	}
	return instrs
}

// leechSeedDamage drains 1/8 max HP from a seeded Pokemon to the source
// position encoded in the volatile's Data field.
func leechSeedDamage(pos battleformat.Position, p *pokemon.Pokemon) instruction.Set {
	vs, ok := p.Volatiles[pokemon.VolatileLeechSeed]
	if !ok {
		return nil
	}
	if p.Ability.ID == "magicguard" {
		return nil
	}
	amount := p.MaxHP / 8
	if amount <= 0 {
		amount = 1
	}
	source := decodePosition(vs.Data)
	return instruction.Set{
		&instruction.Damage{Target: pos, Amount: amount},
		&instruction.Heal{Target: source, Amount: amount},
	}
}

// trapDamage applies Bind/Wrap/Clamp/Fire Spin/Whirlpool/Sand Tomb
// residual damage: 1/8 max HP (1/16 with Binding Band, not modeled here).
func trapDamage(pos battleformat.Position, p *pokemon.Pokemon) instruction.Set {
	if !p.Volatiles.Has(pokemon.VolatileBind) {
		return nil
	}
	if p.Ability.ID == "magicguard" {
		return nil
	}
	amount := p.MaxHP / 8
	if amount <= 0 {
		amount = 1
	}
	return instruction.Set{&instruction.Damage{Target: pos, Amount: amount}}
}

// residualItemTick handles Leftovers (1/16 heal), Black Sludge (1/16 heal
// for Poison types, 1/8 damage otherwise), and the self-damaging
// status orbs (Flame Orb/Toxic Orb only set status when the holder isn't
// already statused, handled by the caller's status-application path, not
// here — this only covers the per-turn HP tick).
func residualItemTick(pos battleformat.Position, p *pokemon.Pokemon) instruction.Set {
	if p.Item.Consumed || p.Ability.ID == "magicguard" {
		return nil
	}
	switch p.Item.ID {
	case "leftovers":
		if p.CurrentHP >= p.MaxHP {
			return nil
		}
		amount := p.MaxHP / 16
		if amount <= 0 {
			amount = 1
		}
		return instruction.Set{&instruction.Heal{Target: pos, Amount: amount}}
	case "blacksludge":
		if p.HasType(typechart.Poison) {
			if p.CurrentHP >= p.MaxHP {
				return nil
			}
			amount := p.MaxHP / 16
			if amount <= 0 {
				amount = 1
			}
			return instruction.Set{&instruction.Heal{Target: pos, Amount: amount}}
		}
		amount := p.MaxHP / 8
		if amount <= 0 {
			amount = 1
		}
		return instruction.Set{&instruction.Damage{Target: pos, Amount: amount}}
	case "stickybarb":
		amount := p.MaxHP / 8
		if amount <= 0 {
			amount = 1
		}
		return instruction.Set{&instruction.Damage{Target: pos, Amount: amount}}
	default:
		return nil
	}
}

// decodePosition inverts the Side*8+Slot encoding used to pack a Position
// into a VolatileState.Data int (battleformat.Position has no natural
// integer form; this is the engine's one place that needs it packed).
func decodePosition(data int) battleformat.Position {
	return battleformat.Position{Side: battleformat.Side(data / 8), Slot: data % 8}
}

// encodePosition packs a Position into a VolatileState.Data int; the
// inverse of decodePosition.
func encodePosition(pos battleformat.Position) int {
	return int(pos.Side)*8 + pos.Slot
}

// decrementDurations ticks every turn-counted field/side-condition state
// down by one.
func decrementDurations(state *pokemon.BattleState) instruction.Set {
	var instrs instruction.Set
	if state.Field.Weather.Kind != pokemon.WeatherNone {
		instrs = append(instrs, &instruction.DecrementWeatherTurns{})
	}
	if state.Field.Terrain.Kind != pokemon.TerrainNone {
		instrs = append(instrs, &instruction.DecrementTerrainTurns{})
	}
	if state.Field.TrickRoomActive() {
		next := state.Field.TrickRoomTurns - 1
		if next < 0 {
			next = 0
		}
		instrs = append(instrs, &instruction.ToggleTrickRoom{NewTurns: next})
	}
	if state.Field.GravityActive() {
		next := state.Field.GravityTurns - 1
		if next < 0 {
			next = 0
		}
		instrs = append(instrs, &instruction.ToggleGravity{NewTurns: next})
	}

	for _, side := range []battleformat.Side{battleformat.SideOne, battleformat.SideTwo} {
		s := state.Side(side)
		for cond := range s.Conditions {
			instrs = append(instrs, &instruction.DecrementSideConditionDuration{Side: side, Condition: cond})
		}
	}
	return instrs
}
