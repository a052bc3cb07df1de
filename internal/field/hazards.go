// Package field implements entry-hazard, weather/terrain, and contact
// side-effect pipelines — the field-facing counterpart to internal/damage
// and internal/status. Grounded on
// original_source/src/genx/switch_effects.rs (entry hazards, switch-in
// abilities), original_source/src/engine/combat/core/field_system.rs
// (weather/terrain/side-condition management, hazard removal), and
// original_source/src/engine/combat/core/contact_effects.rs (contact
// ability/item triggers, recoil, drain).
//
// Every exported function here is pure: it builds instruction.Instruction
// values without mutating state or touching RNG, matching the discipline
// already established by internal/damage and internal/status. Chance-gated
// effects (Static's 30%, Cursed Body's 30%, ...) are exposed as a
// Chance field (0-100) alongside the built instruction so the turn generator
// can branch or roll as it sees fit.
package field

import (
	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/mechanics"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// EntryHazards returns the instructions triggered by a Pokemon switching
// into pos, in official processing order: Spikes, Stealth Rock, Toxic
// Spikes, Sticky Web (switch_effects.rs's process_entry_hazards).
func EntryHazards(state *pokemon.BattleState, pos battleformat.Position, gen mechanics.Generation) []instruction.Instruction {
	target := state.PokemonAt(pos)
	if target == nil {
		return nil
	}
	side := state.Side(pos.Side)
	grounded := target.IsGrounded(state.Field.GravityActive())

	var out []instruction.Instruction

	if st, ok := side.Conditions[pokemon.SideSpikes]; ok && st.Layers > 0 && grounded {
		if dmg := spikesDamage(target, st.Layers); dmg > 0 {
			out = append(out, &instruction.Damage{Target: pos, Amount: dmg})
		}
	}

	if st, ok := side.Conditions[pokemon.SideStealthRock]; ok && st.Layers > 0 {
		if dmg := stealthRockDamage(target, gen); dmg > 0 {
			out = append(out, &instruction.Damage{Target: pos, Amount: dmg})
		}
	}

	if st, ok := side.Conditions[pokemon.SideToxicSpikes]; ok && st.Layers > 0 && grounded {
		if s, ok := toxicSpikesStatus(target, st.Layers); ok {
			out = append(out, &instruction.SetStatus{Target: pos, New: s, PrevStatus: target.Status, PrevDuration: target.StatusDuration})
		}
	}

	if st, ok := side.Conditions[pokemon.SideStickyWeb]; ok && st.Layers > 0 && grounded {
		out = append(out, &instruction.BoostStats{
			Target: pos,
			Delta:  map[pokemon.StageStat]int{pokemon.StageSpeed: -1},
		})
	}

	return out
}

// spikesDamage returns 1/8, 1/6, 1/4 max HP for 1/2/3 layers.
func spikesDamage(p *pokemon.Pokemon, layers int) int {
	switch layers {
	case 1:
		return p.MaxHP / 8
	case 2:
		return p.MaxHP / 6
	default:
		return p.MaxHP / 4
	}
}

// stealthRockDamage applies the Rock-type effectiveness multiplier against
// the entering Pokemon's types to a flat 1/8 max HP base.
func stealthRockDamage(p *pokemon.Pokemon, gen mechanics.Generation) int {
	eff := gen.TypeEffectiveness(typechart.Rock, p.EffectiveTypes()...)
	dmg := float64(p.MaxHP) / 8.0 * eff
	return gen.RoundDamage(dmg)
}

// toxicSpikesStatus returns Poison for one layer, Badly Poisoned for two;
// Poison- and Steel-type Pokemon are not poisoned (ungrounded ones are
// filtered out by the caller). A grounded Poison type absorbs the spikes
// instead (AbsorbsToxicSpikes); removing them is not done by this pure
// lookup.
func toxicSpikesStatus(p *pokemon.Pokemon, layers int) (pokemon.Status, bool) {
	if p.HasType(typechart.Poison) || p.HasType(typechart.Steel) {
		return pokemon.StatusNone, false
	}
	if layers >= 2 {
		return pokemon.StatusBadlyPoisoned, true
	}
	return pokemon.StatusPoison, true
}

// AbsorbsToxicSpikes reports whether a grounded Poison-type switching in
// should remove Toxic Spikes from its own side instead of being poisoned.
func AbsorbsToxicSpikes(p *pokemon.Pokemon, gravity bool) bool {
	return p.HasType(typechart.Poison) && p.IsGrounded(gravity)
}
