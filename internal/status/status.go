// Package status centralizes major- and volatile-status application,
// grounded on original_source/src/engine/combat/core/status_system.rs's
// apply_status_effect/apply_volatile_status_effect: one funnel for the
// type/ability/item/field immunity cascade instead of re-deriving it in
// every move composer.
//
// Chance rolls are never performed here — like internal/damage, this
// package is pure: Check reports whether an application would succeed
// given a hypothetical chance-roll pass, and the caller (turn generator)
// either rolls its own RNG for a single execution or branches on Chance
// directly for exhaustive enumeration.
package status

import (
	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/immunity"
	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// FailureReason names why a status/volatile application did not go
// through, mirroring status_system.rs's StatusFailureReason.
type FailureReason int

const (
	FailureNone FailureReason = iota
	FailureNoTarget
	FailureTypeImmunity
	FailureAbilityImmunity
	FailureItemImmunity
	FailureAlreadyStatused
	FailureConflictingStatus
	FailureSafeguard
	FailureMistyTerrain
	FailureSubstitute
)

func (f FailureReason) String() string {
	switch f {
	case FailureNone:
		return "None"
	case FailureNoTarget:
		return "NoTarget"
	case FailureTypeImmunity:
		return "TypeImmunity"
	case FailureAbilityImmunity:
		return "AbilityImmunity"
	case FailureItemImmunity:
		return "ItemImmunity"
	case FailureAlreadyStatused:
		return "AlreadyStatused"
	case FailureConflictingStatus:
		return "ConflictingStatus"
	case FailureSafeguard:
		return "Safeguard"
	case FailureMistyTerrain:
		return "MistyTerrain"
	case FailureSubstitute:
		return "Substitute"
	default:
		return "Unknown"
	}
}

// Application describes one attempted major-status application.
type Application struct {
	Status   pokemon.Status
	Target   battleformat.Position
	Chance   float64 // 0-100; 100 means "always, once immunity clears"
	Duration int     // 0 lets the caller assign a generation-appropriate default (e.g. sleep turns)
}

// VolatileApplication describes one attempted volatile-status application.
type VolatileApplication struct {
	Status   pokemon.Volatile
	Target   battleformat.Position
	Chance   float64
	Duration int
	Data     int
}

// substituteBypass lists volatile statuses that reach through an active
// Substitute (status_system.rs: Attract/Torment/Disable bypass it; all
// others are blocked while the substitute still has HP).
var substituteBypass = map[pokemon.Volatile]bool{
	pokemon.VolatileAttract: true,
	pokemon.VolatileTorment: true,
	pokemon.VolatileDisable: true,
}

// Check runs the full major-status immunity cascade (type, ability, item,
// field) plus the existing-status interaction check, without touching RNG.
func Check(state *pokemon.BattleState, app Application) FailureReason {
	target := state.PokemonAt(app.Target)
	if target == nil {
		return FailureNoTarget
	}

	if target.Status != pokemon.StatusNone {
		if target.Status == app.Status {
			return FailureAlreadyStatused
		}
		return FailureConflictingStatus
	}

	if reason := statusImmunity(state, app.Target, target, app.Status); reason != FailureNone {
		return reason
	}

	return FailureNone
}

// Apply builds the instruction for a major-status application that has
// already cleared Check (and, if Chance < 100, a chance roll). Returns nil
// if the application would fail.
func Apply(state *pokemon.BattleState, app Application) (instruction.Instruction, FailureReason) {
	if reason := Check(state, app); reason != FailureNone {
		return nil, reason
	}
	target := state.PokemonAt(app.Target)
	return &instruction.SetStatus{
		Target:      app.Target,
		New:         app.Status,
		NewDuration: app.Duration,
		PrevStatus:  target.Status,
		PrevDuration: target.StatusDuration,
	}, FailureNone
}

func statusImmunity(state *pokemon.BattleState, pos battleformat.Position, target *pokemon.Pokemon, s pokemon.Status) FailureReason {
	if hasTypeImmunity(target, s) {
		return FailureTypeImmunity
	}
	if hasAbilityImmunity(target, s) {
		return FailureAbilityImmunity
	}
	if hasItemImmunity(target, s) {
		return FailureItemImmunity
	}
	if hasFieldImmunity(state, pos, target, s) {
		return fieldFailureFor(state, s)
	}
	return FailureNone
}

func fieldFailureFor(state *pokemon.BattleState, s pokemon.Status) FailureReason {
	if state.Field.Terrain.Kind == pokemon.TerrainMisty {
		return FailureMistyTerrain
	}
	return FailureSafeguard
}

func hasTypeImmunity(target *pokemon.Pokemon, s pokemon.Status) bool {
	switch s {
	case pokemon.StatusBurn:
		return target.HasType(typechart.Fire)
	case pokemon.StatusFreeze:
		return target.HasType(typechart.Ice)
	case pokemon.StatusParalysis:
		return target.HasType(typechart.Electric)
	case pokemon.StatusPoison, pokemon.StatusBadlyPoisoned:
		return target.HasType(typechart.Poison) || target.HasType(typechart.Steel)
	default:
		return false
	}
}

// statusCascade holds, per major status, the abilities and berries that
// grant immunity against it.
var statusCascade = map[pokemon.Status]immunity.Cascade{
	pokemon.StatusBurn: {
		Abilities: map[string]bool{"waterveil": true, "waterbubble": true},
		Items:     map[string]bool{"rawstberry": true},
	},
	pokemon.StatusFreeze: {
		Abilities: map[string]bool{"magmaarmor": true},
		Items:     map[string]bool{"aspearberry": true},
	},
	pokemon.StatusParalysis: {
		Abilities: map[string]bool{"limber": true},
		Items:     map[string]bool{"cheriberry": true},
	},
	pokemon.StatusPoison: {
		Abilities: map[string]bool{"immunity": true, "poisonheal": true},
		Items:     map[string]bool{"pechaberry": true},
	},
	pokemon.StatusBadlyPoisoned: {
		Abilities: map[string]bool{"immunity": true, "poisonheal": true},
		Items:     map[string]bool{"pechaberry": true},
	},
	pokemon.StatusSleep: {
		Abilities: map[string]bool{"insomnia": true, "vitalspirit": true, "sweetveil": true},
		Items:     map[string]bool{"chestoberry": true},
	},
}

func hasAbilityImmunity(target *pokemon.Pokemon, s pokemon.Status) bool {
	return statusCascade[s].HasAbility(target.Ability.ID)
}

func hasItemImmunity(target *pokemon.Pokemon, s pokemon.Status) bool {
	return statusCascade[s].HasItem(target.Item.ID)
}

func hasFieldImmunity(state *pokemon.BattleState, pos battleformat.Position, target *pokemon.Pokemon, s pokemon.Status) bool {
	side := state.Side(pos.Side)
	if _, ok := side.Conditions[pokemon.SideSafeguard]; ok {
		return true
	}
	if state.Field.Terrain.Kind == pokemon.TerrainMisty && target.IsGrounded(state.Field.GravityActive()) {
		return true
	}
	return false
}

// CheckVolatile runs the volatile-status immunity cascade (ability, item,
// field, substitute) plus the existing-status duplicate check.
func CheckVolatile(state *pokemon.BattleState, app VolatileApplication) FailureReason {
	target := state.PokemonAt(app.Target)
	if target == nil {
		return FailureNoTarget
	}
	if target.Volatiles.Has(app.Status) {
		return FailureAlreadyStatused
	}
	if hasVolatileAbilityImmunity(target, app.Status) {
		return FailureAbilityImmunity
	}
	if hasVolatileItemImmunity(target, app.Status) {
		return FailureItemImmunity
	}
	if hasVolatileFieldImmunity(state, app.Target, app.Status) {
		return FailureSafeguard
	}
	if target.Volatiles.Has(pokemon.VolatileSubstitute) && target.SubstituteHP > 0 && !substituteBypass[app.Status] {
		return FailureSubstitute
	}
	return FailureNone
}

// ApplyVolatile builds the instruction for a volatile-status application
// that has already cleared CheckVolatile.
func ApplyVolatile(state *pokemon.BattleState, app VolatileApplication) (instruction.Instruction, FailureReason) {
	if reason := CheckVolatile(state, app); reason != FailureNone {
		return nil, reason
	}
	target := state.PokemonAt(app.Target)
	var prevDuration, prevData int
	prevHad := target.Volatiles.Has(app.Status)
	if prevHad {
		st := target.Volatiles[app.Status]
		prevDuration, prevData = st.Duration, st.Data
	}
	return &instruction.ApplyVolatile{
		Target:       app.Target,
		Kind:         app.Status,
		Duration:     app.Duration,
		Data:         app.Data,
		PrevHad:      prevHad,
		PrevDuration: prevDuration,
		PrevData:     prevData,
	}, FailureNone
}

// volatileCascade holds, per volatile status, the abilities and hold items
// that grant immunity against it.
var volatileCascade = map[pokemon.Volatile]immunity.Cascade{
	pokemon.VolatileAttract: {
		Abilities: map[string]bool{"oblivious": true},
		Items:     map[string]bool{"mentalherb": true},
	},
	pokemon.VolatileTaunt: {
		Abilities: map[string]bool{"oblivious": true},
		Items:     map[string]bool{"mentalherb": true},
	},
	pokemon.VolatileConfusion: {
		Abilities: map[string]bool{"owntempo": true},
		Items:     map[string]bool{"persimberry": true, "mentalherb": true},
	},
	pokemon.VolatileFlinch: {
		Abilities: map[string]bool{"innerfocus": true},
	},
}

func hasVolatileAbilityImmunity(target *pokemon.Pokemon, v pokemon.Volatile) bool {
	return volatileCascade[v].HasAbility(target.Ability.ID)
}

func hasVolatileItemImmunity(target *pokemon.Pokemon, v pokemon.Volatile) bool {
	return volatileCascade[v].HasItem(target.Item.ID)
}

func hasVolatileFieldImmunity(state *pokemon.BattleState, pos battleformat.Position, v pokemon.Volatile) bool {
	side := state.Side(pos.Side)
	if _, ok := side.Conditions[pokemon.SideSafeguard]; ok {
		switch v {
		case pokemon.VolatileAttract, pokemon.VolatileConfusion, pokemon.VolatileTaunt:
			return true
		}
	}
	return false
}
