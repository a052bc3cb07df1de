// Package mechanics implements the Generation dispatcher: one
// Go interface, nine concrete strategies (Gen1..Gen9), each answering the
// generation-sensitive questions the rest of the engine needs without
// itself knowing which generation it is running — critical hit
// probability, final damage rounding, stat-stage multipliers, the damage
// roll set, and type-chart access. Grounded on
// original_source/src/engine/combat/damage/{critical_hits,damage_rolls}.rs
// and generations/modern.rs, translated from Rust's free functions plus a
// match-on-generation-number style into Go's "one trait, nine structs"
// idiom (the same shape the teacher uses for per-enemy-archetype AI, see
// DESIGN.md).
package mechanics

import (
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// DamageRoll identifies which of the sixteen (or, pre-Gen-3, three) damage
// rolls to apply.
type DamageRoll int

const (
	RollMin DamageRoll = iota
	RollAverage
	RollMax
	RollAll
)

// Generation is implemented once per mechanics generation. Every method is
// pure: no RNG, no mutation — callers supply any randomness externally
// (the turn generator consumes no RNG either: chance points become
// weighted branches, and random-target moves use their first candidate).
type Generation interface {
	// Number returns the generation number (1-9).
	Number() int

	// CritStageProbability returns the crit probability for a given
	// effective crit stage (after move/ability/item stage modifiers have
	// already been summed by the caller). Gen 1/2 ignore stage and use
	// their own formulas (critProbabilityGen1/Gen2 in crit.go, reached
	// through CritProbability).
	CritStageProbability(stage int) float64

	// TypeEffectiveness reports the generation-correct multiplier.
	TypeEffectiveness(attack typechart.Type, defend ...typechart.Type) float64

	// StatStageMultiplier returns num/den for a core-stat stage.
	StatStageMultiplier(stage int8) (num, den int)

	// AccuracyStageMultiplier returns num/den for an accuracy/evasion stage.
	AccuracyStageMultiplier(stage int8) (num, den int)

	// DamageRollPercents returns the full ascending set of roll percentages
	// (as numerators over 100) this generation uses — 16 entries (85-100)
	// for Gen 3+, 3 entries (217/236/255 over 255) for Gen 1-2, expressed as equivalent 0-100 percents for a uniform
	// caller interface.
	DamageRollPercents() []float64

	// RoundDamage applies this generation's rounding rule to an
	// intermediate floating-point damage value, producing the integer
	// damage to subtract from HP.
	RoundDamage(amount float64) int

	// FloorsIntermediateSteps reports whether intermediate multiplier
	// steps (STAB, effectiveness, burn, ...) are each floored in turn
	// (Gen 1-4 style) rather than only the final result being rounded
	// (Gen 5-6 floor it once; Gen 7+ apply poke_round once).
	FloorsIntermediateSteps() bool
}

// pokeRound implements Pokemon's "round half down" rule (spec/original
// source: fractional part > 0.5 rounds up, else down — note this is NOT
// banker's rounding and 0.5 itself rounds down).
func pokeRound(v float64) float64 {
	floor := float64(int64(v))
	if v < 0 && floor != v {
		floor--
	}
	frac := v - floor
	if frac > 0.5 {
		return floor + 1
	}
	return floor
}

func floorInt(v float64) int {
	i := int64(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return int(i)
}

// For returns the Generation strategy for a generation number, clamping
// out-of-range numbers to the nearest supported generation (1 or 9).
func For(number int) Generation {
	switch {
	case number <= 1:
		return Gen1{}
	case number == 2:
		return Gen2{}
	case number == 3:
		return Gen3{}
	case number == 4:
		return Gen4{}
	case number == 5:
		return Gen5{}
	case number == 6:
		return Gen6{}
	case number == 7:
		return Gen7{}
	case number == 8:
		return Gen8{}
	default:
		return Gen9{}
	}
}
