package mechanics

import "github.com/mingu600/tapu-simu/internal/typechart"

// Gen1 implements Generation for Red/Blue/Yellow mechanics: no held
// items/abilities, the 217-255/255 damage roll range, a Speed-threshold
// crit formula (handled in crit.go, not here — CritStageProbability is
// unused by Gen1's own CritProbability path but still implemented to
// satisfy the interface for callers that don't special-case it), and the
// reversed Bug/Poison, bugged Ghost-vs-Psychic type chart.
type Gen1 struct{}

func (Gen1) Number() int { return 1 }

// CritStageProbability is not used directly for Gen 1 (see crit.go's
// critProbabilityGen1), but approximates the base rate for any caller
// that queries it generically.
func (Gen1) CritStageProbability(stage int) float64 {
	if stage <= 0 {
		return 1.0 / 256.0 * 32.5 // base average Speed/2 heuristic, rarely used directly
	}
	return 1.0
}

func (Gen1) TypeEffectiveness(attack typechart.Type, defend ...typechart.Type) float64 {
	return typechart.CombinedEffectiveness(1, attack, defend...)
}

func (Gen1) StatStageMultiplier(stage int8) (num, den int) {
	return gen1StatMultiplier(stage)
}

func (Gen1) AccuracyStageMultiplier(stage int8) (num, den int) {
	return gen1AccuracyMultiplier(stage)
}

func (Gen1) DamageRollPercents() []float64 {
	return gen12RollPercents
}

// RoundDamage applies Gen 1/2's average-roll ratio (236/255) floor-
// truncated to an integer, with a minimum of 1 for nonzero base damage
// (original_source calculate_final_damage_gen12).
func (Gen1) RoundDamage(amount float64) int {
	return gen12Round(amount)
}

func (Gen1) FloorsIntermediateSteps() bool { return true }

// gen1StatMultiplier is the Gen 1/2 stage table, expressed as percentages
// over 100 (25% at -6 up to 400% at +6, with -5 and -1 at 28% and 66%)
// rather than pokemon.StatStageMultiplier's 2/8..8/2 fractions.
func gen1StatMultiplier(stage int8) (int, int) {
	table := [13][2]int{
		{25, 100}, {28, 100}, {33, 100}, {40, 100}, {50, 100}, {66, 100},
		{1, 1},
		{150, 100}, {200, 100}, {250, 100}, {300, 100}, {350, 100}, {400, 100},
	}
	return clampedLookup(table, stage)
}

// gen1AccuracyMultiplier: Gen 1/2 accuracy stages use the same fractional
// table as the core stat table (unlike Gen 3+, which has a distinct,
// gentler accuracy curve).
func gen1AccuracyMultiplier(stage int8) (int, int) {
	return gen1StatMultiplier(stage)
}

func clampedLookup(table [13][2]int, stage int8) (int, int) {
	idx := int(stage) + 6
	if idx < 0 {
		idx = 0
	}
	if idx > 12 {
		idx = 12
	}
	pair := table[idx]
	return pair[0], pair[1]
}

// gen12RollPercents expresses the three Gen 1/2 roll points (min 217/255,
// average 236/255, max 255/255) as 0-100 percents for the uniform
// DamageRollPercents contract.
var gen12RollPercents = []float64{217.0 / 255.0 * 100, 236.0 / 255.0 * 100, 255.0 / 255.0 * 100}

func gen12Round(amount float64) int {
	base := floorInt(amount)
	v := (base * 236) / 255
	if v < 1 && base > 0 {
		v = 1
	}
	return v
}
