package mechanics

import "github.com/mingu600/tapu-simu/internal/typechart"

// Gen2 implements Generation for Gold/Silver/Crystal mechanics: introduces
// held items and the four-rate crit stage table (17/32/64/85 over 256),
// the Steel-resists-Ghost/Dark override, and otherwise shares Gen1's
// 217-255/255 damage roll range and stat tables.
type Gen2 struct{}

func (Gen2) Number() int { return 2 }

func (Gen2) CritStageProbability(stage int) float64 {
	var threshold int
	switch {
	case stage <= 0:
		threshold = 17
	case stage == 1:
		threshold = 32
	case stage == 2:
		threshold = 64
	default:
		threshold = 85
	}
	return float64(threshold) / 256.0
}

func (Gen2) TypeEffectiveness(attack typechart.Type, defend ...typechart.Type) float64 {
	return typechart.CombinedEffectiveness(2, attack, defend...)
}

func (Gen2) StatStageMultiplier(stage int8) (num, den int) { return gen1StatMultiplier(stage) }

func (Gen2) AccuracyStageMultiplier(stage int8) (num, den int) { return gen1AccuracyMultiplier(stage) }

func (Gen2) DamageRollPercents() []float64 { return gen12RollPercents }

func (Gen2) RoundDamage(amount float64) int { return gen12Round(amount) }

func (Gen2) FloorsIntermediateSteps() bool { return true }
