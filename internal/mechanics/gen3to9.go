package mechanics

import (
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// rollPercents16 is the shared Gen 3+ damage roll set: sixteen points from
// 85% to 100% inclusive (original_source: DAMAGE_ROLL_COUNT == 16, step 1).
var rollPercents16 = func() []float64 {
	out := make([]float64, 16)
	for i := range out {
		out[i] = float64(85 + i)
	}
	return out
}()

func critRateGen345(stage int) float64 {
	switch {
	case stage < 0:
		return 0
	case stage == 0:
		return 1.0 / 16.0
	case stage == 1:
		return 2.0 / 16.0
	case stage == 2:
		return 4.0 / 16.0
	case stage == 3:
		return 6.0 / 16.0
	default:
		return 8.0 / 16.0
	}
}

func critRateGen6(stage int) float64 {
	switch {
	case stage < 0:
		return 0
	case stage == 0:
		return 1.0 / 16.0
	case stage == 1:
		return 2.0 / 16.0
	case stage == 2:
		return 4.0 / 16.0
	case stage == 3:
		return 8.0 / 16.0
	default:
		return 12.0 / 16.0
	}
}

func critRateModern(stage int) float64 {
	switch {
	case stage < 0:
		return 0
	case stage == 0:
		return 1.0 / 24.0
	case stage == 1:
		return 2.0 / 24.0
	case stage == 2:
		return 4.0 / 24.0
	case stage == 3:
		return 8.0 / 24.0
	default:
		return 12.0 / 24.0
	}
}

// Gen3 implements Generation for Ruby/Sapphire/Emerald/FireRed/LeafGreen:
// introduces the standard stage-based crit system and abilities, floors
// damage at each intermediate multiplier step (no poke_round yet).
type Gen3 struct{}

func (Gen3) Number() int                                        { return 3 }
func (Gen3) CritStageProbability(stage int) float64              { return critRateGen345(stage) }
func (Gen3) TypeEffectiveness(a typechart.Type, d ...typechart.Type) float64 {
	return typechart.CombinedEffectiveness(3, a, d...)
}
func (Gen3) StatStageMultiplier(s int8) (int, int)     { return pokemon.StatStageMultiplier(s) }
func (Gen3) AccuracyStageMultiplier(s int8) (int, int) { return pokemon.AccuracyStageMultiplier(s) }
func (Gen3) DamageRollPercents() []float64             { return rollPercents16 }
func (Gen3) RoundDamage(amount float64) int            { return floorInt(amount) }
func (Gen3) FloorsIntermediateSteps() bool             { return true }

// Gen4 implements Generation for Diamond/Pearl/Platinum/HGSS: same damage
// math as Gen3 (physical/special split by move, not by type, was already
// Gen4's headline change but doesn't affect this layer).
type Gen4 struct{}

func (Gen4) Number() int                           { return 4 }
func (Gen4) CritStageProbability(stage int) float64 { return critRateGen345(stage) }
func (Gen4) TypeEffectiveness(a typechart.Type, d ...typechart.Type) float64 {
	return typechart.CombinedEffectiveness(4, a, d...)
}
func (Gen4) StatStageMultiplier(s int8) (int, int)     { return pokemon.StatStageMultiplier(s) }
func (Gen4) AccuracyStageMultiplier(s int8) (int, int) { return pokemon.AccuracyStageMultiplier(s) }
func (Gen4) DamageRollPercents() []float64             { return rollPercents16 }
func (Gen4) RoundDamage(amount float64) int            { return floorInt(amount) }
func (Gen4) FloorsIntermediateSteps() bool             { return true }

// Gen5 implements Generation for Black/White/BW2: modern type chart
// (Steel no longer resists Ghost/Dark), but still plain-floor rounding
// (poke_round arrives in Gen 7).
type Gen5 struct{}

func (Gen5) Number() int                           { return 5 }
func (Gen5) CritStageProbability(stage int) float64 { return critRateGen345(stage) }
func (Gen5) TypeEffectiveness(a typechart.Type, d ...typechart.Type) float64 {
	return typechart.CombinedEffectiveness(5, a, d...)
}
func (Gen5) StatStageMultiplier(s int8) (int, int)     { return pokemon.StatStageMultiplier(s) }
func (Gen5) AccuracyStageMultiplier(s int8) (int, int) { return pokemon.AccuracyStageMultiplier(s) }
func (Gen5) DamageRollPercents() []float64             { return rollPercents16 }
func (Gen5) RoundDamage(amount float64) int            { return floorInt(amount) }
func (Gen5) FloorsIntermediateSteps() bool             { return false }

// Gen6 implements Generation for X/Y/ORAS: Fairy type introduced, crit
// rates raised (stage 3 is 8/16 instead of 6/16), Mega Evolution (handled
// at the ability/form layer, not here).
type Gen6 struct{}

func (Gen6) Number() int                           { return 6 }
func (Gen6) CritStageProbability(stage int) float64 { return critRateGen6(stage) }
func (Gen6) TypeEffectiveness(a typechart.Type, d ...typechart.Type) float64 {
	return typechart.CombinedEffectiveness(6, a, d...)
}
func (Gen6) StatStageMultiplier(s int8) (int, int)     { return pokemon.StatStageMultiplier(s) }
func (Gen6) AccuracyStageMultiplier(s int8) (int, int) { return pokemon.AccuracyStageMultiplier(s) }
func (Gen6) DamageRollPercents() []float64             { return rollPercents16 }
func (Gen6) RoundDamage(amount float64) int            { return floorInt(amount) }
func (Gen6) FloorsIntermediateSteps() bool             { return false }

// Gen7 implements Generation for Sun/Moon/USUM: introduces poke_round
// (round-half-down, applied once to the final damage value rather than at
// every intermediate step) and the reduced 1/24 base crit rate, plus
// Terrain's 1.5x boost (vs Gen 8+'s 1.3x — applied by internal/damage's
// ApplyTerrainModifier).
type Gen7 struct{}

func (Gen7) Number() int                           { return 7 }
func (Gen7) CritStageProbability(stage int) float64 { return critRateModern(stage) }
func (Gen7) TypeEffectiveness(a typechart.Type, d ...typechart.Type) float64 {
	return typechart.CombinedEffectiveness(7, a, d...)
}
func (Gen7) StatStageMultiplier(s int8) (int, int)     { return pokemon.StatStageMultiplier(s) }
func (Gen7) AccuracyStageMultiplier(s int8) (int, int) { return pokemon.AccuracyStageMultiplier(s) }
func (Gen7) DamageRollPercents() []float64             { return rollPercents16 }
func (Gen7) RoundDamage(amount float64) int            { return int(pokeRound(amount)) }
func (Gen7) FloorsIntermediateSteps() bool             { return false }

// Gen8 implements Generation for Sword/Shield: same damage math as Gen7,
// Terrain boost reduced to 1.3x, Dynamax (handled at the form/ability
// layer).
type Gen8 struct{}

func (Gen8) Number() int                           { return 8 }
func (Gen8) CritStageProbability(stage int) float64 { return critRateModern(stage) }
func (Gen8) TypeEffectiveness(a typechart.Type, d ...typechart.Type) float64 {
	return typechart.CombinedEffectiveness(8, a, d...)
}
func (Gen8) StatStageMultiplier(s int8) (int, int)     { return pokemon.StatStageMultiplier(s) }
func (Gen8) AccuracyStageMultiplier(s int8) (int, int) { return pokemon.AccuracyStageMultiplier(s) }
func (Gen8) DamageRollPercents() []float64             { return rollPercents16 }
func (Gen8) RoundDamage(amount float64) int            { return int(pokeRound(amount)) }
func (Gen8) FloorsIntermediateSteps() bool             { return false }

// Gen9 implements Generation for Scarlet/Violet: same damage math as
// Gen7/8, adds Terastallization (handled by Pokemon.EffectiveTypes/TeraType
// in internal/pokemon, consulted by internal/damage's STAB stage).
type Gen9 struct{}

func (Gen9) Number() int                           { return 9 }
func (Gen9) CritStageProbability(stage int) float64 { return critRateModern(stage) }
func (Gen9) TypeEffectiveness(a typechart.Type, d ...typechart.Type) float64 {
	return typechart.CombinedEffectiveness(9, a, d...)
}
func (Gen9) StatStageMultiplier(s int8) (int, int)     { return pokemon.StatStageMultiplier(s) }
func (Gen9) AccuracyStageMultiplier(s int8) (int, int) { return pokemon.AccuracyStageMultiplier(s) }
func (Gen9) DamageRollPercents() []float64             { return rollPercents16 }
func (Gen9) RoundDamage(amount float64) int            { return int(pokeRound(amount)) }
func (Gen9) FloorsIntermediateSteps() bool             { return false }
