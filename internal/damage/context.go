// Package damage implements the damage-calculation pipeline:
// an ordered sequence of stages operating on a mutable Context, grounded
// on original_source/src/engine/combat/damage_context.rs's
// AttackerContext/DefenderContext/MoveContext/FieldContext split and
// original_source/src/engine/combat/damage/utils.rs's
// calculate_final_damage_roll step sequence (roll → STAB → effectiveness
// → burn → final modifiers).
package damage

import (
	"strings"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/immunity"
	"github.com/mingu600/tapu-simu/internal/mechanics"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// Context carries everything one damage calculation needs, built once by
// the caller (turn generator) and threaded through the stage pipeline.
// Stages both read and write it; the final BaseDamage field (pre-roll) is
// what the caller then feeds through a generation's DamageRollPercents to
// produce one branch per roll.
type Context struct {
	Generation mechanics.Generation

	Attacker     *pokemon.Pokemon
	AttackerPos  battleformat.Position
	Defender     *pokemon.Pokemon
	DefenderPos  battleformat.Position

	Move pokemon.Move

	Field *pokemon.Field

	// TargetCount is the number of positions this move is hitting this
	// execution (>1 triggers the spread-damage 0.75x reduction for
	// spread-capable target kinds).
	TargetCount int

	IsCritical bool

	// Populated progressively by stages.
	AttackStat     int
	DefenseStat    int
	Immune         bool
	Effectiveness  float64
	STABMultiplier float64
	BaseDamage     float64 // pre-roll, post every other modifier
}

// Stage is one ordered step of the pipeline. Stages mutate ctx in place;
// a stage that determines the move cannot deal damage (type immunity) sets
// ctx.Immune and Run skips every subsequent stage.
type Stage func(ctx *Context)

// DefaultPipeline is the full stage sequence for a single-target
// calculation (spread reduction and field modifiers are folded into their
// own stages below since both only scale the already-computed base
// damage).
var DefaultPipeline = []Stage{
	CheckImmunity,
	SubstituteStats,
	BaseDamageFormula,
	ApplyCritical,
	ApplySTAB,
	ApplyTypeEffectiveness,
	ApplyBurn,
	ApplySpreadReduction,
	ApplyWeatherModifier,
	ApplyTerrainModifier,
	ApplyItemAbilityModifiers,
}

// ApplyCritical multiplies in the critical-hit bonus: 2x pre-Gen-6, 1.5x
// Gen 6 onward.
func ApplyCritical(ctx *Context) {
	if !ctx.IsCritical {
		return
	}
	if ctx.Generation.Number() < 6 {
		ctx.BaseDamage *= 2.0
	} else {
		ctx.BaseDamage *= 1.5
	}
	if ctx.Generation.FloorsIntermediateSteps() {
		ctx.BaseDamage = float64(int(ctx.BaseDamage))
	}
}

// Run executes the pipeline in order, stopping early once Immune is set
// (later stages would otherwise divide/multiply a meaningless zero).
func Run(ctx *Context, pipeline []Stage) {
	for _, stage := range pipeline {
		stage(ctx)
		if ctx.Immune {
			return
		}
	}
}

// typeImmunityCascade holds, per move type, the ability and item that grant
// immunity against that type regardless of what the static type chart says
// (Levitate/Ground, Flash Fire/Fire, Water Absorb/Water, Volt Absorb/
// Electric, Sap Sipper/Grass; Air Balloon stacks onto Ground alongside
// Levitate). Shares its shape with internal/status's statusCascade/
// volatileCascade tables.
var typeImmunityCascade = map[typechart.Type]immunity.Cascade{
	typechart.Ground: {
		Abilities: map[string]bool{"levitate": true},
		Items:     map[string]bool{"airballoon": true},
	},
	typechart.Fire:     {Abilities: map[string]bool{"flashfire": true}},
	typechart.Water:    {Abilities: map[string]bool{"waterabsorb": true}},
	typechart.Electric: {Abilities: map[string]bool{"voltabsorb": true}},
	typechart.Grass:    {Abilities: map[string]bool{"sapsipper": true}},
}

// CheckImmunity applies the type-effectiveness immunity short-circuit: a 0x
// multiplier against every defender type means no damage is dealt and no
// further stage runs. An ability or item granting immunity to the move's
// type (Levitate, Flash Fire, Water Absorb, Volt Absorb, Sap Sipper, Air
// Balloon) short-circuits the same way even when the static chart alone
// would have allowed the hit through.
func CheckImmunity(ctx *Context) {
	eff := ctx.Generation.TypeEffectiveness(ctx.Move.Type, ctx.Defender.EffectiveTypes()...)
	ctx.Effectiveness = eff
	if eff == 0 {
		ctx.Immune = true
		return
	}
	if cascade, ok := typeImmunityCascade[ctx.Move.Type]; ok {
		if cascade.Any(ctx.Defender.Ability.ID, ctx.Defender.Item.ID) {
			ctx.Immune = true
			ctx.Effectiveness = 0
		}
	}
}

// SubstituteStats resolves which attack/defense stats this move actually
// uses, honoring Move.OverrideAttackStat (Body Press) and
// UseTargetOffenseStat (Foul Play).
func SubstituteStats(ctx *Context) {
	attackStatKind := ctx.Move.Category
	switch {
	case ctx.Move.OverrideAttackStat != nil:
		ctx.AttackStat = ctx.Attacker.StatValue(*ctx.Move.OverrideAttackStat)
	case ctx.Move.UseTargetOffenseStat:
		if attackStatKind == pokemon.CategorySpecial {
			ctx.AttackStat = ctx.Defender.StatValue(pokemon.SpAttack)
		} else {
			ctx.AttackStat = ctx.Defender.StatValue(pokemon.Attack)
		}
	case attackStatKind == pokemon.CategorySpecial:
		ctx.AttackStat = ctx.Attacker.StatValue(pokemon.SpAttack)
	default:
		ctx.AttackStat = ctx.Attacker.StatValue(pokemon.Attack)
	}

	if attackStatKind == pokemon.CategorySpecial {
		ctx.DefenseStat = ctx.Defender.StatValue(pokemon.SpDefense)
	} else {
		ctx.DefenseStat = ctx.Defender.StatValue(pokemon.Defense)
	}

	// Critical hits ignore defender boosts and attacker drops: recompute using stage-0 values whenever the relevant stage
	// would otherwise have hurt the attacker.
	if ctx.IsCritical {
		if ctx.Attacker.Stages.Get(attackStageFor(attackStatKind)) < 0 {
			ctx.AttackStat = unstagedStat(ctx.Attacker, attackStatKind, ctx.Generation)
		}
		if ctx.Defender.Stages.Get(defenseStageFor(attackStatKind)) > 0 {
			if attackStatKind == pokemon.CategorySpecial {
				ctx.DefenseStat = ctx.Defender.Computed[pokemon.SpDefense]
			} else {
				ctx.DefenseStat = ctx.Defender.Computed[pokemon.Defense]
			}
		}
	}
}

func attackStageFor(cat pokemon.Category) pokemon.StageStat {
	if cat == pokemon.CategorySpecial {
		return pokemon.StageSpAttack
	}
	return pokemon.StageAttack
}

func defenseStageFor(cat pokemon.Category) pokemon.StageStat {
	if cat == pokemon.CategorySpecial {
		return pokemon.StageSpDefense
	}
	return pokemon.StageDefense
}

func unstagedStat(p *pokemon.Pokemon, cat pokemon.Category, gen mechanics.Generation) int {
	if cat == pokemon.CategorySpecial {
		return p.Computed[pokemon.SpAttack]
	}
	return p.Computed[pokemon.Attack]
}

// BaseDamageFormula applies the standard Pokemon damage formula:
// ((2*Level/5 + 2) * Power * Attack/Defense) / 50 + 2.
func BaseDamageFormula(ctx *Context) {
	level := ctx.Attacker.Level
	power := float64(ctx.Move.BasePower)
	if power <= 0 {
		ctx.BaseDamage = 0
		return
	}
	attack := float64(ctx.AttackStat)
	defense := float64(ctx.DefenseStat)
	if defense <= 0 {
		defense = 1
	}
	base := (((2*float64(level)/5 + 2) * power * attack / defense) / 50) + 2
	if ctx.Generation.FloorsIntermediateSteps() {
		base = float64(int(base))
	}
	ctx.BaseDamage = base
}

// ApplySTAB applies the Same-Type Attack Bonus: 1.5x
// for a matching type, 2x for Terastallized Pokemon whose Tera type
// matches one of their original types.
func ApplySTAB(ctx *Context) {
	stab := 1.0
	if ctx.Attacker.Terastallized {
		if ctx.Attacker.TeraType == ctx.Move.Type {
			stab = 1.5
			for _, t := range ctx.Attacker.OriginalTypes {
				if t == ctx.Move.Type {
					stab = 2.0
					break
				}
			}
		}
	} else if ctx.Attacker.HasType(ctx.Move.Type) {
		stab = 1.5
	}
	ctx.STABMultiplier = stab
	ctx.BaseDamage *= stab
	if ctx.Generation.FloorsIntermediateSteps() {
		ctx.BaseDamage = float64(int(ctx.BaseDamage))
	}
}

// ApplyTypeEffectiveness multiplies in the type chart result computed
// during CheckImmunity.
func ApplyTypeEffectiveness(ctx *Context) {
	ctx.BaseDamage *= ctx.Effectiveness
	if ctx.Generation.FloorsIntermediateSteps() {
		ctx.BaseDamage = float64(int(ctx.BaseDamage))
	}
}

// ApplyBurn halves physical-move damage from a burned attacker, skipped
// for Guts-ability attackers.
func ApplyBurn(ctx *Context) {
	if ctx.Move.Category == pokemon.CategoryPhysical && ctx.Attacker.Status == pokemon.StatusBurn && !strings.EqualFold(ctx.Attacker.Ability.ID, "guts") {
		ctx.BaseDamage /= 2
		if ctx.Generation.FloorsIntermediateSteps() {
			ctx.BaseDamage = float64(int(ctx.BaseDamage))
		}
	}
}

// ApplySpreadReduction applies the 0.75x spread-damage reduction when a
// spread-capable move is hitting more than one target.
func ApplySpreadReduction(ctx *Context) {
	if ctx.Move.Target.IsSpreadCapable() && ctx.TargetCount > 1 {
		ctx.BaseDamage *= 0.75
	}
}

// ApplyWeatherModifier applies the 1.5x/0.5x Sun/Rain boost-and-drop for
// Fire/Water moves.
func ApplyWeatherModifier(ctx *Context) {
	switch ctx.Field.Weather.Kind {
	case pokemon.WeatherSun, pokemon.WeatherHarshSun:
		switch ctx.Move.Type {
		case typechart.Fire:
			ctx.BaseDamage *= 1.5
		case typechart.Water:
			if ctx.Field.Weather.Kind == pokemon.WeatherHarshSun {
				ctx.BaseDamage = 0
				ctx.Immune = true
			} else {
				ctx.BaseDamage *= 0.5
			}
		}
	case pokemon.WeatherRain, pokemon.WeatherHeavyRain:
		switch ctx.Move.Type {
		case typechart.Water:
			ctx.BaseDamage *= 1.5
		case typechart.Fire:
			if ctx.Field.Weather.Kind == pokemon.WeatherHeavyRain {
				ctx.BaseDamage = 0
				ctx.Immune = true
			} else {
				ctx.BaseDamage *= 0.5
			}
		}
	}
}

// ApplyTerrainModifier applies the Electric/Grassy/Psychic 1.3x (Gen 8+)
// or 1.5x (Gen 7) boost to grounded attackers, and Misty Terrain's 0.5x
// Dragon-move reduction against grounded defenders.
func ApplyTerrainModifier(ctx *Context) {
	boost := 1.5
	if ctx.Generation.Number() >= 8 {
		boost = 1.3
	}
	switch ctx.Field.Terrain.Kind {
	case pokemon.TerrainElectric:
		if ctx.Move.Type == typechart.Electric && ctx.Attacker.IsGrounded(ctx.Field.GravityActive()) {
			ctx.BaseDamage *= boost
		}
	case pokemon.TerrainGrassy:
		if ctx.Move.Type == typechart.Grass && ctx.Attacker.IsGrounded(ctx.Field.GravityActive()) {
			ctx.BaseDamage *= boost
		} else if ctx.Move.Type == typechart.Ground && ctx.Defender.IsGrounded(ctx.Field.GravityActive()) {
			ctx.BaseDamage *= 0.5
		}
	case pokemon.TerrainPsychic:
		if ctx.Move.Type == typechart.Psychic && ctx.Attacker.IsGrounded(ctx.Field.GravityActive()) {
			ctx.BaseDamage *= boost
		}
	case pokemon.TerrainMisty:
		if ctx.Move.Type == typechart.Dragon && ctx.Defender.IsGrounded(ctx.Field.GravityActive()) {
			ctx.BaseDamage *= 0.5
		}
	}
}
