package damage

// Outcome is one possible damage result: the integer HP to subtract, and
// the probability that the branch collapses to this roll.
type Outcome struct {
	Damage      int
	Probability float64
}

// EnumerateRolls applies every damage roll this generation supports to
// ctx.BaseDamage (the pre-roll value left by Run(ctx, DefaultPipeline)),
// returning one Outcome per roll with uniform probability. A BaseDamage
// of zero (immune, or a status move with no base power) yields a single
// zero-damage, certain outcome.
func EnumerateRolls(ctx *Context) []Outcome {
	if ctx.Immune || ctx.BaseDamage <= 0 {
		return []Outcome{{Damage: 0, Probability: 1.0}}
	}

	percents := ctx.Generation.DamageRollPercents()
	out := make([]Outcome, len(percents))
	prob := 1.0 / float64(len(percents))
	for i, pct := range percents {
		rolled := ctx.BaseDamage * pct / 100.0
		damage := ctx.Generation.RoundDamage(rolled)
		if damage < 1 {
			damage = 1
		}
		out[i] = Outcome{Damage: damage, Probability: prob}
	}
	return out
}

// CollapseRoll applies a single named roll (min/average/max) without
// enumerating the full branch set, used by deterministic and rolls-only
// branching policies.
func CollapseRoll(ctx *Context, roll Roll) int {
	if ctx.Immune || ctx.BaseDamage <= 0 {
		return 0
	}
	percents := ctx.Generation.DamageRollPercents()
	idx := 0
	switch roll {
	case RollMin:
		idx = 0
	case RollMax:
		idx = len(percents) - 1
	case RollAverage:
		idx = len(percents) / 2
	}
	damage := ctx.Generation.RoundDamage(ctx.BaseDamage * percents[idx] / 100.0)
	if damage < 1 {
		damage = 1
	}
	return damage
}

// Roll names a single damage roll for deterministic collapse (distinct
// from mechanics.DamageRoll, which enumerates the full per-generation
// roll set; Roll only distinguishes the three named points the branching
// policies care about).
type Roll int

const (
	RollMin Roll = iota
	RollAverage
	RollMax
)
