package damage

// Branch is one fully-resolved (crit × roll) damage outcome with its
// combined probability, the unit the turn generator consumes directly
// when expanding a damaging move into its instruction-set branches.
type Branch struct {
	Damage        int
	Probability   float64
	IsCritical    bool
	Effectiveness float64
}

// Calculate runs the full pipeline (critical and non-critical) and
// returns every resulting branch, combining mechanics.CritProbability
// with the generation's damage-roll set. Probabilities always sum to 1.0
// within floating-point tolerance (testable property 8.1.1).
func Calculate(base *Context, critProbability float64) []Branch {
	var branches []Branch

	nonCrit := *base
	nonCrit.IsCritical = false
	Run(&nonCrit, DefaultPipeline)
	for _, o := range EnumerateRolls(&nonCrit) {
		branches = append(branches, Branch{
			Damage:        o.Damage,
			Probability:   o.Probability * (1 - critProbability),
			IsCritical:    false,
			Effectiveness: nonCrit.Effectiveness,
		})
	}

	if critProbability > 0 {
		crit := *base
		crit.IsCritical = true
		Run(&crit, DefaultPipeline)
		for _, o := range EnumerateRolls(&crit) {
			branches = append(branches, Branch{
				Damage:        o.Damage,
				Probability:   o.Probability * critProbability,
				IsCritical:    true,
				Effectiveness: crit.Effectiveness,
			})
		}
	}

	return branches
}

// CalculateDeterministic collapses straight to a single branch using a
// fixed roll and critical-hit outcome, for the "deterministic" branching
// policy where callers want exactly one instruction set.
func CalculateDeterministic(base *Context, isCritical bool, roll Roll) Branch {
	ctx := *base
	ctx.IsCritical = isCritical
	Run(&ctx, DefaultPipeline)
	return Branch{
		Damage:        CollapseRoll(&ctx, roll),
		Probability:   1.0,
		IsCritical:    isCritical,
		Effectiveness: ctx.Effectiveness,
	}
}
