package turnengine

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/damage"
	"github.com/mingu600/tapu-simu/internal/field"
	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/mechanics"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/status"
	"github.com/mingu600/tapu-simu/internal/telemetry"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// stepResult is one outcome of a single chance point within an actor's
// sub-tree. Terminal marks outcomes that end the actor's turn early
// (flinch, full paralysis, a failed wake-up, a miss, ...): no further
// phase runs for that branch.
type stepResult struct {
	Probability  float64
	Instructions instruction.Set
	Terminal     bool
}

// runPhase folds one chance point over every current branch, splitting
// the results into branches that continue to the next phase and branches
// that are already final.
func (g *Generator) runPhase(state *pokemon.BattleState, branches []Branch, step func(scratch *pokemon.BattleState) []stepResult) (continued, terminal []Branch) {
	for _, b := range branches {
		scratch := state.Clone()
		b.Instructions.Apply(scratch)
		for _, r := range step(scratch) {
			combined := Branch{
				Probability:  b.Probability * r.Probability,
				Instructions: concatSets(b.Instructions, r.Instructions),
			}
			if r.Terminal {
				terminal = append(terminal, combined)
			} else {
				continued = append(continued, combined)
			}
		}
	}
	return
}

// actorSubTree builds one actor's full branch tree for the turn:
// before-move prevention, accuracy, execution, and post-hit effects.
func (g *Generator) actorSubTree(ctx context.Context, state *pokemon.BattleState, actor actorTurn) []Branch {
	if g.Tracer != nil {
		var span trace.Span
		ctx, span = telemetry.StartSpan(ctx, g.Tracer, "turn.actor", state)
		defer span.End()
	}

	switch actor.Choice.Kind {
	case ChoiceSwitch:
		return g.executeSwitch(state, actor)
	case ChoiceNone:
		return []Branch{{Probability: 1.0}}
	}

	p := state.PokemonAt(actor.Pos)
	if p == nil || p.IsFainted() || actor.Choice.MoveIndex < 0 || actor.Choice.MoveIndex >= len(p.Moves) {
		return []Branch{{Probability: 1.0}}
	}
	move := p.Moves[actor.Choice.MoveIndex]

	branches := []Branch{{Probability: 1.0}}
	var terminal []Branch

	for _, step := range []func(*pokemon.BattleState) []stepResult{
		func(s *pokemon.BattleState) []stepResult { return flinchCheck(s, actor) },
		func(s *pokemon.BattleState) []stepResult { return sleepCheck(s, actor) },
		func(s *pokemon.BattleState) []stepResult { return freezeCheck(s, actor, move) },
		func(s *pokemon.BattleState) []stepResult { return paralysisCheck(s, actor) },
		func(s *pokemon.BattleState) []stepResult { return confusionCheck(s, actor) },
		func(s *pokemon.BattleState) []stepResult { return lockCheck(s, actor, move) },
	} {
		var t []Branch
		branches, t = g.runPhase(state, branches, step)
		terminal = append(terminal, t...)
	}

	var t []Branch
	branches, t = g.runPhase(state, branches, func(s *pokemon.BattleState) []stepResult {
		return g.accuracyCheck(s, actor, move)
	})
	terminal = append(terminal, t...)

	execBranches := expand(branches, state, func(s *pokemon.BattleState) []Branch {
		return g.executeMove(s, actor, move)
	})

	terminal = append(terminal, g.scheduleFaintedSwitches(state, execBranches, actor)...)

	if len(terminal) == 0 {
		return []Branch{{Probability: 1.0}}
	}
	return terminal
}

// scheduleFaintedSwitches appends ForceSwitch instructions for every
// position that fainted as a result of this actor's move.
func (g *Generator) scheduleFaintedSwitches(state *pokemon.BattleState, branches []Branch, actor actorTurn) []Branch {
	var out []Branch
	for _, b := range branches {
		scratch := state.Clone()
		b.Instructions.Apply(scratch)

		var extra instruction.Set
		for _, pos := range state.ActivePositions() {
			p := scratch.PokemonAt(pos)
			if p != nil && p.IsFainted() && !p.ForcedSwitch {
				extra = append(extra, &instruction.ForceSwitch{Position: pos})
			}
		}
		out = append(out, Branch{
			Probability:  b.Probability,
			Instructions: concatSets(b.Instructions, extra),
		})
	}
	return out
}

// ---- Before-move prevention checks ----

func flinchCheck(state *pokemon.BattleState, actor actorTurn) []stepResult {
	p := state.PokemonAt(actor.Pos)
	if p == nil || !p.Volatiles.Has(pokemon.VolatileFlinch) {
		return []stepResult{{Probability: 1.0}}
	}
	return []stepResult{{
		Probability:  1.0,
		Instructions: instruction.Set{&instruction.RemoveVolatile{Target: actor.Pos, Kind: pokemon.VolatileFlinch}},
		Terminal:     true,
	}}
}

// wakeProbability is the sleep wake-up chance by remaining duration:
// 100%, 50%, 33% at durations 1, 2, 3.
func wakeProbability(duration int) float64 {
	switch {
	case duration <= 1:
		return 1.0
	case duration == 2:
		return 0.5
	default:
		return 1.0 / 3.0
	}
}

func sleepCheck(state *pokemon.BattleState, actor actorTurn) []stepResult {
	p := state.PokemonAt(actor.Pos)
	if p == nil || p.Status != pokemon.StatusSleep {
		return []stepResult{{Probability: 1.0}}
	}
	wakeChance := wakeProbability(p.StatusDuration)
	wake := stepResult{
		Probability:  wakeChance,
		Instructions: instruction.Set{&instruction.RemoveStatus{Target: actor.Pos}},
	}
	if wakeChance >= 1.0 {
		return []stepResult{wake}
	}
	fail := stepResult{
		Probability:  1 - wakeChance,
		Instructions: instruction.Set{&instruction.SetStatus{Target: actor.Pos, New: pokemon.StatusSleep, NewDuration: p.StatusDuration - 1}},
		Terminal:     true,
	}
	return []stepResult{wake, fail}
}

func freezeCheck(state *pokemon.BattleState, actor actorTurn, move pokemon.Move) []stepResult {
	p := state.PokemonAt(actor.Pos)
	if p == nil || p.Status != pokemon.StatusFreeze {
		return []stepResult{{Probability: 1.0}}
	}
	if move.Type == typechart.Fire || move.Flags.Defrost {
		return []stepResult{{
			Probability:  1.0,
			Instructions: instruction.Set{&instruction.RemoveStatus{Target: actor.Pos}},
		}}
	}
	thaw := stepResult{
		Probability:  0.2,
		Instructions: instruction.Set{&instruction.RemoveStatus{Target: actor.Pos}},
	}
	fail := stepResult{Probability: 0.8, Terminal: true}
	return []stepResult{thaw, fail}
}

func paralysisCheck(state *pokemon.BattleState, actor actorTurn) []stepResult {
	p := state.PokemonAt(actor.Pos)
	if p == nil || p.Status != pokemon.StatusParalysis {
		return []stepResult{{Probability: 1.0}}
	}
	return []stepResult{
		{Probability: 0.75},
		{Probability: 0.25, Terminal: true},
	}
}

func confusionCheck(state *pokemon.BattleState, actor actorTurn) []stepResult {
	p := state.PokemonAt(actor.Pos)
	if p == nil || !p.Volatiles.Has(pokemon.VolatileConfusion) {
		return []stepResult{{Probability: 1.0}}
	}
	vs := p.Volatiles[pokemon.VolatileConfusion]

	var tick instruction.Instruction
	if vs.Duration-1 <= 0 {
		tick = &instruction.RemoveVolatile{Target: actor.Pos, Kind: pokemon.VolatileConfusion}
	} else {
		tick = &instruction.ApplyVolatile{Target: actor.Pos, Kind: pokemon.VolatileConfusion, Duration: vs.Duration - 1, Data: vs.Data}
	}

	hitSelf := stepResult{
		Probability:  1.0 / 3.0,
		Instructions: instruction.Set{tick, &instruction.Damage{Target: actor.Pos, Amount: confusionSelfDamage(p)}},
		Terminal:     true,
	}
	continue_ := stepResult{
		Probability:  2.0 / 3.0,
		Instructions: instruction.Set{tick},
	}
	return []stepResult{hitSelf, continue_}
}

// confusionSelfDamage computes a 40-base-power typeless physical hit
// against self: Attack and Defense come from the same Pokemon, so the
// standard formula's stat ratio uses its own Attack over its own Defense
//.
func confusionSelfDamage(p *pokemon.Pokemon) int {
	attack := p.StatValue(pokemon.Attack)
	defense := p.StatValue(pokemon.Defense)
	if defense <= 0 {
		defense = 1
	}
	base := (((2*float64(p.Level)/5+2)*40*float64(attack)/float64(defense))/50 + 2)
	dmg := int(base)
	if dmg < 1 {
		dmg = 1
	}
	if dmg >= p.CurrentHP {
		dmg = p.CurrentHP - 1
	}
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}

func lockCheck(state *pokemon.BattleState, actor actorTurn, move pokemon.Move) []stepResult {
	p := state.PokemonAt(actor.Pos)
	if p == nil {
		return []stepResult{{Probability: 1.0}}
	}
	if p.Volatiles.Has(pokemon.VolatileTaunt) && move.Category == pokemon.CategoryStatus {
		return []stepResult{{Probability: 1.0, Terminal: true}}
	}
	if vs, ok := p.Volatiles[pokemon.VolatileDisable]; ok && vs.Data == actor.Choice.MoveIndex {
		return []stepResult{{Probability: 1.0, Terminal: true}}
	}
	if p.Volatiles.Has(pokemon.VolatileTorment) && move.ID == p.LastUsedMove {
		return []stepResult{{Probability: 1.0, Terminal: true}}
	}
	return []stepResult{{Probability: 1.0}}
}

// ---- Accuracy ----

func (g *Generator) accuracyCheck(state *pokemon.BattleState, actor actorTurn, move pokemon.Move) []stepResult {
	if move.Accuracy <= 0 || len(actor.Choice.Targets) == 0 {
		return []stepResult{{Probability: 1.0}}
	}
	attacker := state.PokemonAt(actor.Pos)
	defender := state.PokemonAt(actor.Choice.Targets[0])
	if attacker == nil || defender == nil {
		return []stepResult{{Probability: 1.0}}
	}

	combinedStage := pokemon.Clamp(int(attacker.Stages.Get(pokemon.StageAccuracy)) - int(defender.Stages.Get(pokemon.StageEvasion)))
	num, den := g.Gen.AccuracyStageMultiplier(combinedStage)
	chance := float64(move.Accuracy) / 100.0 * float64(num) / float64(den)
	if chance > 1.0 {
		chance = 1.0
	}
	if chance < 0 {
		chance = 0
	}
	if chance >= 1.0 {
		return []stepResult{{Probability: 1.0}}
	}
	return []stepResult{
		{Probability: chance},
		{Probability: 1 - chance, Terminal: true, Instructions: instruction.Set{&instruction.Message{Text: move.Name + " missed!"}}},
	}
}

// ---- Execution ----

func (g *Generator) executeMove(state *pokemon.BattleState, actor actorTurn, move pokemon.Move) []Branch {
	if move.Category == pokemon.CategoryStatus {
		return g.executeStatusMove(state, actor, move)
	}
	return g.executeDamageMove(state, actor, move)
}

func (g *Generator) damageContext(state *pokemon.BattleState, attacker *pokemon.Pokemon, attackerPos battleformat.Position, defender *pokemon.Pokemon, defenderPos battleformat.Position, move pokemon.Move, targetCount int) *damage.Context {
	return &damage.Context{
		Generation:  g.Gen,
		Attacker:    attacker,
		AttackerPos: attackerPos,
		Defender:    defender,
		DefenderPos: defenderPos,
		Move:        move,
		Field:       state.Field,
		TargetCount: targetCount,
	}
}

// executeDamageMove builds the crit/roll branch set for a damaging move
// and folds in post-hit effects. Spread moves
// collapse to a single deterministic roll per target rather than
// branching crit/roll per target independently, to avoid an exponential
// branch count across every hit target (documented in DESIGN.md).
func (g *Generator) executeDamageMove(state *pokemon.BattleState, actor actorTurn, move pokemon.Move) []Branch {
	attacker := state.PokemonAt(actor.Pos)
	targets := actor.Choice.Targets
	if attacker == nil || len(targets) == 0 {
		return []Branch{{Probability: 1.0}}
	}

	spread := move.Target.IsSpreadCapable() && len(targets) > 1
	if spread {
		var instrs instruction.Set
		hitSub := make(map[battleformat.Position]bool, len(targets))
		for _, tgt := range targets {
			defender := state.PokemonAt(tgt)
			if defender == nil || defender.IsFainted() {
				continue
			}
			ctx := g.damageContext(state, attacker, actor.Pos, defender, tgt, move, len(targets))
			branch := damage.CalculateDeterministic(ctx, false, damage.RollAverage)
			if branch.Damage > 0 {
				instrs = append(instrs, g.hitInstruction(attacker, defender, tgt, move, branch.Damage))
				hitSub[tgt] = hitsSubstitute(g.Gen, attacker, defender, move)
			}
		}
		return g.appendPostHit(state, actor, move, targets, []Branch{{Probability: 1.0, Instructions: instrs}}, hitSub)
	}

	defenderPos := targets[0]
	defender := state.PokemonAt(defenderPos)
	if defender == nil || defender.IsFainted() {
		return []Branch{{Probability: 1.0}}
	}
	ctx := g.damageContext(state, attacker, actor.Pos, defender, defenderPos, move, 1)
	critProb := mechanics.CritProbability(attacker, move, g.Gen)

	var dmgBranches []damage.Branch
	switch g.Policy {
	case Full:
		dmgBranches = damage.Calculate(ctx, critProb)
	case RollsOnly:
		dmgBranches = damage.Calculate(ctx, 0)
	case CritsOnly:
		nonCrit := damage.CalculateDeterministic(ctx, false, damage.RollAverage)
		dmgBranches = []damage.Branch{{Damage: nonCrit.Damage, Probability: 1 - critProb, Effectiveness: nonCrit.Effectiveness}}
		if critProb > 0 {
			crit := damage.CalculateDeterministic(ctx, true, damage.RollAverage)
			dmgBranches = append(dmgBranches, damage.Branch{Damage: crit.Damage, Probability: critProb, IsCritical: true, Effectiveness: crit.Effectiveness})
		}
	default: // Deterministic
		single := damage.CalculateDeterministic(ctx, false, damage.RollAverage)
		dmgBranches = []damage.Branch{{Damage: single.Damage, Probability: 1.0, Effectiveness: single.Effectiveness}}
	}

	onSub := hitsSubstitute(g.Gen, attacker, defender, move)
	var branches []Branch
	for _, db := range dmgBranches {
		var instrs instruction.Set
		if db.Damage > 0 {
			instrs = append(instrs, g.hitInstruction(attacker, defender, defenderPos, move, db.Damage))
		}
		branches = append(branches, Branch{Probability: db.Probability, Instructions: instrs})
	}
	hitSub := map[battleformat.Position]bool{defenderPos: onSub}
	return g.appendPostHit(state, actor, move, targets, branches, hitSub)
}

// hitsSubstitute reports whether a hit against defender is absorbed by its
// Substitute rather than its HP: self-targeting moves,
// Authentic-flagged moves, Sound moves from gen 6 onward, and Infiltrator
// users all bypass it.
func hitsSubstitute(gen mechanics.Generation, attacker, defender *pokemon.Pokemon, move pokemon.Move) bool {
	if !defender.Volatiles.Has(pokemon.VolatileSubstitute) || defender.SubstituteHP <= 0 {
		return false
	}
	if move.Target == pokemon.TargetSelf || move.Flags.Authentic {
		return false
	}
	if move.Flags.Sound && gen != nil && gen.Number() >= 6 {
		return false
	}
	if attacker != nil && attacker.Ability.ID == "infiltrator" {
		return false
	}
	return true
}

// hitInstruction builds the damage instruction for one hit, routing it into
// the defender's Substitute instead of its HP when hitsSubstitute applies.
func (g *Generator) hitInstruction(attacker, defender *pokemon.Pokemon, target battleformat.Position, move pokemon.Move, amount int) instruction.Instruction {
	if hitsSubstitute(g.Gen, attacker, defender, move) {
		return &instruction.SubstituteDamage{Target: target, Amount: amount}
	}
	return &instruction.Damage{Target: target, Amount: amount}
}

// appendPostHit computes the damage actually dealt to the primary target
// in each branch and folds in contact effects, recoil, and drain. hitSub
// records, per target, whether the hit landed on a Substitute rather than
// HP — contact and secondary effects never fire for those hits, even the
// hit that depletes the substitute's HP to 0.
func (g *Generator) appendPostHit(state *pokemon.BattleState, actor actorTurn, move pokemon.Move, targets []battleformat.Position, branches []Branch, hitSub map[battleformat.Position]bool) []Branch {
	var out []Branch
	for _, b := range branches {
		scratch := state.Clone()
		b.Instructions.Apply(scratch)

		primary := targets[0]
		damageDealt := 0
		if orig := state.PokemonAt(primary); orig != nil {
			if after := scratch.PokemonAt(primary); after != nil {
				damageDealt = orig.CurrentHP - after.CurrentHP
			}
		}

		for _, p := range g.postHitBranches(scratch, actor, move, primary, damageDealt, hitSub[primary]) {
			out = append(out, Branch{
				Probability:  b.Probability * p.Probability,
				Instructions: concatSets(b.Instructions, p.Instructions),
			})
		}
	}
	return out
}

func (g *Generator) postHitBranches(state *pokemon.BattleState, actor actorTurn, move pokemon.Move, targetPos battleformat.Position, damageDealt int, blockedBySub bool) []Branch {
	branches := []Branch{{Probability: 1.0}}

	if instr := field.RecoilDamage(actor.Pos, damageDealt, move.RecoilPct); instr != nil {
		branches = applyDeterministic(branches, instr)
	}
	if instr := field.DrainHeal(actor.Pos, damageDealt, move.Drain); instr != nil {
		branches = applyDeterministic(branches, instr)
	}

	if blockedBySub {
		return branches
	}

	for _, c := range field.ContactEffects(state, move, actor.Pos, targetPos, damageDealt) {
		branches = branchOnChance(branches, c.Instruction, c.Chance/100.0)
	}

	for _, sec := range move.Secondary {
		branches = secondaryEffectBranches(state, branches, actor, targetPos, sec)
	}

	return branches
}

func applyDeterministic(branches []Branch, instrs ...instruction.Instruction) []Branch {
	for i := range branches {
		branches[i].Instructions = concatSets(branches[i].Instructions, instruction.Set(instrs))
	}
	return branches
}

func branchOnChance(branches []Branch, instr instruction.Instruction, chance float64) []Branch {
	if instr == nil || chance <= 0 {
		return branches
	}
	if chance >= 1.0 {
		return applyDeterministic(branches, instr)
	}
	var out []Branch
	for _, b := range branches {
		out = append(out,
			Branch{Probability: b.Probability * chance, Instructions: concatSets(b.Instructions, instruction.Set{instr})},
			Branch{Probability: b.Probability * (1 - chance), Instructions: b.Instructions},
		)
	}
	return out
}

// secondaryEffectBranches applies one of a move's secondary effects,
// gated on its own independent chance. BoostTarget selects
// whether the effect lands on the move's target (true) or the user
// (false); a zero VolatileDur means the effect carries no volatile
// component.
func secondaryEffectBranches(state *pokemon.BattleState, branches []Branch, actor actorTurn, targetPos battleformat.Position, sec pokemon.SecondaryEffect) []Branch {
	chance := float64(sec.Chance) / 100.0
	if chance <= 0 {
		return branches
	}
	dest := targetPos
	if !sec.BoostTarget {
		dest = actor.Pos
	}

	var instr instruction.Instruction
	switch {
	case sec.Status != pokemon.StatusNone:
		if built, reason := status.Apply(state, status.Application{Status: sec.Status, Target: dest, Chance: float64(sec.Chance)}); reason == status.FailureNone {
			instr = built
		}
	case sec.VolatileDur > 0:
		data := 0
		if sec.Volatile == pokemon.VolatileLeechSeed || sec.Volatile == pokemon.VolatileBind {
			data = encodePosition(actor.Pos) // residuals.go reads this back to route drain/damage to the source
		}
		if built, reason := status.ApplyVolatile(state, status.VolatileApplication{Status: sec.Volatile, Target: dest, Duration: sec.VolatileDur, Data: data}); reason == status.FailureNone {
			instr = built
		}
	case len(sec.Boosts) > 0:
		instr = &instruction.BoostStats{Target: dest, Delta: sec.Boosts}
	case sec.Flinch:
		instr = &instruction.ApplyVolatile{Target: dest, Kind: pokemon.VolatileFlinch, Duration: 1}
	}
	return branchOnChance(branches, instr, chance)
}

// ---- Status / field moves ----

func (g *Generator) executeStatusMove(state *pokemon.BattleState, actor actorTurn, move pokemon.Move) []Branch {
	targets := actor.Choice.Targets
	if len(targets) == 0 {
		targets = []battleformat.Position{actor.Pos}
	}

	branches := []Branch{{Probability: 1.0}}
	for _, tgt := range targets {
		for _, sec := range move.Secondary {
			branches = secondaryEffectBranches(state, branches, actor, tgt, sec)
		}
	}

	if fieldInstrs := g.fieldMoveInstructions(state, actor, move); len(fieldInstrs) > 0 {
		branches = applyDeterministic(branches, fieldInstrs...)
	}
	return branches
}

// fieldMoveInstructions dispatches field-effect moves (hazards, weather,
// terrain, screens, hazard removal) by their scripted effect id.
func (g *Generator) fieldMoveInstructions(state *pokemon.BattleState, actor actorTurn, move pokemon.Move) []instruction.Instruction {
	foeSide := actor.Pos.Side.Opponent()
	switch move.ScriptedEffectID {
	case "stealthrock":
		return g.applySideCondition(state, foeSide, pokemon.SideStealthRock)
	case "spikes":
		return g.applySideCondition(state, foeSide, pokemon.SideSpikes)
	case "toxicspikes":
		return g.applySideCondition(state, foeSide, pokemon.SideToxicSpikes)
	case "stickyweb":
		return g.applySideCondition(state, foeSide, pokemon.SideStickyWeb)
	case "reflect":
		return g.applySideCondition(state, actor.Pos.Side, pokemon.SideReflect)
	case "lightscreen":
		return g.applySideCondition(state, actor.Pos.Side, pokemon.SideLightScreen)
	case "auroraveil":
		return g.applySideCondition(state, actor.Pos.Side, pokemon.SideAuroraVeil)
	case "rapidspin":
		return field.RapidSpin(state, actor.Pos.Side)
	case "defog":
		return field.Defog(state, actor.Pos.Side)
	case "tidyup":
		return field.TidyUp(state)
	case "raindance":
		return []instruction.Instruction{field.SetWeather(state, pokemon.WeatherRain, actor.Pos)}
	case "sunnyday":
		return []instruction.Instruction{field.SetWeather(state, pokemon.WeatherSun, actor.Pos)}
	case "sandstorm":
		return []instruction.Instruction{field.SetWeather(state, pokemon.WeatherSand, actor.Pos)}
	case "hail":
		return []instruction.Instruction{field.SetWeather(state, pokemon.WeatherHail, actor.Pos)}
	case "electricterrain":
		return []instruction.Instruction{field.SetTerrain(state, pokemon.TerrainElectric, actor.Pos)}
	case "grassyterrain":
		return []instruction.Instruction{field.SetTerrain(state, pokemon.TerrainGrassy, actor.Pos)}
	case "mistyterrain":
		return []instruction.Instruction{field.SetTerrain(state, pokemon.TerrainMisty, actor.Pos)}
	case "psychicterrain":
		return []instruction.Instruction{field.SetTerrain(state, pokemon.TerrainPsychic, actor.Pos)}
	default:
		return nil
	}
}

func (g *Generator) applySideCondition(state *pokemon.BattleState, side battleformat.Side, cond pokemon.SideCondition) []instruction.Instruction {
	if !field.CanApplySideCondition(state, side, cond) {
		return nil
	}
	return []instruction.Instruction{&instruction.ApplySideCondition{Side: side, Condition: cond, Duration: sideConditionDuration(cond)}}
}

// sideConditionDuration is the number of turns a screen lasts before
// natural expiry (Light Clay's extension is not modeled here; see
// DESIGN.md). Entry hazards carry no duration — they persist until
// removed by Rapid Spin/Defog/Tidy Up or a side switches out entirely.
func sideConditionDuration(cond pokemon.SideCondition) int {
	switch cond {
	case pokemon.SideReflect, pokemon.SideLightScreen, pokemon.SideAuroraVeil:
		return 5
	default:
		return 0
	}
}

// ---- Switching ----

func (g *Generator) executeSwitch(state *pokemon.BattleState, actor actorTurn) []Branch {
	instrs := instruction.Set{&instruction.Switch{Position: actor.Pos, NextIndex: actor.Choice.ReserveSlot}}

	scratch := state.Clone()
	instrs.Apply(scratch)
	instrs = append(instrs, field.EntryHazards(scratch, actor.Pos, g.Gen)...)

	return []Branch{{Probability: 1.0, Instructions: instrs}}
}
