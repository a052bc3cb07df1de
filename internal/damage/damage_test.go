package damage

import (
	"math"
	"testing"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/mechanics"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

func baseContext() *Context {
	attacker := &pokemon.Pokemon{
		Species:  "Charizard",
		Level:    50,
		Computed: pokemon.ComputedStats{pokemon.HP: 150, pokemon.Attack: 100, pokemon.Defense: 90, pokemon.SpAttack: 120, pokemon.SpDefense: 95, pokemon.Speed: 110},
		Types:    []typechart.Type{typechart.Fire, typechart.Flying},
	}
	defender := &pokemon.Pokemon{
		Species:   "Venusaur",
		Level:     50,
		CurrentHP: 160,
		MaxHP:     160,
		Computed:  pokemon.ComputedStats{pokemon.HP: 160, pokemon.Attack: 85, pokemon.Defense: 90, pokemon.SpAttack: 100, pokemon.SpDefense: 100, pokemon.Speed: 80},
		Types:     []typechart.Type{typechart.Grass, typechart.Poison},
	}
	move := pokemon.Move{ID: "flamethrower", Type: typechart.Fire, Category: pokemon.CategorySpecial, BasePower: 90, Target: pokemon.TargetNormal}

	return &Context{
		Generation:  mechanics.Gen9{},
		Attacker:    attacker,
		AttackerPos: battleformat.Position{Side: battleformat.SideOne, Slot: 0},
		Defender:    defender,
		DefenderPos: battleformat.Position{Side: battleformat.SideTwo, Slot: 0},
		Move:        move,
		Field:       pokemon.NewField(),
		TargetCount: 1,
	}
}

func TestImmunityShortCircuitsPipeline(t *testing.T) {
	ctx := baseContext()
	ctx.Move.Type = typechart.Normal
	ctx.Defender.Types = []typechart.Type{typechart.Ghost}

	Run(ctx, DefaultPipeline)
	if !ctx.Immune {
		t.Fatal("expected Normal-vs-Ghost to be immune")
	}
	if ctx.BaseDamage != 0 {
		t.Fatalf("expected BaseDamage 0 on immunity, got %v", ctx.BaseDamage)
	}
}

func TestSTABAppliesToMatchingType(t *testing.T) {
	ctx := baseContext() // Fire move, Charizard has Fire type
	Run(ctx, DefaultPipeline)
	if ctx.STABMultiplier != 1.5 {
		t.Fatalf("got STAB %v, want 1.5", ctx.STABMultiplier)
	}
}

func TestSTABAbsentWithoutMatchingType(t *testing.T) {
	ctx := baseContext()
	ctx.Move.Type = typechart.Ice // Charizard is Fire/Flying, no Ice STAB
	Run(ctx, DefaultPipeline)
	if ctx.STABMultiplier != 1.0 {
		t.Fatalf("got STAB %v, want 1.0", ctx.STABMultiplier)
	}
}

func TestTerastallizedBonusSTAB(t *testing.T) {
	ctx := baseContext()
	ctx.Attacker.Terastallized = true
	ctx.Attacker.TeraType = typechart.Fire
	ctx.Attacker.OriginalTypes = []typechart.Type{typechart.Fire, typechart.Flying}
	Run(ctx, DefaultPipeline)
	if ctx.STABMultiplier != 2.0 {
		t.Fatalf("got bonus STAB %v, want 2.0 (tera type matches an original type)", ctx.STABMultiplier)
	}
}

func TestBurnHalvesPhysicalDamage(t *testing.T) {
	normal := baseContext()
	normal.Move.Category = pokemon.CategoryPhysical
	normal.Move.Type = typechart.Normal
	Run(normal, DefaultPipeline)

	burned := baseContext()
	burned.Move.Category = pokemon.CategoryPhysical
	burned.Move.Type = typechart.Normal
	burned.Attacker.Status = pokemon.StatusBurn
	Run(burned, DefaultPipeline)

	if burned.BaseDamage >= normal.BaseDamage {
		t.Fatalf("burned damage %v should be less than normal damage %v", burned.BaseDamage, normal.BaseDamage)
	}
}

func TestBurnDoesNotAffectSpecialMoves(t *testing.T) {
	normal := baseContext() // Fire/Special
	Run(normal, DefaultPipeline)

	burned := baseContext()
	burned.Attacker.Status = pokemon.StatusBurn
	Run(burned, DefaultPipeline)

	if burned.BaseDamage != normal.BaseDamage {
		t.Fatalf("burn should not affect special move damage: got %v vs %v", burned.BaseDamage, normal.BaseDamage)
	}
}

func TestWeatherBoostsMatchingType(t *testing.T) {
	ctx := baseContext()
	ctx.Field.Weather.Kind = pokemon.WeatherSun
	withSun := *ctx
	Run(&withSun, DefaultPipeline)

	noWeather := baseContext()
	Run(noWeather, DefaultPipeline)

	if withSun.BaseDamage <= noWeather.BaseDamage {
		t.Fatalf("expected Sun to boost Fire move: got %v vs %v", withSun.BaseDamage, noWeather.BaseDamage)
	}
}

func TestHeavyRainNegatesFireMoves(t *testing.T) {
	ctx := baseContext()
	ctx.Field.Weather.Kind = pokemon.WeatherHeavyRain
	Run(ctx, DefaultPipeline)
	if !ctx.Immune {
		t.Fatal("expected Heavy Rain to negate Fire moves entirely")
	}
}

func TestSpreadReductionAppliesOnlyToSpreadMoves(t *testing.T) {
	single := baseContext()
	single.Move.Target = pokemon.TargetAllAdjacentFoes
	single.TargetCount = 1
	Run(single, DefaultPipeline)

	spread := baseContext()
	spread.Move.Target = pokemon.TargetAllAdjacentFoes
	spread.TargetCount = 2
	Run(spread, DefaultPipeline)

	if spread.BaseDamage >= single.BaseDamage {
		t.Fatalf("expected spread reduction: single=%v spread=%v", single.BaseDamage, spread.BaseDamage)
	}
}

func TestCriticalHitBoostsDamage(t *testing.T) {
	normal := baseContext()
	Run(normal, DefaultPipeline)

	crit := baseContext()
	crit.IsCritical = true
	Run(crit, DefaultPipeline)

	if crit.BaseDamage <= normal.BaseDamage {
		t.Fatalf("expected crit damage %v > normal damage %v", crit.BaseDamage, normal.BaseDamage)
	}
}

func TestEnumerateRollsProbabilitiesSumToOne(t *testing.T) {
	ctx := baseContext()
	Run(ctx, DefaultPipeline)
	outcomes := EnumerateRolls(ctx)
	sum := 0.0
	for _, o := range outcomes {
		sum += o.Probability
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("roll probabilities sum to %v, want 1.0", sum)
	}
}

func TestCalculateBranchesProbabilitiesSumToOne(t *testing.T) {
	ctx := baseContext()
	branches := Calculate(ctx, 0.1)
	sum := 0.0
	for _, b := range branches {
		sum += b.Probability
	}
	if math.Abs(sum-1.0) > 1e-4 {
		t.Fatalf("branch probabilities sum to %v, want ~1.0", sum)
	}
}

func TestEnumerateRollsMonotonicallyIncreasing(t *testing.T) {
	ctx := baseContext()
	Run(ctx, DefaultPipeline)
	outcomes := EnumerateRolls(ctx)
	for i := 1; i < len(outcomes); i++ {
		if outcomes[i].Damage < outcomes[i-1].Damage {
			t.Fatalf("rolls not ascending at index %d: %d < %d", i, outcomes[i].Damage, outcomes[i-1].Damage)
		}
	}
}

func TestEnumerateRollsEnforcesMinimumOneDamage(t *testing.T) {
	ctx := baseContext()
	ctx.Move.BasePower = 1
	ctx.Attacker.Level = 1
	Run(ctx, DefaultPipeline)
	for _, o := range EnumerateRolls(ctx) {
		if ctx.BaseDamage > 0 && o.Damage < 1 {
			t.Fatalf("expected minimum 1 damage when base damage is nonzero, got %d", o.Damage)
		}
	}
}

func TestCollapseRollMinLessThanMax(t *testing.T) {
	ctx := baseContext()
	Run(ctx, DefaultPipeline)
	min := CollapseRoll(ctx, RollMin)
	max := CollapseRoll(ctx, RollMax)
	if min > max {
		t.Fatalf("min roll %d should not exceed max roll %d", min, max)
	}
}

func TestGen1DamageUsesNarrowerRollRange(t *testing.T) {
	ctx := baseContext()
	ctx.Generation = mechanics.Gen1{}
	Run(ctx, DefaultPipeline)
	outcomes := EnumerateRolls(ctx)
	if len(outcomes) != 3 {
		t.Fatalf("Gen1 should expose 3 roll points (min/avg/max), got %d", len(outcomes))
	}
}
