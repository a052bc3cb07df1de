package turnengine

import (
	"context"
	"math"
	"testing"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/mechanics"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

func posOne() battleformat.Position { return battleformat.Position{Side: battleformat.SideOne, Slot: 0} }
func posTwo() battleformat.Position { return battleformat.Position{Side: battleformat.SideTwo, Slot: 0} }

func tackle() pokemon.Move {
	return pokemon.Move{
		ID: "tackle", Name: "Tackle", Type: typechart.Normal, Category: pokemon.CategoryPhysical,
		BasePower: 40, Accuracy: 100, MaxPP: 35, PP: 35, Target: pokemon.TargetNormal,
	}
}

func thunderWave() pokemon.Move {
	return pokemon.Move{
		ID: "thunderwave", Name: "Thunder Wave", Type: typechart.Electric, Category: pokemon.CategoryStatus,
		Accuracy: 90, MaxPP: 20, PP: 20, Target: pokemon.TargetNormal,
		Secondary: []pokemon.SecondaryEffect{{Chance: 100, Status: pokemon.StatusParalysis, BoostTarget: true}},
	}
}

func newTestState(moves ...pokemon.Move) *pokemon.BattleState {
	format := battleformat.New(9, battleformat.Singles, 3)
	one := &pokemon.Pokemon{
		Species: "Garchomp", Level: 50, CurrentHP: 180, MaxHP: 180,
		Types: []typechart.Type{typechart.Dragon, typechart.Ground},
		Base:  pokemon.BaseStats{180, 130, 95, 80, 85, 102},
		Computed: pokemon.ComputedStats{180, 130, 95, 80, 85, 102},
		Moves: moves,
	}
	two := &pokemon.Pokemon{
		Species: "Skarmory", Level: 50, CurrentHP: 160, MaxHP: 160,
		Types: []typechart.Type{typechart.Steel, typechart.Flying},
		Base:  pokemon.BaseStats{160, 90, 140, 55, 95, 70},
		Computed: pokemon.ComputedStats{160, 90, 140, 55, 95, 70},
		Moves: []pokemon.Move{tackle()},
	}
	state := pokemon.New(format, []*pokemon.Pokemon{one}, []*pokemon.Pokemon{two})
	state.One.SwitchIn(0, 0)
	state.Two.SwitchIn(0, 0)
	return state
}

func sumProbabilities(branches []Branch) float64 {
	total := 0.0
	for _, b := range branches {
		total += b.Probability
	}
	return total
}

func TestGenerateTurnBranchProbabilitiesSumToOne(t *testing.T) {
	state := newTestState(tackle())
	gen := NewGenerator(state.Format, Full, nil, nil)
	branches := gen.GenerateTurn(context.Background(), state, Choice{Kind: ChoiceMove, MoveIndex: 0}, Choice{Kind: ChoiceMove, MoveIndex: 0})
	if len(branches) == 0 {
		t.Fatal("expected at least one branch")
	}
	if total := sumProbabilities(branches); math.Abs(total-1.0) > 1e-4 {
		t.Fatalf("expected branch probabilities to sum to 1.0, got %v", total)
	}
}

func TestGenerateTurnDeterministicPolicyCollapsesToSingleDamageBranch(t *testing.T) {
	state := newTestState(tackle())
	gen := NewGenerator(state.Format, Deterministic, nil, nil)
	branches := gen.GenerateTurn(context.Background(), state, Choice{Kind: ChoiceMove, MoveIndex: 0}, Choice{Kind: ChoiceNone})
	if len(branches) != 1 {
		t.Fatalf("expected exactly one deterministic branch, got %d", len(branches))
	}
	if math.Abs(branches[0].Probability-1.0) > 1e-9 {
		t.Fatalf("expected probability 1.0, got %v", branches[0].Probability)
	}
}

func TestGenerateTurnStatusMoveAppliesParalysis(t *testing.T) {
	state := newTestState(thunderWave())
	gen := NewGenerator(state.Format, Deterministic, nil, nil)
	branches := gen.GenerateTurn(context.Background(), state, Choice{Kind: ChoiceMove, MoveIndex: 0}, Choice{Kind: ChoiceNone})
	if len(branches) != 1 {
		t.Fatalf("expected one branch, got %d", len(branches))
	}
	scratch := state.Clone()
	branches[0].Instructions.Apply(scratch)
	if scratch.PokemonAt(posTwo()).Status != pokemon.StatusParalysis {
		t.Fatalf("expected target to be paralyzed, got status %v", scratch.PokemonAt(posTwo()).Status)
	}
}

func TestDetermineOrderHigherPriorityActsFirst(t *testing.T) {
	state := newTestState(tackle())
	quickAttack := tackle()
	quickAttack.ID = "quickattack"
	quickAttack.Priority = 1
	one := actorTurn{Pos: posOne(), Choice: Choice{Kind: ChoiceMove, MoveIndex: 0}}
	two := actorTurn{Pos: posTwo(), Choice: Choice{Kind: ChoiceMove, MoveIndex: 0}}

	state.PokemonAt(posOne()).Moves = []pokemon.Move{quickAttack}
	orders := determineOrder(state, nil, one, two)
	if len(orders) != 1 || orders[0].First.Pos != posOne() {
		t.Fatalf("expected SideOne (priority move) to act first, got %+v", orders)
	}
}

func TestDetermineOrderSpeedTieSplitsIntoTwoBranches(t *testing.T) {
	state := newTestState(tackle())
	state.PokemonAt(posOne()).Computed[pokemon.Speed] = 100
	state.PokemonAt(posTwo()).Computed[pokemon.Speed] = 100
	one := actorTurn{Pos: posOne(), Choice: Choice{Kind: ChoiceMove, MoveIndex: 0}}
	two := actorTurn{Pos: posTwo(), Choice: Choice{Kind: ChoiceMove, MoveIndex: 0}}

	orders := determineOrder(state, nil, one, two)
	if len(orders) != 2 {
		t.Fatalf("expected a speed tie to split into 2 branches, got %d", len(orders))
	}
	if math.Abs(orders[0].Probability-0.5) > 1e-9 || math.Abs(orders[1].Probability-0.5) > 1e-9 {
		t.Fatalf("expected a 50/50 split, got %+v", orders)
	}
}

func TestDetermineOrderSwitchAlwaysPrecedesMove(t *testing.T) {
	state := newTestState(tackle())
	one := actorTurn{Pos: posOne(), Choice: Choice{Kind: ChoiceSwitch, ReserveSlot: 1}}
	two := actorTurn{Pos: posTwo(), Choice: Choice{Kind: ChoiceMove, MoveIndex: 0}}

	orders := determineOrder(state, nil, one, two)
	if len(orders) != 1 || orders[0].First.Choice.Kind != ChoiceSwitch {
		t.Fatalf("expected the switch to act first regardless of speed, got %+v", orders)
	}
}

func TestAccuracyCheckAlwaysHitsAtFullAccuracyNoStages(t *testing.T) {
	state := newTestState(tackle())
	move := tackle()
	move.Accuracy = 100
	g := &Generator{Gen: mechanics.Gen9{}}
	results := g.accuracyCheck(state, actorTurn{Pos: posOne(), Choice: Choice{Kind: ChoiceMove, MoveIndex: 0, Targets: []battleformat.Position{posTwo()}}}, move)
	if len(results) != 1 || results[0].Probability != 1.0 {
		t.Fatalf("expected a guaranteed hit at 100%% accuracy with no stage changes, got %+v", results)
	}
}

func TestConfusionSelfDamageNeverExceedsCurrentHPMinusOne(t *testing.T) {
	p := &pokemon.Pokemon{CurrentHP: 1, MaxHP: 180, Level: 50, Computed: pokemon.ComputedStats{180, 130, 95, 80, 85, 102}}
	dmg := confusionSelfDamage(p)
	if dmg != 0 {
		t.Fatalf("expected a Pokemon at 1 HP to take 0 confusion damage (can't faint from it), got %d", dmg)
	}
}

func TestWakeProbabilityByDuration(t *testing.T) {
	cases := map[int]float64{1: 1.0, 2: 0.5, 3: 1.0 / 3.0}
	for duration, want := range cases {
		if got := wakeProbability(duration); math.Abs(got-want) > 1e-9 {
			t.Fatalf("duration %d: expected wake probability %v, got %v", duration, want, got)
		}
	}
}
