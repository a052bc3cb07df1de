package instruction

import (
	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/pokemon"
)

// SetWeather changes the active field weather.
type SetWeather struct {
	New      pokemon.Weather
	Duration int
	Source   battleformat.Position
	Prev     pokemon.WeatherState
}

func (i *SetWeather) Positions() []battleformat.Position { return nil }
func (i *SetWeather) Undoable() bool                     { return true }

func (i *SetWeather) Apply(state *pokemon.BattleState) {
	i.Prev = state.Field.Weather
	state.Field.Weather = pokemon.WeatherState{
		Kind:           i.New,
		RemainingTurns: i.Duration,
		Source:         i.Source,
	}
}

func (i *SetWeather) Undo(state *pokemon.BattleState) {
	state.Field.Weather = i.Prev
}

// SetTerrain changes the active field terrain.
type SetTerrain struct {
	New      pokemon.Terrain
	Duration int
	Source   battleformat.Position
	Prev     pokemon.TerrainState
}

func (i *SetTerrain) Positions() []battleformat.Position { return nil }
func (i *SetTerrain) Undoable() bool                     { return true }

func (i *SetTerrain) Apply(state *pokemon.BattleState) {
	i.Prev = state.Field.Terrain
	state.Field.Terrain = pokemon.TerrainState{
		Kind:           i.New,
		RemainingTurns: i.Duration,
		Source:         i.Source,
	}
}

func (i *SetTerrain) Undo(state *pokemon.BattleState) {
	state.Field.Terrain = i.Prev
}

// ToggleTrickRoom flips Trick Room on/off, recording the previous turn
// counter for undo.
type ToggleTrickRoom struct {
	NewTurns int
	Prev     int
}

func (i *ToggleTrickRoom) Positions() []battleformat.Position { return nil }
func (i *ToggleTrickRoom) Undoable() bool                     { return true }

func (i *ToggleTrickRoom) Apply(state *pokemon.BattleState) {
	i.Prev = state.Field.TrickRoomTurns
	state.Field.TrickRoomTurns = i.NewTurns
}

func (i *ToggleTrickRoom) Undo(state *pokemon.BattleState) {
	state.Field.TrickRoomTurns = i.Prev
}

// ToggleGravity flips Gravity on/off, recording the previous turn counter
// for undo.
type ToggleGravity struct {
	NewTurns int
	Prev     int
}

func (i *ToggleGravity) Positions() []battleformat.Position { return nil }
func (i *ToggleGravity) Undoable() bool                     { return true }

func (i *ToggleGravity) Apply(state *pokemon.BattleState) {
	i.Prev = state.Field.GravityTurns
	state.Field.GravityTurns = i.NewTurns
}

func (i *ToggleGravity) Undo(state *pokemon.BattleState) {
	state.Field.GravityTurns = i.Prev
}

// ApplySideCondition adds (or stacks) a side-wide condition such as Spikes
// or Reflect, clamped to its MaxLayers.
type ApplySideCondition struct {
	Side       battleformat.Side
	Condition  pokemon.SideCondition
	Duration   int
	PrevState  pokemon.SideConditionState
	PrevExists bool
}

func (i *ApplySideCondition) Positions() []battleformat.Position { return nil }
func (i *ApplySideCondition) Undoable() bool                     { return true }

func (i *ApplySideCondition) Apply(state *pokemon.BattleState) {
	side := state.Side(i.Side)
	prev, exists := side.Conditions[i.Condition]
	i.PrevState = prev
	i.PrevExists = exists
	layers := prev.Layers + 1
	if max := i.Condition.MaxLayers(); layers > max {
		layers = max
	}
	side.Conditions[i.Condition] = pokemon.SideConditionState{
		Layers:         layers,
		RemainingTurns: i.Duration,
	}
}

func (i *ApplySideCondition) Undo(state *pokemon.BattleState) {
	side := state.Side(i.Side)
	if i.PrevExists {
		side.Conditions[i.Condition] = i.PrevState
	} else {
		delete(side.Conditions, i.Condition)
	}
}

// RemoveSideCondition clears a side-wide condition entirely (Rapid Spin,
// Defog, Tidy Up, Court Change, or natural expiry).
type RemoveSideCondition struct {
	Side       battleformat.Side
	Condition  pokemon.SideCondition
	PrevState  pokemon.SideConditionState
	PrevExists bool
}

func (i *RemoveSideCondition) Positions() []battleformat.Position { return nil }
func (i *RemoveSideCondition) Undoable() bool                     { return true }

func (i *RemoveSideCondition) Apply(state *pokemon.BattleState) {
	side := state.Side(i.Side)
	prev, exists := side.Conditions[i.Condition]
	i.PrevState = prev
	i.PrevExists = exists
	delete(side.Conditions, i.Condition)
}

func (i *RemoveSideCondition) Undo(state *pokemon.BattleState) {
	side := state.Side(i.Side)
	if i.PrevExists {
		side.Conditions[i.Condition] = i.PrevState
	}
}

// DecrementSideConditionDuration reduces a side condition's remaining-turn
// counter by one (end-of-turn residual bookkeeping), removing it at zero
// for non-hazard (timed) conditions.
type DecrementSideConditionDuration struct {
	Side       battleformat.Side
	Condition  pokemon.SideCondition
	PrevState  pokemon.SideConditionState
	PrevExists bool
	Removed    bool
}

func (i *DecrementSideConditionDuration) Positions() []battleformat.Position { return nil }
func (i *DecrementSideConditionDuration) Undoable() bool                     { return true }

func (i *DecrementSideConditionDuration) Apply(state *pokemon.BattleState) {
	side := state.Side(i.Side)
	prev, exists := side.Conditions[i.Condition]
	i.PrevState = prev
	i.PrevExists = exists
	if !exists || prev.RemainingTurns <= 0 {
		return
	}
	next := prev.RemainingTurns - 1
	if next <= 0 {
		delete(side.Conditions, i.Condition)
		i.Removed = true
		return
	}
	side.Conditions[i.Condition] = pokemon.SideConditionState{Layers: prev.Layers, RemainingTurns: next}
}

func (i *DecrementSideConditionDuration) Undo(state *pokemon.BattleState) {
	side := state.Side(i.Side)
	if i.PrevExists {
		side.Conditions[i.Condition] = i.PrevState
	} else {
		delete(side.Conditions, i.Condition)
	}
}

// DecrementWeatherTurns reduces the weather's remaining-turn counter by
// one, clearing weather at zero (indefinite weather, RemainingTurns == -1,
// is left untouched).
type DecrementWeatherTurns struct {
	Prev    pokemon.WeatherState
	Cleared bool
}

func (i *DecrementWeatherTurns) Positions() []battleformat.Position { return nil }
func (i *DecrementWeatherTurns) Undoable() bool                     { return true }

func (i *DecrementWeatherTurns) Apply(state *pokemon.BattleState) {
	i.Prev = state.Field.Weather
	if state.Field.Weather.RemainingTurns < 0 {
		return
	}
	next := state.Field.Weather.RemainingTurns - 1
	if next <= 0 {
		state.Field.Weather = pokemon.WeatherState{}
		i.Cleared = true
		return
	}
	state.Field.Weather.RemainingTurns = next
}

func (i *DecrementWeatherTurns) Undo(state *pokemon.BattleState) {
	state.Field.Weather = i.Prev
}

// DecrementTerrainTurns is the Terrain analogue of DecrementWeatherTurns.
type DecrementTerrainTurns struct {
	Prev    pokemon.TerrainState
	Cleared bool
}

func (i *DecrementTerrainTurns) Positions() []battleformat.Position { return nil }
func (i *DecrementTerrainTurns) Undoable() bool                     { return true }

func (i *DecrementTerrainTurns) Apply(state *pokemon.BattleState) {
	i.Prev = state.Field.Terrain
	if state.Field.Terrain.RemainingTurns < 0 {
		return
	}
	next := state.Field.Terrain.RemainingTurns - 1
	if next <= 0 {
		state.Field.Terrain = pokemon.TerrainState{}
		i.Cleared = true
		return
	}
	state.Field.Terrain.RemainingTurns = next
}

func (i *DecrementTerrainTurns) Undo(state *pokemon.BattleState) {
	state.Field.Terrain = i.Prev
}
