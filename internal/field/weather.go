package field

import (
	"strings"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/pokemon"
)

// DefaultWeatherDuration and DefaultTerrainDuration are the standard
// 5-turn durations set by moves and most weather/terrain-setting
// abilities (field_system.rs's weather_move_with_extension base case).
const (
	DefaultWeatherDuration = 5
	DefaultTerrainDuration = 5 // Terrain Extender extends it to ExtendedDuration
	ExtendedDuration       = 8
)

// weatherExtensionItems maps a held item id to the weather kinds it
// extends to 8 turns (field_system.rs's check_weather_extension).
var weatherExtensionItems = map[string]map[pokemon.Weather]bool{
	"heatrock": {pokemon.WeatherSun: true, pokemon.WeatherHarshSun: true},
	"damprock": {pokemon.WeatherRain: true, pokemon.WeatherHeavyRain: true},
	"smoothrock": {pokemon.WeatherSand: true},
	"icyrock":    {pokemon.WeatherHail: true, pokemon.WeatherSnow: true},
}

// terrainExtensionItems maps terrain-extending items (just Terrain
// Extender, which covers every terrain).
var terrainExtensionItems = map[string]bool{
	"terrainextender": true,
}

// SetWeather builds the instruction for a weather-setting move or ability,
// extending the default duration when source holds the matching rock item
// (field_system.rs's weather_move_with_extension).
func SetWeather(state *pokemon.BattleState, weather pokemon.Weather, source battleformat.Position) *instruction.SetWeather {
	duration := DefaultWeatherDuration
	if p := state.PokemonAt(source); p != nil {
		item := strings.ToLower(p.Item.ID)
		if weatherExtensionItems[item][weather] {
			duration = ExtendedDuration
		}
	}
	return &instruction.SetWeather{New: weather, Duration: duration, Source: source}
}

// SetTerrain is the terrain analogue of SetWeather.
func SetTerrain(state *pokemon.BattleState, terrain pokemon.Terrain, source battleformat.Position) *instruction.SetTerrain {
	duration := 5
	if p := state.PokemonAt(source); p != nil {
		if terrainExtensionItems[strings.ToLower(p.Item.ID)] {
			duration = ExtendedDuration
		}
	}
	return &instruction.SetTerrain{New: terrain, Duration: duration, Source: source}
}

// CanApplySideCondition reports whether a side condition can still stack
// (Spikes/Toxic Spikes below their layer cap) or be freshly applied
// (singleton conditions not already present) — field_system.rs's
// can_apply_side_condition.
func CanApplySideCondition(state *pokemon.BattleState, side battleformat.Side, condition pokemon.SideCondition) bool {
	st, exists := state.Side(side).Conditions[condition]
	if !exists {
		return true
	}
	return st.Layers < condition.MaxLayers()
}

// entryHazardConditions and screenConditions are the fixed sets hazard
// removal and Defog operate over (field_system.rs's hazard_removal_move).
var entryHazardConditions = []pokemon.SideCondition{
	pokemon.SideSpikes, pokemon.SideToxicSpikes, pokemon.SideStealthRock, pokemon.SideStickyWeb,
}

var screenConditions = []pokemon.SideCondition{
	pokemon.SideReflect, pokemon.SideLightScreen, pokemon.SideAuroraVeil,
}

// RapidSpin removes entry hazards from the user's own side.
func RapidSpin(state *pokemon.BattleState, userSide battleformat.Side) []instruction.Instruction {
	return removeConditions(state, userSide, entryHazardConditions)
}

// Defog removes entry hazards from both sides and screens from the
// opposing side (field_system.rs: hazards clear everywhere, screens only
// clear for the target).
func Defog(state *pokemon.BattleState, userSide battleformat.Side) []instruction.Instruction {
	var out []instruction.Instruction
	out = append(out, removeConditions(state, battleformat.SideOne, entryHazardConditions)...)
	out = append(out, removeConditions(state, battleformat.SideTwo, entryHazardConditions)...)
	out = append(out, removeConditions(state, userSide.Opponent(), screenConditions)...)
	return out
}

// TidyUp removes entry hazards from both sides and every active
// Pokemon's Substitute.
func TidyUp(state *pokemon.BattleState) []instruction.Instruction {
	var out []instruction.Instruction
	out = append(out, removeConditions(state, battleformat.SideOne, entryHazardConditions)...)
	out = append(out, removeConditions(state, battleformat.SideTwo, entryHazardConditions)...)
	for _, pos := range state.ActivePositions() {
		p := state.PokemonAt(pos)
		if p != nil && p.Volatiles.Has(pokemon.VolatileSubstitute) {
			out = append(out, &instruction.RemoveVolatile{Target: pos, Kind: pokemon.VolatileSubstitute})
		}
	}
	return out
}

func removeConditions(state *pokemon.BattleState, side battleformat.Side, conditions []pokemon.SideCondition) []instruction.Instruction {
	var out []instruction.Instruction
	s := state.Side(side)
	for _, c := range conditions {
		if _, ok := s.Conditions[c]; ok {
			out = append(out, &instruction.RemoveSideCondition{Side: side, Condition: c})
		}
	}
	return out
}
