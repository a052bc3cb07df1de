package repository

import "github.com/mingu600/tapu-simu/internal/typechart"

// Species is a Pokemon's static species data,
// held here rather than on pokemon.Pokemon itself — per that package's
// "copies of the fields they need, never a pointer back into it" rule,
// a team builder reads a Species once and copies its fields into a new
// pokemon.Pokemon.
type Species struct {
	Name      string
	Types     []typechart.Type
	BaseStats [6]int // HP, Attack, Defense, SpAttack, SpDefense, Speed, in pokemon.Stat order
	Weight    float64
	Abilities []string
}

// Item is a held item's static data.
type Item struct {
	Name string

	IsBerry      bool
	IsChoiceItem bool
	IsTypeBoost  bool
	IsMegaStone  bool

	BoostType  typechart.Type
	BoostPower float64

	BerryCureStatus string // status name cured on consumption, e.g. "Paralysis"; empty if none

	FlingPower int
}

// Ability is an ability's static data: name only. The engine has no
// ability-effect dispatch system (see DESIGN.md), so an Ability is an
// identity, not a behavior.
type Ability struct {
	Name string
}
