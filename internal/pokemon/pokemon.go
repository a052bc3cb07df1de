// Package pokemon holds the engine's core data model: Pokemon, Move, Side,
// Field and BattleState. Static game data (species/move/item/
// ability tables) is a read-only repository shared by reference; these
// types hold copies of the fields they need from that data, never a
// pointer back into it, so that a BattleState remains self-contained.
package pokemon

import "github.com/mingu600/tapu-simu/internal/typechart"

// Gender of a Pokemon; affects Attract-family mechanics only.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
	GenderNone
)

// Ability holds a Pokemon's current ability state.
type Ability struct {
	ID             string
	Name           string
	Suppressed     bool // Gastro Acid / Neutralizing Gas
	TriggeredTurn  bool // fired already this turn (e.g. single-use triggers)
}

// Item holds a Pokemon's current held-item state. The boost fields are a
// copy of the matching internal/repository.Item record, carried here so the
// damage pipeline never needs a repository lookup mid-calculation.
type Item struct {
	ID       string
	Name     string
	Consumed bool // true once a single-use item (berry, Air Balloon popped, ...) has been used

	IsChoiceItem bool
	IsTypeBoost  bool
	BoostType    typechart.Type
	BoostPower   float64
}

// Pokemon is a single combatant: species identity, computed stats, stat
// stages, status, moves, ability/item, and in-battle bookkeeping.
type Pokemon struct {
	Species string
	Level   int

	CurrentHP int
	MaxHP     int

	Base     BaseStats
	Computed ComputedStats
	Stages   Stages

	Status         Status
	StatusDuration int // turns remaining/elapsed depending on status semantics (sleep counts down, toxic counts up)

	Volatiles Volatiles

	SubstituteHP int

	Moves []Move

	Ability Ability
	Item    Item

	Types []typechart.Type // 1 or 2 entries; mutable (Soak, Forest's Curse, Camouflage, Tera)
	OriginalTypes []typechart.Type // preserved for Tera "bonus STAB" rule

	Gender Gender
	Weight float64 // kg, for Low Kick/Grass Knot and Heavy Slam-family moves

	TeraType     typechart.Type // Gen 9 only; None if not terastallized
	Terastallized bool

	LastUsedMove   string
	ForcedSwitch   bool

	Forme string // e.g. Arceus/Silvally/Genesect form; see SPEC_FULL.md open questions
}

// IsFainted reports whether the Pokemon has fainted.
func (p *Pokemon) IsFainted() bool {
	return p.CurrentHP <= 0
}

// HasType reports whether the Pokemon currently carries the given type.
func (p *Pokemon) HasType(t typechart.Type) bool {
	for _, owned := range p.Types {
		if owned == t {
			return true
		}
	}
	return false
}

// EffectiveTypes returns the types used for STAB/type-chart purposes: the
// Tera type alone when Terastallized, else the current
// Types slice.
func (p *Pokemon) EffectiveTypes() []typechart.Type {
	if p.Terastallized && p.TeraType != typechart.None {
		return []typechart.Type{p.TeraType}
	}
	return p.Types
}

// IsGrounded reports whether the Pokemon is affected by ground-based field
// effects (hazards, Grassy Terrain healing, etc.), accounting for the
// Flying type, Levitate, and Air Balloon. fieldGravity forces grounding
// regardless of the usual exemptions.
func (p *Pokemon) IsGrounded(fieldGravity bool) bool {
	if fieldGravity {
		return true
	}
	if p.HasType(typechart.Flying) {
		return false
	}
	if p.Ability.ID == "levitate" && !p.Ability.Suppressed {
		return false
	}
	if p.Item.ID == "airballoon" && !p.Item.Consumed {
		return false
	}
	if p.Volatiles.Has(VolatileMagnetRise) {
		return false
	}
	return true
}

// StatValue returns the effective value of a core stat after applying its
// stat-stage multiplier. HP is never
// staged and is returned as-is.
func (p *Pokemon) StatValue(stat Stat) int {
	base := p.Computed[stat]
	if stat == HP {
		return base
	}
	stageStat, ok := coreToStage(stat)
	if !ok {
		return base
	}
	num, den := StatStageMultiplier(p.Stages.Get(stageStat))
	return base * num / den
}

func coreToStage(stat Stat) (StageStat, bool) {
	switch stat {
	case Attack:
		return StageAttack, true
	case Defense:
		return StageDefense, true
	case SpAttack:
		return StageSpAttack, true
	case SpDefense:
		return StageSpDefense, true
	case Speed:
		return StageSpeed, true
	default:
		return 0, false
	}
}

// MoveSlot returns a pointer to the move in slot idx, or nil if out of
// range. Callers (instruction applier, choice validation) use this to
// mutate PP in place.
func (p *Pokemon) MoveSlot(idx int) *Move {
	if idx < 0 || idx >= len(p.Moves) {
		return nil
	}
	return &p.Moves[idx]
}

// Clone returns a deep copy of the Pokemon, suitable for snapshotting state
// before a speculative branch (e.g. property-test harnesses that need an
// independent pre-turn copy to diff against after undo).
func (p *Pokemon) Clone() *Pokemon {
	cp := *p
	cp.Types = append([]typechart.Type(nil), p.Types...)
	cp.OriginalTypes = append([]typechart.Type(nil), p.OriginalTypes...)
	cp.Moves = make([]Move, len(p.Moves))
	for i, m := range p.Moves {
		cp.Moves[i] = m.Clone()
	}
	cp.Volatiles = p.Volatiles.Clone()
	return &cp
}
