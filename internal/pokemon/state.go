package pokemon

import (
	"github.com/google/uuid"

	"github.com/mingu600/tapu-simu/internal/battleformat"
)

// BattleState is the root aggregate: format, two Sides, field, and turn
// number. A BattleState exclusively owns its Sides, which
// exclusively own their Pokemon.
type BattleState struct {
	ID uuid.UUID // correlates OpenTelemetry spans and replay log entries across a battle's lifetime

	Format *battleformat.Format
	One    *Side
	Two    *Side
	Field  *Field
	Turn   int
}

// New creates a BattleState for the given format and two teams. Both sides
// start with all slots empty (Active[i] == -1); callers are expected to
// switch in the starting lineup immediately via Side.SwitchIn before the
// state is considered battle-ready.
func New(format *battleformat.Format, teamOne, teamTwo []*Pokemon) *BattleState {
	return &BattleState{
		ID:     uuid.New(),
		Format: format,
		One:    NewSide(teamOne, format.ActivePerSide),
		Two:    NewSide(teamTwo, format.ActivePerSide),
		Field:  NewField(),
		Turn:   0,
	}
}

// Side returns the Side for a battleformat.Side value.
func (b *BattleState) Side(side battleformat.Side) *Side {
	if side == battleformat.SideOne {
		return b.One
	}
	return b.Two
}

// PokemonAt returns the Pokemon at a BattlePosition, or nil if the slot is
// empty.
func (b *BattleState) PokemonAt(pos battleformat.Position) *Pokemon {
	return b.Side(pos.Side).ActivePokemon(pos.Slot)
}

// ActivePositions returns every currently-occupied active position across
// both sides, in canonical (SideOne then SideTwo, ascending slot) order.
func (b *BattleState) ActivePositions() []battleformat.Position {
	var out []battleformat.Position
	for _, pos := range b.Format.AllActivePositions() {
		if b.PokemonAt(pos) != nil {
			out = append(out, pos)
		}
	}
	return out
}

// IsTerminal reports whether the battle has reached a terminal state: one
// side has no non-fainted reserves and no non-fainted active Pokemon, so
// no switch-in could continue the battle.
func (b *BattleState) IsTerminal() bool {
	return b.One.AllFainted() || b.Two.AllFainted()
}

// Winner returns the winning side when IsTerminal is true, and ok=false
// otherwise (including the draw case where both sides are simultaneously
// defeated, which has no winner).
func (b *BattleState) Winner() (side battleformat.Side, ok bool) {
	oneDown := b.One.AllFainted()
	twoDown := b.Two.AllFainted()
	switch {
	case oneDown && twoDown:
		return 0, false
	case oneDown:
		return battleformat.SideTwo, true
	case twoDown:
		return battleformat.SideOne, true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of the battle state (used by the turn generator
// to build a scratch state per branch without mutating the caller's
// original, and by property-test harnesses).
func (b *BattleState) Clone() *BattleState {
	cp := &BattleState{
		ID:     b.ID,
		Format: b.Format,
		Turn:   b.Turn,
	}
	cp.One = cloneSide(b.One)
	cp.Two = cloneSide(b.Two)
	field := *b.Field
	field.PerTurn.LastDamageTakenBy = make(map[battleformat.Position]battleformat.Position, len(b.Field.PerTurn.LastDamageTakenBy))
	for k, v := range b.Field.PerTurn.LastDamageTakenBy {
		field.PerTurn.LastDamageTakenBy[k] = v
	}
	field.PerTurn.DamageTakenThisTurn = make(map[battleformat.Position]int, len(b.Field.PerTurn.DamageTakenThisTurn))
	for k, v := range b.Field.PerTurn.DamageTakenThisTurn {
		field.PerTurn.DamageTakenThisTurn[k] = v
	}
	cp.Field = &field
	return cp
}

func cloneSide(s *Side) *Side {
	cp := &Side{
		Active:            append([]int(nil), s.Active...),
		Conditions:        make(map[SideCondition]SideConditionState, len(s.Conditions)),
		FutureSightTurns:  s.FutureSightTurns,
		FutureSightDamage: s.FutureSightDamage,
		WishHP:            s.WishHP,
		WishTurns:         s.WishTurns,
	}
	cp.Team = make([]*Pokemon, len(s.Team))
	for i, p := range s.Team {
		cp.Team[i] = p.Clone()
	}
	for k, v := range s.Conditions {
		cp.Conditions[k] = v
	}
	return cp
}
