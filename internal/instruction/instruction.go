// Package instruction implements the small, undoable state-delta vocabulary
// the turn generator emits. Every instruction stores enough
// prior-state information to invert itself; instructions hold no
// references to the BattleState they were produced from — they are plain
// data, applied (and, for most, undone) by an explicit Apply/Undo call.
package instruction

import (
	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// Instruction is the tagged-union analogue for Go: one struct type per
// variant, all implementing this interface.
type Instruction interface {
	// Apply mutates state in place.
	Apply(state *pokemon.BattleState)
	// Undo reverses a previous Apply by restoring prev_* fields. Calling
	// Undo on a non-undoable instruction is a no-op.
	Undo(state *pokemon.BattleState)
	// Positions returns the battle positions this instruction affects,
	// used for ordering and logging.
	Positions() []battleformat.Position
	// Undoable reports whether Undo meaningfully reverses this instruction.
	Undoable() bool
}

// ---- Pokemon instructions ----

// Damage deals damage to a target, recording the previous HP for undo.
type Damage struct {
	Target  battleformat.Position
	Amount  int
	PrevHP  int
}

func (i *Damage) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *Damage) Undoable() bool                     { return true }

func (i *Damage) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.PrevHP = p.CurrentHP
	if i.Amount < 0 {
		i.Amount = 0
	}
	next := p.CurrentHP - i.Amount
	if next < 0 {
		next = 0
	}
	p.CurrentHP = next
	state.Field.PerTurn.DamageTakenThisTurn[i.Target] += i.Amount
}

func (i *Damage) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Target); p != nil {
		p.CurrentHP = i.PrevHP
		taken := state.Field.PerTurn.DamageTakenThisTurn[i.Target] - i.Amount
		if taken > 0 {
			state.Field.PerTurn.DamageTakenThisTurn[i.Target] = taken
		} else {
			delete(state.Field.PerTurn.DamageTakenThisTurn, i.Target)
		}
	}
}

// Heal restores HP to a target, recording the previous HP for undo.
type Heal struct {
	Target battleformat.Position
	Amount int
	PrevHP int
}

func (i *Heal) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *Heal) Undoable() bool                     { return true }

func (i *Heal) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.PrevHP = p.CurrentHP
	next := p.CurrentHP + i.Amount
	if next > p.MaxHP {
		next = p.MaxHP
	}
	p.CurrentHP = next
}

func (i *Heal) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Target); p != nil {
		p.CurrentHP = i.PrevHP
	}
}

// SubstituteDamage absorbs a hit into a target's Substitute instead of its
// HP. Overflow past 0 is discarded, not
// carried over to HP.
type SubstituteDamage struct {
	Target      battleformat.Position
	Amount      int
	PrevSubHP   int
	Broke       bool
}

func (i *SubstituteDamage) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *SubstituteDamage) Undoable() bool                     { return true }

func (i *SubstituteDamage) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.PrevSubHP = p.SubstituteHP
	amount := i.Amount
	if amount < 0 {
		amount = 0
	}
	next := p.SubstituteHP - amount
	if next <= 0 {
		next = 0
		i.Broke = true
		delete(p.Volatiles, pokemon.VolatileSubstitute)
	}
	p.SubstituteHP = next
}

func (i *SubstituteDamage) Undo(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	p.SubstituteHP = i.PrevSubHP
	if i.Broke {
		p.Volatiles[pokemon.VolatileSubstitute] = pokemon.VolatileState{}
	}
}

// SetStatus applies a major status to a target, recording the previous
// status and duration for undo.
type SetStatus struct {
	Target         battleformat.Position
	New            pokemon.Status
	NewDuration    int
	PrevStatus     pokemon.Status
	PrevDuration   int
}

func (i *SetStatus) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *SetStatus) Undoable() bool                     { return true }

func (i *SetStatus) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.PrevStatus = p.Status
	i.PrevDuration = p.StatusDuration
	p.Status = i.New
	p.StatusDuration = i.NewDuration
}

func (i *SetStatus) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Target); p != nil {
		p.Status = i.PrevStatus
		p.StatusDuration = i.PrevDuration
	}
}

// RemoveStatus clears a target's major status.
type RemoveStatus struct {
	Target       battleformat.Position
	PrevStatus   pokemon.Status
	PrevDuration int
}

func (i *RemoveStatus) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *RemoveStatus) Undoable() bool                     { return true }

func (i *RemoveStatus) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.PrevStatus = p.Status
	i.PrevDuration = p.StatusDuration
	p.Status = pokemon.StatusNone
	p.StatusDuration = 0
}

func (i *RemoveStatus) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Target); p != nil {
		p.Status = i.PrevStatus
		p.StatusDuration = i.PrevDuration
	}
}

// ApplyVolatile applies a volatile status to a target.
type ApplyVolatile struct {
	Target       battleformat.Position
	Kind         pokemon.Volatile
	Duration     int
	Data         int
	PrevHad      bool
	PrevDuration int
	PrevData     int
}

func (i *ApplyVolatile) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *ApplyVolatile) Undoable() bool                     { return true }

func (i *ApplyVolatile) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	if p.Volatiles == nil {
		p.Volatiles = make(pokemon.Volatiles)
	}
	if prev, ok := p.Volatiles[i.Kind]; ok {
		i.PrevHad = true
		i.PrevDuration = prev.Duration
		i.PrevData = prev.Data
	} else {
		i.PrevHad = false
	}
	p.Volatiles[i.Kind] = pokemon.VolatileState{Duration: i.Duration, Data: i.Data}
}

func (i *ApplyVolatile) Undo(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil || p.Volatiles == nil {
		return
	}
	if i.PrevHad {
		p.Volatiles[i.Kind] = pokemon.VolatileState{Duration: i.PrevDuration, Data: i.PrevData}
	} else {
		delete(p.Volatiles, i.Kind)
	}
}

// RemoveVolatile clears a volatile status from a target.
type RemoveVolatile struct {
	Target       battleformat.Position
	Kind         pokemon.Volatile
	PrevHad      bool
	PrevDuration int
	PrevData     int
}

func (i *RemoveVolatile) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *RemoveVolatile) Undoable() bool                     { return true }

func (i *RemoveVolatile) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil || p.Volatiles == nil {
		return
	}
	if prev, ok := p.Volatiles[i.Kind]; ok {
		i.PrevHad = true
		i.PrevDuration = prev.Duration
		i.PrevData = prev.Data
	}
	delete(p.Volatiles, i.Kind)
}

func (i *RemoveVolatile) Undo(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	if i.PrevHad {
		if p.Volatiles == nil {
			p.Volatiles = make(pokemon.Volatiles)
		}
		p.Volatiles[i.Kind] = pokemon.VolatileState{Duration: i.PrevDuration, Data: i.PrevData}
	}
}

// BoostStats applies a set of stat-stage deltas atomically, clamped to
// [-6,+6].
type BoostStats struct {
	Target      battleformat.Position
	Delta       map[pokemon.StageStat]int
	PrevBoosts  pokemon.Stages
}

func (i *BoostStats) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *BoostStats) Undoable() bool                     { return true }

func (i *BoostStats) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.PrevBoosts = p.Stages
	for stat, delta := range i.Delta {
		p.Stages.Apply(stat, delta)
	}
}

func (i *BoostStats) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Target); p != nil {
		p.Stages = i.PrevBoosts
	}
}

// ChangeAbility swaps a Pokemon's active ability (Skill Swap, Worry Seed,
// Mummy, ...).
type ChangeAbility struct {
	Target  battleformat.Position
	New     pokemon.Ability
	Prev    pokemon.Ability
}

func (i *ChangeAbility) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *ChangeAbility) Undoable() bool                     { return true }

func (i *ChangeAbility) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.Prev = p.Ability
	p.Ability = i.New
}

func (i *ChangeAbility) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Target); p != nil {
		p.Ability = i.Prev
	}
}

// SetItem gives/replaces a Pokemon's held item.
type SetItem struct {
	Target battleformat.Position
	New    pokemon.Item
	Prev   pokemon.Item
}

func (i *SetItem) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *SetItem) Undoable() bool                     { return true }

func (i *SetItem) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.Prev = p.Item
	p.Item = i.New
}

func (i *SetItem) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Target); p != nil {
		p.Item = i.Prev
	}
}

// ConsumeItem marks a Pokemon's item as consumed (berries, Air Balloon
// pop, Focus Sash) without clearing the ID (so Recycle/Harvest can see what
// was eaten).
type ConsumeItem struct {
	Target       battleformat.Position
	PrevConsumed bool
}

func (i *ConsumeItem) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *ConsumeItem) Undoable() bool                     { return true }

func (i *ConsumeItem) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.PrevConsumed = p.Item.Consumed
	p.Item.Consumed = true
}

func (i *ConsumeItem) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Target); p != nil {
		p.Item.Consumed = i.PrevConsumed
	}
}

// ItemTransfer moves an item from one position to another (Thief, Trick,
// Switcheroo, Bestow).
type ItemTransfer struct {
	From, To   battleformat.Position
	PrevFrom   pokemon.Item
	PrevTo     pokemon.Item
}

func (i *ItemTransfer) Positions() []battleformat.Position {
	return []battleformat.Position{i.From, i.To}
}
func (i *ItemTransfer) Undoable() bool { return true }

func (i *ItemTransfer) Apply(state *pokemon.BattleState) {
	from := state.PokemonAt(i.From)
	to := state.PokemonAt(i.To)
	if from == nil || to == nil {
		return
	}
	i.PrevFrom = from.Item
	i.PrevTo = to.Item
	from.Item, to.Item = to.Item, from.Item
}

func (i *ItemTransfer) Undo(state *pokemon.BattleState) {
	from := state.PokemonAt(i.From)
	to := state.PokemonAt(i.To)
	if from == nil || to == nil {
		return
	}
	from.Item = i.PrevFrom
	to.Item = i.PrevTo
}

// ChangeType replaces a Pokemon's current types (Soak, Forest's Curse,
// Trick-or-Treat, Camouflage, Reflect Type, Tera activation).
type ChangeType struct {
	Target battleformat.Position
	New    []typechart.Type
	Prev   []typechart.Type
}

func (i *ChangeType) Positions() []battleformat.Position { return []battleformat.Position{i.Target} }
func (i *ChangeType) Undoable() bool                     { return true }

func (i *ChangeType) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Target)
	if p == nil {
		return
	}
	i.Prev = append([]typechart.Type(nil), p.Types...)
	p.Types = append([]typechart.Type(nil), i.New...)
}

func (i *ChangeType) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Target); p != nil {
		p.Types = append([]typechart.Type(nil), i.Prev...)
	}
}

// Switch changes which team member occupies a position.
type Switch struct {
	Position  battleformat.Position
	NextIndex int
	PrevIndex int
}

func (i *Switch) Positions() []battleformat.Position { return []battleformat.Position{i.Position} }
func (i *Switch) Undoable() bool                     { return true }

func (i *Switch) Apply(state *pokemon.BattleState) {
	side := state.Side(i.Position.Side)
	i.PrevIndex = side.SwitchIn(i.Position.Slot, i.NextIndex)
}

func (i *Switch) Undo(state *pokemon.BattleState) {
	side := state.Side(i.Position.Side)
	side.SwitchIn(i.Position.Slot, i.PrevIndex)
}

// ForceSwitch marks a position as requiring a switch-in at the next
// opportunity (fainted slot, Roar/Whirlwind/Dragon Tail/Red Card).
type ForceSwitch struct {
	Position battleformat.Position
	PrevFlag bool
}

func (i *ForceSwitch) Positions() []battleformat.Position { return []battleformat.Position{i.Position} }
func (i *ForceSwitch) Undoable() bool                     { return true }

func (i *ForceSwitch) Apply(state *pokemon.BattleState) {
	p := state.PokemonAt(i.Position)
	if p == nil {
		return
	}
	i.PrevFlag = p.ForcedSwitch
	p.ForcedSwitch = true
}

func (i *ForceSwitch) Undo(state *pokemon.BattleState) {
	if p := state.PokemonAt(i.Position); p != nil {
		p.ForcedSwitch = i.PrevFlag
	}
}

// Message is a diagnostic, non-undoable instruction carrying human-readable
// battle-log text").
type Message struct {
	Text string
}

func (i *Message) Positions() []battleformat.Position { return nil }
func (i *Message) Undoable() bool                     { return false }
func (i *Message) Apply(state *pokemon.BattleState)   {}
func (i *Message) Undo(state *pokemon.BattleState)    {}
