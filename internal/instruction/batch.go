package instruction

import "github.com/mingu600/tapu-simu/internal/pokemon"

// Set is an ordered sequence of instructions produced for one branch of one
// actor's move resolution. Sets are applied and
// undone as a unit.
type Set []Instruction

// Apply applies every instruction in order.
func (s Set) Apply(state *pokemon.BattleState) {
	for _, instr := range s {
		instr.Apply(state)
	}
}

// Undo reverses every instruction in reverse order, skipping non-undoable
// ones (Message).
func (s Set) Undo(state *pokemon.BattleState) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Undoable() {
			s[i].Undo(state)
		}
	}
}
