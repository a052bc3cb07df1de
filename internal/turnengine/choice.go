package turnengine

import "github.com/mingu600/tapu-simu/internal/battleformat"

// ChoiceKind identifies what a side committed to doing this turn, or None").
type ChoiceKind int

const (
	ChoiceNone ChoiceKind = iota
	ChoiceMove
	ChoiceSwitch
)

// Choice is one side's input to a turn. Targets may be left empty to
// request auto-resolution via internal/targeting.
type Choice struct {
	Kind        ChoiceKind
	MoveIndex   int
	Targets     []battleformat.Position
	ReserveSlot int // team index for ChoiceSwitch
}
