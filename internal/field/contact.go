package field

import (
	"strings"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/instruction"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/status"
)

// ChanceInstruction pairs an instruction with the probability (0-100) that
// it fires, for the contact triggers that roll independently of the move's
// own accuracy/secondary-effect chances (contact_effects.rs's 30% abilities).
type ChanceInstruction struct {
	Instruction instruction.Instruction
	Chance      float64
}

// ContactEffects returns every post-hit ability/item trigger for a
// contact move that connected (contact_effects.rs's apply_contact_effects).
// damageDealt of 0 or a fainted attacker/target suppresses every trigger,
// matching the Rust guard clauses.
func ContactEffects(state *pokemon.BattleState, move pokemon.Move, userPos, targetPos battleformat.Position, damageDealt int) []ChanceInstruction {
	if !move.Flags.Contact || damageDealt == 0 {
		return nil
	}
	target := state.PokemonAt(targetPos)
	if target == nil || target.IsFainted() {
		return nil
	}

	var out []ChanceInstruction
	out = append(out, contactAbilities(state, userPos, targetPos)...)
	out = append(out, contactItems(state, userPos, targetPos)...)
	return out
}

func contactAbilities(state *pokemon.BattleState, userPos, targetPos battleformat.Position) []ChanceInstruction {
	target := state.PokemonAt(targetPos)
	user := state.PokemonAt(userPos)
	if target == nil || user == nil {
		return nil
	}

	switch strings.ToLower(target.Ability.ID) {
	case "static":
		return statusChance(state, userPos, pokemon.StatusParalysis, 30.0)
	case "flamebody":
		return statusChance(state, userPos, pokemon.StatusBurn, 30.0)
	case "poisonpoint":
		return statusChance(state, userPos, pokemon.StatusPoison, 30.0)
	case "roughskin", "ironbarbs":
		return []ChanceInstruction{{
			Instruction: &instruction.Damage{Target: userPos, Amount: user.MaxHP / 8},
			Chance:      100,
		}}
	case "gooey", "tanglinghair":
		return []ChanceInstruction{{
			Instruction: &instruction.BoostStats{Target: userPos, Delta: map[pokemon.StageStat]int{pokemon.StageSpeed: -1}},
			Chance:      100,
		}}
	case "mummy", "lingeringaroma":
		newAbility := pokemon.Ability{ID: "mummy", Name: "Mummy"}
		if strings.ToLower(target.Ability.ID) == "lingeringaroma" {
			newAbility = pokemon.Ability{ID: "lingeringaroma", Name: "Lingering Aroma"}
		}
		return []ChanceInstruction{{
			Instruction: &instruction.ChangeAbility{Target: userPos, New: newAbility, Prev: user.Ability},
			Chance:      100,
		}}
	case "cursedbody":
		return []ChanceInstruction{{
			Instruction: &instruction.Message{Text: user.Species + "'s move was disabled by Cursed Body!"},
			Chance:      30,
		}}
	default:
		return nil
	}
}

func contactItems(state *pokemon.BattleState, userPos, targetPos battleformat.Position) []ChanceInstruction {
	target := state.PokemonAt(targetPos)
	user := state.PokemonAt(userPos)
	if target == nil || user == nil {
		return nil
	}

	switch strings.ToLower(target.Item.ID) {
	case "rockyhelmet":
		return []ChanceInstruction{{
			Instruction: &instruction.Damage{Target: userPos, Amount: user.MaxHP / 6},
			Chance:      100,
		}}
	case "stickybarb":
		return []ChanceInstruction{{
			Instruction: &instruction.ItemTransfer{From: targetPos, To: userPos},
			Chance:      100,
		}}
	case "redcard":
		return []ChanceInstruction{{
			Instruction: &instruction.ForceSwitch{Position: userPos},
			Chance:      100,
		}}
	case "ejectbutton":
		return []ChanceInstruction{{
			Instruction: &instruction.ForceSwitch{Position: targetPos},
			Chance:      100,
		}}
	default:
		return nil
	}
}

func statusChance(state *pokemon.BattleState, pos battleformat.Position, s pokemon.Status, chance float64) []ChanceInstruction {
	instr, reason := status.Apply(state, status.Application{Status: s, Target: pos, Chance: 100})
	if reason != status.FailureNone {
		return nil
	}
	return []ChanceInstruction{{Instruction: instr, Chance: chance}}
}

// RecoilDamage returns the instruction for a recoil-damage move
// (contact_effects.rs's apply_recoil_damage): recoilPct percent of
// damageDealt, applied to the user.
func RecoilDamage(userPos battleformat.Position, damageDealt, recoilPct int) instruction.Instruction {
	if damageDealt <= 0 || recoilPct <= 0 {
		return nil
	}
	amount := damageDealt * recoilPct / 100
	if amount <= 0 {
		return nil
	}
	return &instruction.Damage{Target: userPos, Amount: amount}
}

// DrainHeal returns the instruction for a draining move
// (contact_effects.rs's apply_drain_healing): drainPct percent of
// damageDealt, healed on the user.
func DrainHeal(userPos battleformat.Position, damageDealt, drainPct int) instruction.Instruction {
	if damageDealt <= 0 || drainPct <= 0 {
		return nil
	}
	amount := damageDealt * drainPct / 100
	if amount <= 0 {
		return nil
	}
	return &instruction.Heal{Target: userPos, Amount: amount}
}
