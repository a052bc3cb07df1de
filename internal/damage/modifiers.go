package damage

import (
	"strings"

	"github.com/mingu600/tapu-simu/internal/pokemon"
)

// ApplyItemAbilityModifiers applies the held-item and ability multipliers
// that act purely on the already-computed base damage: Choice items, Life
// Orb, Expert Belt, Muscle Band, type-boost items (plates/incenses/gems,
// modeled by Item.IsTypeBoost/BoostType/BoostPower), the attacker's Tinted
// Lens, and the defender's Solid Rock/Filter/Multiscale. This is the last
// stage before a generation's damage-roll percents are applied.
func ApplyItemAbilityModifiers(ctx *Context) {
	applyAttackerItem(ctx)
	applyAttackerAbility(ctx)
	applyDefenderAbility(ctx)
	if ctx.Generation.FloorsIntermediateSteps() {
		ctx.BaseDamage = float64(int(ctx.BaseDamage))
	}
}

func applyAttackerItem(ctx *Context) {
	item := ctx.Attacker.Item
	if item.Consumed || item.ID == "" {
		return
	}
	switch {
	case item.IsChoiceItem:
		if ctx.Move.Category == pokemon.CategoryPhysical || ctx.Move.Category == pokemon.CategorySpecial {
			ctx.BaseDamage *= 1.5
		}
	case strings.EqualFold(item.ID, "lifeorb"):
		ctx.BaseDamage *= 1.3
	case strings.EqualFold(item.ID, "expertbelt"):
		if ctx.Effectiveness > 1 {
			ctx.BaseDamage *= 1.2
		}
	case strings.EqualFold(item.ID, "muscleband"):
		if ctx.Move.Category == pokemon.CategoryPhysical {
			ctx.BaseDamage *= 1.1
		}
	case strings.EqualFold(item.ID, "wiseglasses"):
		if ctx.Move.Category == pokemon.CategorySpecial {
			ctx.BaseDamage *= 1.1
		}
	case item.IsTypeBoost && item.BoostType == ctx.Move.Type:
		ctx.BaseDamage *= item.BoostPower
	}
}

func applyAttackerAbility(ctx *Context) {
	if strings.EqualFold(ctx.Attacker.Ability.ID, "tintedlens") && ctx.Effectiveness > 0 && ctx.Effectiveness < 1 {
		ctx.BaseDamage *= 2
	}
}

func applyDefenderAbility(ctx *Context) {
	switch {
	case strings.EqualFold(ctx.Defender.Ability.ID, "solidrock"), strings.EqualFold(ctx.Defender.Ability.ID, "filter"):
		if ctx.Effectiveness > 1 {
			ctx.BaseDamage *= 0.75
		}
	case strings.EqualFold(ctx.Defender.Ability.ID, "multiscale"):
		if ctx.Defender.CurrentHP == ctx.Defender.MaxHP {
			ctx.BaseDamage *= 0.5
		}
	}
}
