package repository

import (
	"fmt"
	"strings"

	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

func parseCategory(s string) (pokemon.Category, error) {
	switch strings.ToLower(s) {
	case "physical":
		return pokemon.CategoryPhysical, nil
	case "special":
		return pokemon.CategorySpecial, nil
	case "status", "":
		return pokemon.CategoryStatus, nil
	default:
		return 0, fmt.Errorf("unknown move category %q", s)
	}
}

func parseTargetKind(s string) (pokemon.TargetKind, error) {
	switch strings.ToLower(s) {
	case "self":
		return pokemon.TargetSelf, nil
	case "normal":
		return pokemon.TargetNormal, nil
	case "adjacentfoe":
		return pokemon.TargetAdjacentFoe, nil
	case "alladjacentfoes":
		return pokemon.TargetAllAdjacentFoes, nil
	case "alladjacent":
		return pokemon.TargetAllAdjacent, nil
	case "adjacentally":
		return pokemon.TargetAdjacentAlly, nil
	case "adjacentallyorself":
		return pokemon.TargetAdjacentAllyOrSelf, nil
	case "any":
		return pokemon.TargetAny, nil
	case "randomnormal":
		return pokemon.TargetRandomNormal, nil
	case "allies":
		return pokemon.TargetAllies, nil
	case "all":
		return pokemon.TargetAll, nil
	case "allyside":
		return pokemon.TargetAllySide, nil
	case "foeside":
		return pokemon.TargetFoeSide, nil
	case "allyteam":
		return pokemon.TargetAllyTeam, nil
	case "scripted":
		return pokemon.TargetScripted, nil
	default:
		return 0, fmt.Errorf("unknown move target kind %q", s)
	}
}

func parseMultiHitKind(s string) (pokemon.MultiHitKind, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return pokemon.MultiHitNone, nil
	case "twotofive":
		return pokemon.MultiHitTwoToFive, nil
	case "fixed":
		return pokemon.MultiHitFixed, nil
	case "triple":
		return pokemon.MultiHitTriple, nil
	default:
		return 0, fmt.Errorf("unknown multi-hit kind %q", s)
	}
}

func parseStatus(s string) (pokemon.Status, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return pokemon.StatusNone, nil
	case "sleep":
		return pokemon.StatusSleep, nil
	case "poison":
		return pokemon.StatusPoison, nil
	case "badlypoisoned", "toxic":
		return pokemon.StatusBadlyPoisoned, nil
	case "burn":
		return pokemon.StatusBurn, nil
	case "paralysis":
		return pokemon.StatusParalysis, nil
	case "freeze":
		return pokemon.StatusFreeze, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

func parseVolatile(s string) (pokemon.Volatile, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return 0, nil
	case "confusion":
		return pokemon.VolatileConfusion, nil
	case "flinch":
		return pokemon.VolatileFlinch, nil
	case "substitute":
		return pokemon.VolatileSubstitute, nil
	case "leechseed":
		return pokemon.VolatileLeechSeed, nil
	case "taunt":
		return pokemon.VolatileTaunt, nil
	case "torment":
		return pokemon.VolatileTorment, nil
	case "disable":
		return pokemon.VolatileDisable, nil
	case "encore":
		return pokemon.VolatileEncore, nil
	case "attract":
		return pokemon.VolatileAttract, nil
	case "curse":
		return pokemon.VolatileCurse, nil
	case "protect":
		return pokemon.VolatileProtect, nil
	case "focusenergy":
		return pokemon.VolatileFocusEnergy, nil
	case "choicelock":
		return pokemon.VolatileChoiceLock, nil
	case "bind":
		return pokemon.VolatileBind, nil
	case "ingrain":
		return pokemon.VolatileIngrain, nil
	case "aquaring":
		return pokemon.VolatileAquaRing, nil
	case "perishsong":
		return pokemon.VolatilePerishSong, nil
	case "magnetrise":
		return pokemon.VolatileMagnetRise, nil
	case "healblock":
		return pokemon.VolatileHealBlock, nil
	case "embargo":
		return pokemon.VolatileEmbargo, nil
	case "yawn":
		return pokemon.VolatileYawn, nil
	default:
		return 0, fmt.Errorf("unknown volatile %q", s)
	}
}

func parseStageStat(s string) (pokemon.StageStat, error) {
	switch strings.ToLower(s) {
	case "attack":
		return pokemon.StageAttack, nil
	case "defense":
		return pokemon.StageDefense, nil
	case "spattack":
		return pokemon.StageSpAttack, nil
	case "spdefense":
		return pokemon.StageSpDefense, nil
	case "speed":
		return pokemon.StageSpeed, nil
	case "accuracy":
		return pokemon.StageAccuracy, nil
	case "evasion":
		return pokemon.StageEvasion, nil
	default:
		return 0, fmt.Errorf("unknown stage stat %q", s)
	}
}

func parseStat(s string) (pokemon.Stat, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return 0, fmt.Errorf("no override stat given")
	case "hp":
		return pokemon.HP, nil
	case "attack":
		return pokemon.Attack, nil
	case "defense":
		return pokemon.Defense, nil
	case "spattack":
		return pokemon.SpAttack, nil
	case "spdefense":
		return pokemon.SpDefense, nil
	case "speed":
		return pokemon.Speed, nil
	default:
		return 0, fmt.Errorf("unknown stat %q", s)
	}
}

func toMove(id string, r moveRecord) (pokemon.Move, error) {
	typ, ok := typechart.Parse(r.Type)
	if !ok {
		return pokemon.Move{}, fmt.Errorf("move %s: unknown type %q", id, r.Type)
	}
	category, err := parseCategory(r.Category)
	if err != nil {
		return pokemon.Move{}, fmt.Errorf("move %s: %w", id, err)
	}
	target, err := parseTargetKind(r.Target)
	if err != nil {
		return pokemon.Move{}, fmt.Errorf("move %s: %w", id, err)
	}
	multiHit, err := parseMultiHitKind(r.MultiHitKind)
	if err != nil {
		return pokemon.Move{}, fmt.Errorf("move %s: %w", id, err)
	}

	secondary := make([]pokemon.SecondaryEffect, 0, len(r.Secondary))
	for i, sr := range r.Secondary {
		sec, err := toSecondaryEffect(sr)
		if err != nil {
			return pokemon.Move{}, fmt.Errorf("move %s: secondary[%d]: %w", id, i, err)
		}
		secondary = append(secondary, sec)
	}

	m := pokemon.Move{
		ID:                   id,
		Name:                 r.Name,
		Type:                 typ,
		Category:             category,
		BasePower:            r.BasePower,
		Accuracy:             r.Accuracy,
		MaxPP:                r.PP,
		PP:                   r.PP,
		Priority:             r.Priority,
		Target:               target,
		Flags:                toFlags(r.Flags),
		Secondary:            secondary,
		Drain:                r.Drain,
		RecoilPct:            r.RecoilPct,
		HealPct:              r.HealPct,
		MultiHit:             multiHit,
		MultiHitMin:          r.MultiHitMin,
		MultiHitMax:          r.MultiHitMax,
		UseTargetOffenseStat: r.UseTargetOffenseStat,
		ScriptedEffectID:     r.ScriptedEffectID,
	}

	if r.OverrideAttackStat != "" {
		stat, err := parseStat(r.OverrideAttackStat)
		if err != nil {
			return pokemon.Move{}, fmt.Errorf("move %s: overrideAttackStat: %w", id, err)
		}
		m.OverrideAttackStat = &stat
	}

	return m, nil
}

func toFlags(r moveFlagsRecord) pokemon.Flags {
	return pokemon.Flags{
		Contact:     r.Contact,
		Sound:       r.Sound,
		Powder:      r.Powder,
		Bullet:      r.Bullet,
		Punch:       r.Punch,
		Bite:        r.Bite,
		Pulse:       r.Pulse,
		Dance:       r.Dance,
		Slicing:     r.Slicing,
		Protect:     r.Protect,
		Reflectable: r.Reflectable,
		Authentic:   r.Authentic,
		HighCrit:    r.HighCrit,
		Defrost:     r.Defrost,
	}
}

func toSecondaryEffect(r secondaryEffectRecord) (pokemon.SecondaryEffect, error) {
	status, err := parseStatus(r.Status)
	if err != nil {
		return pokemon.SecondaryEffect{}, err
	}
	volatile, err := parseVolatile(r.Volatile)
	if err != nil {
		return pokemon.SecondaryEffect{}, err
	}
	var boosts map[pokemon.StageStat]int
	if len(r.Boosts) > 0 {
		boosts = make(map[pokemon.StageStat]int, len(r.Boosts))
		for k, v := range r.Boosts {
			stat, err := parseStageStat(k)
			if err != nil {
				return pokemon.SecondaryEffect{}, err
			}
			boosts[stat] = v
		}
	}
	return pokemon.SecondaryEffect{
		Chance:      r.Chance,
		Status:      status,
		Volatile:    volatile,
		VolatileDur: r.VolatileDur,
		BoostTarget: r.BoostTarget,
		Boosts:      boosts,
		Flinch:      r.Flinch,
	}, nil
}

func toSpecies(id string, r speciesRecord) (Species, error) {
	types := make([]typechart.Type, 0, len(r.Types))
	for _, ts := range r.Types {
		t, ok := typechart.Parse(ts)
		if !ok {
			return Species{}, fmt.Errorf("species %s: unknown type %q", id, ts)
		}
		types = append(types, t)
	}
	return Species{
		Name:  r.Name,
		Types: types,
		BaseStats: [6]int{
			r.BaseStats.HP, r.BaseStats.Attack, r.BaseStats.Defense,
			r.BaseStats.SpAttack, r.BaseStats.SpDefense, r.BaseStats.Speed,
		},
		Weight:    r.Weight,
		Abilities: r.Abilities,
	}, nil
}

func toItem(id string, r itemRecord) (Item, error) {
	var boostType typechart.Type
	if r.BoostType != "" {
		t, ok := typechart.Parse(r.BoostType)
		if !ok {
			return Item{}, fmt.Errorf("item %s: unknown boost type %q", id, r.BoostType)
		}
		boostType = t
	}
	return Item{
		Name:            r.Name,
		IsBerry:         r.IsBerry,
		IsChoiceItem:    r.IsChoiceItem,
		IsTypeBoost:     r.IsTypeBoost,
		IsMegaStone:     r.IsMegaStone,
		BoostType:       boostType,
		BoostPower:      r.BoostPower,
		BerryCureStatus: r.BerryCureStatus,
		FlingPower:      r.FlingPower,
	}, nil
}

func toAbility(r abilityRecord) Ability {
	return Ability{Name: r.Name}
}
