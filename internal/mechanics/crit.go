package mechanics

import "github.com/mingu600/tapu-simu/internal/pokemon"

var highCritMoves = map[string]bool{
	"karatechop": true, "razorleaf": true, "crabhammer": true, "slash": true,
	"aerialace": true, "aircutter": true, "attackorder": true, "blazekick": true,
	"crosschop": true, "drillrun": true, "leafblade": true, "nightslash": true,
	"psychocut": true, "razorwind": true, "shadowclaw": true, "skyattack": true,
	"spacialrend": true, "stoneedge": true, "stormthrow": true, "frostbreath": true,
}

var guaranteedCritMoves = map[string]bool{
	"frostbreath": true, "stormthrow": true, "wickedblow": true, "surgingstrikes": true,
}

// CritProbability computes a move's critical hit probability for the given
// attacker under the given generation.
// Gen 1 and Gen 2 use their own bespoke formulas (base Speed threshold, and
// a fixed four-rate stage table respectively); Gen 3+ use a shared
// stage-accumulation system dispatched through Generation.CritStageProbability.
func CritProbability(attacker *pokemon.Pokemon, move pokemon.Move, gen Generation) float64 {
	if guaranteedCritMoves[move.ID] {
		return 1.0
	}

	switch gen.Number() {
	case 1:
		return critProbabilityGen1(attacker, move)
	case 2:
		return critProbabilityGen2(attacker, move)
	default:
		stage := 0
		if move.Flags.HighCrit {
			stage++
		}
		switch attacker.Ability.ID {
		case "superluck":
			stage++
		case "battlearmor", "shellarmor":
			return 0.0
		}
		switch attacker.Item.ID {
		case "scopelens", "razorclaw":
			stage++
		case "luckypunch":
			if attacker.Species == "Chansey" {
				stage += 2
			}
		case "leek", "stick":
			if attacker.Species == "Farfetch'd" {
				stage += 2
			}
		}
		return gen.CritStageProbability(stage)
	}
}

func critProbabilityGen1(attacker *pokemon.Pokemon, move pokemon.Move) float64 {
	threshold := attacker.Base[pokemon.Speed] / 2
	if move.Flags.HighCrit {
		threshold += 76
	}
	if attacker.Volatiles.Has(pokemon.VolatileFocusEnergy) {
		threshold /= 4 // Gen 1 Focus Energy bug: quarters rather than raises crit rate
	}
	p := float64(threshold) / 256.0
	if p > 1.0 {
		return 1.0
	}
	return p
}

func critProbabilityGen2(attacker *pokemon.Pokemon, move pokemon.Move) float64 {
	stage := 0
	if move.Flags.HighCrit {
		stage++
	}
	if attacker.Volatiles.Has(pokemon.VolatileFocusEnergy) {
		stage++
	}
	var threshold int
	switch stage {
	case 0:
		threshold = 17
	case 1:
		threshold = 32
	case 2:
		threshold = 64
	default:
		threshold = 85
	}
	return float64(threshold) / 256.0
}
