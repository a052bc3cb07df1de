// Package teambuilder turns a team file into the []*pokemon.Pokemon the turn engine operates on,
// resolving species/move/item/ability ids against a loaded
// internal/repository.Repository and computing each Pokemon's stats from
// its level/IVs/EVs/nature the way every generation's in-game formula does.
package teambuilder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mingu600/tapu-simu/internal/engineerr"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/repository"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

// MemberSpec is one team member's on-disk description. IVs/EVs are
// pointers so that an absent field (nil) can default to perfect IVs / no
// EVs rather than silently becoming all zeroes. Both JSON and YAML tags
// are carried on every field so a team
// file can be authored in either format.
type MemberSpec struct {
	Species  string   `json:"species" yaml:"species"`
	Level    int      `json:"level" yaml:"level"`
	Moves    []string `json:"moves" yaml:"moves"`
	Ability  string   `json:"ability" yaml:"ability"`
	Item     string   `json:"item" yaml:"item"`
	Nature   string   `json:"nature" yaml:"nature"`
	IVs      *[6]int  `json:"ivs" yaml:"ivs"`
	EVs      *[6]int  `json:"evs" yaml:"evs"`
	Gender   string   `json:"gender" yaml:"gender"`
	TeraType string   `json:"teraType" yaml:"teraType"`
}

// TeamSpec is a team file's root shape: an ordered roster.
type TeamSpec struct {
	Members []MemberSpec `json:"members" yaml:"members"`
}

// LoadTeam reads path as a TeamSpec and builds each member against repo.
// A ".yaml"/".yml" extension decodes with yaml.v3; everything else
// decodes as JSON.
func LoadTeam(path string, repo *repository.Repository) ([]*pokemon.Pokemon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, engineerr.Wrap(engineerr.DataError, fmt.Sprintf("reading team file %s", path), err)
	}

	var spec TeamSpec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, engineerr.Wrap(engineerr.FormatError, fmt.Sprintf("parsing team file %s", path), err)
		}
	default:
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, engineerr.Wrap(engineerr.FormatError, fmt.Sprintf("parsing team file %s", path), err)
		}
	}
	if len(spec.Members) == 0 {
		return nil, engineerr.New(engineerr.FormatError, fmt.Sprintf("team file %s has no members", path))
	}

	team := make([]*pokemon.Pokemon, 0, len(spec.Members))
	for i, m := range spec.Members {
		p, err := Build(m, repo)
		if err != nil {
			return nil, fmt.Errorf("team file %s, member %d: %w", path, i, err)
		}
		team = append(team, p)
	}
	return team, nil
}

// Build constructs a single battle-ready Pokemon from a MemberSpec,
// looking up species/move/item/ability data in repo and computing
// Base/Computed stats from level, IVs, EVs and nature.
func Build(m MemberSpec, repo *repository.Repository) (*pokemon.Pokemon, error) {
	species, ok := repo.Species[m.Species]
	if !ok {
		return nil, engineerr.New(engineerr.FormatError, fmt.Sprintf("unknown species %q", m.Species))
	}

	level := m.Level
	if level <= 0 {
		level = 100
	}

	ivs := [6]int{31, 31, 31, 31, 31, 31}
	if m.IVs != nil {
		ivs = *m.IVs
	}
	var evs [6]int
	if m.EVs != nil {
		evs = *m.EVs
	}
	natureUp, natureDown, err := parseNature(m.Nature)
	if err != nil {
		return nil, err
	}

	base := pokemon.BaseStats{
		species.BaseStats[pokemon.HP], species.BaseStats[pokemon.Attack], species.BaseStats[pokemon.Defense],
		species.BaseStats[pokemon.SpAttack], species.BaseStats[pokemon.SpDefense], species.BaseStats[pokemon.Speed],
	}
	computed := computeStats(base, ivs, evs, level, natureUp, natureDown)

	moves := make([]pokemon.Move, 0, len(m.Moves))
	for _, moveID := range m.Moves {
		mv, ok := repo.Moves[moveID]
		if !ok {
			return nil, engineerr.New(engineerr.FormatError, fmt.Sprintf("unknown move %q", moveID))
		}
		moves = append(moves, mv.Clone())
	}

	p := &pokemon.Pokemon{
		Species:       species.Name,
		Level:         level,
		CurrentHP:     computed[pokemon.HP],
		MaxHP:         computed[pokemon.HP],
		Base:          base,
		Computed:      computed,
		Moves:         moves,
		Types:         append([]typechart.Type(nil), species.Types...),
		OriginalTypes: append([]typechart.Type(nil), species.Types...),
		Weight:        species.Weight,
		Gender:        parseGender(m.Gender),
	}

	if m.Ability != "" {
		ability, ok := repo.Abilities[m.Ability]
		if !ok {
			return nil, engineerr.New(engineerr.FormatError, fmt.Sprintf("unknown ability %q", m.Ability))
		}
		p.Ability = pokemon.Ability{ID: m.Ability, Name: ability.Name}
	}
	if m.Item != "" {
		item, ok := repo.Items[m.Item]
		if !ok {
			return nil, engineerr.New(engineerr.FormatError, fmt.Sprintf("unknown item %q", m.Item))
		}
		p.Item = pokemon.Item{
			ID:           m.Item,
			Name:         item.Name,
			IsChoiceItem: item.IsChoiceItem,
			IsTypeBoost:  item.IsTypeBoost,
			BoostType:    item.BoostType,
			BoostPower:   item.BoostPower,
		}
	}
	if m.TeraType != "" {
		t, ok := typechart.Parse(m.TeraType)
		if !ok {
			return nil, engineerr.New(engineerr.FormatError, fmt.Sprintf("unknown tera type %q", m.TeraType))
		}
		p.TeraType = t
	}

	return p, nil
}

func parseGender(s string) pokemon.Gender {
	switch s {
	case "male", "Male", "M":
		return pokemon.GenderMale
	case "female", "Female", "F":
		return pokemon.GenderFemale
	case "none", "None", "N":
		return pokemon.GenderNone
	default:
		return pokemon.GenderUnknown
	}
}

// computeStats applies the standard level/IV/EV/nature stat formula (every
// generation since Gen 3 shares it; Gens 1-2 lack EVs/natures, which this
// engine's team files simply leave at defaults for those formats).
func computeStats(base pokemon.BaseStats, ivs, evs [6]int, level int, natureUp, natureDown pokemon.Stat) pokemon.ComputedStats {
	var out pokemon.ComputedStats
	out[pokemon.HP] = hpStat(base[pokemon.HP], ivs[pokemon.HP], evs[pokemon.HP], level)
	for _, stat := range []pokemon.Stat{pokemon.Attack, pokemon.Defense, pokemon.SpAttack, pokemon.SpDefense, pokemon.Speed} {
		v := otherStat(base[stat], ivs[stat], evs[stat], level)
		switch stat {
		case natureUp:
			v = v * 110 / 100
		case natureDown:
			v = v * 90 / 100
		}
		out[stat] = v
	}
	return out
}

func hpStat(base, iv, ev, level int) int {
	if base == 1 {
		return 1 // Shedinja-style 1-HP species
	}
	return (2*base+iv+ev/4)*level/100 + level + 10
}

func otherStat(base, iv, ev, level int) int {
	return (2*base+iv+ev/4)*level/100 + 5
}

// natureTable maps a nature name to the stat it raises and the stat it
// lowers; neutral natures map both to a sentinel no stat ever equals.
var natureTable = map[string][2]pokemon.Stat{
	"hardy": {-1, -1}, "lonely": {pokemon.Attack, pokemon.Defense}, "brave": {pokemon.Attack, pokemon.Speed},
	"adamant": {pokemon.Attack, pokemon.SpAttack}, "naughty": {pokemon.Attack, pokemon.SpDefense},
	"bold": {pokemon.Defense, pokemon.Attack}, "docile": {-1, -1}, "relaxed": {pokemon.Defense, pokemon.Speed},
	"impish": {pokemon.Defense, pokemon.SpAttack}, "lax": {pokemon.Defense, pokemon.SpDefense},
	"timid": {pokemon.Speed, pokemon.Attack}, "hasty": {pokemon.Speed, pokemon.Defense}, "serious": {-1, -1},
	"jolly": {pokemon.Speed, pokemon.SpAttack}, "naive": {pokemon.Speed, pokemon.SpDefense},
	"modest": {pokemon.SpAttack, pokemon.Attack}, "mild": {pokemon.SpAttack, pokemon.Defense},
	"quiet": {pokemon.SpAttack, pokemon.Speed}, "bashful": {-1, -1}, "rash": {pokemon.SpAttack, pokemon.SpDefense},
	"calm": {pokemon.SpDefense, pokemon.Attack}, "gentle": {pokemon.SpDefense, pokemon.Defense},
	"sassy": {pokemon.SpDefense, pokemon.Speed}, "careful": {pokemon.SpDefense, pokemon.SpAttack},
	"quirky": {-1, -1},
}

func parseNature(name string) (up, down pokemon.Stat, err error) {
	if name == "" {
		return -1, -1, nil
	}
	pair, ok := natureTable[lower(name)]
	if !ok {
		return 0, 0, engineerr.New(engineerr.FormatError, fmt.Sprintf("unknown nature %q", name))
	}
	return pair[0], pair[1], nil
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
