// Package repository is the data-repository external-collaborator boundary
//: it turns the four JSON data files into the typed tables the
// engine's other packages consult, generalizing the teacher's
// gamedata.Load[T] embedded-FS pattern to arbitrary filesystem paths.
package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mingu600/tapu-simu/internal/engineerr"
	"github.com/mingu600/tapu-simu/internal/pokemon"
)

// Repository holds the engine's static game data, loaded once and never
// mutated.
type Repository struct {
	Moves     map[string]pokemon.Move
	Species   map[string]Species
	Items     map[string]Item
	Abilities map[string]Ability
}

// Load reads moves.json, pokemon.json, items.json and abilities.json and
// builds a Repository. Parsing is tolerant: a record that fails
// to deserialize, or whose fields fail to resolve to engine enums, is
// skipped with a warning, unless more than 90% of a file's records fail,
// in which case Load returns an engineerr.DataError. An optional *zap.Logger
// receives per-record skip warnings, matching the teacher's structured
// logging convention.
func Load(movesPath, pokemonPath, itemsPath, abilitiesPath string, logger ...*zap.Logger) (*Repository, error) {
	log := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0]
	}

	moves, err := loadMoves(movesPath, log)
	if err != nil {
		return nil, err
	}
	species, err := loadSpecies(pokemonPath, log)
	if err != nil {
		return nil, err
	}
	items, err := loadItems(itemsPath, log)
	if err != nil {
		return nil, err
	}
	abilities, err := loadAbilities(abilitiesPath, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		Moves:     moves,
		Species:   species,
		Items:     items,
		Abilities: abilities,
	}, nil
}

// readRawRecords reads path and unmarshals it into a map from internal id
// to its still-raw JSON record.
func readRawRecords(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, engineerr.Wrap(engineerr.DataError, fmt.Sprintf("reading %s", path), err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, engineerr.Wrap(engineerr.DataError, fmt.Sprintf("parsing %s as a JSON object", path), err)
	}
	return raw, nil
}

// checkFailureRatio is the tolerant-parsing threshold, generalizing
// the teacher's LoadEnemyRegistry "no enemies loaded" fail-fast check from
// an empty-file test to a failure-ratio test.
func checkFailureRatio(path string, total, failed int) error {
	if total == 0 {
		return engineerr.New(engineerr.DataError, fmt.Sprintf("%s: no records present", path))
	}
	if float64(failed)/float64(total) > 0.9 {
		return engineerr.New(engineerr.DataError, fmt.Sprintf(
			"%s: %d of %d records failed to parse, exceeding the 90%% tolerance threshold", path, failed, total))
	}
	return nil
}

func loadMoves(path string, log *zap.Logger) (map[string]pokemon.Move, error) {
	raw, err := readRawRecords(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]pokemon.Move, len(raw))
	failed := 0
	for id, msg := range raw {
		var rec moveRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			failed++
			log.Warn("skipping malformed move record", zap.String("id", id), zap.Error(err))
			continue
		}
		move, err := toMove(id, rec)
		if err != nil {
			failed++
			log.Warn("skipping move record", zap.String("id", id), zap.Error(err))
			continue
		}
		out[id] = move
	}
	if err := checkFailureRatio(path, len(raw), failed); err != nil {
		return nil, err
	}
	return out, nil
}

func loadSpecies(path string, log *zap.Logger) (map[string]Species, error) {
	raw, err := readRawRecords(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Species, len(raw))
	failed := 0
	for id, msg := range raw {
		var rec speciesRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			failed++
			log.Warn("skipping malformed pokemon record", zap.String("id", id), zap.Error(err))
			continue
		}
		sp, err := toSpecies(id, rec)
		if err != nil {
			failed++
			log.Warn("skipping pokemon record", zap.String("id", id), zap.Error(err))
			continue
		}
		out[id] = sp
	}
	if err := checkFailureRatio(path, len(raw), failed); err != nil {
		return nil, err
	}
	return out, nil
}

func loadItems(path string, log *zap.Logger) (map[string]Item, error) {
	raw, err := readRawRecords(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Item, len(raw))
	failed := 0
	for id, msg := range raw {
		var rec itemRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			failed++
			log.Warn("skipping malformed item record", zap.String("id", id), zap.Error(err))
			continue
		}
		it, err := toItem(id, rec)
		if err != nil {
			failed++
			log.Warn("skipping item record", zap.String("id", id), zap.Error(err))
			continue
		}
		out[id] = it
	}
	if err := checkFailureRatio(path, len(raw), failed); err != nil {
		return nil, err
	}
	return out, nil
}

func loadAbilities(path string, log *zap.Logger) (map[string]Ability, error) {
	raw, err := readRawRecords(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Ability, len(raw))
	failed := 0
	for id, msg := range raw {
		var rec abilityRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			failed++
			log.Warn("skipping malformed ability record", zap.String("id", id), zap.Error(err))
			continue
		}
		out[id] = toAbility(rec)
	}
	if err := checkFailureRatio(path, len(raw), failed); err != nil {
		return nil, err
	}
	return out, nil
}
