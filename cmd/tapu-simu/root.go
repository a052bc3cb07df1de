package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/repository"
	"github.com/mingu600/tapu-simu/internal/turnengine"
)

var (
	movesPath     string
	pokemonPath   string
	itemsPath     string
	abilitiesPath string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "tapu-simu",
	Short: "A deterministic, format-aware Pokemon battle engine",
	Long: `tapu-simu runs the battle engine from the command line: simulate a
full battle between two teams, generate a single turn against a serialized
state, or dump a state for inspection.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&movesPath, "moves", "data/moves.json", "path to moves data file")
	rootCmd.PersistentFlags().StringVar(&pokemonPath, "pokemon", "data/pokemon.json", "path to species data file")
	rootCmd.PersistentFlags().StringVar(&itemsPath, "items", "data/items.json", "path to items data file")
	rootCmd.PersistentFlags().StringVar(&abilitiesPath, "abilities", "data/abilities.json", "path to abilities data file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (development) logging")
}

// newLogger builds the zap.Logger every subcommand threads into the
// repository loader and turn generator, matching the teacher's convention
// of a single logger constructed at the command boundary rather than a
// package-global.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadRepository loads the four data files behind the persistent --moves/
// --pokemon/--items/--abilities flags.
func loadRepository(log *zap.Logger) (*repository.Repository, error) {
	return repository.Load(movesPath, pokemonPath, itemsPath, abilitiesPath, log)
}

// parseFormatKind parses a format flag value ("singles", "doubles", "vgc",
// "triples") case-insensitively.
func parseFormatKind(s string) (battleformat.Kind, error) {
	switch strings.ToLower(s) {
	case "singles":
		return battleformat.Singles, nil
	case "doubles":
		return battleformat.Doubles, nil
	case "vgc":
		return battleformat.VGC, nil
	case "triples":
		return battleformat.Triples, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want singles, doubles, vgc or triples)", s)
	}
}

// parseBranchPolicy parses a --policy flag value.
func parseBranchPolicy(s string) (turnengine.BranchPolicy, error) {
	switch strings.ToLower(s) {
	case "deterministic", "":
		return turnengine.Deterministic, nil
	case "crits", "crits-only", "critsonly":
		return turnengine.CritsOnly, nil
	case "rolls", "rolls-only", "rollsonly":
		return turnengine.RollsOnly, nil
	case "full":
		return turnengine.Full, nil
	default:
		return 0, fmt.Errorf("unknown branch policy %q (want deterministic, crits, rolls or full)", s)
	}
}
