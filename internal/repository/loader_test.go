package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mingu600/tapu-simu/internal/engineerr"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadParsesValidRecordsAcrossAllFourFiles(t *testing.T) {
	dir := t.TempDir()

	moves := writeFile(t, dir, "moves.json", `{
		"tackle": {"name": "Tackle", "type": "Normal", "category": "Physical", "basePower": 40, "accuracy": 100, "pp": 35, "priority": 0, "target": "Normal", "flags": {"contact": true}},
		"thunderwave": {"name": "Thunder Wave", "type": "Electric", "category": "Status", "accuracy": 90, "pp": 20, "target": "Normal", "secondary": [{"chance": 100, "status": "Paralysis"}]}
	}`)
	pokemonFile := writeFile(t, dir, "pokemon.json", `{
		"pikachu": {"name": "Pikachu", "types": ["Electric"], "baseStats": {"hp": 35, "attack": 55, "defense": 40, "spAttack": 50, "spDefense": 50, "speed": 90}, "weight": 6.0, "abilities": ["static"]}
	}`)
	items := writeFile(t, dir, "items.json", `{
		"leftovers": {"name": "Leftovers"},
		"charcoal": {"name": "Charcoal", "isTypeBoost": true, "boostType": "Fire", "boostPower": 1.2}
	}`)
	abilities := writeFile(t, dir, "abilities.json", `{
		"static": {"name": "Static"}
	}`)

	repo, err := Load(moves, pokemonFile, items, abilities)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tackle, ok := repo.Moves["tackle"]
	if !ok {
		t.Fatal("expected tackle to load")
	}
	if tackle.Type != typechart.Normal || tackle.Category != pokemon.CategoryPhysical || tackle.BasePower != 40 {
		t.Fatalf("tackle decoded incorrectly: %+v", tackle)
	}

	twave := repo.Moves["thunderwave"]
	if len(twave.Secondary) != 1 || twave.Secondary[0].Status != pokemon.StatusParalysis || twave.Secondary[0].Chance != 100 {
		t.Fatalf("thunder wave secondary decoded incorrectly: %+v", twave.Secondary)
	}

	pikachu, ok := repo.Species["pikachu"]
	if !ok || pikachu.BaseStats[pokemon.Speed] != 90 || pikachu.Types[0] != typechart.Electric {
		t.Fatalf("pikachu decoded incorrectly: %+v", pikachu)
	}

	charcoal := repo.Items["charcoal"]
	if !charcoal.IsTypeBoost || charcoal.BoostType != typechart.Fire || charcoal.BoostPower != 1.2 {
		t.Fatalf("charcoal decoded incorrectly: %+v", charcoal)
	}

	if repo.Abilities["static"].Name != "Static" {
		t.Fatalf("static ability decoded incorrectly: %+v", repo.Abilities["static"])
	}
}

func TestLoadSkipsMinorityOfMalformedRecords(t *testing.T) {
	dir := t.TempDir()

	moves := writeFile(t, dir, "moves.json", `{
		"tackle": {"name": "Tackle", "type": "Normal", "category": "Physical", "basePower": 40, "accuracy": 100, "pp": 35, "target": "Normal"},
		"badmove": {"name": "Bad Move", "type": "NotARealType", "category": "Physical", "target": "Normal"}
	}`)
	pokemonFile := writeFile(t, dir, "pokemon.json", `{"pikachu": {"name": "Pikachu", "types": ["Electric"], "baseStats": {"speed": 90}}}`)
	items := writeFile(t, dir, "items.json", `{"leftovers": {"name": "Leftovers"}}`)
	abilities := writeFile(t, dir, "abilities.json", `{"static": {"name": "Static"}}`)

	repo, err := Load(moves, pokemonFile, items, abilities)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := repo.Moves["tackle"]; !ok {
		t.Fatal("expected tackle to survive despite a sibling record failing")
	}
	if _, ok := repo.Moves["badmove"]; ok {
		t.Fatal("expected badmove to be skipped, not loaded")
	}
}

func TestLoadFailsWhenMostRecordsInAFileAreMalformed(t *testing.T) {
	dir := t.TempDir()

	moves := writeFile(t, dir, "moves.json", `{
		"bad1": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"bad2": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"bad3": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"bad4": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"bad5": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"bad6": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"bad7": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"bad8": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"bad9": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"bad10": {"type": "NotAType", "category": "Physical", "target": "Normal"},
		"good": {"name": "Tackle", "type": "Normal", "category": "Physical", "target": "Normal"}
	}`)
	pokemonFile := writeFile(t, dir, "pokemon.json", `{}`)
	items := writeFile(t, dir, "items.json", `{"leftovers": {"name": "Leftovers"}}`)
	abilities := writeFile(t, dir, "abilities.json", `{"static": {"name": "Static"}}`)

	_, err := Load(moves, pokemonFile, items, abilities)
	if err == nil {
		t.Fatal("expected Load to fail when >90% of moves.json fails to parse")
	}
	if !engineerr.Is(err, engineerr.DataError) {
		t.Fatalf("expected a DataError, got %v", err)
	}
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.json"))
	if err == nil {
		t.Fatal("expected Load to fail on a missing file")
	}
	if !engineerr.Is(err, engineerr.DataError) {
		t.Fatalf("expected a DataError, got %v", err)
	}
}
