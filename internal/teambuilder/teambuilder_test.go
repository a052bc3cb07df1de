package teambuilder

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mingu600/tapu-simu/internal/engineerr"
	"github.com/mingu600/tapu-simu/internal/pokemon"
	"github.com/mingu600/tapu-simu/internal/repository"
	"github.com/mingu600/tapu-simu/internal/typechart"
)

func sampleRepo() *repository.Repository {
	return &repository.Repository{
		Moves: map[string]pokemon.Move{
			"thunderbolt": {ID: "thunderbolt", Name: "Thunderbolt", Type: typechart.Electric, Category: pokemon.CategorySpecial, BasePower: 90, Accuracy: 100, MaxPP: 15, PP: 15},
			"recover":     {ID: "recover", Name: "Recover", Type: typechart.Normal, Category: pokemon.CategoryStatus, MaxPP: 10, PP: 10},
		},
		Species: map[string]repository.Species{
			"pikachu": {
				Name:      "Pikachu",
				Types:     []typechart.Type{typechart.Electric},
				BaseStats: [6]int{35, 55, 40, 50, 50, 90},
				Weight:    6,
				Abilities: []string{"static"},
			},
		},
		Items: map[string]repository.Item{
			"lightball": {Name: "Light Ball", IsTypeBoost: true, BoostType: typechart.Electric, BoostPower: 2},
		},
		Abilities: map[string]repository.Ability{
			"static": {Name: "Static"},
		},
	}
}

func TestBuildAppliesDefaultIVsAndEVsWhenAbsent(t *testing.T) {
	repo := sampleRepo()
	m := MemberSpec{Species: "pikachu", Level: 50, Moves: []string{"thunderbolt"}}

	p, err := Build(m, repo)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Level != 50 {
		t.Fatalf("Level = %d, want 50", p.Level)
	}
	// Max IVs, zero EVs, neutral nature at level 50: (2*55+31+0)*50/100+5 = 75
	if p.Computed[pokemon.Attack] != 75 {
		t.Fatalf("Computed[Attack] = %d, want 75", p.Computed[pokemon.Attack])
	}
	if len(p.Moves) != 1 || p.Moves[0].Name != "Thunderbolt" {
		t.Fatalf("unexpected moves: %+v", p.Moves)
	}
}

func TestBuildDefaultsLevelTo100WhenUnset(t *testing.T) {
	repo := sampleRepo()
	p, err := Build(MemberSpec{Species: "pikachu"}, repo)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Level != 100 {
		t.Fatalf("Level = %d, want 100", p.Level)
	}
}

func TestBuildAppliesNatureBoostAndDrop(t *testing.T) {
	repo := sampleRepo()
	modest, err := Build(MemberSpec{Species: "pikachu", Level: 50, Nature: "Modest"}, repo)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	neutral, err := Build(MemberSpec{Species: "pikachu", Level: 50}, repo)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if modest.Computed[pokemon.SpAttack] <= neutral.Computed[pokemon.SpAttack] {
		t.Fatalf("Modest SpAttack %d should exceed neutral %d", modest.Computed[pokemon.SpAttack], neutral.Computed[pokemon.SpAttack])
	}
	if modest.Computed[pokemon.Attack] >= neutral.Computed[pokemon.Attack] {
		t.Fatalf("Modest Attack %d should be below neutral %d", modest.Computed[pokemon.Attack], neutral.Computed[pokemon.Attack])
	}
}

func TestBuildHonorsExplicitIVsAndEVs(t *testing.T) {
	repo := sampleRepo()
	ivs := [6]int{0, 0, 0, 0, 0, 0}
	evs := [6]int{0, 252, 0, 0, 0, 0}
	p, err := Build(MemberSpec{Species: "pikachu", Level: 50, IVs: &ivs, EVs: &evs}, repo)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// (2*55+0+252/4)*50/100+5 = (110+63)*0.5+5 = 86+5 = 91 (integer division: 173*50/100=86)
	if p.Computed[pokemon.Attack] != 91 {
		t.Fatalf("Computed[Attack] = %d, want 91", p.Computed[pokemon.Attack])
	}
}

func TestBuildRejectsUnknownSpeciesMoveItemAbility(t *testing.T) {
	repo := sampleRepo()
	cases := []MemberSpec{
		{Species: "missingno"},
		{Species: "pikachu", Moves: []string{"hyperbeam"}},
		{Species: "pikachu", Item: "leftovers"},
		{Species: "pikachu", Ability: "levitate"},
		{Species: "pikachu", TeraType: "Nonsense"},
	}
	for i, m := range cases {
		_, err := Build(m, repo)
		if err == nil {
			t.Fatalf("case %d: expected error, got nil", i)
		}
		if !engineerr.Is(err, engineerr.FormatError) {
			t.Fatalf("case %d: expected FormatError, got %v", i, err)
		}
	}
}

func TestBuildResolvesItemAndTeraType(t *testing.T) {
	repo := sampleRepo()
	p, err := Build(MemberSpec{Species: "pikachu", Item: "lightball", TeraType: "Electric"}, repo)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Item.Name != "Light Ball" {
		t.Fatalf("Item.Name = %q, want Light Ball", p.Item.Name)
	}
	if p.TeraType != typechart.Electric {
		t.Fatalf("TeraType = %v, want Electric", p.TeraType)
	}
}

func TestLoadTeamReadsMembersInOrder(t *testing.T) {
	repo := sampleRepo()
	dir := t.TempDir()
	path := filepath.Join(dir, "team.json")

	spec := TeamSpec{Members: []MemberSpec{
		{Species: "pikachu", Level: 50, Moves: []string{"thunderbolt", "recover"}},
		{Species: "pikachu", Level: 30},
	}}
	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	team, err := LoadTeam(path, repo)
	if err != nil {
		t.Fatalf("LoadTeam: %v", err)
	}
	if len(team) != 2 {
		t.Fatalf("len(team) = %d, want 2", len(team))
	}
	if team[0].Level != 50 || team[1].Level != 30 {
		t.Fatalf("unexpected levels: %d, %d", team[0].Level, team[1].Level)
	}
}

func TestLoadTeamAcceptsYAMLByExtension(t *testing.T) {
	repo := sampleRepo()
	dir := t.TempDir()
	path := filepath.Join(dir, "team.yaml")

	const doc = `
members:
  - species: pikachu
    level: 50
    moves: [thunderbolt]
  - species: pikachu
    level: 25
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	team, err := LoadTeam(path, repo)
	if err != nil {
		t.Fatalf("LoadTeam: %v", err)
	}
	if len(team) != 2 || team[0].Level != 50 || team[1].Level != 25 {
		t.Fatalf("unexpected team: %+v", team)
	}
}

func TestLoadTeamRejectsEmptyRoster(t *testing.T) {
	repo := sampleRepo()
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(path, []byte(`{"members":[]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadTeam(path, repo); err == nil {
		t.Fatal("expected error for empty roster")
	}
}
