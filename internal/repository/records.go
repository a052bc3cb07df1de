package repository

// moveRecord is moves.json's per-entry shape.
type moveRecord struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Category  string `json:"category"`
	BasePower int    `json:"basePower"`
	Accuracy  int    `json:"accuracy"`
	PP        int    `json:"pp"`
	Priority  int    `json:"priority"`
	Target    string `json:"target"`

	Flags moveFlagsRecord `json:"flags"`

	Secondary []secondaryEffectRecord `json:"secondary"`

	Drain     int `json:"drain"`
	RecoilPct int `json:"recoilPct"`
	HealPct   int `json:"healPct"`

	MultiHitKind string `json:"multiHitKind"`
	MultiHitMin  int    `json:"multiHitMin"`
	MultiHitMax  int    `json:"multiHitMax"`

	OverrideAttackStat   string `json:"overrideAttackStat"`
	UseTargetOffenseStat bool   `json:"useTargetOffenseStat"`

	// IsZMove/IsMaxMove mark moves only reachable through their
	// generation-specific escalation mechanic; the engine does not yet
	// simulate Z-Move/Dynamax itself (see DESIGN.md), so these are parsed
	// and retained on the record but not threaded into pokemon.Move.
	IsZMove  bool `json:"isZMove"`
	IsMaxMove bool `json:"isMaxMove"`

	ScriptedEffectID string `json:"scriptedEffectId"`
}

type moveFlagsRecord struct {
	Contact     bool `json:"contact"`
	Sound       bool `json:"sound"`
	Powder      bool `json:"powder"`
	Bullet      bool `json:"bullet"`
	Punch       bool `json:"punch"`
	Bite        bool `json:"bite"`
	Pulse       bool `json:"pulse"`
	Dance       bool `json:"dance"`
	Slicing     bool `json:"slicing"`
	Protect     bool `json:"protect"`
	Reflectable bool `json:"reflectable"`
	Authentic   bool `json:"authentic"`
	HighCrit    bool `json:"highCrit"`
	Defrost     bool `json:"defrost"`
}

type secondaryEffectRecord struct {
	Chance      int            `json:"chance"`
	Status      string         `json:"status"`
	Volatile    string         `json:"volatile"`
	VolatileDur int            `json:"volatileDuration"`
	BoostTarget bool           `json:"boostTarget"`
	Boosts      map[string]int `json:"boosts"`
	Flinch      bool           `json:"flinch"`
}

// speciesRecord is pokemon.json's per-entry shape.
type speciesRecord struct {
	Name      string         `json:"name"`
	Types     []string       `json:"types"`
	BaseStats baseStatsRecord `json:"baseStats"`
	Weight    float64        `json:"weight"`
	Abilities []string       `json:"abilities"`
}

type baseStatsRecord struct {
	HP       int `json:"hp"`
	Attack   int `json:"attack"`
	Defense  int `json:"defense"`
	SpAttack int `json:"spAttack"`
	SpDefense int `json:"spDefense"`
	Speed    int `json:"speed"`
}

// itemRecord is items.json's per-entry shape.
type itemRecord struct {
	Name string `json:"name"`

	IsBerry       bool `json:"isBerry"`
	IsChoiceItem  bool `json:"isChoiceItem"`
	IsTypeBoost   bool `json:"isTypeBoost"`
	IsMegaStone   bool `json:"isMegaStone"`

	BoostType  string  `json:"boostType"`
	BoostPower float64 `json:"boostPower"`

	BerryCureStatus string `json:"berryCureStatus"`

	FlingPower int `json:"flingPower"`
}

// abilityRecord is abilities.json's per-entry shape: name only. The engine
// has no ability-effect dispatch system anywhere (see DESIGN.md Open
// Questions), so there is nothing beyond identity for this record to
// carry yet.
type abilityRecord struct {
	Name string `json:"name"`
}
