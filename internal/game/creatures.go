package game

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stat bounds for legendary creatures. Battle math assumes every creature
// stays inside these ranges; ClampStats coerces after construction, loads
// and stat mutations.
const (
	MinRating        = 1
	MaxRating        = 6
	MaxActiveEffects = 10
)

var (
	MinCritRate            = decimal.RequireFromString("0.15")
	MinCritDamage          = decimal.RequireFromString("1.5")
	MinResistance          = decimal.RequireFromString("0.15")
	MaxResistance          = decimal.NewFromInt(1)
	MaxAccuracy            = decimal.NewFromInt(1)
	FullAttackGauge        = decimal.NewFromInt(1)
	MaxExtraTurnChance     = decimal.RequireFromString("0.5")
	MaxCounterattackChance = decimal.NewFromInt(1)
	MaxCritResist          = decimal.NewFromInt(1)
)

type SkillKind string

const (
	SkillKindActive  SkillKind = "active"
	SkillKindPassive SkillKind = "passive"
	SkillKindLeader  SkillKind = "leader"
)

type Skill struct {
	Name        string    `json:"name"`
	Kind        SkillKind `json:"kind"`
	Description string    `json:"description,omitempty"`
}

// LegendaryCreature is a battle participant. Stats use decimal arithmetic
// end to end; a creature never carries float drift between turns.
type LegendaryCreature struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Element Element `json:"element"`
	Rating  int     `json:"rating"`

	EXP         decimal.Decimal `json:"exp"`
	MaxHP       decimal.Decimal `json:"max_hp"`
	MaxMP       decimal.Decimal `json:"max_mp"`
	AttackPower decimal.Decimal `json:"attack_power"`
	Defense     decimal.Decimal `json:"defense"`
	AttackSpeed decimal.Decimal `json:"attack_speed"`

	CritRate            decimal.Decimal `json:"crit_rate"`
	CritDamage          decimal.Decimal `json:"crit_damage"`
	Resistance          decimal.Decimal `json:"resistance"`
	Accuracy            decimal.Decimal `json:"accuracy"`
	AttackGauge         decimal.Decimal `json:"attack_gauge"`
	ExtraTurnChance     decimal.Decimal `json:"extra_turn_chance"`
	CounterattackChance decimal.Decimal `json:"counterattack_chance"`
	CritResist          decimal.Decimal `json:"crit_resist"`

	Skills []Skill `json:"skills,omitempty"`
}

// CreatureSpec is a catalog entry for spawning a creature. Stat values are
// decimal string literals converted at construction.
type CreatureSpec struct {
	Name        string
	Element     Element
	Rating      int
	MaxHP       string
	MaxMP       string
	AttackPower string
	Defense     string
	AttackSpeed string
}

// NewCreatureFromSpec spawns a fresh creature with a new ID. Secondary stats
// start at their minimums.
func NewCreatureFromSpec(spec CreatureSpec) *LegendaryCreature {
	c := &LegendaryCreature{
		ID:          uuid.Must(uuid.NewUUID()).String(),
		Name:        spec.Name,
		Element:     normalizeElement(spec.Element),
		Rating:      spec.Rating,
		MaxHP:       decimal.RequireFromString(spec.MaxHP),
		MaxMP:       decimal.RequireFromString(spec.MaxMP),
		AttackPower: decimal.RequireFromString(spec.AttackPower),
		Defense:     decimal.RequireFromString(spec.Defense),
		AttackSpeed: decimal.RequireFromString(spec.AttackSpeed),
		CritRate:    MinCritRate,
		CritDamage:  MinCritDamage,
		Resistance:  MinResistance,
	}
	c.ClampStats()
	return c
}

// ClampStats coerces every bounded stat into its legal range.
func (c *LegendaryCreature) ClampStats() {
	c.Rating = clampInt(c.Rating, MinRating, MaxRating)
	c.CritRate = clampDecimalMin(c.CritRate, MinCritRate)
	c.CritDamage = clampDecimalMin(c.CritDamage, MinCritDamage)
	c.Resistance = clampDecimal(c.Resistance, MinResistance, MaxResistance)
	c.Accuracy = clampDecimal(c.Accuracy, decimal.Zero, MaxAccuracy)
	c.AttackGauge = clampDecimal(c.AttackGauge, decimal.Zero, FullAttackGauge)
	c.ExtraTurnChance = clampDecimal(c.ExtraTurnChance, decimal.Zero, MaxExtraTurnChance)
	c.CounterattackChance = clampDecimal(c.CounterattackChance, decimal.Zero, MaxCounterattackChance)
	c.CritResist = clampDecimal(c.CritResist, decimal.Zero, MaxCritResist)
}

// StarterCreatureCatalog lists the creatures available to a new trainer.
func StarterCreatureCatalog() []CreatureSpec {
	return []CreatureSpec{
		{Name: "Terragon", Element: ElementTerra, Rating: 2, MaxHP: "5235", MaxMP: "312", AttackPower: "512", Defense: "433", AttackSpeed: "98"},
		{Name: "Flarix", Element: ElementFlame, Rating: 2, MaxHP: "4870", MaxMP: "355", AttackPower: "587", Defense: "361", AttackSpeed: "103"},
		{Name: "Maribelle", Element: ElementSea, Rating: 2, MaxHP: "5510", MaxMP: "340", AttackPower: "468", Defense: "474", AttackSpeed: "95"},
		{Name: "Verdantus", Element: ElementNature, Rating: 2, MaxHP: "5385", MaxMP: "328", AttackPower: "495", Defense: "452", AttackSpeed: "97"},
		{Name: "Voltaren", Element: ElementElectric, Rating: 2, MaxHP: "4725", MaxMP: "372", AttackPower: "604", Defense: "338", AttackSpeed: "111"},
		{Name: "Glacielle", Element: ElementIce, Rating: 2, MaxHP: "5080", MaxMP: "347", AttackPower: "531", Defense: "419", AttackSpeed: "99"},
		{Name: "Ferrodon", Element: ElementMetal, Rating: 2, MaxHP: "5650", MaxMP: "301", AttackPower: "477", Defense: "508", AttackSpeed: "88"},
		{Name: "Umbraxis", Element: ElementDark, Rating: 2, MaxHP: "4960", MaxMP: "363", AttackPower: "572", Defense: "377", AttackSpeed: "106"},
	}
}
