package game

import "github.com/shopspring/decimal"

// AwardCondition names a trainer stat and the minimum value that earns the
// award.
type AwardCondition struct {
	StatKey  string          `json:"stat_key"`
	MinValue decimal.Decimal `json:"min_value"`
}

type Award struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Condition   AwardCondition `json:"condition"`
}

// ConditionMet reports whether the trainer satisfies the award condition.
// An unknown stat key never satisfies it.
func (a Award) ConditionMet(t *Trainer) bool {
	if t == nil {
		return false
	}
	value, ok := t.StatValue(a.Condition.StatKey)
	if !ok {
		return false
	}
	return value.GreaterThanOrEqual(a.Condition.MinValue)
}

// ResourceReward is what a trainer gains for completing something: player
// EXP, dollars, EXP for team creatures and zero or more items.
type ResourceReward struct {
	PlayerEXP     decimal.Decimal `json:"player_exp"`
	PlayerDollars decimal.Decimal `json:"player_dollars"`
	CreatureEXP   decimal.Decimal `json:"creature_exp"`
	Items         []Item          `json:"items,omitempty"`
}

// NewResourceReward builds a reward from decimal string literals.
func NewResourceReward(playerEXP, playerDollars, creatureEXP string, items ...Item) ResourceReward {
	return ResourceReward{
		PlayerEXP:     decimal.RequireFromString(playerEXP),
		PlayerDollars: decimal.RequireFromString(playerDollars),
		CreatureEXP:   decimal.RequireFromString(creatureEXP),
		Items:         items,
	}
}

// AwardCatalog lists the achievable awards.
func AwardCatalog() []Award {
	return []Award{
		{
			Name:        "First Steps",
			Description: "Earn your first experience point.",
			Condition:   AwardCondition{StatKey: "exp", MinValue: decimal.NewFromInt(1)},
		},
		{
			Name:        "Seasoned Adventurer",
			Description: "Reach 10000 EXP.",
			Condition:   AwardCondition{StatKey: "exp", MinValue: decimal.NewFromInt(10000)},
		},
		{
			Name:        "Pocket Money",
			Description: "Hold 1000 dollars at once.",
			Condition:   AwardCondition{StatKey: "dollars", MinValue: decimal.NewFromInt(1000)},
		},
		{
			Name:        "Collector",
			Description: "Own 10 legendary creatures.",
			Condition:   AwardCondition{StatKey: "creatures_owned", MinValue: decimal.NewFromInt(10)},
		},
		{
			Name:        "Full Squad",
			Description: "Field a full battle team.",
			Condition:   AwardCondition{StatKey: "team_size", MinValue: decimal.NewFromInt(MaxTeamSize)},
		},
		{
			Name:        "Shopkeeper's Friend",
			Description: "Carry 25 items.",
			Condition:   AwardCondition{StatKey: "items_owned", MinValue: decimal.NewFromInt(25)},
		},
	}
}
