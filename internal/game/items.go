package game

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemKind is the closed set of item variants. Kinds replace the need for a
// subtype per item family: no kind carries behavior of its own.
type ItemKind string

const (
	ItemKindWeapon            ItemKind = "weapon"
	ItemKindArmor             ItemKind = "armor"
	ItemKindCrop              ItemKind = "crop"
	ItemKindEgg               ItemKind = "egg"
	ItemKindBall              ItemKind = "ball"
	ItemKindRune              ItemKind = "rune"
	ItemKindAwakenShard       ItemKind = "awaken_shard"
	ItemKindEXPShard          ItemKind = "exp_shard"
	ItemKindLevelUpShard      ItemKind = "level_up_shard"
	ItemKindSkillLevelUpShard ItemKind = "skill_level_up_shard"
)

func AllItemKinds() []ItemKind {
	return []ItemKind{
		ItemKindWeapon, ItemKindArmor, ItemKindCrop,
		ItemKindEgg, ItemKindBall, ItemKindRune,
		ItemKindAwakenShard, ItemKindEXPShard, ItemKindLevelUpShard, ItemKindSkillLevelUpShard,
	}
}

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindWeapon, ItemKindArmor, ItemKindCrop,
		ItemKindEgg, ItemKindBall, ItemKindRune,
		ItemKindAwakenShard, ItemKindEXPShard, ItemKindLevelUpShard, ItemKindSkillLevelUpShard:
		return true
	default:
		return false
	}
}

// ForTrainer reports whether the kind equips or feeds the trainer directly.
func (k ItemKind) ForTrainer() bool {
	switch k {
	case ItemKindWeapon, ItemKindArmor, ItemKindCrop:
		return true
	default:
		return false
	}
}

// ForCreature reports whether the kind is applied to a legendary creature.
// Shards are consumed by game systems rather than either party and report
// false from both predicates.
func (k ItemKind) ForCreature() bool {
	switch k {
	case ItemKindEgg, ItemKindBall, ItemKindRune:
		return true
	default:
		return false
	}
}

type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Kind        ItemKind        `json:"kind"`
	Description string          `json:"description,omitempty"`
	DollarPrice decimal.Decimal `json:"dollar_price"`
}

// ItemSpec is a catalog entry for minting items. Price is a decimal string
// literal converted at construction.
type ItemSpec struct {
	Name        string
	Kind        ItemKind
	Price       string
	Description string
}

// NewItemFromSpec mints an item with a fresh ID.
func NewItemFromSpec(spec ItemSpec) Item {
	return Item{
		ID:          uuid.Must(uuid.NewUUID()).String(),
		Name:        spec.Name,
		Kind:        spec.Kind,
		Description: spec.Description,
		DollarPrice: decimal.RequireFromString(spec.Price),
	}
}

// ItemCatalog lists the items sold in item shops.
func ItemCatalog() []ItemSpec {
	return []ItemSpec{
		{Name: "Bronze Sword", Kind: ItemKindWeapon, Price: "250", Description: "A basic trainer sidearm."},
		{Name: "Leather Vest", Kind: ItemKindArmor, Price: "220", Description: "Light protection for long journeys."},
		{Name: "Golden Wheat", Kind: ItemKindCrop, Price: "35", Description: "A crop that can be planted or eaten."},
		{Name: "Speckled Egg", Kind: ItemKindEgg, Price: "1200", Description: "Hatches into a random legendary creature."},
		{Name: "Capture Ball", Kind: ItemKindBall, Price: "180", Description: "Catches a weakened wild creature."},
		{Name: "Energy Rune", Kind: ItemKindRune, Price: "950", Description: "Boosts the stats of the creature holding it."},
		{Name: "Awaken Shard", Kind: ItemKindAwakenShard, Price: "2400", Description: "Awakens a creature to its next form."},
		{Name: "EXP Shard", Kind: ItemKindEXPShard, Price: "600", Description: "Grants a burst of creature EXP."},
		{Name: "Level-Up Shard", Kind: ItemKindLevelUpShard, Price: "1500", Description: "Raises a creature one level instantly."},
		{Name: "Skill Shard", Kind: ItemKindSkillLevelUpShard, Price: "1800", Description: "Levels up a random creature skill."},
	}
}
