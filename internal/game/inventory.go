package game

import "encoding/json"

// CreatureInventory is a trainer's full creature collection, unique by
// creature ID and unbounded in size.
type CreatureInventory struct {
	roster *Roster[*LegendaryCreature]
}

func NewCreatureInventory() *CreatureInventory {
	return &CreatureInventory{roster: NewRoster(creatureKey)}
}

func (inv *CreatureInventory) Add(c *LegendaryCreature) bool {
	if c == nil {
		return false
	}
	return inv.roster.Add(c)
}

func (inv *CreatureInventory) Remove(c *LegendaryCreature) bool {
	if c == nil {
		return false
	}
	return inv.roster.Remove(c)
}

func (inv *CreatureInventory) Get(id string) (*LegendaryCreature, bool) {
	return inv.roster.Get(id)
}

func (inv *CreatureInventory) Contains(id string) bool {
	return inv.roster.Contains(id)
}

// Creatures returns the collection in insertion order. The slice is a copy.
func (inv *CreatureInventory) Creatures() []*LegendaryCreature {
	return inv.roster.Items()
}

func (inv *CreatureInventory) Len() int {
	return inv.roster.Len()
}

func (inv *CreatureInventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.roster.Items())
}

func (inv *CreatureInventory) UnmarshalJSON(data []byte) error {
	var creatures []*LegendaryCreature
	if err := json.Unmarshal(data, &creatures); err != nil {
		return err
	}
	restored := NewRoster(creatureKey)
	for _, c := range creatures {
		restored.Add(c)
	}
	inv.roster = restored
	return nil
}

func itemKey(item Item) string {
	return item.ID
}

// ItemInventory is a trainer's item bag, unique by item ID.
type ItemInventory struct {
	roster *Roster[Item]
}

func NewItemInventory() *ItemInventory {
	return &ItemInventory{roster: NewRoster(itemKey)}
}

func (inv *ItemInventory) Add(item Item) bool {
	if item.ID == "" {
		return false
	}
	return inv.roster.Add(item)
}

func (inv *ItemInventory) Remove(item Item) bool {
	return inv.roster.Remove(item)
}

func (inv *ItemInventory) RemoveByID(id string) (Item, bool) {
	return inv.roster.RemoveByKey(id)
}

func (inv *ItemInventory) Get(id string) (Item, bool) {
	return inv.roster.Get(id)
}

func (inv *ItemInventory) Contains(id string) bool {
	return inv.roster.Contains(id)
}

// Items returns the bag contents in insertion order. The slice is a copy.
func (inv *ItemInventory) Items() []Item {
	return inv.roster.Items()
}

func (inv *ItemInventory) Len() int {
	return inv.roster.Len()
}

func (inv *ItemInventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.roster.Items())
}

func (inv *ItemInventory) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	restored := NewRoster(itemKey)
	for _, item := range items {
		restored.Add(item)
	}
	inv.roster = restored
	return nil
}
