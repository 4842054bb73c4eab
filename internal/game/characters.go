package game

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Character is any game character that can occupy a tile.
type Character interface {
	CharacterID() string
	CharacterName() string
}

func characterKey(ch Character) string {
	if ch == nil {
		return ""
	}
	return ch.CharacterID()
}

// GameCharacter is the base record embedded in every character kind.
type GameCharacter struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Location *AdventureModeLocation `json:"location,omitempty"`
}

func newGameCharacter(name string, location *AdventureModeLocation) GameCharacter {
	return GameCharacter{
		ID:       uuid.Must(uuid.NewUUID()).String(),
		Name:     name,
		Location: location,
	}
}

func (g *GameCharacter) CharacterID() string {
	return g.ID
}

func (g *GameCharacter) CharacterName() string {
	return g.Name
}

// NPC is a non-player character carrying a message for the player.
type NPC struct {
	GameCharacter
	Message string `json:"message"`
}

func NewNPC(name string, location *AdventureModeLocation, message string) *NPC {
	return &NPC{GameCharacter: newGameCharacter(name, location), Message: message}
}

type TrainerKind string

const (
	TrainerPlayer TrainerKind = "player"
	TrainerCPU    TrainerKind = "cpu"
)

// Trainer is a character that owns creatures and items and brings a team to
// battles. EXP and dollars use decimal arithmetic like all progression stats.
type Trainer struct {
	GameCharacter
	Kind      TrainerKind        `json:"kind"`
	EXP       decimal.Decimal    `json:"exp"`
	Dollars   decimal.Decimal    `json:"dollars"`
	Creatures *CreatureInventory `json:"creatures"`
	Items     *ItemInventory     `json:"items"`
	Team      *BattleTeam        `json:"team"`
}

func newTrainer(name string, kind TrainerKind, location *AdventureModeLocation) *Trainer {
	return &Trainer{
		GameCharacter: newGameCharacter(name, location),
		Kind:          kind,
		EXP:           decimal.Zero,
		Dollars:       decimal.Zero,
		Creatures:     NewCreatureInventory(),
		Items:         NewItemInventory(),
		Team:          NewBattleTeam(),
	}
}

func NewPlayerTrainer(name string) *Trainer {
	return newTrainer(name, TrainerPlayer, nil)
}

// NewCPUTrainer creates a computer-controlled trainer with a random name.
func NewCPUTrainer(rng *rand.Rand) *Trainer {
	return newTrainer(RandomTrainerName(rng), TrainerCPU, nil)
}

// AddCreature puts a creature into the trainer's collection.
func (t *Trainer) AddCreature(c *LegendaryCreature) bool {
	return t.Creatures.Add(c)
}

// AddToTeam moves a collected creature onto the battle team. The creature
// must already be in the trainer's collection.
func (t *Trainer) AddToTeam(id string) bool {
	c, ok := t.Creatures.Get(id)
	if !ok {
		return false
	}
	return t.Team.Add(c)
}

// RemoveFromTeam takes a creature off the battle team. It stays in the
// trainer's collection.
func (t *Trainer) RemoveFromTeam(id string) bool {
	c, ok := t.Team.Member(id)
	if !ok {
		return false
	}
	return t.Team.Remove(c)
}

// StatValue looks up a progression stat by name. Award conditions probe
// stats this way; unknown keys report false.
func (t *Trainer) StatValue(key string) (decimal.Decimal, bool) {
	switch key {
	case "exp":
		return t.EXP, true
	case "dollars":
		return t.Dollars, true
	case "creatures_owned":
		return decimal.NewFromInt(int64(t.Creatures.Len())), true
	case "items_owned":
		return decimal.NewFromInt(int64(t.Items.Len())), true
	case "team_size":
		return decimal.NewFromInt(int64(t.Team.Len())), true
	default:
		return decimal.Decimal{}, false
	}
}

// ApplyReward credits the trainer with a reward's EXP, dollars and items.
// Creature EXP goes to every current team member.
func (t *Trainer) ApplyReward(reward ResourceReward) {
	t.EXP = t.EXP.Add(reward.PlayerEXP)
	t.Dollars = t.Dollars.Add(reward.PlayerDollars)
	for _, member := range t.Team.Members() {
		member.EXP = member.EXP.Add(reward.CreatureEXP)
	}
	for _, item := range reward.Items {
		t.Items.Add(item)
	}
}
