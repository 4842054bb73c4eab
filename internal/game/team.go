package game

import "encoding/json"

// MaxTeamSize is the number of creatures a trainer brings to battle.
const MaxTeamSize = 5

func creatureKey(c *LegendaryCreature) string {
	if c == nil {
		return ""
	}
	return c.ID
}

// BattleTeam holds up to MaxTeamSize creatures, unique by creature ID, plus a
// leader derived from membership. The leader always points at a current
// member or is nil; it is never left stale after a mutation.
type BattleTeam struct {
	roster *Roster[*LegendaryCreature]
	leader *LegendaryCreature
}

func NewBattleTeam() *BattleTeam {
	return &BattleTeam{roster: NewBoundedRoster(creatureKey, MaxTeamSize)}
}

// Add puts a creature on the team. It fails when the team is full or a
// creature with the same ID is already on it. After a successful add, the
// leader resets to the first member in insertion order.
func (t *BattleTeam) Add(c *LegendaryCreature) bool {
	if c == nil || !t.roster.Add(c) {
		return false
	}
	t.resetLeader()
	return true
}

// Remove takes a creature off the team, matching by ID. After a successful
// remove, the leader resets to the first remaining member, or nil when the
// team is empty.
func (t *BattleTeam) Remove(c *LegendaryCreature) bool {
	if c == nil || !t.roster.Remove(c) {
		return false
	}
	t.resetLeader()
	return true
}

// SetLeader promotes a current member to leader. Any other candidate,
// including nil, clears the leader. The stored member with the matching ID
// becomes the leader regardless of which copy the caller passed.
func (t *BattleTeam) SetLeader(c *LegendaryCreature) {
	t.leader = nil
	if c == nil {
		return
	}
	if member, ok := t.roster.Get(c.ID); ok {
		t.leader = member
	}
}

func (t *BattleTeam) resetLeader() {
	first, ok := t.roster.First()
	if !ok {
		t.leader = nil
		return
	}
	t.leader = first
}

func (t *BattleTeam) Leader() *LegendaryCreature {
	return t.leader
}

// Members returns the creatures in insertion order. The slice is a copy.
func (t *BattleTeam) Members() []*LegendaryCreature {
	return t.roster.Items()
}

func (t *BattleTeam) Member(id string) (*LegendaryCreature, bool) {
	return t.roster.Get(id)
}

func (t *BattleTeam) Contains(id string) bool {
	return t.roster.Contains(id)
}

func (t *BattleTeam) Len() int {
	return t.roster.Len()
}

func (t *BattleTeam) IsFull() bool {
	return t.roster.Len() >= MaxTeamSize
}

type battleTeamState struct {
	Creatures []*LegendaryCreature `json:"creatures,omitempty"`
	LeaderID  string               `json:"leader_id,omitempty"`
}

func (t *BattleTeam) MarshalJSON() ([]byte, error) {
	state := battleTeamState{Creatures: t.roster.Items()}
	if t.leader != nil {
		state.LeaderID = t.leader.ID
	}
	return json.Marshal(state)
}

func (t *BattleTeam) UnmarshalJSON(data []byte) error {
	var state battleTeamState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	restored := NewBattleTeam()
	for _, c := range state.Creatures {
		restored.Add(c)
	}
	restored.leader = nil
	if state.LeaderID != "" {
		if member, ok := restored.roster.Get(state.LeaderID); ok {
			restored.leader = member
		}
	}
	*t = *restored
	return nil
}
