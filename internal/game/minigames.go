package game

import (
	"slices"
	"strings"
	"time"
)

// MinigameNames lists the playable minigames in menu order.
func MinigameNames() []string {
	return []string{"BOX EATS PLANTS", "MATCH WORD PUZZLE", "MATCH-3 GAME"}
}

// Minigame tracks whether a daily minigame has been played today.
type Minigame struct {
	Name          string `json:"name"`
	AlreadyPlayed bool   `json:"already_played"`
}

// NewMinigame falls back to the first known minigame when the name is not
// recognized.
func NewMinigame(name string) *Minigame {
	tag := strings.ToUpper(strings.TrimSpace(name))
	names := MinigameNames()
	if !slices.Contains(names, tag) {
		tag = names[0]
	}
	return &Minigame{Name: tag}
}

// Reset unlocks a played minigame once the first hour of the day has passed.
// It reports whether the state changed.
func (m *Minigame) Reset(now time.Time) bool {
	if m.AlreadyPlayed && now.Hour() > 0 {
		m.AlreadyPlayed = false
		return true
	}
	return false
}

// DefaultMinigames returns one tracker per known minigame.
func DefaultMinigames() []*Minigame {
	names := MinigameNames()
	games := make([]*Minigame, 0, len(names))
	for _, name := range names {
		games = append(games, NewMinigame(name))
	}
	return games
}
