package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SaveVersion is bumped when the save layout changes incompatibly.
const SaveVersion = 1

// SaveState is the serializable aggregate of one playthrough.
type SaveState struct {
	Version   int         `json:"version"`
	SavedAt   time.Time   `json:"saved_at"`
	Trainer   *Trainer    `json:"trainer"`
	Minigames []*Minigame `json:"minigames,omitempty"`
}

// NewSaveState wraps a trainer in a current-version save with fresh minigame
// trackers.
func NewSaveState(trainer *Trainer) *SaveState {
	return &SaveState{
		Version:   SaveVersion,
		Trainer:   trainer,
		Minigames: DefaultMinigames(),
	}
}

func (s *SaveState) Validate() error {
	if s.Version != SaveVersion {
		return fmt.Errorf("unsupported save version: %d", s.Version)
	}
	if s.Trainer == nil {
		return fmt.Errorf("save has no trainer")
	}
	return nil
}

// normalize coerces loaded data back inside its documented bounds.
func (s *SaveState) normalize() {
	if s.Trainer == nil {
		return
	}
	for _, c := range s.Trainer.Creatures.Creatures() {
		c.ClampStats()
	}
	for _, c := range s.Trainer.Team.Members() {
		c.ClampStats()
	}
}

// SaveGame writes the state to path atomically: the file is complete and
// valid or the previous save survives untouched.
func SaveGame(path string, state *SaveState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	state.SavedAt = time.Now().UTC()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "save-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}

// LoadGame reads a save from path. A missing file surfaces as
// os.ErrNotExist so callers can distinguish "no save yet" from corruption.
func LoadGame(path string) (*SaveState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var state SaveState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse save file: %w", err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	state.normalize()
	return &state, nil
}
