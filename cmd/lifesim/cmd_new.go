package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakheart-games/lifesim/internal/game"
	"github.com/oakheart-games/lifesim/internal/logging"
)

var newFlags struct {
	force bool
}

var newCmd = &cobra.Command{
	Use:   "new <trainer-name>",
	Short: "Start a fresh trainer and write the save file",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().BoolVar(&newFlags.force, "force", false, "overwrite an existing save")
}

// newTrainerWithStarters creates a player trainer holding every starter
// creature, with the first five fielded as the battle team.
func newTrainerWithStarters(name string) *game.Trainer {
	trainer := game.NewPlayerTrainer(name)
	for _, spec := range game.StarterCreatureCatalog() {
		c := game.NewCreatureFromSpec(spec)
		trainer.AddCreature(c)
		if !trainer.Team.IsFull() {
			trainer.AddToTeam(c.ID)
		}
	}
	return trainer
}

func runNew(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return errors.New("trainer name must not be empty")
	}

	path := appConfig.SavePath()
	if !newFlags.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("save already exists at %s (use --force to overwrite)", path)
		}
	}

	trainer := newTrainerWithStarters(name)
	state := game.NewSaveState(trainer)
	if err := game.SaveGame(path, state); err != nil {
		return fmt.Errorf("write save: %w", err)
	}

	logger := logging.New("save")
	logger.Info("created save", "path", path, "trainer", trainer.Name)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created trainer %s with %d creatures, %d fielded.\n",
		trainer.Name, trainer.Creatures.Len(), trainer.Team.Len())
	fmt.Fprintf(out, "Saved to %s\n", path)
	return nil
}
