package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakheart-games/lifesim/internal/format"
	"github.com/oakheart-games/lifesim/internal/game"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show the battle team from the save file",
	RunE:  runTeam,
}

// teamTable renders the battle team with the leader slot marked.
func teamTable(team *game.BattleTeam, mode format.Mode) string {
	leader := team.Leader()

	tb := format.NewTable(mode)
	tb.Header("SLOT", "LEAD", "NAME", "ELEMENT", "RATING", "MAX HP", "ATTACK", "SPEED")
	for i, member := range team.Members() {
		tb.Row(
			i+1,
			format.LeaderMark(member == leader),
			member.Name,
			string(member.Element),
			member.Rating,
			member.MaxHP,
			member.AttackPower,
			member.AttackSpeed,
		)
	}
	tb.Columns(
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
		format.ColumnConfig{Number: 6, Align: format.AlignRight},
		format.ColumnConfig{Number: 7, Align: format.AlignRight},
		format.ColumnConfig{Number: 8, Align: format.AlignRight},
	)
	return tb.String()
}

func runTeam(cmd *cobra.Command, _ []string) error {
	path := appConfig.SavePath()
	state, err := game.LoadGame(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("no save at %s, run 'lifesim new <trainer-name>' first", path)
	}
	if err != nil {
		return fmt.Errorf("load save: %w", err)
	}

	trainer := state.Trainer
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Trainer %s | EXP %s | %s\n",
		trainer.Name, trainer.EXP, format.FmtDollars(trainer.Dollars))
	if trainer.Team.Len() == 0 {
		fmt.Fprintln(out, "The battle team is empty.")
		return nil
	}
	fmt.Fprintln(out, teamTable(trainer.Team, configuredMode()))
	return nil
}
