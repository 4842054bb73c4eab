package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/oakheart-games/lifesim/internal/game"
)

var matchupFlags struct {
	accuracy   string
	resistance string
}

var matchupCmd = &cobra.Command{
	Use:   "matchup <attacker> <defender>",
	Short: "Look up the damage multiplier for an element pairing",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatchup,
}

func init() {
	f := matchupCmd.Flags()
	f.StringVar(&matchupFlags.accuracy, "accuracy", "", "attacker accuracy (0 to 1)")
	f.StringVar(&matchupFlags.resistance, "resistance", "", "defender resistance (0.15 to 1)")
}

func runMatchup(cmd *cobra.Command, args []string) error {
	attacker, err := resolveElement(args[0])
	if err != nil {
		return err
	}
	defender, err := resolveElement(args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	multiplier := game.ElementalDamageMultiplier(attacker, defender)
	fmt.Fprintf(out, "%s vs %s: x%s damage\n", attacker, defender, multiplier)

	hasAccuracy := matchupFlags.accuracy != ""
	hasResistance := matchupFlags.resistance != ""
	if !hasAccuracy && !hasResistance {
		return nil
	}
	if hasAccuracy != hasResistance {
		return fmt.Errorf("--accuracy and --resistance must be given together")
	}

	accuracy, err := decimal.NewFromString(matchupFlags.accuracy)
	if err != nil {
		return fmt.Errorf("parse accuracy: %w", err)
	}
	resistance, err := decimal.NewFromString(matchupFlags.resistance)
	if err != nil {
		return fmt.Errorf("parse resistance: %w", err)
	}

	effective := game.EffectiveResistance(accuracy, resistance)
	fmt.Fprintf(out, "effective resistance: %s\n", effective)
	return nil
}
