package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakheart-games/lifesim/internal/config"
	"github.com/oakheart-games/lifesim/internal/format"
	"github.com/oakheart-games/lifesim/internal/logging"
)

// version, commit, date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootFlags struct {
	configPath string
}

var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "lifesim",
	Short: "Creature-collecting life simulation toolkit",
	Long: "Lifesim explores a creature-collecting world from the terminal:\n" +
		"element matchups, battle teams, trainers and their save files.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(rootFlags.configPath)
		if err != nil {
			return err
		}
		appConfig = cfg
		logging.Init(cfg.SlogLevel(), cfg.LogFormat)
		return nil
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "", "config file (default ~/.lifesim/config.yaml)")

	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(matchupCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.Version = fmt.Sprintf("%s (%s) %s", version, commit, date)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, welcomeBanner())
	fmt.Fprintln(out, chartTable(configuredMode()))
	fmt.Fprintln(out, ancientWorldNote())
	return nil
}

func configuredMode() format.Mode {
	if appConfig.ChartStyle == "markdown" {
		return format.Markdown
	}
	return format.ASCII
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
