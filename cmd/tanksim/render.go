package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Garsondee/tanksim/internal/config"
	"github.com/Garsondee/tanksim/internal/render"
)

var renderDelay time.Duration

var renderCmd = &cobra.Command{
	Use:   "render <map>",
	Short: "Replay a finished match's satellite view, tick by tick",
	Long: `render re-runs the deterministic kernel against <map>'s companion
<map>.out log (written by "tanksim run" or "tanksim tournament") and
prints an emoji satellite view, tank status, and summary after every
tick.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().DurationVar(&renderDelay, "delay", 0, "pause this long between frames (e.g. 200ms)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	rules, err := config.Load(rulesPath)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	return render.Run(cmd.OutOrStdout(), args[0], render.RunOptions{
		Delay: renderDelay,
		Rules: rules.EngineRules(),
	})
}
