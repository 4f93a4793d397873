package cmd

import (
	"github.com/dealflowhq/dealflow/core"
	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/internal/dynamo"
	"github.com/spf13/cobra"
)

// boardCmd renders the startup repository leaderboard.
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the top startup repositories ranked by investment score.",
	Long: `Scan the analysis table and rank repositories by their composite score.

Each repository was scored by an upstream analysis pipeline across several
dimensions (problem clarity, adoption ease, maturity, community signals).
The board merges those analyses with OSS adoption data and ranks the
highest-conviction candidates first.

Scans are cached locally so repeated renders within the freshness window
skip the table scan entirely.

Examples:
  # Top 20 repositories (default)
  dealflow board

  # Widen the board and include per-dimension scores
  dealflow board --limit 50 --detail

  # Only strong candidates
  dealflow board --min-score 7.5

  # Export findings to CSV for the partner meeting
  dealflow board --output csv --output-file pipeline.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client, err := dynamo.NewClient(rootCtx, cfg)
		if err != nil {
			contract.LogFatal("Cannot connect to analysis store", err)
		}
		if err := core.ExecuteBoard(rootCtx, cfg, client, cacheManager); err != nil {
			contract.LogFatal("Cannot render board", err)
		}
	},
}
