package cmd

import (
	"github.com/dealflowhq/dealflow/core"
	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/internal/dynamo"
	"github.com/spf13/cobra"
)

// statsCmd prints aggregate statistics without the full leaderboard.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics for the ranked repositories.",
	Long: `Print the aggregate block of the leaderboard without the table.

Displays:
- Repository count in the ranked window
- Average composite score
- Total GitHub stars
- How many repositories have a completed deep analysis

The same limit and min-score filters as 'board' apply, so the numbers
always describe exactly what the board would display.

Examples:
  # Summary of the default top 20
  dealflow stats

  # Summary of everything above a score threshold
  dealflow stats --limit 1000 --min-score 6

  # Machine-readable summary for dashboards
  dealflow stats --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client, err := dynamo.NewClient(rootCtx, cfg)
		if err != nil {
			contract.LogFatal("Cannot connect to analysis store", err)
		}
		if err := core.ExecuteStats(rootCtx, cfg, client, cacheManager); err != nil {
			contract.LogFatal("Cannot compute stats", err)
		}
	},
}
