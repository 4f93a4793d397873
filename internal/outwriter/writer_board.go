package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeBoardTable generates and writes the human-readable leaderboard table.
func writeBoardTable(board *schema.BoardResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Repository", "Score", "Verdict", "Stars"}
	if cfg.Detail {
		headers = append(headers, "Clarity", "Ease", "Maturity", "Excite", "Fit", "Cred", "Analyzed On")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxName := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, r := range board.Records {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(r.RepoName, maxName), // Repository
			fmtFloat(r.FinalScore),                     // Score
			verdictLabel(r.FinalScore, cfg),            // Verdict
			fmt.Sprintf(intFmt, r.Stars),               // Stars
		}
		if cfg.Detail {
			row = append(
				row,
				formatOptional(r.ProblemClarity), // Clarity
				formatOptional(r.AdoptionEase),   // Ease
				formatOptional(r.MaturityHealth), // Maturity
				formatOptional(r.Excitement),     // Excite
				formatOptional(r.SolutionFit),    // Fit
				formatOptional(r.Credibility),    // Cred
				r.AnalysisDate,                   // Analyzed On
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Summary footer mirrors the aggregate block the pipeline computed
	s := board.Summary
	if _, err := fmt.Fprintf(writer, "Showing top %d repos (total stars: %d, average score: %s, analyzed: %d/%d)\n",
		s.Count, s.TotalStars, fmtFloat(s.AverageScore), s.AnalyzedCount, s.Count); err != nil {
		return err
	}
	source := "store scan"
	if board.CacheHit {
		source = "cache"
	}
	if _, err := fmt.Fprintf(writer, "Board built in %v from %s. Cache backend: %s\n", duration, source, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// verdictLabel picks the colored or plain verdict label per config.
func verdictLabel(score float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}

// writeBoardCSV writes the leaderboard in CSV format.
func writeBoardCSV(w io.Writer, board *schema.BoardResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"repo_name",
		"final_score",
		"verdict",
		"stars",
		"total_score",
		"clarity",
		"ease",
		"maturity",
		"excitement",
		"fit",
		"credibility",
		"analysis_date",
		"description",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, r := range board.Records {
			row := []string{
				strconv.Itoa(i + 1),
				r.RepoName,
				fmtFloat(r.FinalScore),
				contract.GetPlainLabel(r.FinalScore),
				fmt.Sprintf(intFmt, r.Stars),
				fmtFloat(r.TotalScore),
				formatOptional(r.ProblemClarity),
				formatOptional(r.AdoptionEase),
				formatOptional(r.MaturityHealth),
				formatOptional(r.Excitement),
				formatOptional(r.SolutionFit),
				formatOptional(r.Credibility),
				r.AnalysisDate,
				r.Description,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
