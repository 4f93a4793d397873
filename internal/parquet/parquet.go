// Package parquet provides data structures and functions for exporting the
// leaderboard to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/dealflowhq/dealflow/schema"
	"github.com/parquet-go/parquet-go"
)

// LeaderboardRow represents one ranked repository in a Parquet export.
// Optional analysis scores map to nullable columns so "not analyzed" survives
// the round trip into downstream warehouses.
type LeaderboardRow struct {
	// Rank is the 1-based leaderboard position
	Rank int32 `parquet:"rank,snappy"`

	// RepoName is the org/name identifier of the repository
	RepoName string `parquet:"repo_name,snappy"`

	// FinalScore is the composite score from the analysis pipeline
	FinalScore float64 `parquet:"final_score,snappy"`

	// AnalysisDate is when the upstream pipeline scored the repository
	AnalysisDate string `parquet:"analysis_date,snappy"`

	// Stars and TotalScore come from the OSS insight sub-record
	Stars      int32   `parquet:"stars,snappy"`
	TotalScore float64 `parquet:"total_score,snappy"`

	// Description is the repository summary line
	Description string `parquet:"description,snappy"`

	// Repo analysis scores (nullable)
	ProblemClarity *int32 `parquet:"problem_clarity_score,optional,snappy"`
	AdoptionEase   *int32 `parquet:"adoption_ease_score,optional,snappy"`
	MaturityHealth *int32 `parquet:"maturity_health_score,optional,snappy"`

	// Community analysis scores (nullable)
	Excitement  *int32 `parquet:"excitement_score,optional,snappy"`
	SolutionFit *int32 `parquet:"problem_solution_fit_score,optional,snappy"`
	Credibility *int32 `parquet:"credibility_adoption_score,optional,snappy"`
}

// WriteLeaderboardParquet writes a slice of LeaderboardRow structs to a Parquet file.
func WriteLeaderboardParquet(rows []LeaderboardRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the LeaderboardRow struct tags
	writer := parquet.NewGenericWriter[LeaderboardRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertBoardRecords converts ranked ViewRecords to LeaderboardRows for
// Parquet export, preserving rank order.
func ConvertBoardRecords(records []schema.ViewRecord) []LeaderboardRow {
	rows := make([]LeaderboardRow, len(records))
	for i, r := range records {
		rows[i] = LeaderboardRow{
			Rank:           int32(i + 1),
			RepoName:       r.RepoName,
			FinalScore:     r.FinalScore,
			AnalysisDate:   r.AnalysisDate,
			Stars:          int32(r.Stars),
			TotalScore:     r.TotalScore,
			Description:    r.Description,
			ProblemClarity: toInt32Ptr(r.ProblemClarity),
			AdoptionEase:   toInt32Ptr(r.AdoptionEase),
			MaturityHealth: toInt32Ptr(r.MaturityHealth),
			Excitement:     toInt32Ptr(r.Excitement),
			SolutionFit:    toInt32Ptr(r.SolutionFit),
			Credibility:    toInt32Ptr(r.Credibility),
		}
	}
	return rows
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
