package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/internal/parquet"
	"github.com/dealflowhq/dealflow/schema"
)

// WriteBoardResults outputs the leaderboard, dispatching based on the output
// format configured. Records arrive ranked; no renderer reorders them.
func WriteBoardResults(board *schema.BoardResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, board)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBoardCSV(w, board, fmtFloat, intFmt)
		}, "Wrote CSV")

	case schema.ParquetOut:
		rows := parquet.ConvertBoardRecords(board.Records)
		if err := parquet.WriteLeaderboardParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("Exported %d leaderboard rows to: %s\n", len(rows), cfg.OutputFile)
		return nil

	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBoardTable(board, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// WriteSummary prints only the aggregate block of a board, in the configured
// format. Used by the 'stats' command.
func WriteSummary(board *schema.BoardResult, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, board.Summary)
		}, "Wrote JSON")
	}

	fmtFloat, _ := createFormatters(cfg.Precision)
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		s := board.Summary
		if _, err := fmt.Fprintf(w, "Repos: %d\n", s.Count); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Average Score: %s\n", fmtFloat(s.AverageScore)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Total Stars: %d\n", s.TotalStars); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "Analyzed: %d/%d\n", s.AnalyzedCount, s.Count)
		return err
	}, "Wrote summary")
}
