package core

import (
	"github.com/dealflowhq/dealflow/schema"
)

// summarize computes aggregate statistics over a ranked leaderboard.
// The numbers describe the displayed set only, matching what the board
// renders; they are not store-wide totals. An empty set yields all zeros,
// never NaN.
func summarize(ranked []schema.ViewRecord) schema.Summary {
	s := schema.Summary{Count: len(ranked)}
	if s.Count == 0 {
		return s
	}

	var total float64
	for i := range ranked {
		total += ranked[i].FinalScore
		s.TotalStars += ranked[i].Stars
		if ranked[i].Analyzed() {
			s.AnalyzedCount++
		}
	}
	s.AverageScore = total / float64(s.Count)
	return s
}
