package core

import (
	"sort"

	"github.com/dealflowhq/dealflow/schema"
)

// rankRecords sorts records by final score in descending order and returns
// the top 'limit' records. The sort is stable, so records with equal scores
// keep their store-scan order. The input slice is never mutated; calling
// twice with the same arguments yields equal results.
func rankRecords(records []schema.ViewRecord, limit int) []schema.ViewRecord {
	ranked := make([]schema.ViewRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})
	if len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// filterMinScore drops records below the score floor before ranking. The
// filter runs in the pipeline, not the presenter, so the aggregate describes
// exactly what is displayed.
func filterMinScore(records []schema.ViewRecord, minScore float64) []schema.ViewRecord {
	if minScore <= 0 {
		return records
	}
	kept := make([]schema.ViewRecord, 0, len(records))
	for _, r := range records {
		if r.FinalScore >= minScore {
			kept = append(kept, r)
		}
	}
	return kept
}
