// Package schema has configs, models and shared value types for all parts of dealflow.
package schema

import "time"

// RawRecord is a single item as returned by the analysis store, before any
// defaulting. Values keep whatever shape the store handed back (numbers,
// strings, nested maps), which makes the record JSON-serializable for the
// scan cache without committing to a field layout the upstream pipeline may
// still be evolving.
type RawRecord map[string]any

// Store field names consumed from the analysis table.
const (
	FieldRepoName     = "repo_name"
	FieldFinalScore   = "final_score"
	FieldAnalysisDate = "analysis_date"
	FieldOSSInsight   = "oss_insight_data"
	FieldRepoAnalysis = "repo_analysis"
	FieldCommunity    = "community_analysis"
)

// ViewRecord is a flattened, fully defaulted view of one scored repository.
// It is immutable once built; presenters must not rewrite it.
//
// The three repo-analysis scores and the three community scores are pointers
// because "not analyzed" is a first-class state: a nil pointer means the
// upstream pipeline never produced the score, which is different from a
// produced score of zero.
type ViewRecord struct {
	RepoName     string  `json:"repo_name"`
	FinalScore   float64 `json:"final_score"`
	AnalysisDate string  `json:"analysis_date"`

	// From oss_insight_data
	Stars       int     `json:"stars"`
	TotalScore  float64 `json:"total_score"`
	Description string  `json:"description"`

	// From repo_analysis
	ProblemClarity *int   `json:"problem_clarity_score,omitempty"`
	AdoptionEase   *int   `json:"adoption_ease_score,omitempty"`
	MaturityHealth *int   `json:"maturity_health_score,omitempty"`
	ProblemSolved  string `json:"problem_solved"`

	// From community_analysis
	Excitement  *int   `json:"excitement_score,omitempty"`
	SolutionFit *int   `json:"problem_solution_fit_score,omitempty"`
	Credibility *int   `json:"credibility_adoption_score,omitempty"`
	PraiseQuote string `json:"key_praise_quote,omitempty"`
	Criticism   string `json:"main_criticism,omitempty"`
}

// Analyzed reports whether the repository went through the deep repo analysis
// pass. Clarity is the marker field the upstream pipeline always writes when
// an analysis ran.
func (v *ViewRecord) Analyzed() bool {
	return v.ProblemClarity != nil
}

// Summary holds aggregate statistics over a ranked leaderboard. It describes
// the displayed records only, not the full store.
type Summary struct {
	Count         int     `json:"count"`
	AverageScore  float64 `json:"average_score"`
	TotalStars    int     `json:"total_stars"`
	AnalyzedCount int     `json:"analyzed_count"`
}

// BoardResult is the pipeline output handed to presenters: the ranked,
// size-capped records plus their summary. Presenters render it as-is and
// never re-sort or re-filter.
type BoardResult struct {
	Records   []ViewRecord `json:"records"`
	Summary   Summary      `json:"summary"`
	FetchedAt time.Time    `json:"fetched_at"`
	CacheHit  bool         `json:"cache_hit"`
}
