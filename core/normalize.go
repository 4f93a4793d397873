// Package core has the board pipeline: fetch, cache, normalize, rank, aggregate.
package core

import (
	"github.com/dealflowhq/dealflow/schema"
)

// Normalize flattens one raw store record into a fully defaulted ViewRecord.
// It is total: any record shape degrades to the documented defaults instead
// of erroring. This is the single place default policy lives; downstream
// stages never re-default.
func Normalize(raw schema.RawRecord) schema.ViewRecord {
	v := schema.ViewRecord{
		RepoName:      schema.UnknownName,
		AnalysisDate:  schema.UnknownDate,
		Description:   schema.NoDescription,
		ProblemSolved: schema.NotAnalyzed,
	}

	if s, ok := schema.CoerceString(raw[schema.FieldRepoName]); ok {
		v.RepoName = s
	}
	if f, ok := schema.CoerceFloat(raw[schema.FieldFinalScore]); ok {
		v.FinalScore = f
	}
	if s, ok := schema.CoerceString(raw[schema.FieldAnalysisDate]); ok {
		v.AnalysisDate = s
	}

	if oss, ok := raw.SubMap(schema.FieldOSSInsight); ok {
		if n, ok := schema.CoerceInt(oss["stars"]); ok {
			v.Stars = n
		}
		if f, ok := schema.CoerceFloat(oss["total_score"]); ok {
			v.TotalScore = f
		}
		if s, ok := schema.CoerceString(oss["description"]); ok {
			v.Description = s
		}
	}

	if ra, ok := raw.SubMap(schema.FieldRepoAnalysis); ok {
		v.ProblemClarity = optionalScore(ra, "problem_clarity_score")
		v.AdoptionEase = optionalScore(ra, "adoption_ease_score")
		v.MaturityHealth = optionalScore(ra, "maturity_health_score")
		if s, ok := schema.CoerceString(ra["problem_solved"]); ok {
			v.ProblemSolved = s
		}
	}

	if ca, ok := raw.SubMap(schema.FieldCommunity); ok {
		v.Excitement = optionalScore(ca, "excitement_score")
		v.SolutionFit = optionalScore(ca, "problem_solution_fit_score")
		v.Credibility = optionalScore(ca, "credibility_adoption_score")
		if s, ok := schema.CoerceString(ca["key_praise_quote"]); ok {
			v.PraiseQuote = s
		}
		if s, ok := schema.CoerceString(ca["main_criticism"]); ok {
			v.Criticism = s
		}
	}

	return v
}

// NormalizeAll maps Normalize over a raw scan, preserving store order so the
// ranker's stable sort keeps scan order among equal scores.
func NormalizeAll(raws []schema.RawRecord) []schema.ViewRecord {
	records := make([]schema.ViewRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, Normalize(raw))
	}
	return records
}

// optionalScore extracts a nested analysis score. A present value of zero
// stays present; only absent, null, or non-numeric values become nil. Fields
// within one nested object are independent: a sub-object may carry some
// scores and not others.
func optionalScore(m map[string]any, key string) *int {
	val, exists := m[key]
	if !exists || val == nil {
		return nil
	}
	n, ok := schema.CoerceInt(val)
	if !ok {
		return nil
	}
	return &n
}
