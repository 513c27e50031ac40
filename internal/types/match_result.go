// Package types provides type definitions for the profiles and match results exchanged by lingua-match.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MaxScore is the upper bound of a compatibility score.
const MaxScore = 100

// MatchQuality is a coarse label for a compatibility score.
type MatchQuality string

const (
	MatchQualityExcellent MatchQuality = "excellent" // 80-100
	MatchQualityGood      MatchQuality = "good"      // 60-79
	MatchQualityFair      MatchQuality = "fair"      // 40-59
	MatchQualityPoor      MatchQuality = "poor"      // 20-39
	MatchQualityNone      MatchQuality = "none"      // 0-19
)

// QualityFor maps a score to its quality band.
func QualityFor(score int) MatchQuality {
	switch {
	case score >= 80:
		return MatchQualityExcellent
	case score >= 60:
		return MatchQualityGood
	case score >= 40:
		return MatchQualityFair
	case score >= 20:
		return MatchQualityPoor
	default:
		return MatchQualityNone
	}
}

// MatchResult is one scored candidate in a ranked feed.
type MatchResult struct {
	Candidate UserProfile `json:"candidate"`
	Score     int         `json:"score"`
	// Reasons are in factor evaluation order and may repeat.
	Reasons []string `json:"reasons"`
}

// Quality returns the quality band of the result's score.
func (r MatchResult) Quality() MatchQuality {
	return QualityFor(r.Score)
}

// RankedFeed is the serialized output of a ranking run.
type RankedFeed struct {
	RequesterID string      `json:"requester_id"`
	Results     []FeedEntry `json:"results"`
}

// FeedEntry is the compact, serializable form of a MatchResult.
type FeedEntry struct {
	CandidateID string       `json:"candidate_id"`
	Score       int          `json:"score"`
	Quality     MatchQuality `json:"quality"`
	Reasons     []string     `json:"reasons"`
	IsOnline    bool         `json:"is_online"`
}

// NewRankedFeed converts ranked results into their serializable form.
func NewRankedFeed(requesterID string, results []MatchResult) RankedFeed {
	entries := make([]FeedEntry, 0, len(results))
	for _, r := range results {
		reasons := r.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		entries = append(entries, FeedEntry{
			CandidateID: r.Candidate.ID,
			Score:       r.Score,
			Quality:     r.Quality(),
			Reasons:     reasons,
			IsOnline:    r.Candidate.IsOnline,
		})
	}
	return RankedFeed{RequesterID: requesterID, Results: entries}
}
