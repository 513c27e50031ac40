package matching

import (
	"sort"

	"github.com/jonathan/lingua-match/internal/types"
	"golang.org/x/sync/errgroup"
)

// Rank excludes requester, drops candidates that fail a hard filter, scores the rest
// and sorts them by score, online candidates first among equal scores. Candidates
// that tie on both keep their input order.
func (e *Engine) Rank(requester types.UserProfile, candidates []types.UserProfile) []types.MatchResult {
	slots := e.evaluate(requester, candidates)

	results := make([]types.MatchResult, 0, len(candidates))
	for _, s := range slots {
		if s.ok {
			results = append(results, s.result)
		}
	}
	sortResults(results)
	return results
}

// TopN returns at most n ranked results. n <= 0 returns all of them.
func (e *Engine) TopN(requester types.UserProfile, candidates []types.UserProfile, n int) []types.MatchResult {
	results := e.Rank(requester, candidates)
	if n > 0 && len(results) > n {
		return results[:n]
	}
	return results
}

type slot struct {
	result types.MatchResult
	ok     bool
}

// evaluate filters and scores every candidate, writing each outcome to the slot at the
// candidate's index so input order survives parallel evaluation.
func (e *Engine) evaluate(requester types.UserProfile, candidates []types.UserProfile) []slot {
	slots := make([]slot, len(candidates))
	if e.workers <= 1 || len(candidates) < e.parallelThreshold {
		e.evaluateRange(requester, candidates, slots, 0, len(candidates))
		return slots
	}

	chunk := (len(candidates) + e.workers - 1) / e.workers
	var g errgroup.Group
	g.SetLimit(e.workers)
	for start := 0; start < len(candidates); start += chunk {
		end := min(start+chunk, len(candidates))
		g.Go(func() error {
			e.evaluateRange(requester, candidates, slots, start, end)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()
	return slots
}

func (e *Engine) evaluateRange(requester types.UserProfile, candidates []types.UserProfile, slots []slot, start, end int) {
	for i := start; i < end; i++ {
		c := candidates[i]
		if c.ID == requester.ID || !e.CanMatch(requester, c) {
			continue
		}
		score, reasons := e.Score(requester, c)
		slots[i] = slot{
			result: types.MatchResult{Candidate: c, Score: score, Reasons: reasons},
			ok:     true,
		}
	}
}

func sortResults(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Candidate.IsOnline && !results[j].Candidate.IsOnline
	})
}
