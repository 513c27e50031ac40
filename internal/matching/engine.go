// Package matching decides whether two language learners should see each other in
// discovery and, if so, how compatible they are.
//
// Every function here is a pure function of its inputs. Profiles are never mutated
// and an Engine carries only immutable configuration, so one Engine can be shared
// across goroutines.
package matching

import (
	"runtime"

	"github.com/jonathan/lingua-match/internal/geo"
	"github.com/jonathan/lingua-match/internal/types"
)

// DefaultParallelThreshold is the candidate-pool size from which Rank fans out across workers.
const DefaultParallelThreshold = 256

// Engine evaluates candidate pairs. The zero value is not usable; build one with NewEngine.
type Engine struct {
	countryName       geo.CountryNameFunc
	workers           int
	parallelThreshold int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCountryNames sets the lookup used to resolve country codes to display names.
func WithCountryNames(lookup geo.CountryNameFunc) Option {
	return func(e *Engine) {
		if lookup != nil {
			e.countryName = lookup
		}
	}
}

// WithWorkers sets how many goroutines Rank may use. Values below 1 mean sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithParallelThreshold sets the pool size at which Rank starts using workers.
func WithParallelThreshold(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.parallelThreshold = n
		}
	}
}

// NewEngine returns an Engine using English country names and one worker per CPU.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		countryName:       geo.EnglishCountryName,
		workers:           runtime.GOMAXPROCS(0),
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// IsCompatible reports whether two users are linguistically compatible.
func IsCompatible(a, b types.UserProfile) bool {
	return defaultEngine.IsCompatible(a, b)
}

// CanMatch reports whether two users pass every hard filter.
func CanMatch(a, b types.UserProfile) bool {
	return defaultEngine.CanMatch(a, b)
}

// Score returns the compatibility score of b for a and the reasons behind it.
func Score(a, b types.UserProfile) (int, []string) {
	return defaultEngine.Score(a, b)
}

// Rank filters, scores and orders candidates for requester.
func Rank(requester types.UserProfile, candidates []types.UserProfile) []types.MatchResult {
	return defaultEngine.Rank(requester, candidates)
}

// inCountry reports whether u is located in the country with the given code.
// An explicit country code is compared exactly; otherwise the free-text location
// is searched for the country's display name.
func (e *Engine) inCountry(u *types.UserProfile, code string) bool {
	if u.CountryCode != "" {
		return geo.SameCountry(u.CountryCode, code)
	}
	return geo.LocationMentionsCountry(u.Location, code, e.countryName)
}
