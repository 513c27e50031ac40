package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/lingua-match/internal/matching"
	"github.com/jonathan/lingua-match/internal/profiles"
	"github.com/jonathan/lingua-match/internal/types"
)

const maxBodyBytes = 4 << 20

type pairRequest struct {
	A json.RawMessage `json:"a"`
	B json.RawMessage `json:"b"`
}

type checkResponse struct {
	CanMatch      bool   `json:"can_match"`
	FailedGate    string `json:"failed_gate,omitempty"`
	Compatibility string `json:"compatibility"`
}

type scoreResponse struct {
	CanMatch   bool                     `json:"can_match"`
	FailedGate string                   `json:"failed_gate,omitempty"`
	Score      int                      `json:"score"`
	Quality    types.MatchQuality       `json:"quality"`
	Reasons    []string                 `json:"reasons"`
	Breakdown  *matching.ScoreBreakdown `json:"breakdown,omitempty"`
}

type rankRequest struct {
	Requester  json.RawMessage `json:"requester"`
	Candidates json.RawMessage `json:"candidates"`
	Top        int             `json:"top"`
}

// decodeBody reads a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &ErrPayloadTooLarge{Limit: maxErr.Limit}
		}
		return &ErrValidation{Field: "body", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return nil
}

func (s *Server) decodePair(w http.ResponseWriter, r *http.Request) (*types.UserProfile, *types.UserProfile, error) {
	var req pairRequest
	if err := decodeBody(w, r, &req); err != nil {
		return nil, nil, err
	}
	if len(req.A) == 0 || len(req.B) == 0 {
		return nil, nil, &ErrValidation{Field: "body", Message: "both a and b are required"}
	}
	a, err := profiles.ParseProfile("a", req.A)
	if err != nil {
		return nil, nil, err
	}
	b, err := profiles.ParseProfile("b", req.B)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// handleCheck reports whether two profiles pass the hard filters.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	a, b, err := s.decodePair(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	gate, failed := s.engine.FailedGate(*a, *b)
	s.jsonResponse(w, http.StatusOK, checkResponse{
		CanMatch:      !failed,
		FailedGate:    string(gate),
		Compatibility: s.engine.Classify(*a, *b).String(),
	})
}

// handleScore scores b for a. Pairs that fail a hard filter get a zero score and no breakdown.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	a, b, err := s.decodePair(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	if gate, failed := s.engine.FailedGate(*a, *b); failed {
		s.jsonResponse(w, http.StatusOK, scoreResponse{
			FailedGate: string(gate),
			Quality:    types.QualityFor(0),
			Reasons:    []string{},
		})
		return
	}

	bd := s.engine.Breakdown(*a, *b)
	reasons := bd.Reasons()
	if reasons == nil {
		reasons = []string{}
	}
	s.jsonResponse(w, http.StatusOK, scoreResponse{
		CanMatch:  true,
		Score:     bd.Total,
		Quality:   types.QualityFor(bd.Total),
		Reasons:   reasons,
		Breakdown: &bd,
	})
}

// handleRank ranks a candidate list supplied in the request.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.errorFromErr(w, err)
		return
	}
	if len(req.Requester) == 0 {
		s.errorFromErr(w, &ErrValidation{Field: "requester", Message: "is required"})
		return
	}
	if req.Top < 0 {
		s.errorFromErr(w, &ErrValidation{Field: "top", Message: "must be non-negative"})
		return
	}

	requester, err := profiles.ParseProfile("requester", req.Requester)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	var candidates []types.UserProfile
	if len(req.Candidates) > 0 && string(req.Candidates) != "null" {
		candidates, err = profiles.ParseProfiles("candidates", req.Candidates)
		if err != nil {
			s.errorFromErr(w, err)
			return
		}
	}

	results := s.engine.TopN(*requester, candidates, req.Top)
	s.jsonResponse(w, http.StatusOK, types.NewRankedFeed(requester.ID, results))
}
