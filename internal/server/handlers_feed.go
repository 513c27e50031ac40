package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/lingua-match/internal/db"
	"github.com/jonathan/lingua-match/internal/logger"
	"github.com/jonathan/lingua-match/internal/types"
)

// handleFeed ranks stored candidates for a stored user.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorFromErr(w, &ErrStoreUnavailable{})
		return
	}

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	top := s.feedSize
	if v := r.URL.Query().Get("top"); v != "" {
		top, err = strconv.Atoi(v)
		if err != nil || top < 0 {
			s.errorFromErr(w, &ErrValidation{Field: "top", Message: "must be a non-negative integer"})
			return
		}
	}

	ctx := r.Context()
	requester, err := s.store.GetProfile(ctx, userID)
	if errors.Is(err, db.ErrProfileNotFound) {
		s.errorFromErr(w, &ErrUserNotFound{UserID: userID})
		return
	}
	if err != nil {
		s.errorFromErr(w, fmt.Errorf("load requester %s: %w", userID, err))
		return
	}
	candidates, err := s.store.ListCandidates(ctx, userID, s.candidateLimit)
	if err != nil {
		s.errorFromErr(w, fmt.Errorf("list candidates: %w", err))
		return
	}

	results := s.engine.TopN(*requester, candidates, top)
	logger.Debug("Feed ranked", "user_id", userID, "candidates", len(candidates), "results", len(results))
	s.jsonResponse(w, http.StatusOK, types.NewRankedFeed(requester.ID, results))
}
