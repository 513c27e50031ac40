package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/lingua-match/internal/types"
)

// -----------------------------------------------------------------------------
// Profile Methods
// -----------------------------------------------------------------------------

// GetProfile retrieves a user's profile. It returns ErrProfileNotFound when the user has none.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	var r profileRow
	err := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(r.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	p, err := r.toProfile()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListCandidates returns complete profiles other than the requester's, online users first.
// limit <= 0 returns every candidate. The store does not filter or score.
func (db *DB) ListCandidates(ctx context.Context, requester uuid.UUID, limit int) ([]types.UserProfile, error) {
	query := `SELECT ` + profileColumns + `
		FROM profiles
		WHERE is_complete AND user_id <> $1
		ORDER BY is_online DESC, updated_at DESC`
	args := []any{requester}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.UserProfile
	for rows.Next() {
		var r profileRow
		if err := rows.Scan(r.scanTargets()...); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		p, err := r.toProfile()
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}

// SetOnline updates a user's presence flag.
func (db *DB) SetOnline(ctx context.Context, userID uuid.UUID, online bool) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE profiles SET is_online = $1, updated_at = NOW() WHERE user_id = $2`,
		online, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to set online status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// UpsertProfile inserts or replaces a profile. complete marks it eligible for discovery.
func (db *DB) UpsertProfile(ctx context.Context, p types.UserProfile, complete bool) error {
	r, err := rowFromProfile(p, complete)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (`+profileColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id) DO UPDATE SET
			age = $2, native_language = $3, learning_languages = $4, location = $5,
			country_code = $6, lat = $7, lon = $8, is_online = $9, preferences = $10,
			is_complete = $11, updated_at = NOW()`,
		r.UserID, r.Age, r.NativeLanguage, r.LearningLanguages, r.Location,
		r.CountryCode, r.Lat, r.Lon, r.IsOnline, r.Preferences, r.IsComplete,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", r.UserID, err)
	}
	return nil
}
