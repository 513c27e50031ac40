package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/lingua-match/internal/types"
)

// ErrProfileNotFound is returned when no profile row exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// profileRow mirrors one row of the profiles table.
type profileRow struct {
	UserID            uuid.UUID
	Age               *int
	NativeLanguage    string
	LearningLanguages []byte
	Location          string
	CountryCode       string
	Lat               *float64
	Lon               *float64
	IsOnline          bool
	Preferences       []byte
	IsComplete        bool
}

const profileColumns = `user_id, age, native_language, learning_languages, location,
	country_code, lat, lon, is_online, preferences, is_complete`

func (r *profileRow) scanTargets() []any {
	return []any{
		&r.UserID, &r.Age, &r.NativeLanguage, &r.LearningLanguages, &r.Location,
		&r.CountryCode, &r.Lat, &r.Lon, &r.IsOnline, &r.Preferences, &r.IsComplete,
	}
}

// toProfile decodes the JSONB columns and fills unset preferences with defaults.
func (r *profileRow) toProfile() (types.UserProfile, error) {
	p := types.UserProfile{
		ID:             r.UserID.String(),
		Age:            r.Age,
		NativeLanguage: r.NativeLanguage,
		Location:       r.Location,
		CountryCode:    r.CountryCode,
		IsOnline:       r.IsOnline,
	}
	if len(r.LearningLanguages) > 0 {
		if err := json.Unmarshal(r.LearningLanguages, &p.LearningLanguages); err != nil {
			return p, fmt.Errorf("failed to decode learning languages for %s: %w", p.ID, err)
		}
	}
	if len(r.Preferences) > 0 {
		if err := json.Unmarshal(r.Preferences, &p.Preferences); err != nil {
			return p, fmt.Errorf("failed to decode preferences for %s: %w", p.ID, err)
		}
	}
	if r.Lat != nil && r.Lon != nil {
		p.Coordinates = &types.Coordinates{Lat: *r.Lat, Lon: *r.Lon}
	}
	p.Preferences = p.Preferences.WithDefaults()
	return p, nil
}

// rowFromProfile is the inverse of toProfile. The profile ID must be a UUID.
func rowFromProfile(p types.UserProfile, complete bool) (profileRow, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return profileRow{}, fmt.Errorf("profile id %q is not a UUID: %w", p.ID, err)
	}
	learning := p.LearningLanguages
	if learning == nil {
		learning = []types.LearningLanguage{}
	}
	langJSON, err := json.Marshal(learning)
	if err != nil {
		return profileRow{}, fmt.Errorf("failed to marshal learning languages: %w", err)
	}
	prefJSON, err := json.Marshal(p.Preferences)
	if err != nil {
		return profileRow{}, fmt.Errorf("failed to marshal preferences: %w", err)
	}

	r := profileRow{
		UserID:            id,
		Age:               p.Age,
		NativeLanguage:    p.NativeLanguage,
		LearningLanguages: langJSON,
		Location:          p.Location,
		CountryCode:       p.CountryCode,
		IsOnline:          p.IsOnline,
		Preferences:       prefJSON,
		IsComplete:        complete,
	}
	if p.Coordinates != nil {
		r.Lat, r.Lon = &p.Coordinates.Lat, &p.Coordinates.Lon
	}
	return r, nil
}
