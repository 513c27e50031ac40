// Package profiles loads user profiles from JSON files.
package profiles

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/lingua-match/internal/schemas"
	"github.com/jonathan/lingua-match/internal/types"
)

// LoadProfiles reads a JSON file holding either a single profile or an array of them.
// Every profile is checked against the profile schema, given default preferences and
// validated before it is returned.
func LoadProfiles(path string) ([]types.UserProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return ParseProfiles(path, content)
}

// LoadProfile reads a file that must contain exactly one profile.
func LoadProfile(path string) (*types.UserProfile, error) {
	profiles, err := LoadProfiles(path)
	if err != nil {
		return nil, err
	}
	if len(profiles) != 1 {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("expected 1 profile, found %d", len(profiles))}
	}
	return &profiles[0], nil
}

// ParseProfiles decodes profile JSON already in memory. source names the data in errors.
func ParseProfiles(source string, content []byte) ([]types.UserProfile, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, &LoadError{Path: source, Message: "file is empty"}
	}

	var docs []json.RawMessage
	isArray := trimmed[0] == '['
	if isArray {
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, &LoadError{Path: source, Message: "failed to unmarshal JSON", Cause: err}
		}
	} else {
		var doc json.RawMessage
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &LoadError{Path: source, Message: "failed to unmarshal JSON", Cause: err}
		}
		docs = []json.RawMessage{doc}
	}

	profiles := make([]types.UserProfile, 0, len(docs))
	for i, doc := range docs {
		p, err := parseProfile(doc)
		if err != nil {
			index := -1
			if isArray {
				index = i
			}
			return nil, &ValidationError{Path: source, Index: index, ID: p.ID, Cause: err}
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// parseProfile returns the decoded profile alongside any error so callers can name it.
func parseProfile(doc json.RawMessage) (types.UserProfile, error) {
	var p types.UserProfile
	if err := schemas.ValidateProfileJSON(doc); err != nil {
		// Best effort for the error message only.
		_ = json.Unmarshal(doc, &p)
		return p, err
	}
	if err := json.Unmarshal(doc, &p); err != nil {
		return p, err
	}
	p.Preferences = p.Preferences.WithDefaults()
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// ParseProfile decodes a single profile object already in memory.
func ParseProfile(source string, content []byte) (*types.UserProfile, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return nil, &LoadError{Path: source, Message: "expected a profile object, found an array"}
	}
	profiles, err := ParseProfiles(source, trimmed)
	if err != nil {
		return nil, err
	}
	return &profiles[0], nil
}
