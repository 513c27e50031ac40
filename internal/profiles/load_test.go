package profiles

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/lingua-match/internal/schemas"
	"github.com/jonathan/lingua-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfile_Fixture(t *testing.T) {
	p, err := LoadProfile(filepath.Join("..", "..", "testdata", "profiles", "requester.json"))
	require.NoError(t, err)

	assert.Equal(t, "alice", p.ID)
	require.NotNil(t, p.Age)
	assert.Equal(t, 28, *p.Age)
	assert.Equal(t, "en", p.NativeLanguage)
	assert.Equal(t, []string{"fr", "es"}, p.LearningCodes())
	assert.Equal(t, "US", p.CountryCode)
	require.NotNil(t, p.Preferences.TravelDestination)
	assert.True(t, p.Preferences.TravelDestination.IsActive)
	assert.Equal(t, []string{"FR", "BE"}, p.Preferences.RegionalLanguagePreferences["fr"])
}

func TestLoadProfiles_FixtureArray(t *testing.T) {
	profiles, err := LoadProfiles(filepath.Join("..", "..", "testdata", "profiles", "candidates.json"))
	require.NoError(t, err)
	require.Len(t, profiles, 5)

	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"bastien", "carmen", "daniel", "emi", "fleur"}, ids)
}

func TestLoadProfiles_AppliesDefaults(t *testing.T) {
	path := writeFile(t, `{"id": "u1", "native_language": "en"}`)

	profiles, err := LoadProfiles(path)
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	prefs := profiles[0].Preferences
	assert.Equal(t, types.GenderPreferenceAll, prefs.GenderPreference)
	assert.Equal(t, types.LocationAnywhere, prefs.LocationPreference)
	assert.Equal(t, types.DefaultMinAge, prefs.MinAge)
	assert.Equal(t, types.DefaultMaxAge, prefs.MaxAge)
	assert.Equal(t, types.ProficiencyBeginner, prefs.MinProficiencyLevel)
	assert.Equal(t, types.ProficiencyNative, prefs.MaxProficiencyLevel)
}

func TestLoadProfile_RejectsArrayOfMany(t *testing.T) {
	path := writeFile(t, `[{"id": "u1", "native_language": "en"}, {"id": "u2", "native_language": "fr"}]`)

	_, err := LoadProfile(path)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "expected 1 profile, found 2")
}

func TestLoadProfiles_FileNotFound(t *testing.T) {
	_, err := LoadProfiles("nonexistent_file.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadProfiles_InvalidJSON(t *testing.T) {
	for _, content := range []string{"{ invalid json }", "[{]", "   "} {
		_, err := LoadProfiles(writeFile(t, content))
		require.Error(t, err)

		var loadErr *LoadError
		assert.True(t, errors.As(err, &loadErr), "content %q", content)
	}
}

func TestLoadProfiles_SchemaFailure(t *testing.T) {
	path := writeFile(t, `[
		{"id": "u1", "native_language": "en"},
		{"id": "u2", "native_language": "fr", "learning_languages": [{"code": "en", "level": "fluent"}]}
	]`)

	_, err := LoadProfiles(path)
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, 1, valErr.Index)
	assert.Equal(t, "u2", valErr.ID)
	assert.Contains(t, err.Error(), `invalid profile "u2"`)

	var schemaErr *schemas.ValidationError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.Fields(), "learning_languages.0.level")
}

func TestLoadProfiles_StructValidationFailure(t *testing.T) {
	// Schema-valid, but the age range is inverted.
	path := writeFile(t, `{"id": "u1", "native_language": "en", "preferences": {"min_age": 40, "max_age": 30}}`)

	_, err := LoadProfiles(path)
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, -1, valErr.Index)

	var fieldErrs validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "MinAge", fieldErrs[0].StructField())
}

func TestValidationError_Error(t *testing.T) {
	cause := errors.New("bad")

	assert.Equal(t, "invalid profile at a.json: bad", (&ValidationError{Path: "a.json", Index: -1, Cause: cause}).Error())
	assert.Equal(t, `invalid profile "x" at a.json[2]: bad`, (&ValidationError{Path: "a.json", Index: 2, ID: "x", Cause: cause}).Error())
}

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("body.a", []byte(` {"id": "u1", "native_language": "en"} `))
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)

	_, err = ParseProfile("body.a", []byte(`[{"id": "u1", "native_language": "en"}]`))
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "found an array")

	_, err = ParseProfile("body.a", nil)
	assert.True(t, errors.As(err, &loadErr))
}
