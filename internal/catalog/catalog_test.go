package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func sampleRoles() []types.RoleProfile {
	return []types.RoleProfile{
		{
			Name: "Data Scientist",
			Skills: []types.RequiredSkill{
				{ID: "python", Importance: types.ImportanceEssential},
				{ID: "machine_learning", Importance: types.ImportanceEssential},
				{ID: "sql", Importance: types.ImportanceDesirable},
			},
		},
		{
			Name: "Data Analyst",
			Skills: []types.RequiredSkill{
				{ID: "sql", Importance: types.ImportanceEssential},
			},
		},
	}
}

func TestNew_LookupIsCaseInsensitive(t *testing.T) {
	cat, err := New(sampleRoles())
	require.NoError(t, err)

	role, err := cat.Role("data scientist")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", role.Name)
	assert.Equal(t, []string{"python", "machine_learning"}, role.EssentialSkills())
}

func TestNew_UnknownRole(t *testing.T) {
	cat, err := New(sampleRoles())
	require.NoError(t, err)

	_, err = cat.Role("Astronaut")
	var notFound *RoleNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Astronaut", notFound.Role)
	assert.Equal(t, []string{"Data Analyst", "Data Scientist"}, notFound.Available)
}

func TestNew_RejectsInvalidImportance(t *testing.T) {
	_, err := New([]types.RoleProfile{{
		Name:   "Broken",
		Skills: []types.RequiredSkill{{ID: "python", Importance: "critical"}},
	}})
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	_, err := New([]types.RoleProfile{
		{Name: "Data Scientist"},
		{Name: "data scientist"},
	})
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "duplicate")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	content := `[
		{"name": "Data Scientist", "skills": [
			{"id": "python", "importance": "essential"},
			{"id": "sql", "importance": "desirable"}
		]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	role, err := cat.Role("Data Scientist")
	require.NoError(t, err)
	assert.Equal(t, []string{"sql"}, role.DesirableSkills())
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestLoadFile_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFile(path)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}
