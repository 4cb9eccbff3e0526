package cv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
  "basics": {
    "name": "Diego Saavedra",
    "label": {"es": "Ingeniero de Software", "en": "Software Engineer"},
    "email": "diego@example.com",
    "url": "https://example.com",
    "profiles": [{"network": "GitHub", "url": "https://github.com/example"}]
  },
  "work": [
    {
      "name": "Acme",
      "position": {"es": "Desarrollador", "en": "Developer"},
      "startDate": "2021-01-01",
      "summary": {"es": "Trabajo variado.", "en": "Varied work."}
    }
  ],
  "skills": [{"name": "Go"}],
  "softSkills": ["Teamwork"],
  "languages": [{"language": "Español", "fluency": "Nativo"}]
}`

func TestParse_ValidDocument(t *testing.T) {
	rec, err := Parse([]byte(validDoc))
	require.NoError(t, err)
	assert.Equal(t, "Diego Saavedra", rec.Basics.Name)
	assert.Equal(t, "Developer", rec.Work[0].Position.Resolve(LangEN))
	assert.Equal(t, "Teamwork", rec.SoftSkills[0])
}

func TestParse_MissingBasicsRejected(t *testing.T) {
	_, err := Parse([]byte(`{"work": []}`))
	assert.Error(t, err)
}

func TestParse_BadDateRejectedBySchema(t *testing.T) {
	doc := `{"basics": {"name": "X"}, "work": [{"name": "Y", "startDate": "January 2020"}]}`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParse_BadEmailRejectedByFieldValidation(t *testing.T) {
	doc := `{"basics": {"name": "X", "email": "not-an-email"}}`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParse_NotJSON(t *testing.T) {
	_, err := Parse([]byte("definitely not json"))
	assert.Error(t, err)
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.Work[0].Name)
}
