package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Certified Specialist in Data Science & Analytics",
		"Certified Specialist in Artificial Intelligence & Machine Learning",
		"Certified Specialist in Full Stack Development (MERN)",
		"Certified Cyber Security Analyst",
		"Certified Specialist in SDET",
	}, c.KB.Names())

	ds, ok := c.KB.Get("data science")
	require.True(t, ok)
	assert.Equal(t, "The fees can cost between Rs. 15,000 to Rs. 25,000.", ds.Fees)
	assert.Contains(t, ds.Duration, "6 months")

	assert.Contains(t, c.Context, "main office is located in Thiruvananthapuram")
	assert.Equal(t, "The Certified Specialist programs are 6 months long.", c.DurationAnswer)
	assert.Equal(t, "The fees for Certified Specialist programs are between Rs. 15,000 to Rs. 25,000.", c.FeesAnswer)
}

func TestParseNormalisesKeysAndDefaultsAnswers(t *testing.T) {
	c, err := Parse([]byte(`
courses:
  - key: "  Cloud Computing "
    name: Cloud Practitioner
    duration: 3 months
    fees: Rs. 10,000
context: The academy teaches cloud.
`))
	require.NoError(t, err)

	_, ok := c.KB.Get("cloud computing")
	assert.True(t, ok)
	assert.NotEmpty(t, c.DurationAnswer)
	assert.NotEmpty(t, c.FeesAnswer)
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	_, err := Parse([]byte(`
courses:
  - {key: a, name: A, duration: d, fees: f}
  - {key: A, name: B, duration: d, fees: f}
context: text
`))
	assert.Error(t, err, "keys differing only by case are duplicates")

	_, err = Parse([]byte(`
courses:
  - {key: a, name: A, duration: d, fees: f}
`))
	assert.ErrorIs(t, err, ErrEmptyContext)

	_, err = Parse([]byte(`context: text`))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
courses:
  - {key: sdet, name: SDET, duration: 6 months, fees: Rs. 20,000}
answers:
  duration: Six months.
  fees: Twenty thousand.
context: The academy is in Kerala.
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SDET"}, c.KB.Names())
	assert.Equal(t, "Six months.", c.DurationAnswer)
	assert.Equal(t, "Twenty thousand.", c.FeesAnswer)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
