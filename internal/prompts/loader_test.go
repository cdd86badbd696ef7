package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	ClearCache()

	for _, key := range []string{"rewrite_summary", "rewrite_bullets"} {
		prompt, err := Get("rewriting.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("rewriting.json", "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "rewrite_summary")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	template := "Role: {{.Role}}, Seniority: {{.Seniority}}"
	result := Format(template, map[string]string{
		"Role":      "Backend Engineer",
		"Seniority": "senior",
	})
	assert.Equal(t, "Role: Backend Engineer, Seniority: senior", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", result)
}
