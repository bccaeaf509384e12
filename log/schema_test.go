package log_test

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/scribe/log"
)

func TestConfigSchema(t *testing.T) {
	t.Parallel()

	schema := log.ConfigSchema()
	require.NotNil(t, schema)

	out, err := json.Marshal(schema)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))

	assert.Equal(t, "object", got["type"])
	assert.Equal(t, log.ConfigSchemaID, got["$id"])
	assert.Equal(t, false, got["additionalProperties"])

	props, ok := got["properties"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"id", "level", "file", "color"}, keys(props))

	level, ok := props["level"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "info", level["default"])
	assert.Contains(t, level["description"], "warning")

	color, ok := props["color"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "auto", color["default"])
	assert.Contains(t, color["description"], "never")
}

func TestConfigSchemaPatternsMatchParsers(t *testing.T) {
	t.Parallel()

	props := log.ConfigSchema().Properties
	levelRE := regexp.MustCompile(props["level"].Pattern)
	colorRE := regexp.MustCompile(props["color"].Pattern)

	inputs := []string{
		"", " ", "trace", "DEBUG", "Info", " warn ", "Warning", "WARNING",
		"error", "fatal\n", "FaTaL", "auto", "ALWAYS", " Never ", "nope",
		"info2", "inf", "xinfo", "warn ing", "auto\tnever",
	}

	for _, in := range inputs {
		_, levelErr := log.ParseLevel(in)
		assert.Equal(t, levelErr == nil, levelRE.MatchString(in), "level %q", in)

		_, colorErr := log.ParseColorMode(in)
		assert.Equal(t, colorErr == nil, colorRE.MatchString(in), "color %q", in)
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
