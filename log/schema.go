package log

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/jsonschema-go/jsonschema"
)

// ConfigSchemaID is the $id of the schema returned by [ConfigSchema].
const ConfigSchemaID = "https://go.jacobcolvin.com/scribe/config.schema.json"

// ConfigSchema returns a JSON Schema (Draft 7) describing the YAML file
// accepted by [Config.LoadFile].
func ConfigSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		ID:          ConfigSchemaID,
		Title:       "scribe logger configuration",
		Type:        "object",
		Description: "Construction parameters for a leveled console/file logger.",
		Properties: map[string]*jsonschema.Schema{
			"id": {
				Type:        "string",
				Description: "Component identifier printed on every line.",
			},
			"level": {
				Type: "string",
				Description: "Minimum level emitted; lower levels are dropped. One of " +
					strings.Join(levelWords, ", ") + ", in any case.",
				Pattern: namePattern(levelWords, false),
				Default: json.RawMessage(`"info"`),
			},
			"file": {
				Type:        "string",
				Description: "Path of a file that receives plain lines. Empty disables file output.",
			},
			"color": {
				Type: "string",
				Description: "Console color mode. One of " +
					strings.Join(GetAllColorModeStrings(), ", ") + ", in any case; empty means auto.",
				Pattern: namePattern(GetAllColorModeStrings(), true),
				Default: json.RawMessage(`"auto"`),
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

// levelWords are the names [ParseLevel] accepts.
var levelWords = append(GetAllLevelStrings(), "warning")

// namePattern returns an ECMA-262 pattern matching any of words with the
// same leniency as the parsers: any letter case and surrounding whitespace.
func namePattern(words []string, allowEmpty bool) string {
	alts := make([]string, 0, len(words)+1)
	if allowEmpty {
		alts = append(alts, "")
	}

	for _, w := range words {
		var b strings.Builder
		for _, r := range w {
			upper, lower := unicode.ToUpper(r), unicode.ToLower(r)
			if upper == lower {
				b.WriteString(regexp.QuoteMeta(string(r)))
				continue
			}

			b.WriteString("[" + string(upper) + string(lower) + "]")
		}

		alts = append(alts, b.String())
	}

	return `^\s*(?:` + strings.Join(alts, "|") + `)\s*$`
}
