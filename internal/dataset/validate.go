// Package dataset provides schema-validated loading for the static JSON
// data files (skill taxonomy, role profiles) the engine reads at startup.
package dataset

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Validate checks a JSON document against a JSON Schema before decoding.
// Returns a *LoadError describing the first violations when the document
// does not conform.
func Validate(schema string, doc []byte, source string) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return &LoadError{Source: source, Reason: "not valid JSON", Cause: err}
	}

	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			fmt.Fprintf(&sb, "%s: %s", desc.Field(), desc.Description())
		}
		return &LoadError{Source: source, Reason: sb.String()}
	}

	return nil
}
