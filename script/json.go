// Package script implements the application's non-interactive, programmable execution mode.
package script

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Output is the machine-readable document produced for a script run.
type Output struct {
	Script     string   `json:"script"`
	Transcript []Entry  `json:"transcript"`
	Items      []string `json:"items"`
	List       []string `json:"list"`
	Top        *string  `json:"top"`
	Len        int      `json:"len"`
}

// AsJson renders an evaluation result as the Output document.
func AsJson(script string, result Result) ([]byte, error) {
	out := Output{
		Script:     script,
		Transcript: result.Transcript,
		Items:      result.Stack.Items(),
		List:       result.Stack.List(),
		Len:        result.Stack.Len(),
	}
	if top, ok := result.Stack.Top().Get(); ok {
		out.Top = &top
	}

	return json.Marshal(out)
}

// Schema returns the JSON Schema describing the Output document.
func Schema() ([]byte, error) {
	schema := jsonschema.Reflect(&Output{})
	return json.MarshalIndent(schema, "", "  ")
}
