package dsl

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromYAML parses a form definition like:
//
//	fields:
//	  - name: username
//	    rules: [required, alpha]
//	    initial: ""
//	  - name: newsletter
//	    initial: false
func FromYAML(data []byte) (FormDef, error) {
	var def FormDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return FormDef{}, fmt.Errorf("dsl: parsing yaml form definition: %w", err)
	}
	return def, nil
}

// FromJSON parses the JSON equivalent of the YAML form definition.
func FromJSON(data []byte) (FormDef, error) {
	var def FormDef
	if err := json.Unmarshal(data, &def); err != nil {
		return FormDef{}, fmt.Errorf("dsl: parsing json form definition: %w", err)
	}
	return def, nil
}
