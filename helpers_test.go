package formrule_test

import (
	"fmt"
	"strings"
	"unicode"

	formrule "github.com/reoring/formrule"
)

// newTestRegistry returns a registry with the small rule set shared by the
// tests in this package.
func newTestRegistry() *formrule.Registry {
	reg := formrule.NewRegistry()
	reg.MustRegister("required", formrule.Rule{
		Check: func(v formrule.Value, _ formrule.FieldState, _ formrule.FormContext) bool {
			s, _ := v.(string)
			return strings.TrimSpace(s) != ""
		},
		Hint: func(formrule.Value) formrule.Hint { return "value is required" },
	})
	reg.MustRegister("alpha", formrule.Rule{
		Check: func(v formrule.Value, _ formrule.FieldState, _ formrule.FormContext) bool {
			s, _ := v.(string)
			for _, r := range s {
				if !unicode.IsLetter(r) {
					return false
				}
			}
			return true
		},
		Hint: func(v formrule.Value) formrule.Hint { return fmt.Sprintf("%v is not letters-only", v) },
	})
	return reg
}

// staticForm is a stub FormContext backed by a plain map.
type staticForm map[string]formrule.FieldState

func (s staticForm) Field(name string) (formrule.FieldState, bool) {
	fs, ok := s[name]
	return fs, ok
}
