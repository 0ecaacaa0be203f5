// Package rules provides optional predicate constructors and combinators for
// building an application's rule set. Nothing here is ever registered
// automatically; the registry always starts empty and the application decides
// which names map to which checks.
package rules

import (
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	formrule "github.com/reoring/formrule"
	"github.com/reoring/formrule/i18n"
)

// ---------- combinators ----------

// And passes only when every predicate passes, short-circuiting on the first
// failure.
func And(preds ...formrule.Predicate) formrule.Predicate {
	return func(v formrule.Value, field formrule.FieldState, form formrule.FormContext) bool {
		for _, p := range preds {
			if p == nil {
				continue
			}
			if !p(v, field, form) {
				return false
			}
		}
		return true
	}
}

// Or passes when at least one predicate passes. An empty list passes.
func Or(preds ...formrule.Predicate) formrule.Predicate {
	return func(v formrule.Value, field formrule.FieldState, form formrule.FormContext) bool {
		considered := false
		for _, p := range preds {
			if p == nil {
				continue
			}
			considered = true
			if p(v, field, form) {
				return true
			}
		}
		return !considered
	}
}

// Not inverts a predicate.
func Not(p formrule.Predicate) formrule.Predicate {
	return func(v formrule.Value, field formrule.FieldState, form formrule.FormContext) bool {
		return !p(v, field, form)
	}
}

// ---------- value predicates ----------

// NonEmpty passes for strings that are non-empty after trimming. nil fails;
// non-string values pass (their presence is all that is being checked).
func NonEmpty() formrule.Predicate {
	return func(v formrule.Value, _ formrule.FieldState, _ formrule.FormContext) bool {
		switch s := v.(type) {
		case nil:
			return false
		case string:
			return strings.TrimSpace(s) != ""
		default:
			return true
		}
	}
}

// Matches passes for string values matching pattern (compiled once, panics on
// an invalid pattern, so construction belongs at startup). Non-string values
// fail.
func Matches(pattern string) formrule.Predicate {
	re := regexp.MustCompile(pattern)
	return func(v formrule.Value, _ formrule.FieldState, _ formrule.FormContext) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		return re.MatchString(s)
	}
}

// MinLen passes for string values of at least n runes. Non-string values fail.
func MinLen(n int) formrule.Predicate {
	return func(v formrule.Value, _ formrule.FieldState, _ formrule.FormContext) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		return utf8.RuneCountInString(s) >= n
	}
}

// MaxLen passes for string values of at most n runes. Non-string values fail.
func MaxLen(n int) formrule.Predicate {
	return func(v formrule.Value, _ formrule.FieldState, _ formrule.FormContext) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		return utf8.RuneCountInString(s) <= n
	}
}

// InList passes when the value is deeply equal to one of the allowed values.
func InList(allowed ...formrule.Value) formrule.Predicate {
	return func(v formrule.Value, _ formrule.FieldState, _ formrule.FormContext) bool {
		for _, a := range allowed {
			if reflect.DeepEqual(v, a) {
				return true
			}
		}
		return false
	}
}

// ---------- cross-field predicates ----------

// FieldEquals compares the value with the sibling field named other, gated on
// interaction: while either field is still unused or unchanged the check
// passes, so a pristine confirmation input never flags a mismatch. An
// unregistered sibling also passes.
func FieldEquals(other string) formrule.Predicate {
	return func(v formrule.Value, field formrule.FieldState, form formrule.FormContext) bool {
		sib, ok := form.Field(other)
		if !ok {
			return true
		}
		if !field.Used || !field.Changed || !sib.Used || !sib.Changed {
			return true
		}
		return reflect.DeepEqual(v, sib.Value)
	}
}

// ---------- hint helpers ----------

// Hint adapts a fixed descriptor into a HintFunc.
func Hint(h formrule.Hint) formrule.HintFunc {
	return func(formrule.Value) formrule.Hint { return h }
}

// HintCode builds a HintFunc that resolves code through the i18n translator
// at failure time, so the surfaced message follows the active language.
func HintCode(code string, data map[string]string) formrule.HintFunc {
	return func(formrule.Value) formrule.Hint { return i18n.T(code, data) }
}
