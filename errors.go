package formrule

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed registration calls.
var (
	// ErrEmptyFieldName is returned by RegisterField for an empty name.
	ErrEmptyFieldName = errors.New("formrule: field name must not be empty")

	// ErrEmptyRuleName is returned by Registry.Register for an empty name.
	ErrEmptyRuleName = errors.New("formrule: rule name must not be empty")

	// ErrNilPredicate is returned by Registry.Register for a rule without a
	// Check predicate.
	ErrNilPredicate = errors.New("formrule: rule must carry a Check predicate")
)

// UnknownRuleError reports a rule name that is absent from the registry at
// evaluation (or lookup) time. This is a configuration bug in the embedding
// application; silently skipping the rule would fake validity, so it is
// always propagated.
type UnknownRuleError struct {
	Rule  string
	Field string // field under evaluation; empty for direct Lookup calls
}

func (e *UnknownRuleError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("formrule: unknown rule %q", e.Rule)
	}
	return fmt.Sprintf("formrule: unknown rule %q on field %q", e.Rule, e.Field)
}

// UnknownFieldError reports an operation against a field name that is not
// currently registered, typically a lifecycle bug such as acting on an
// already-deregistered field.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("formrule: unknown field %q", e.Field)
}

// DuplicateFieldError reports a second registration under a name already in
// use within the same Form.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("formrule: field %q is already registered", e.Field)
}

// AsUnknownRule extracts an *UnknownRuleError using errors.As internally.
func AsUnknownRule(err error) (*UnknownRuleError, bool) {
	var e *UnknownRuleError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsUnknownField extracts an *UnknownFieldError using errors.As internally.
func AsUnknownField(err error) (*UnknownFieldError, bool) {
	var e *UnknownFieldError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsDuplicateField extracts a *DuplicateFieldError using errors.As internally.
func AsDuplicateField(err error) (*DuplicateFieldError, bool) {
	var e *DuplicateFieldError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
