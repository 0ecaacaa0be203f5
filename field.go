package formrule

// FieldState is the per-field validation record. The Form owns the
// authoritative copy; every FieldState that leaves the Form is a value
// snapshot, so field wrappers and predicates can read it freely while writes
// never reach the controller's records.
type FieldState struct {
	Name    string
	Value   Value
	Used    bool     // the field has been validated or interacted with at least once
	Changed bool     // the value has differed from its initial value at least once
	Error   Hint     // descriptor from the most recent failure, nil when clear
	Rules   []string // rule names in evaluation order
}

// HasError reports whether an error descriptor is currently set.
func (f FieldState) HasError() bool { return f.Error != nil }

// CheckableValue normalizes checkbox/radio-style inputs before they reach
// the controller: an unchecked control contributes nil regardless of its
// underlying value attribute, so unchecked optional inputs cannot trip
// required-style rules. The policy belongs to field wrappers; the engine
// itself never special-cases checkables.
func CheckableValue(checked bool, v Value) Value {
	if !checked {
		return nil
	}
	return v
}
