package formrule

// Value is an opaque controlled-input value. The engine never coerces or
// inspects it; the only thing it does with a value is compare it against the
// field's initial value and hand it to predicates and hint producers.
type Value = any

// Hint is the opaque failure descriptor produced by a rule's HintFunc (UI
// markup in a browser embedding, a message string in a CLI, anything at all).
// The engine stores and forwards hints verbatim.
type Hint = any

// Predicate reports whether a value passes one validation check. It may read
// sibling field state through form for cross-field checks, but must treat
// everything it receives as read-only. Predicates are trusted to be
// side-effect-free; a panicking predicate is an authoring defect and is not
// recovered anywhere in this package.
type Predicate func(v Value, field FieldState, form FormContext) bool

// HintFunc produces the descriptor surfaced when the paired predicate fails.
type HintFunc func(v Value) Hint

// Rule pairs a predicate with its hint producer. Hint may be nil, in which
// case failures surface a nil descriptor.
type Rule struct {
	Check Predicate
	Hint  HintFunc
}

// FormContext is the read-only sibling lookup handed to predicates. Field
// returns a snapshot copy keyed by field name; writes to the snapshot never
// reach the controller's records.
type FormContext interface {
	Field(name string) (FieldState, bool)
}

// Result is the outcome of evaluating one field.
type Result struct {
	Valid bool
	Rule  string // name of the first failing rule when !Valid
	Hint  Hint   // descriptor produced by that rule, nil when Valid
}

// Failures maps field names to the name of their first failing rule. Fields
// that evaluated Valid are absent; an empty map means the whole form passed.
type Failures map[string]string

// Valid reports whether no field failed.
func (f Failures) Valid() bool { return len(f) == 0 }
