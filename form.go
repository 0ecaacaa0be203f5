package formrule

import "reflect"

// fieldRecord is the mutable record behind each FieldState snapshot. Only
// the owning Form touches it.
type fieldRecord struct {
	state    FieldState
	initial  Value
	lastHint Hint // hint of the most recent failing evaluation; ShowError fallback
}

func (r *fieldRecord) snapshot() FieldState {
	s := r.state
	s.Rules = append([]string(nil), r.state.Rules...)
	return s
}

// Form orchestrates a set of registered fields: it routes value changes into
// the engine, owns every FieldState, and aggregates results across fields.
//
// A Form is synchronous and not safe for concurrent use; all operations are
// expected to run on a single UI event sequence. ValidateAll walks fields in
// registration order, which is an observable contract.
type Form struct {
	registry *Registry
	fields   map[string]*fieldRecord
	order    []string
}

var _ FormContext = (*Form)(nil)

// New returns an empty Form validating against reg. A nil reg is replaced by
// a fresh empty registry, which makes every non-empty rule list fail loudly.
func New(reg *Registry) *Form {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Form{
		registry: reg,
		fields:   map[string]*fieldRecord{},
	}
}

// RegisterField adds a pristine field (Used/Changed false, no error) with
// the given ordered rule names and initial value, and returns its snapshot.
// The name must be non-empty and unique within this Form.
func (f *Form) RegisterField(name string, ruleNames []string, initial Value) (FieldState, error) {
	if name == "" {
		return FieldState{}, ErrEmptyFieldName
	}
	if _, dup := f.fields[name]; dup {
		return FieldState{}, &DuplicateFieldError{Field: name}
	}
	rec := &fieldRecord{
		state: FieldState{
			Name:  name,
			Value: initial,
			Rules: append([]string(nil), ruleNames...),
		},
		initial: initial,
	}
	f.fields[name] = rec
	f.order = append(f.order, name)
	return rec.snapshot(), nil
}

// DeregisterField removes the field's record, typically from a wrapper's
// teardown path. Removing an unknown name is a no-op so teardown is safe to
// run twice.
func (f *Form) DeregisterField(name string) {
	if _, ok := f.fields[name]; !ok {
		return
	}
	delete(f.fields, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// OnValueChange records a new value for the field and re-evaluates it. It is
// meant to be called on every change event, not only on submit. The change
// marks the field used; Changed becomes true once the value differs from the
// initial value and stays true even if the value later reverts. The updated
// snapshot is returned so the caller can refresh its rendering.
func (f *Form) OnValueChange(name string, v Value) (FieldState, error) {
	rec, ok := f.fields[name]
	if !ok {
		return FieldState{}, &UnknownFieldError{Field: name}
	}
	rec.state.Value = v
	rec.state.Used = true
	if !rec.state.Changed && !reflect.DeepEqual(v, rec.initial) {
		rec.state.Changed = true
	}
	if _, err := f.evaluate(rec); err != nil {
		return FieldState{}, err
	}
	return rec.snapshot(), nil
}

// Validate forces the field used and changed regardless of prior interaction,
// evaluates it, and updates its stored error.
func (f *Form) Validate(name string) (Result, error) {
	rec, ok := f.fields[name]
	if !ok {
		return Result{}, &UnknownFieldError{Field: name}
	}
	rec.state.Used = true
	rec.state.Changed = true
	return f.evaluate(rec)
}

// ValidateAll validates every registered field in registration order and
// returns the name of the first failing rule per failing field. Fields that
// pass are absent, so an empty map means the whole form is valid; a Form
// with no fields yields an empty map. An *UnknownRuleError aborts the walk.
func (f *Form) ValidateAll() (Failures, error) {
	failed := Failures{}
	for _, name := range f.order {
		res, err := f.Validate(name)
		if err != nil {
			return nil, err
		}
		if !res.Valid {
			failed[name] = res.Rule
		}
	}
	return failed, nil
}

// ShowError sets the field's error directly, without running any rule: to
// the supplied hint when given, otherwise to the hint of the most recent
// failing evaluation (nil if the field never failed). Used and Changed are
// left untouched. It exists so asynchronous callers, e.g. a handler for a
// server-side rejection, can inject a result after the fact.
func (f *Form) ShowError(name string, hint ...Hint) (FieldState, error) {
	rec, ok := f.fields[name]
	if !ok {
		return FieldState{}, &UnknownFieldError{Field: name}
	}
	h := rec.lastHint
	if len(hint) > 0 {
		h = hint[0]
	}
	rec.state.Error = h
	return rec.snapshot(), nil
}

// HideError clears the field's error without re-running validation or
// touching Used/Changed.
func (f *Form) HideError(name string) (FieldState, error) {
	rec, ok := f.fields[name]
	if !ok {
		return FieldState{}, &UnknownFieldError{Field: name}
	}
	rec.state.Error = nil
	return rec.snapshot(), nil
}

// Field returns a snapshot of the named field. It also serves predicates as
// the FormContext sibling lookup during evaluation.
func (f *Form) Field(name string) (FieldState, bool) {
	rec, ok := f.fields[name]
	if !ok {
		return FieldState{}, false
	}
	return rec.snapshot(), true
}

// Fields returns snapshots of all registered fields in registration order.
func (f *Form) Fields() []FieldState {
	out := make([]FieldState, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, f.fields[name].snapshot())
	}
	return out
}

// evaluate runs the engine for rec and folds the outcome back into its
// stored state: the error is set on failure and cleared on success, and the
// last failing hint is remembered for ShowError's fallback.
func (f *Form) evaluate(rec *fieldRecord) (Result, error) {
	res, err := Evaluate(rec.state, f, f.registry)
	if err != nil {
		return Result{}, err
	}
	if res.Valid {
		rec.state.Error = nil
		return res, nil
	}
	rec.state.Error = res.Hint
	rec.lastHint = res.Hint
	return res, nil
}
