package formrule_test

import (
	"testing"

	formrule "github.com/reoring/formrule"
)

func TestForm_RegisterField(t *testing.T) {
	form := formrule.New(newTestRegistry())

	fs, err := form.RegisterField("username", []string{"required"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.Used || fs.Changed || fs.HasError() {
		t.Fatalf("expected a pristine field, got %+v", fs)
	}
	if fs.Value != "" || len(fs.Rules) != 1 || fs.Rules[0] != "required" {
		t.Fatalf("unexpected snapshot: %+v", fs)
	}

	if _, err := form.RegisterField("username", nil, ""); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	} else if dfe, ok := formrule.AsDuplicateField(err); !ok || dfe.Field != "username" {
		t.Fatalf("expected *DuplicateFieldError for username, got %v", err)
	}

	if _, err := form.RegisterField("", nil, ""); err != formrule.ErrEmptyFieldName {
		t.Fatalf("expected ErrEmptyFieldName, got %v", err)
	}
}

func TestForm_OnValueChange_ChangedIsSticky(t *testing.T) {
	form := formrule.New(newTestRegistry())
	if _, err := form.RegisterField("bio", nil, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same value as the initial one: used, but not changed.
	fs, err := form.OnValueChange("bio", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fs.Used || fs.Changed {
		t.Fatalf("expected Used && !Changed, got %+v", fs)
	}

	fs, _ = form.OnValueChange("bio", "hello")
	if !fs.Changed {
		t.Fatalf("expected Changed after a differing value, got %+v", fs)
	}

	// Reverting to the initial value does not reset Changed.
	fs, _ = form.OnValueChange("bio", "")
	if !fs.Changed {
		t.Fatalf("expected Changed to stay true after reverting, got %+v", fs)
	}
}

func TestForm_OnValueChange_EvaluatesAndStoresError(t *testing.T) {
	form := formrule.New(newTestRegistry())
	form.RegisterField("username", []string{"required", "alpha"}, "")

	fs, err := form.OnValueChange("username", "12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fs.HasError() {
		t.Fatalf("expected an error descriptor, got %+v", fs)
	}

	fs, _ = form.OnValueChange("username", "gopher")
	if fs.HasError() {
		t.Fatalf("expected the error to clear on a valid value, got %+v", fs)
	}
}

func TestForm_OnValueChange_UnknownField(t *testing.T) {
	form := formrule.New(newTestRegistry())
	_, err := form.OnValueChange("ghost", "x")
	if ufe, ok := formrule.AsUnknownField(err); !ok || ufe.Field != "ghost" {
		t.Fatalf("expected *UnknownFieldError for ghost, got %v", err)
	}
}

func TestForm_Validate_ForcesUsedAndChanged(t *testing.T) {
	form := formrule.New(newTestRegistry())
	form.RegisterField("username", []string{"required"}, "")

	res, err := form.Validate("username")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid || res.Rule != "required" {
		t.Fatalf("expected Invalid(required), got %+v", res)
	}
	fs, _ := form.Field("username")
	if !fs.Used || !fs.Changed {
		t.Fatalf("expected Used and Changed forced true, got %+v", fs)
	}
	if fs.Error != "value is required" {
		t.Fatalf("expected the required hint stored, got %v", fs.Error)
	}
}

func TestForm_Validate_UnknownField(t *testing.T) {
	form := formrule.New(newTestRegistry())
	if _, err := form.Validate("ghost"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestForm_ValidateAll_MapsOnlyFailures(t *testing.T) {
	form := formrule.New(newTestRegistry())
	form.RegisterField("first", []string{"required"}, "")
	form.RegisterField("second", []string{"required"}, "")
	form.RegisterField("third", []string{"required"}, "")
	form.OnValueChange("first", "ok")
	form.OnValueChange("third", "ok")

	failed, err := form.ValidateAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if failed.Valid() {
		t.Fatalf("expected a failure")
	}
	if len(failed) != 1 || failed["second"] != "required" {
		t.Fatalf("expected exactly {second: required}, got %v", failed)
	}
}

func TestForm_ValidateAll_EmptyFormIsValid(t *testing.T) {
	form := formrule.New(newTestRegistry())
	failed, err := form.ValidateAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if failed == nil || !failed.Valid() {
		t.Fatalf("expected an empty non-nil failure map, got %v", failed)
	}
}

func TestForm_ValidateAll_RegistrationOrder(t *testing.T) {
	reg := formrule.NewRegistry()
	var ran []string
	reg.MustRegister("trace", formrule.Rule{
		Check: func(_ formrule.Value, field formrule.FieldState, _ formrule.FormContext) bool {
			ran = append(ran, field.Name)
			return true
		},
	})

	form := formrule.New(reg)
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		form.RegisterField(name, []string{"trace"}, nil)
	}
	if _, err := form.ValidateAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"charlie", "alpha", "bravo"}
	if len(ran) != len(want) {
		t.Fatalf("expected %v, got %v", want, ran)
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Fatalf("expected registration order %v, got %v", want, ran)
		}
	}
}

func TestForm_ValidateAll_UnknownRulePropagates(t *testing.T) {
	form := formrule.New(newTestRegistry())
	form.RegisterField("username", []string{"missing"}, "")
	if _, err := form.ValidateAll(); err == nil {
		t.Fatalf("expected unknown rule error to propagate")
	}
}

func TestForm_ShowError_And_HideError(t *testing.T) {
	form := formrule.New(newTestRegistry())
	form.RegisterField("email", []string{"required"}, "")

	fs, err := form.ShowError("email", "taken by another account")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.Error != "taken by another account" {
		t.Fatalf("expected the supplied hint, got %v", fs.Error)
	}
	if fs.Used || fs.Changed {
		t.Fatalf("expected Used/Changed untouched, got %+v", fs)
	}

	fs, err = form.HideError("email")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fs.HasError() {
		t.Fatalf("expected the error cleared, got %+v", fs)
	}
}

func TestForm_ShowError_FallsBackToLastFailingHint(t *testing.T) {
	form := formrule.New(newTestRegistry())
	form.RegisterField("username", []string{"required"}, "")

	// Nothing has failed yet: the fallback is nil.
	fs, _ := form.ShowError("username")
	if fs.HasError() {
		t.Fatalf("expected nil fallback before any failure, got %v", fs.Error)
	}

	form.Validate("username") // fails required, remembers its hint
	form.HideError("username")
	fs, _ = form.ShowError("username")
	if fs.Error != "value is required" {
		t.Fatalf("expected the last failing hint, got %v", fs.Error)
	}
}

func TestForm_HideError_RunsNoPredicates(t *testing.T) {
	reg := formrule.NewRegistry()
	calls := 0
	reg.MustRegister("count", formrule.Rule{
		Check: func(formrule.Value, formrule.FieldState, formrule.FormContext) bool {
			calls++
			return false
		},
		Hint: func(formrule.Value) formrule.Hint { return "nope" },
	})
	form := formrule.New(reg)
	form.RegisterField("f", []string{"count"}, nil)
	form.Validate("f")

	before := calls
	form.HideError("f")
	form.ShowError("f")
	if calls != before {
		t.Fatalf("expected no predicate runs from ShowError/HideError, got %d extra", calls-before)
	}
}

func TestForm_DeregisterField(t *testing.T) {
	form := formrule.New(newTestRegistry())
	form.RegisterField("a", []string{"required"}, "x")
	form.RegisterField("b", []string{"required"}, "")

	form.DeregisterField("b")
	form.DeregisterField("b") // idempotent

	if _, ok := form.Field("b"); ok {
		t.Fatalf("expected b to be gone")
	}
	failed, err := form.ValidateAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !failed.Valid() {
		t.Fatalf("expected remaining fields to pass, got %v", failed)
	}

	// The name can be reused after deregistration.
	if _, err := form.RegisterField("b", nil, ""); err != nil {
		t.Fatalf("unexpected error re-registering: %v", err)
	}
}

func TestForm_RuleRedefinitionIsNotRetroactive(t *testing.T) {
	reg := formrule.NewRegistry()
	reg.MustRegister("required", formrule.Rule{
		Check: failAll,
		Hint:  func(formrule.Value) formrule.Hint { return "old hint" },
	})
	form := formrule.New(reg)
	form.RegisterField("username", []string{"required"}, "")
	form.Validate("username")

	reg.MustRegister("required", formrule.Rule{
		Check: failAll,
		Hint:  func(formrule.Value) formrule.Hint { return "new hint" },
	})

	fs, _ := form.Field("username")
	if fs.Error != "old hint" {
		t.Fatalf("expected the stored error untouched by redefinition, got %v", fs.Error)
	}
	res, err := form.Validate("username")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Hint != "new hint" {
		t.Fatalf("expected the redefined hint on re-evaluation, got %v", res.Hint)
	}
}

func TestForm_SnapshotsAreCopies(t *testing.T) {
	form := formrule.New(newTestRegistry())
	form.RegisterField("username", []string{"required"}, "gopher")

	fs, _ := form.Field("username")
	fs.Value = "mutated"
	fs.Rules[0] = "alpha"

	again, _ := form.Field("username")
	if again.Value != "gopher" || again.Rules[0] != "required" {
		t.Fatalf("expected snapshot writes to stay local, got %+v", again)
	}
}
