package formrule

// Package formrule provides:
//
// - A rule-driven validation engine for controlled form inputs (Evaluate)
// - A process-lifetime Registry of named rules, supplied entirely by the
//   embedding application (the engine ships no built-in rules)
// - Per-field validation state (value/used/changed/error) owned by a Form
// - Form-level orchestration: OnValueChange, Validate, ValidateAll,
//   ShowError, HideError
//
// Design policy:
// - Values and hints are opaque. The engine stores and forwards them
//   verbatim and never interprets a value beyond equality with the field's
//   initial value.
// - Everything is synchronous and single-threaded; a Form lives on one UI
//   event sequence and performs no I/O. Asynchronous callers inject results
//   through ShowError/HideError instead of the engine knowing about
//   asynchrony.
// - Configuration bugs fail loudly: an unknown rule or field name is an
//   error, never a silent skip.
// - Keep the public API in the root package; optional helpers live under
//   rules/, i18n/, and dsl/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := formrule.NewRegistry()
//	reg.MustRegister("required", formrule.Rule{Check: nonEmpty, Hint: hint})
//
//	form := formrule.New(reg)
//	form.RegisterField("username", []string{"required"}, "")
//	form.OnValueChange("username", "gopher")
//	failed, err := form.ValidateAll()
