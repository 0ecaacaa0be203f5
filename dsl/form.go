package dsl

import (
	formrule "github.com/reoring/formrule"
)

// FieldDef declares one field: its name, ordered rule names, and initial
// value.
type FieldDef struct {
	Name    string   `json:"name" yaml:"name"`
	Rules   []string `json:"rules,omitempty" yaml:"rules,omitempty"`
	Initial any      `json:"initial,omitempty" yaml:"initial,omitempty"`
}

// FormDef is an ordered, declarative form definition.
type FormDef struct {
	Fields []FieldDef `json:"fields" yaml:"fields"`
}

// Build wires the definition into a new Form validating against reg. Every
// referenced rule name must resolve in reg; an unresolved name fails with
// *formrule.UnknownRuleError carrying the offending field, so configuration
// bugs surface at build time rather than mid-interaction.
func (d FormDef) Build(reg *formrule.Registry) (*formrule.Form, error) {
	form := formrule.New(reg)
	for _, fd := range d.Fields {
		for _, rule := range fd.Rules {
			if _, err := reg.Lookup(rule); err != nil {
				return nil, &formrule.UnknownRuleError{Rule: rule, Field: fd.Name}
			}
		}
		if _, err := form.RegisterField(fd.Name, fd.Rules, fd.Initial); err != nil {
			return nil, err
		}
	}
	return form, nil
}

// MustBuild is Build for startup wiring; it panics on error.
func (d FormDef) MustBuild(reg *formrule.Registry) *formrule.Form {
	form, err := d.Build(reg)
	if err != nil {
		panic(err)
	}
	return form
}

// ---------- builder ----------

type formBuilder struct {
	def FormDef
}

type fieldStep struct {
	b *formBuilder
}

// Form creates a new form builder.
func Form() *formBuilder { return &formBuilder{} }

// Field appends a field with its ordered rule names.
func (b *formBuilder) Field(name string, rules ...string) *fieldStep {
	b.def.Fields = append(b.def.Fields, FieldDef{Name: name, Rules: rules})
	return &fieldStep{b: b}
}

// Build wires the declared fields into a new Form. See FormDef.Build.
func (b *formBuilder) Build(reg *formrule.Registry) (*formrule.Form, error) {
	return b.def.Build(reg)
}

// MustBuild is Build for startup wiring; it panics on error.
func (b *formBuilder) MustBuild(reg *formrule.Registry) *formrule.Form {
	return b.def.MustBuild(reg)
}

// Def returns the accumulated definition.
func (b *formBuilder) Def() FormDef { return b.def }

// Initial sets the initial value of the field just declared.
func (s *fieldStep) Initial(v any) *fieldStep {
	s.b.def.Fields[len(s.b.def.Fields)-1].Initial = v
	return s
}

// Field continues the chain with the next field.
func (s *fieldStep) Field(name string, rules ...string) *fieldStep {
	return s.b.Field(name, rules...)
}

// Build delegates to the underlying builder.
func (s *fieldStep) Build(reg *formrule.Registry) (*formrule.Form, error) { return s.b.Build(reg) }

// MustBuild delegates to the underlying builder.
func (s *fieldStep) MustBuild(reg *formrule.Registry) *formrule.Form { return s.b.MustBuild(reg) }

// Def delegates to the underlying builder.
func (s *fieldStep) Def() FormDef { return s.b.Def() }
