// Package dsl provides declarative form definitions for formrule.
//
// Overview
//   - Builder API: declare fields with Form()/Field()/Initial(), then
//     Build(reg)/MustBuild(reg) to obtain a wired *formrule.Form.
//   - Loaders: FromYAML/FromJSON parse a FormDef from configuration, so form
//     layouts can live next to the application instead of in code.
//   - Build verifies that every referenced rule name resolves against the
//     registry, surfacing configuration bugs before the first keystroke
//     instead of at evaluation time.
//
// Entry points
//   - Form(): create a form builder; chain Field/Initial then MustBuild/Build.
//   - FromYAML(data)/FromJSON(data): parse a FormDef; call Build on it.
//
// Design guidelines
//   - The DSL only registers fields; rule definitions always come from the
//     application's registry.
//   - Field order in the definition is registration order, and therefore the
//     ValidateAll order.
package dsl
