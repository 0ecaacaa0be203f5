package formrule

// Evaluate runs field's rules in declared order against its current value.
//
// The walk stops at the first failing predicate and reports that rule's name
// and hint; later rules are never evaluated once one fails, so ordering in
// FieldState.Rules decides which hint is surfaced when several rules would
// fail. An empty rule list is always Valid. A rule name missing from reg
// fails with *UnknownRuleError rather than being skipped.
//
// Evaluation is pure: it mutates neither field nor anything reachable
// through form.
func Evaluate(field FieldState, form FormContext, reg *Registry) (Result, error) {
	for _, name := range field.Rules {
		rule, err := reg.Lookup(name)
		if err != nil {
			return Result{}, &UnknownRuleError{Rule: name, Field: field.Name}
		}
		if rule.Check(field.Value, field, form) {
			continue
		}
		res := Result{Rule: name}
		if rule.Hint != nil {
			res.Hint = rule.Hint(field.Value)
		}
		return res, nil
	}
	return Result{Valid: true}, nil
}
