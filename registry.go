package formrule

import (
	"sort"
	"sync"
)

// Registry is the process-lifetime store of named rules. It starts empty and
// is normally populated once at application startup, before any form is
// wired; nothing is ever pre-registered by this package.
//
// Registration is last-write-wins so applications can redefine or extend a
// rule set. A replacement affects subsequent evaluations only; hints already
// stored on field state are never rewritten. There is no removal operation.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: map[string]Rule{}}
}

// Register stores rule under name, replacing any previous definition.
func (r *Registry) Register(name string, rule Rule) error {
	if name == "" {
		return ErrEmptyRuleName
	}
	if rule.Check == nil {
		return ErrNilPredicate
	}
	r.mu.Lock()
	r.rules[name] = rule
	r.mu.Unlock()
	return nil
}

// MustRegister is Register for startup wiring; it panics on a malformed
// registration instead of returning the error.
func (r *Registry) MustRegister(name string, rule Rule) {
	if err := r.Register(name, rule); err != nil {
		panic(err)
	}
}

// Lookup resolves name, failing with *UnknownRuleError when absent.
func (r *Registry) Lookup(name string) (Rule, error) {
	r.mu.RLock()
	rule, ok := r.rules[name]
	r.mu.RUnlock()
	if !ok {
		return Rule{}, &UnknownRuleError{Rule: name}
	}
	return rule, nil
}

// Names returns the registered rule names in sorted order, for tooling and
// error reporting.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.rules))
	for name := range r.rules {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}
