// Package desensitize masks secrets in log output before it reaches a sink.
package desensitize

import (
	"slices"
	"sync"
)

// Hook applies an ordered set of rules to log text
type Hook struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewHook creates a hook with the given rules
func NewHook(rules ...Rule) *Hook {
	h := &Hook{}
	h.AddRule(rules...)
	return h
}

// AddRule appends rules. A rule replaces an existing one with the same name
// in place.
func (h *Hook) AddRule(rules ...Rule) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if i := h.index(rule.Name()); i >= 0 {
			h.rules[i] = rule
			continue
		}
		h.rules = append(h.rules, rule)
	}
}

// AddContentRule adds a rule replacing every match of pattern
func (h *Hook) AddContentRule(name, pattern, replacement string) error {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// AddFieldRule adds a rule rewriting the value of a JSON string field
func (h *Hook) AddFieldRule(name, fieldName, pattern, replacement string) error {
	rule, err := NewFieldRule(name, fieldName, pattern, replacement)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// RemoveRule removes the named rule
func (h *Hook) RemoveRule(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index(name)
	if i < 0 {
		return false
	}
	h.rules = slices.Delete(h.rules, i, i+1)
	return true
}

// SetEnabled toggles the named rule
func (h *Hook) SetEnabled(name string, enabled bool) bool {
	rule, ok := h.GetRule(name)
	if ok {
		rule.SetEnabled(enabled)
	}
	return ok
}

// GetRule returns the named rule
func (h *Hook) GetRule(name string) (Rule, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i := h.index(name); i >= 0 {
		return h.rules[i], true
	}
	return nil, false
}

// GetRules returns rule names in application order
func (h *Hook) GetRules() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, len(h.rules))
	for i, rule := range h.rules {
		names[i] = rule.Name()
	}
	return names
}

// RuleCount returns the number of rules
func (h *Hook) RuleCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rules)
}

// Desensitize applies every enabled rule to s in order
func (h *Hook) Desensitize(s string) string {
	if s == "" {
		return s
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, rule := range h.rules {
		if rule.Enabled() {
			s = rule.Process(s)
		}
	}
	return s
}

// index must be called with mu held
func (h *Hook) index(name string) int {
	return slices.IndexFunc(h.rules, func(r Rule) bool {
		return r.Name() == name
	})
}
