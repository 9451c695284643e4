package desensitize

import (
	"fmt"
	"regexp"
	"sync/atomic"

	"github.com/kochabx/vapid/errors"
)

// ErrInvalidRule is returned for a rule with a missing name or a bad pattern
var ErrInvalidRule = errors.New(3101, "desensitize: invalid rule")

// Rule rewrites sensitive parts of a log line
type Rule interface {
	Name() string
	Enabled() bool
	SetEnabled(enabled bool)
	Process(s string) string
}

type toggle struct {
	disabled atomic.Bool
}

func (t *toggle) Enabled() bool {
	return !t.disabled.Load()
}

func (t *toggle) SetEnabled(enabled bool) {
	t.disabled.Store(!enabled)
}

// ContentRule replaces every match of a pattern anywhere in the line.
// The replacement may reference capture groups.
type ContentRule struct {
	toggle
	name        string
	pattern     *regexp.Regexp
	replacement string
}

// NewContentRule compiles a content rule
func NewContentRule(name, pattern, replacement string) (*ContentRule, error) {
	if name == "" || pattern == "" {
		return nil, ErrInvalidRule.WithMetadata(map[string]string{"name": name})
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, ErrInvalidRule.WithMetadata(map[string]string{"name": name}).WithCause(err)
	}

	return &ContentRule{
		name:        name,
		pattern:     re,
		replacement: replacement,
	}, nil
}

// MustNewContentRule is NewContentRule that panics on error
func MustNewContentRule(name, pattern, replacement string) *ContentRule {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *ContentRule) Name() string {
	return r.name
}

func (r *ContentRule) Process(s string) string {
	return r.pattern.ReplaceAllString(s, r.replacement)
}

// FieldRule rewrites the value of a JSON string field
type FieldRule struct {
	toggle
	name        string
	fieldName   string
	value       *regexp.Regexp
	replacement string
	field       *regexp.Regexp
}

// NewFieldRule compiles a field rule. pattern is applied to the field value.
func NewFieldRule(name, fieldName, pattern, replacement string) (*FieldRule, error) {
	if name == "" || fieldName == "" || pattern == "" {
		return nil, ErrInvalidRule.WithMetadata(map[string]string{"name": name, "field": fieldName})
	}

	value, err := regexp.Compile(pattern)
	if err != nil {
		return nil, ErrInvalidRule.WithMetadata(map[string]string{"name": name}).WithCause(err)
	}

	field := regexp.MustCompile(fmt.Sprintf(`"%s"\s*:\s*"((?:[^"\\]|\\.)*)"`, regexp.QuoteMeta(fieldName)))

	return &FieldRule{
		name:        name,
		fieldName:   fieldName,
		value:       value,
		replacement: replacement,
		field:       field,
	}, nil
}

// MustNewFieldRule is NewFieldRule that panics on error
func MustNewFieldRule(name, fieldName, pattern, replacement string) *FieldRule {
	rule, err := NewFieldRule(name, fieldName, pattern, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

func (r *FieldRule) Name() string {
	return r.name
}

func (r *FieldRule) Process(s string) string {
	return r.field.ReplaceAllStringFunc(s, func(match string) string {
		sub := r.field.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		return fmt.Sprintf(`"%s":"%s"`, r.fieldName, r.value.ReplaceAllString(sub[1], r.replacement))
	})
}
