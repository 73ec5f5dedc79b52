// Package rewrite turns tuple-style error constructors into struct-literal
// form, one compiled substitution rule per enum variant.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"fixerrors/internal/spec"
)

// Rule rewrites every `Enum::Variant(ARG)` call site of a single variant
// into `Enum::Variant { field: ARG, ... }`. ARG is captured up to the
// first closing parenthesis and inserted verbatim; nested parentheses
// inside ARG are therefore split at the first `)`, matching the behavior
// of the script this tool replaces.
type Rule struct {
	Variant string

	re          *regexp.Regexp
	replacement []byte
}

// Compile builds the pattern and replacement template for one variant.
// enum is the literal constructor path (e.g. "DbError"), absent the
// marker written into the appended fields (e.g. "None").
func Compile(enum, absent string, rs spec.RuleSpec) (*Rule, error) {
	prefix := enum + "::" + rs.Variant
	re, err := regexp.Compile(regexp.QuoteMeta(prefix) + `\(([^)]+)\)`)
	if err != nil {
		return nil, fmt.Errorf("rewrite: compile %s: %w", prefix, err)
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(" { ")
	b.WriteString(rs.MessageField)
	b.WriteString(": ${1}")
	for _, f := range rs.AbsentFields {
		b.WriteString(", ")
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(absent)
	}
	b.WriteString(" }")

	return &Rule{
		Variant:     rs.Variant,
		re:          re,
		replacement: []byte(b.String()),
	}, nil
}

// CompileAll compiles every rule of a migration spec in declaration order.
func CompileAll(f spec.File) ([]*Rule, error) {
	rules := make([]*Rule, 0, len(f.Rules))
	for _, rs := range f.Rules {
		r, err := Compile(f.Enum, f.AbsentValue, rs)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// Apply rewrites src and reports how many call sites matched. Zero
// matches returns src untouched.
func (r *Rule) Apply(src []byte) ([]byte, int) {
	n := len(r.re.FindAllIndex(src, -1))
	if n == 0 {
		return src, 0
	}
	return r.re.ReplaceAll(src, r.replacement), n
}
