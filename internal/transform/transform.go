package transform

import (
	"context"

	"fixerrors/internal/document"
	"fixerrors/internal/rewrite"
)

// Result is what a stage reports back to the runner after one document.
type Result struct {
	Matches int
}

// Stage mutates a document in place. A stage returning an error aborts
// the whole run; there is no retry.
type Stage interface {
	Name() string
	Apply(ctx context.Context, doc *document.Document) (Result, error)
}

// RuleStage adapts one compiled substitution rule to the Stage interface.
type RuleStage struct {
	rule *rewrite.Rule
}

func NewRuleStage(r *rewrite.Rule) *RuleStage { return &RuleStage{rule: r} }

func (s *RuleStage) Name() string { return s.rule.Variant }

func (s *RuleStage) Apply(ctx context.Context, doc *document.Document) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	out, n := s.rule.Apply(doc.Content)
	doc.Content = out
	return Result{Matches: n}, nil
}
