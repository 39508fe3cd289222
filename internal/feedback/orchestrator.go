package feedback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joyjoykids/feedback-backend/internal/domain"
	"github.com/joyjoykids/feedback-backend/internal/logger"
)

// Generator is the external text-generation backend. Implementations
// must honor the declared JSON schema for their output.
type Generator interface {
	GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error)
}

// State is the terminal state of one generation attempt.
type State int

const (
	// StateFallbackOnly means the caller must use the fallback builder's
	// output as the entire response.
	StateFallbackOnly State = iota
	// StateMerged means Content carries a validated paragraph for every
	// requested item plus an optional summary.
	StateMerged
)

func (s State) String() string {
	switch s {
	case StateMerged:
		return "merged"
	default:
		return "fallback_only"
	}
}

// Outcome is the explicit two-branch result of Generate. Reason is set
// only for the degraded branch.
type Outcome struct {
	State   State
	Reason  string
	Content domain.GeneratedContent
}

// DefaultAgeNormAllowlist holds the activity ids for which generated
// text may compare against typical-age-peer context. All other items
// must never receive age-typical framing.
var DefaultAgeNormAllowlist = []int{2, 5}

// Total backend calls per request: one attempt plus one retry.
const maxGenerateAttempts = 2

type Orchestrator struct {
	log     *logger.Logger
	gen     Generator
	ageNorm map[int]bool
}

type Option func(*Orchestrator)

// WithAgeNormAllowlist overrides the default age-norm allow-list.
func WithAgeNormAllowlist(ids ...int) Option {
	return func(o *Orchestrator) {
		o.ageNorm = make(map[int]bool, len(ids))
		for _, id := range ids {
			o.ageNorm[id] = true
		}
	}
}

// NewOrchestrator builds an orchestrator. gen may be nil when no
// external-generation credential is configured; Generate then always
// reports FallbackOnly.
func NewOrchestrator(log *logger.Logger, gen Generator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		log: log.With("component", "FeedbackOrchestrator"),
		gen: gen,
	}
	WithAgeNormAllowlist(DefaultAgeNormAllowlist...)(o)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type GenerateInput struct {
	Items     []domain.NormalizedItem
	ChildName string
	AgeMonths int
	Style     domain.StyleRules
}

// Generate runs the generative pipeline for one request. It never
// returns an error: every failure path degrades to FallbackOnly and the
// caller substitutes deterministic fallback text.
func (o *Orchestrator) Generate(ctx context.Context, in GenerateInput) Outcome {
	if len(in.Items) == 0 {
		return Outcome{State: StateFallbackOnly, Reason: "no items"}
	}
	if o.gen == nil {
		return Outcome{State: StateFallbackOnly, Reason: "no generation credential configured"}
	}

	system := buildSystemPrompt(in.Style)
	user, err := buildUserPrompt(in.Items, in.ChildName, in.AgeMonths, in.Style, o.ageNorm)
	if err != nil {
		o.log.Error("Prompt payload could not be encoded", "error", err)
		return Outcome{State: StateFallbackOnly, Reason: "prompt encoding failed"}
	}

	var reply *modelReply
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		raw, err := o.gen.GenerateJSON(ctx, system, user, replySchemaName, replySchema())
		if err != nil {
			o.log.Warn("Generation call failed",
				"attempt", attempt,
				"payload_excerpt", excerpt(user, 200),
				"error", err,
			)
			continue
		}
		r, err := decodeReply(raw)
		if err != nil {
			o.log.Warn("Generation reply failed validation",
				"attempt", attempt,
				"reply_excerpt", excerptAny(raw, 200),
				"error", err,
			)
			continue
		}
		reply = r
		break
	}
	if reply == nil {
		return Outcome{State: StateFallbackOnly, Reason: "generation failed after retry"}
	}

	content := mergeContent(in.Items, reply)
	for id, p := range content.PerItem {
		content.PerItem[id] = RewriteCallName(p, in.ChildName)
	}
	content.Summary = RewriteCallName(content.Summary, in.ChildName)
	for tag, s := range content.SummaryByDomain {
		content.SummaryByDomain[tag] = RewriteCallName(s, in.ChildName)
	}
	return Outcome{State: StateMerged, Content: content}
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func excerptAny(v any, n int) string {
	if v == nil {
		return ""
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return excerpt(fmt.Sprint(v), n)
	}
	return excerpt(string(raw), n)
}
