package services

import (
	"context"
	"strings"

	"github.com/joyjoykids/feedback-backend/internal/catalog"
	"github.com/joyjoykids/feedback-backend/internal/domain"
	"github.com/joyjoykids/feedback-backend/internal/feedback"
	"github.com/joyjoykids/feedback-backend/internal/logger"
)

// ComposeResult is always a usable text response; State/Reason record
// whether generation contributed or the deterministic fallback won.
type ComposeResult struct {
	AutoText        string
	SummaryByDomain map[string]string
	State           feedback.State
	Reason          string
}

type FeedbackService interface {
	Compose(ctx context.Context, in domain.ObservationInput, month, lesson string) ComposeResult
}

type feedbackService struct {
	log           *logger.Logger
	catalogs      *catalog.Loader
	orch          *feedback.Orchestrator
	defaultMonth  string
	defaultLesson string
}

func NewFeedbackService(log *logger.Logger, catalogs *catalog.Loader, orch *feedback.Orchestrator, defaultMonth, defaultLesson string) FeedbackService {
	return &feedbackService{
		log:           log.With("service", "FeedbackService"),
		catalogs:      catalogs,
		orch:          orch,
		defaultMonth:  defaultMonth,
		defaultLesson: defaultLesson,
	}
}

// Compose runs the request-scoped pipeline: normalize, build fallback,
// conditionally generate, prefer validated generated content per item.
// Never returns an error; every failure path resolves to best-effort
// text.
func (s *feedbackService) Compose(ctx context.Context, in domain.ObservationInput, month, lesson string) ComposeResult {
	if strings.TrimSpace(month) == "" {
		month = s.defaultMonth
	}
	if strings.TrimSpace(lesson) == "" {
		lesson = s.defaultLesson
	}
	cat := s.catalogs.Load(month, lesson)
	items := feedback.Normalize(cat, in)
	fallbackText := feedback.BuildFallback(items, in.ChildName, in.AgeMonths)

	if cat.Len() == 0 {
		// No ground-truth item text; generating here would fabricate
		// content for the wrong lesson.
		s.log.Warn("Catalog unavailable, responding with header only",
			"month", month, "lesson", lesson)
		return ComposeResult{
			AutoText: fallbackText,
			State:    feedback.StateFallbackOnly,
			Reason:   "catalog unavailable",
		}
	}

	outcome := s.orch.Generate(ctx, feedback.GenerateInput{
		Items:     items,
		ChildName: in.ChildName,
		AgeMonths: in.AgeMonths,
		Style:     feedback.DeriveStyle(in.Prefs),
	})
	if outcome.State == feedback.StateFallbackOnly {
		s.log.Info("Responding with fallback text",
			"reason", outcome.Reason, "items", len(items))
		return ComposeResult{
			AutoText: fallbackText,
			State:    outcome.State,
			Reason:   outcome.Reason,
		}
	}

	parts := make([]string, 0, len(items)+1)
	for _, it := range items {
		parts = append(parts, outcome.Content.PerItem[it.ID])
	}
	text := strings.Join(parts, "\n\n")
	if outcome.Content.Summary != "" {
		text += "\n\n" + outcome.Content.Summary
	}
	return ComposeResult{
		AutoText:        text,
		SummaryByDomain: outcome.Content.SummaryByDomain,
		State:           outcome.State,
	}
}
