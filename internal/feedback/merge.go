package feedback

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joyjoykids/feedback-backend/internal/domain"
)

type replyParagraph struct {
	ID        int    `json:"id"`
	Paragraph string `json:"paragraph"`
}

type modelReply struct {
	Paragraphs      []replyParagraph  `json:"paragraphs"`
	Summary         string            `json:"summary"`
	SummaryByDomain map[string]string `json:"summary_by_domain"`
}

func decodeReply(raw map[string]any) (*modelReply, error) {
	if raw == nil {
		return nil, fmt.Errorf("empty reply")
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var r modelReply
	if err := json.Unmarshal(buf, &r); err != nil {
		return nil, fmt.Errorf("reply does not match schema: %w", err)
	}
	return &r, nil
}

// mergeContent is a pure reducer over (requested items, backend reply).
// Every requested item ends up with an exactly-three-line paragraph:
// the backend's when it shapes to something usable, the deterministic
// fallback text otherwise. Reply ids not in the request are ignored.
// Generation never fails as a whole because one item's text is malformed.
func mergeContent(items []domain.NormalizedItem, reply *modelReply) domain.GeneratedContent {
	byID := make(map[int]string)
	if reply != nil {
		for _, p := range reply.Paragraphs {
			if _, seen := byID[p.ID]; seen {
				continue
			}
			byID[p.ID] = p.Paragraph
		}
	}

	content := domain.GeneratedContent{PerItem: make(map[int]string, len(items))}
	for _, it := range items {
		text := ShapeParagraph(byID[it.ID])
		if text == "" {
			text = ShapeParagraph(FallbackItemText(it))
		}
		content.PerItem[it.ID] = text
	}

	if reply == nil {
		return content
	}
	content.Summary = FlattenSummary(reply.Summary)
	for _, tag := range domain.DomainTags {
		v := strings.TrimSpace(reply.SummaryByDomain[tag])
		if v == "" {
			continue
		}
		if content.SummaryByDomain == nil {
			content.SummaryByDomain = make(map[string]string)
		}
		content.SummaryByDomain[tag] = FlattenSummary(v)
	}
	return content
}
