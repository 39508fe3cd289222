package feedback

import (
	"encoding/json"
	"strings"

	"github.com/joyjoykids/feedback-backend/internal/domain"
)

const promptMarker = "JOYJOY_FEEDBACK_PROMPT_V1"

const replySchemaName = "class_feedback"

type promptItem struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Observation    string `json:"observation"`
	Level          int    `json:"level"`
	AgeNormAllowed bool   `json:"age_norm_allowed"`
}

type promptPayload struct {
	ChildName string       `json:"child_name"`
	AgeMonths int          `json:"age_months,omitempty"`
	Tone      string       `json:"tone"`
	Length    string       `json:"length"`
	Focus     string       `json:"focus,omitempty"`
	Items     []promptItem `json:"items"`
}

// buildSystemPrompt prepends structured guidance the same way for every
// request; style knobs bias wording only.
func buildSystemPrompt(style domain.StyleRules) string {
	var b strings.Builder
	b.WriteString(promptMarker)
	b.WriteString("\nYou write feedback to Korean parents about their young child's participation in a craft and sensory class.")
	b.WriteString("\nWrite in Korean, 해요체, addressed to the parent.")
	b.WriteString("\nFor every requested item, write one paragraph of exactly three sentences grounded in the given observation.")
	b.WriteString("\nDo not invent activities or behaviors that are not in the input.")
	b.WriteString("\nOnly items marked age_norm_allowed may mention age-typical development; never use such framing for other items.")
	b.WriteString("\nAlso write one short overall summary, and optionally a per-domain summary for ")
	b.WriteString(strings.Join(domain.DomainTags, ", "))
	b.WriteString(".")
	if len(style.Avoid) > 0 {
		b.WriteString("\nNever use: ")
		b.WriteString(strings.Join(style.Avoid, "; "))
		b.WriteString(".")
	}
	b.WriteString("\nReturn a single JSON object that conforms to the schema and contains no extra keys.")
	return b.String()
}

func buildUserPrompt(items []domain.NormalizedItem, childName string, ageMonths int, style domain.StyleRules, ageNorm map[int]bool) (string, error) {
	payload := promptPayload{
		ChildName: strings.TrimSpace(childName),
		AgeMonths: ageMonths,
		Tone:      style.Tone,
		Length:    style.Length,
		Focus:     style.Focus,
	}
	for _, it := range items {
		payload.Items = append(payload.Items, promptItem{
			ID:             it.ID,
			Title:          it.Title,
			Description:    it.Description,
			Observation:    it.ObservationLabel,
			Level:          it.Level,
			AgeNormAllowed: ageNorm[it.ID],
		})
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// replySchema declares the strict output contract for the backend:
// per-item paragraphs, one summary, optional five-key domain summary.
func replySchema() map[string]any {
	domainProps := make(map[string]any, len(domain.DomainTags))
	for _, tag := range domain.DomainTags {
		domainProps[tag] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"paragraphs", "summary"},
		"properties": map[string]any{
			"paragraphs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"id", "paragraph"},
					"properties": map[string]any{
						"id":        map[string]any{"type": "integer"},
						"paragraph": map[string]any{"type": "string"},
					},
				},
			},
			"summary": map[string]any{"type": "string"},
			"summary_by_domain": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           domainProps,
			},
		},
	}
}
