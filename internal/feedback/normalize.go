package feedback

import (
	"strconv"
	"strings"

	"github.com/joyjoykids/feedback-backend/internal/catalog"
	"github.com/joyjoykids/feedback-backend/internal/domain"
)

// PlaceholderObservation is substituted when the catalog has no label for
// a selection, so downstream text generation never sees an empty
// observation.
const PlaceholderObservation = "교사의 도움을 받아 차근차근 참여했어요"

const (
	minLevel = 1
	maxLevel = 4
)

// Normalize converts a raw observation payload into validated items.
// Items with an unknown id or a blank selection are excluded, not
// defaulted. Output follows catalog-declared ordering, not submission
// order. Pure function of catalog + input.
func Normalize(cat *catalog.Catalog, in domain.ObservationInput) []domain.NormalizedItem {
	selected := make(map[int]string, len(in.Items))
	for _, raw := range in.Items {
		id, err := strconv.Atoi(strings.TrimSpace(raw.ID))
		if err != nil {
			continue
		}
		if _, ok := cat.Lookup(id); !ok {
			continue
		}
		value := strings.TrimSpace(raw.Value)
		if value == "" {
			continue
		}
		if _, dup := selected[id]; dup {
			continue
		}
		selected[id] = value
	}

	var out []domain.NormalizedItem
	for _, id := range cat.Order() {
		value, ok := selected[id]
		if !ok {
			continue
		}
		def, _ := cat.Lookup(id)

		level, ok := resolveLevel(cat, id, value)
		if !ok {
			continue
		}

		label, ok := cat.LookupOptionLabel(id, strconv.Itoa(level))
		if !ok || label == "" {
			label = PlaceholderObservation
		}

		out = append(out, domain.NormalizedItem{
			ID:               id,
			Level:            level,
			Title:            def.Title,
			Description:      def.Description,
			ObservationLabel: label,
		})
	}
	return out
}

// resolveLevel parses a selection value as a level, clamping numeric
// values into [1,4] and resolving option labels back to their level.
func resolveLevel(cat *catalog.Catalog, id int, value string) (int, bool) {
	if lvl, err := strconv.Atoi(value); err == nil {
		if lvl < minLevel {
			lvl = minLevel
		}
		if lvl > maxLevel {
			lvl = maxLevel
		}
		return lvl, true
	}
	def, ok := cat.Lookup(id)
	if !ok {
		return 0, false
	}
	for _, opt := range def.Options {
		if opt.Label == value {
			return opt.Level, true
		}
	}
	return 0, false
}
