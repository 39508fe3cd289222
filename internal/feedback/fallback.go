package feedback

import (
	"fmt"
	"strings"

	"github.com/joyjoykids/feedback-backend/internal/domain"
)

const defaultDisplayName = "우리 아이"

// BuildFallback assembles parent-facing text purely from the catalog and
// normalized input. Always succeeds; used both as the whole response when
// generation is unavailable and as the per-item substitute when it
// partially fails.
func BuildFallback(items []domain.NormalizedItem, childName string, ageMonths int) string {
	var b strings.Builder
	b.WriteString(FallbackHeader(childName, ageMonths))
	for _, it := range items {
		b.WriteString("\n- ")
		b.WriteString(FallbackItemText(it))
	}
	return b.String()
}

// FallbackHeader is the one sentence that is always present, even when
// no catalog could be located for the requested lesson.
func FallbackHeader(childName string, ageMonths int) string {
	name := strings.TrimSpace(childName)
	if name == "" {
		name = defaultDisplayName
	}
	if ageMonths > 0 {
		return fmt.Sprintf("%d개월 %s 어린이의 오늘 수업 모습이에요.", ageMonths, name)
	}
	return fmt.Sprintf("%s 어린이의 오늘 수업 모습이에요.", name)
}

// FallbackItemText is the deterministic per-item sentence: the activity's
// static description followed by the resolved observation label.
func FallbackItemText(it domain.NormalizedItem) string {
	desc := strings.TrimSpace(it.Description)
	label := strings.TrimSpace(it.ObservationLabel)
	switch {
	case desc == "":
		return label
	case label == "":
		return desc
	default:
		return desc + " " + label
	}
}
