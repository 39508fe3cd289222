package feedback

import (
	"strings"

	"github.com/joyjoykids/feedback-backend/internal/domain"
)

// Tone/length/focus enumerations. Anything outside these collapses to the
// neutral profile value.
const (
	ToneWarm   = "warm"
	ToneCalm   = "calm"
	ToneLively = "lively"

	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"

	FocusSensory   = "sensory"
	FocusMotor     = "motor"
	FocusSocial    = "social"
	FocusLanguage  = "language"
	FocusCognitive = "cognitive"
)

// Phrasing categories generated text must never use, regardless of
// preferences. These bound phrasing, not factual content.
var avoidAlways = []string{
	"다른 아이와의 비교",
	"발달 지연에 대한 단정",
	"부정적 평가 표현",
}

var toneAliases = map[string]string{
	"warm": ToneWarm, "따뜻하게": ToneWarm, "따뜻한": ToneWarm,
	"calm": ToneCalm, "차분하게": ToneCalm, "차분한": ToneCalm,
	"lively": ToneLively, "밝게": ToneLively, "활기차게": ToneLively,
}

var lengthAliases = map[string]string{
	"short": LengthShort, "짧게": LengthShort,
	"medium": LengthMedium, "보통": LengthMedium,
	"long": LengthLong, "길게": LengthLong, "자세히": LengthLong,
}

var focusAliases = map[string]string{
	"sensory": FocusSensory, "감각": FocusSensory, "촉감": FocusSensory,
	"motor": FocusMotor, "신체": FocusMotor, "운동": FocusMotor,
	"social": FocusSocial, "사회성": FocusSocial, "친구": FocusSocial,
	"language": FocusLanguage, "언어": FocusLanguage, "말": FocusLanguage,
	"cognitive": FocusCognitive, "인지": FocusCognitive, "탐구": FocusCognitive,
}

// DeriveStyle computes style rules from enumerated preference answers,
// defaulting to a fixed neutral profile when preferences are absent or
// unrecognized. Deterministic.
func DeriveStyle(prefs map[string]string) domain.StyleRules {
	rules := domain.StyleRules{
		Tone:   ToneWarm,
		Length: LengthMedium,
		Avoid:  append([]string(nil), avoidAlways...),
	}
	if len(prefs) == 0 {
		return rules
	}
	if v, ok := resolveAlias(toneAliases, prefs["tone"]); ok {
		rules.Tone = v
	}
	if v, ok := resolveAlias(lengthAliases, prefs["length"]); ok {
		rules.Length = v
	}
	if v, ok := resolveAlias(focusAliases, prefs["focus"]); ok {
		rules.Focus = v
	}
	return rules
}

func resolveAlias(table map[string]string, answer string) (string, bool) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return "", false
	}
	v, ok := table[answer]
	return v, ok
}
