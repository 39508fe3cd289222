package feedback

import "testing"

func TestDeriveStyleDefaults(t *testing.T) {
	rules := DeriveStyle(nil)
	if rules.Tone != ToneWarm || rules.Length != LengthMedium || rules.Focus != "" {
		t.Fatalf("unexpected neutral profile: %+v", rules)
	}
	if len(rules.Avoid) == 0 {
		t.Fatalf("forbidden phrasing categories must always be present")
	}
}

func TestDeriveStyleKnownAnswers(t *testing.T) {
	rules := DeriveStyle(map[string]string{
		"tone":   "차분하게",
		"length": "짧게",
		"focus":  "언어",
	})
	if rules.Tone != ToneCalm {
		t.Fatalf("expected calm tone, got %q", rules.Tone)
	}
	if rules.Length != LengthShort {
		t.Fatalf("expected short length, got %q", rules.Length)
	}
	if rules.Focus != FocusLanguage {
		t.Fatalf("expected language focus, got %q", rules.Focus)
	}
}

func TestDeriveStyleUnrecognizedAnswersFallBackToNeutral(t *testing.T) {
	rules := DeriveStyle(map[string]string{
		"tone":   "아무렇게나",
		"length": "unknown",
	})
	if rules.Tone != ToneWarm || rules.Length != LengthMedium {
		t.Fatalf("unrecognized answers must keep the neutral profile: %+v", rules)
	}
}

func TestDeriveStyleIsDeterministic(t *testing.T) {
	prefs := map[string]string{"tone": "warm", "focus": "감각"}
	a := DeriveStyle(prefs)
	b := DeriveStyle(prefs)
	if a.Tone != b.Tone || a.Length != b.Length || a.Focus != b.Focus {
		t.Fatalf("style derivation must be deterministic: %+v vs %+v", a, b)
	}
}
