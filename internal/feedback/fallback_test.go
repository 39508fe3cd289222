package feedback

import (
	"strings"
	"testing"

	"github.com/joyjoykids/feedback-backend/internal/domain"
)

func TestBuildFallbackHeaderAndBullets(t *testing.T) {
	items := Normalize(testCatalog(), domain.ObservationInput{
		Items: []domain.RawItem{{ID: "1", Value: "3"}},
	})
	text := BuildFallback(items, "김민수", 34)
	if !strings.Contains(text, "34개월 김민수") {
		t.Fatalf("header must reference age and name, got %q", text)
	}
	if !strings.Contains(text, "스스로 즐겁게 탐색했어요.") {
		t.Fatalf("bullet must contain the resolved label, got %q", text)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one bullet, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "- ") {
		t.Fatalf("item lines are bullets, got %q", lines[1])
	}
}

func TestBuildFallbackWithoutAge(t *testing.T) {
	text := BuildFallback(nil, "김민수", 0)
	if strings.Contains(text, "개월") {
		t.Fatalf("age must be omitted when absent, got %q", text)
	}
	if !strings.Contains(text, "김민수") {
		t.Fatalf("header must reference the name, got %q", text)
	}
}

func TestBuildFallbackNoItemsReturnsHeaderAlone(t *testing.T) {
	text := BuildFallback(nil, "김민수", 34)
	if strings.Contains(text, "\n") {
		t.Fatalf("no items means header only, got %q", text)
	}
}

func TestBuildFallbackDefaultsDisplayName(t *testing.T) {
	text := BuildFallback(nil, "  ", 0)
	if !strings.Contains(text, "우리 아이") {
		t.Fatalf("blank name should use default display name, got %q", text)
	}
}

func TestBuildFallbackIsDeterministic(t *testing.T) {
	items := Normalize(testCatalog(), domain.ObservationInput{
		Items: []domain.RawItem{{ID: "1", Value: "3"}, {ID: "2", Value: "4"}},
	})
	a := BuildFallback(items, "백채유", 28)
	b := BuildFallback(items, "백채유", 28)
	if a != b {
		t.Fatalf("fallback must be a pure function:\n%q\n%q", a, b)
	}
}
