package feedback

import (
	"strings"
	"testing"
)

func TestCallName(t *testing.T) {
	cases := []struct {
		full string
		want string
	}{
		{"백채유", "채유"},
		{"김민수", "민수"},
		{"남궁민수", "민수"},
		{"황보라", "라이"},
		{"김민", "민이"},
		{"백채유님", "채유"},
		{"김민수양", "민수"},
		{"민수", "수이"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CallName(tc.full); got != tc.want {
			t.Fatalf("CallName(%q) = %q, want %q", tc.full, got, tc.want)
		}
	}
}

func TestRewriteCallName(t *testing.T) {
	text := "백채유는 오늘 촉감 놀이에 즐겁게 참여했어요. 백채유님이 웃는 모습이 예뻤어요."
	got := RewriteCallName(text, "백채유")
	if strings.Contains(got, "백채유") {
		t.Fatalf("full name must not survive rewriting: %q", got)
	}
	if !strings.Contains(got, "채유는") {
		t.Fatalf("expected call name with particle, got %q", got)
	}
	if strings.Contains(got, "채유님") {
		t.Fatalf("honorific must be stripped, got %q", got)
	}
}

func TestRewriteCallNameNoopCases(t *testing.T) {
	if got := RewriteCallName("그대로", ""); got != "그대로" {
		t.Fatalf("empty name must be a no-op, got %q", got)
	}
	if got := RewriteCallName("", "백채유"); got != "" {
		t.Fatalf("empty text must stay empty, got %q", got)
	}
}
