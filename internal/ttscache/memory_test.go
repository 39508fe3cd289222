package ttscache

import (
	"context"
	"fmt"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	m, err := NewMemory(4)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	ctx := context.Background()
	key := Key("text", "ko-KR-Neural2-A", "안녕하세요")

	if _, ok := m.Get(ctx, key); ok {
		t.Fatalf("expected miss before set")
	}
	m.Set(ctx, key, []byte("mp3-bytes"))
	audio, ok := m.Get(ctx, key)
	if !ok || string(audio) != "mp3-bytes" {
		t.Fatalf("expected cached audio, got %q ok=%v", audio, ok)
	}
}

func TestMemoryEvictsBeyondBound(t *testing.T) {
	m, err := NewMemory(2)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		m.Set(ctx, Key("text", "v", fmt.Sprintf("입력 %d", i)), []byte{byte(i)})
	}
	hits := 0
	for i := 0; i < 5; i++ {
		if _, ok := m.Get(ctx, Key("text", "v", fmt.Sprintf("입력 %d", i))); ok {
			hits++
		}
	}
	if hits > 2 {
		t.Fatalf("cache must stay bounded, got %d hits", hits)
	}
}

func TestMemoryIgnoresEmptyAudio(t *testing.T) {
	m, _ := NewMemory(2)
	ctx := context.Background()
	key := Key("ssml", "v", "<speak/>")
	m.Set(ctx, key, nil)
	if _, ok := m.Get(ctx, key); ok {
		t.Fatalf("empty audio must not be cached")
	}
}

func TestKeySeparatesKindVoiceText(t *testing.T) {
	if Key("text", "v", "가나다") == Key("ssml", "v", "가나다") {
		t.Fatalf("input kind must participate in the key")
	}
	if Key("text", "a", "가나다") == Key("text", "b", "가나다") {
		t.Fatalf("voice must participate in the key")
	}
	// Boundary bytes keep concatenations from colliding.
	if Key("text", "ab", "c") == Key("text", "a", "bc") {
		t.Fatalf("field boundaries must be preserved")
	}
}
