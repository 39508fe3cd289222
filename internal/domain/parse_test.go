package domain

import (
	"encoding/json"
	"testing"
)

func TestParseItemsListForm(t *testing.T) {
	raw := json.RawMessage(`[{"id":1,"value":3},{"id":"2","value":"스스로 했어요"}]`)
	items := ParseItems(raw)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "1" || items[0].Value != "3" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ID != "2" || items[1].Value != "스스로 했어요" {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestParseItemsLegacyObjectForm(t *testing.T) {
	raw := json.RawMessage(`{"item1":"3","item2":"","item3":2}`)
	items := ParseItems(raw)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	// Keys are sorted, so item1 comes first.
	if items[0].ID != "1" || items[0].Value != "3" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ID != "2" || items[1].Value != "" {
		t.Fatalf("blank selection should survive decoding: %+v", items[1])
	}
	if items[2].ID != "3" || items[2].Value != "2" {
		t.Fatalf("numeric value should coerce to string: %+v", items[2])
	}
}

func TestParseItemsGarbage(t *testing.T) {
	if items := ParseItems(json.RawMessage(`"not items"`)); items != nil {
		t.Fatalf("expected nil for scalar, got %v", items)
	}
	if items := ParseItems(nil); items != nil {
		t.Fatalf("expected nil for absent, got %v", items)
	}
}

func TestAsIntAcceptsNumberAndString(t *testing.T) {
	if v, ok := AsInt(json.RawMessage(`34`)); !ok || v != 34 {
		t.Fatalf("number: got %d %v", v, ok)
	}
	if v, ok := AsInt(json.RawMessage(`"34"`)); !ok || v != 34 {
		t.Fatalf("string: got %d %v", v, ok)
	}
	if _, ok := AsInt(json.RawMessage(`"abc"`)); ok {
		t.Fatalf("expected failure for non-numeric string")
	}
	if _, ok := AsInt(nil); ok {
		t.Fatalf("expected failure for absent value")
	}
}

func TestParseStringMap(t *testing.T) {
	m := ParseStringMap(json.RawMessage(`{"tone":"warm","length":2}`))
	if m["tone"] != "warm" {
		t.Fatalf("expected tone=warm, got %q", m["tone"])
	}
	if m["length"] != "2" {
		t.Fatalf("expected length coerced to string, got %q", m["length"])
	}
	if m := ParseStringMap(json.RawMessage(`[]`)); m != nil {
		t.Fatalf("expected nil for non-object, got %v", m)
	}
}
