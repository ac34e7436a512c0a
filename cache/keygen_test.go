package cache

import (
	"strings"
	"testing"
)

func TestKeyIgnoresArgumentOrder(t *testing.T) {
	a := map[string]any{
		"libraryName": "react",
		"query":       "hooks",
		"nested":      map[string]any{"a": 1, "b": []any{"x", "y"}},
	}
	b := map[string]any{
		"nested":      map[string]any{"b": []any{"x", "y"}, "a": 1},
		"query":       "hooks",
		"libraryName": "react",
	}

	ka, err := Key("query_docs", a)
	if err != nil {
		t.Fatalf("Key(a) returned error: %v", err)
	}
	kb, err := Key("query_docs", b)
	if err != nil {
		t.Fatalf("Key(b) returned error: %v", err)
	}
	if ka != kb {
		t.Errorf("keys differ for equivalent arguments: %s vs %s", ka, kb)
	}
}

func TestKeyMatchesAcrossStructAndMap(t *testing.T) {
	type args struct {
		LibraryName string `json:"libraryName"`
		Query       string `json:"query"`
	}

	ks, err := Key("resolve_library_id", args{LibraryName: "react", Query: "hooks"})
	if err != nil {
		t.Fatalf("Key(struct) returned error: %v", err)
	}
	km, err := Key("resolve_library_id", map[string]any{"query": "hooks", "libraryName": "react"})
	if err != nil {
		t.Fatalf("Key(map) returned error: %v", err)
	}
	if ks != km {
		t.Errorf("struct and map forms produced different keys: %s vs %s", ks, km)
	}
}

func TestKeyChangesWithInput(t *testing.T) {
	inputs := []struct {
		tool string
		args map[string]any
	}{
		{"resolve_library_id", map[string]any{"libraryName": "react", "query": "hooks"}},
		{"query_docs", map[string]any{"libraryName": "react", "query": "hooks"}},
		{"resolve_library_id", map[string]any{"libraryName": "react", "query": "state"}},
		{"resolve_library_id", map[string]any{"libraryName": "vue", "query": "hooks"}},
	}

	seen := make(map[string]int)
	for i, in := range inputs {
		key, err := Key(in.tool, in.args)
		if err != nil {
			t.Fatalf("Key(%q) returned error: %v", in.tool, err)
		}
		if prev, dup := seen[key]; dup {
			t.Errorf("inputs %d and %d collided on key %s", prev, i, key)
		}
		seen[key] = i
	}
}

func TestKeyFormat(t *testing.T) {
	key, err := Key("query_docs", map[string]any{"libraryId": "/vercel/next.js", "query": "routing"})
	if err != nil {
		t.Fatalf("Key returned error: %v", err)
	}
	if len(key) != 16 {
		t.Errorf("expected 16 hex chars, got %d (%s)", len(key), key)
	}
	if strings.Trim(key, "0123456789abcdef") != "" {
		t.Errorf("key is not lowercase hex: %s", key)
	}
}

func TestFilename(t *testing.T) {
	got := Filename("query_docs", "d2b5ca33bd970f64")
	want := "query_docs_d2b5ca33bd970f64.json"
	if got != want {
		t.Errorf("Filename = %s, want %s", got, want)
	}
}
