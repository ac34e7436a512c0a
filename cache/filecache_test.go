package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name  string         `json:"name"`
	Tags  []string       `json:"tags,omitempty"`
	Extra map[string]any `json:"extra,omitempty"`
}

func newTestStore(t *testing.T, ttl time.Duration) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return New(dir, ttl, zerolog.Nop()), dir
}

func TestRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	in := testPayload{
		Name: "react",
		Tags: []string{"hooks", "state"},
		Extra: map[string]any{
			"snippets": []any{
				map[string]any{"language": "js", "tokens": float64(42)},
				map[string]any{"language": "ts", "tokens": float64(7)},
			},
		},
	}
	require.NoError(t, store.Put("query_docs", "abc123", in))

	var out testPayload
	require.Equal(t, Hit, store.Get("query_docs", "abc123", &out))
	require.Equal(t, in, out)
}

func TestLastWriterWins(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	require.NoError(t, store.Put("query_docs", "k", testPayload{Name: "first"}))
	require.NoError(t, store.Put("query_docs", "k", testPayload{Name: "second"}))

	var out testPayload
	require.Equal(t, Hit, store.Get("query_docs", "k", &out))
	require.Equal(t, "second", out.Name)
}

func TestPutLeavesNoTempFiles(t *testing.T) {
	store, dir := newTestStore(t, time.Hour)
	require.NoError(t, store.Put("query_docs", "k", testPayload{Name: "x"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, Filename("query_docs", "k"), entries[0].Name())
}

func TestMissingDirectoryDisablesCaching(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-mounted")
	store := New(dir, time.Hour, zerolog.Nop())

	require.False(t, store.Enabled())
	require.Equal(t, Miss, store.Get("query_docs", "k", &testPayload{}))
	require.ErrorIs(t, store.Put("query_docs", "k", testPayload{}), ErrNotEnabled)

	removed, err := store.Clear()
	require.ErrorIs(t, err, ErrNotEnabled)
	require.Zero(t, removed)
}

func TestMissingFileIsMiss(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	require.Equal(t, Miss, store.Get("query_docs", "nope", &testPayload{}))
}

func TestTTLBoundary(t *testing.T) {
	ttl := time.Hour
	store, dir := newTestStore(t, ttl)
	require.NoError(t, store.Put("query_docs", "k", testPayload{Name: "x"}))
	path := filepath.Join(dir, Filename("query_docs", "k"))

	// Almost expired: still a hit.
	almost := time.Now().Add(-ttl + time.Minute)
	require.NoError(t, os.Chtimes(path, almost, almost))
	require.Equal(t, Hit, store.Get("query_docs", "k", &testPayload{}))

	// Just past the TTL: stale.
	past := time.Now().Add(-ttl - time.Minute)
	require.NoError(t, os.Chtimes(path, past, past))
	require.Equal(t, Stale, store.Get("query_docs", "k", &testPayload{}))
}

func TestZeroTTLIsAlwaysStale(t *testing.T) {
	store, _ := newTestStore(t, 0)
	require.NoError(t, store.Put("query_docs", "k", testPayload{Name: "x"}))
	require.Equal(t, Stale, store.Get("query_docs", "k", &testPayload{}))
}

func TestCorruptEntriesReadAsMiss(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty file", ""},
		{"truncated json", `{"name": "re`},
		{"not json", "definitely not json"},
		{"wrong kind", `[1, 2, 3]`},
		{"bare string", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, dir := newTestStore(t, time.Hour)
			path := filepath.Join(dir, Filename("query_docs", "bad"))
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0o600))

			var out testPayload
			require.Equal(t, Miss, store.Get("query_docs", "bad", &out))
		})
	}
}

func TestClearRemovesOnlyEntries(t *testing.T) {
	store, dir := newTestStore(t, time.Hour)
	require.NoError(t, store.Put("query_docs", "a", testPayload{Name: "a"}))
	require.NoError(t, store.Put("query_docs", "b", testPayload{Name: "b"}))
	require.NoError(t, store.Put("resolve_library_id", "c", testPayload{Name: "c"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep me"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))

	removed, err := store.Clear()
	require.NoError(t, err)
	require.Equal(t, 3, removed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"notes.txt", "sub"}, names)

	// Idempotent: nothing left to remove.
	removed, err = store.Clear()
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestStatusString(t *testing.T) {
	for status, want := range map[Status]string{Hit: "hit", Miss: "miss", Stale: "stale"} {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %s, want %s", status, got, want)
		}
	}
	if !strings.Contains(ErrNotEnabled.Error(), "not enabled") {
		t.Errorf("unexpected ErrNotEnabled message: %v", ErrNotEnabled)
	}
}
