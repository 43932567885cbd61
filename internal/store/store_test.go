package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/clik/internal/domain"
	"github.com/footprint-tools/clik/internal/store"
	"github.com/footprint-tools/clik/internal/testutil"
)

func TestNew_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "clik.db")

	s, err := store.New(context.Background(), path, nil)
	require.NoError(t, err)
	require.Equal(t, path, s.Path())

	require.NoError(t, s.Put("a", "1"))
	require.NoError(t, s.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reopened, err := store.New(context.Background(), path, nil)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, ok, err := reopened.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", value)
}

func TestNew_Memory(t *testing.T) {
	logger := &recordingLogger{}
	s, err := store.New(context.Background(), store.MemoryPath, logger)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.Equal(t, []string{
		"store: opening database at :memory:",
		"store: database ready, schema version 2",
	}, logger.debug)

	require.NoError(t, s.Put("k", "v"))
	keys, err := s.Keys()
	require.NoError(t, err)
	require.Equal(t, []string{"k"}, keys)
}

type recordingLogger struct {
	debug []string
}

func (l *recordingLogger) Debug(format string, args ...any) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Close() error         { return nil }

func TestStore_CloseNil(t *testing.T) {
	var s *store.Store
	require.NoError(t, s.Close())
}

func TestStore_PutReplaces(t *testing.T) {
	s := testutil.NewTestStore(t)

	require.NoError(t, s.Put("name", "first"))
	require.NoError(t, s.Put("name", "second"))

	value, ok, err := s.Get("name")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", value)
}

func TestStore_GetMissing(t *testing.T) {
	s := testutil.NewTestStore(t)

	value, ok, err := s.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, value)
}

func TestStore_Delete(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedEntries(t, s, map[string]string{"a": "1"})

	existed, err := s.Delete("a")
	require.NoError(t, err)
	require.True(t, existed)

	existed, err = s.Delete("a")
	require.NoError(t, err)
	require.False(t, existed)
}

func TestStore_KeysSorted(t *testing.T) {
	s := testutil.NewTestStore(t)

	keys, err := s.Keys()
	require.NoError(t, err)
	require.Empty(t, keys)

	testutil.SeedEntries(t, s, map[string]string{"b": "2", "c": "3", "a": "1"})
	keys, err = s.Keys()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestStore_JournalNewestFirst(t *testing.T) {
	s := testutil.NewTestStore(t)
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, line := range []string{"echo one", "get two", "bogus"} {
		entry := domain.JournalEntry{
			SessionID: "s1",
			Line:      line,
			Command:   line[:4],
			Duration:  time.Duration(i) * time.Millisecond,
			CreatedAt: start.Add(time.Duration(i) * time.Second),
		}
		if line == "bogus" {
			entry.Error = "unknown"
		}
		require.NoError(t, s.Record(entry))
	}

	recent, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "bogus", recent[0].Line)
	require.True(t, recent[0].Failed())
	require.Equal(t, 2*time.Millisecond, recent[0].Duration)
	require.True(t, start.Add(2*time.Second).Equal(recent[0].CreatedAt))
	require.Equal(t, "get two", recent[1].Line)
	require.False(t, recent[1].Failed())
	require.Greater(t, recent[0].ID, recent[1].ID)

	all, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestStore_RecordStampsTime(t *testing.T) {
	s := testutil.NewTestStore(t)
	before := time.Now().Add(-time.Second)

	require.NoError(t, s.Record(domain.JournalEntry{SessionID: "s", Line: "x"}))

	recent, err := s.Recent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.True(t, recent[0].CreatedAt.After(before))
}
