// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/entity-lookup/pkg/types"
)

func openTestStore(t *testing.T, maxResults int) *Store {
	t.Helper()
	s, err := Open(types.HistoryConfig{Dir: filepath.Join(t.TempDir(), "hist"), MaxResults: maxResults})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func lookup(term string, at time.Time) types.Lookup {
	return types.Lookup{
		Action:    types.ActionSearchEntities,
		Term:      term,
		Language:  "en",
		URL:       "https://www.wikidata.org/w/api.php?search=" + term,
		Body:      `{"search":[]}` + "\n",
		Timestamp: at,
	}
}

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "hist")
	s, err := Open(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err)
	assert.Equal(t, 20, s.maxResults)
}

func TestOpen_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	_, err = s.Record(ctx, lookup("Barry Obama", time.Now()))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRecordAndGet(t *testing.T) {
	s := openTestStore(t, 0)
	ctx := context.Background()
	at := time.Date(2026, 5, 4, 10, 30, 0, 123, time.UTC)

	in := lookup("Barack Ó Broin", at)
	in.ID = 99
	id, err := s.Record(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, int64(99), id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, types.ActionSearchEntities, got.Action)
	assert.Equal(t, in.Term, got.Term)
	assert.Equal(t, in.Body, got.Body)
	assert.Equal(t, in.URL, got.URL)
	assert.True(t, at.Equal(got.Timestamp), "timestamp %v, want %v", got.Timestamp, at)
}

func TestRecord_ZeroTimestamp(t *testing.T) {
	s := openTestStore(t, 0)
	ctx := context.Background()
	before := time.Now().Add(-time.Second)

	id, err := s.Record(ctx, lookup("x", time.Time{}))
	require.NoError(t, err)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Timestamp.After(before))
}

func TestGet_NotFound(t *testing.T) {
	s := openTestStore(t, 0)
	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	s := openTestStore(t, 2)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, term := range []string{"Barry Obama", "Douglas Adams", "Barack Obama", "100%_real"} {
		_, err := s.Record(ctx, lookup(term, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	tests := []struct {
		name string
		opts ListOptions
		want []string
	}{
		{"default limit newest first", ListOptions{}, []string{"100%_real", "Barack Obama"}},
		{"explicit limit", ListOptions{Limit: 10}, []string{"100%_real", "Barack Obama", "Douglas Adams", "Barry Obama"}},
		{"substring filter", ListOptions{Query: "obama", Limit: 10}, []string{"Barack Obama", "Barry Obama"}},
		{"percent matched literally", ListOptions{Query: "0%_", Limit: 10}, []string{"100%_real"}},
		{"underscore matched literally", ListOptions{Query: "a_", Limit: 10}, nil},
		{"no match", ListOptions{Query: "Turing"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, tt.opts)
			require.NoError(t, err)
			var terms []string
			for _, l := range got {
				terms = append(terms, l.Term)
			}
			assert.Equal(t, tt.want, terms)
		})
	}
}
