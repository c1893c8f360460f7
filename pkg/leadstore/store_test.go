package leadstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landkit/pkg/leadstore"
)

func newStore(t *testing.T) *leadstore.Store {
	t.Helper()

	store, err := leadstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SaveGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lead := leadstore.Lead{
		ID:   "lead-1",
		Site: "ledger",
		Fields: map[string]string{
			"name":    "Jordan Lee",
			"email":   "jordan@example.com",
			"message": "Please contact me about pricing options.",
		},
		Meta:      map[string]string{"ip": "203.0.113.7"},
		CreatedAt: created,
	}
	require.NoError(t, store.Save(ctx, lead))

	got, err := store.Get(ctx, "lead-1")
	require.NoError(t, err)

	lead.Created = created.UnixNano()
	if diff := cmp.Diff(lead, got); diff != "" {
		t.Fatalf("stored lead mismatch (-want +got):\n%s", diff)
	}

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, leadstore.ErrNotFound)
}

func TestStore_SaveRejects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)

	assert.ErrorIs(t, store.Save(ctx, leadstore.Lead{}), leadstore.ErrInvalidLead)

	require.NoError(t, store.Save(ctx, leadstore.Lead{ID: "dup"}))
	assert.ErrorIs(t, store.Save(ctx, leadstore.Lead{ID: "dup"}), leadstore.ErrDuplicateLead)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, store.Save(cancelled, leadstore.Lead{ID: "late"}), context.Canceled)
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newStore(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, site := range []string{"ledger", "pulse", "ledger", "ledger"} {
		require.NoError(t, store.Save(ctx, leadstore.Lead{
			ID:        string(rune('a' + i)),
			Site:      site,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := store.List(ctx, leadstore.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids(all))

	ledger, err := store.List(ctx, leadstore.ListOptions{Site: "ledger", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, ids(ledger))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.NoError(t, store.Healthcheck()(ctx))
}

func TestStore_PersistsToDisk(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leads.db")

	store := leadstore.MustOpen(path)
	require.NoError(t, store.Save(ctx, leadstore.Lead{ID: "kept"}))
	require.NoError(t, store.Close())

	reopened := leadstore.MustOpen(path)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, "kept", got.ID)

	list, err := reopened.List(ctx, leadstore.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func ids(leads []leadstore.Lead) []string {
	out := make([]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.ID)
	}
	return out
}
