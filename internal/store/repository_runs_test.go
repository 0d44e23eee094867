package store_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/store"
	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/testutil"
)

func openStore(t *testing.T) (*store.Store, context.Context, func()) {
	t.Helper()
	st, cleanup := testutil.OpenTestStore(t)
	return st, context.Background(), cleanup
}

func TestSaveRunRoundTrip(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Millisecond)
	runID := store.NewID()
	rec := store.RunRecord{
		Run:     store.Run{ID: runID, StartedAt: now, FinishedAt: now.Add(time.Second), Lines: 5, Ignored: 1},
		Results: []string{"160", "0"},
		Entries: []store.LedgerEntry{
			{ID: store.NewID(), Seq: 1, UserID: "u1", Type: "deposit", Amount: 100, Balance: 100, Line: 3},
			{ID: store.NewID(), Seq: 2, UserID: "u2", Type: "deposit", Amount: 5, Balance: 5, Line: 4},
			{ID: store.NewID(), Seq: 3, UserID: "u1", Type: "bet_win", Amount: 50, Balance: 150, Line: 5},
		},
	}
	if err := st.SaveRun(ctx, rec); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}

	run, err := st.GetRun(ctx, runID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}
	if run.Lines != 5 || run.Ignored != 1 || !run.StartedAt.Equal(now) {
		t.Fatalf("unexpected run: %+v", run)
	}

	results, err := st.GetRunResults(ctx, runID)
	if err != nil {
		t.Fatalf("GetRunResults() error = %v", err)
	}
	if !slices.Equal(results, rec.Results) {
		t.Fatalf("results = %v, want %v", results, rec.Results)
	}

	entries, err := st.ListRunEntries(ctx, runID, "u1")
	if err != nil {
		t.Fatalf("ListRunEntries() error = %v", err)
	}
	if len(entries) != 2 || entries[0].Seq != 1 || entries[1].Type != "bet_win" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	all, err := st.ListRunEntries(ctx, runID, "")
	if err != nil {
		t.Fatalf("ListRunEntries(all) error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("entries = %d, want 3", len(all))
	}
}

func TestSaveRunDuplicateRollsBack(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	now := time.Now().UTC()
	entryID := store.NewID()
	first := store.RunRecord{
		Run:     store.Run{ID: store.NewID(), StartedAt: now, FinishedAt: now},
		Entries: []store.LedgerEntry{{ID: entryID, Seq: 1, UserID: "u1", Type: "deposit", Amount: 1, Balance: 1, Line: 1}},
	}
	if err := st.SaveRun(ctx, first); err != nil {
		t.Fatalf("SaveRun(first) error = %v", err)
	}
	second := first
	second.Run.ID = store.NewID()
	if err := st.SaveRun(ctx, second); err == nil {
		t.Fatal("expected duplicate entry id error")
	}
	if _, err := st.GetRun(ctx, second.Run.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("GetRun(second) error = %v, want ErrNotFound", err)
	}
}

func TestNewIDSortsInCreationOrder(t *testing.T) {
	a := store.NewID()
	b := store.NewID()
	if len(a) != 26 || a >= b {
		t.Fatalf("ids not monotonic: %s, %s", a, b)
	}
}
