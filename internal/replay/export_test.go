package replay

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/testutil"
	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/txlog"
)

func TestRunExportsToPostgres(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()

	ctx := context.Background()
	res, err := NewService(st).Run(ctx, txlog.Lines(strings.NewReader(exampleLog)), nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	results, err := st.GetRunResults(ctx, res.RunID)
	if err != nil {
		t.Fatalf("GetRunResults() error = %v", err)
	}
	if !slices.Equal(results, []string{"160"}) {
		t.Fatalf("results = %v, want [160]", results)
	}
	entries, err := st.ListRunEntries(ctx, res.RunID, "u1")
	if err != nil {
		t.Fatalf("ListRunEntries() error = %v", err)
	}
	if len(entries) != 3 || entries[2].Balance != 160 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
