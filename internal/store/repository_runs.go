package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// SaveRun writes the run, its results and its journal in one transaction.
func (s *Store) SaveRun(ctx context.Context, rec RunRecord) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	r := rec.Run
	if _, err := tx.Exec(ctx,
		`INSERT INTO replay_runs (id, started_at, finished_at, lines, ignored) VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.StartedAt, r.FinishedAt, r.Lines, r.Ignored,
	); err != nil {
		return err
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"replay_results"},
		[]string{"run_id", "seq", "value"},
		pgx.CopyFromSlice(len(rec.Results), func(i int) ([]any, error) {
			return []any{r.ID, i + 1, rec.Results[i]}, nil
		}),
	); err != nil {
		return err
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"ledger_entries"},
		[]string{"id", "run_id", "seq", "user_id", "type", "amount", "balance", "line"},
		pgx.CopyFromSlice(len(rec.Entries), func(i int) ([]any, error) {
			e := rec.Entries[i]
			return []any{e.ID, r.ID, e.Seq, e.UserID, e.Type, e.Amount, e.Balance, e.Line}, nil
		}),
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) GetRun(ctx context.Context, runID string) (*Run, error) {
	var r Run
	err := s.Pool.QueryRow(ctx,
		`SELECT id, started_at, finished_at, lines, ignored FROM replay_runs WHERE id = $1`, runID,
	).Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Lines, &r.Ignored)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &r, nil
}

func (s *Store) GetRunResults(ctx context.Context, runID string) ([]string, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT value FROM replay_results WHERE run_id = $1 ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (s *Store) ListRunEntries(ctx context.Context, runID, userID string) ([]LedgerEntry, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, run_id, seq, user_id, type, amount, balance, line
		FROM ledger_entries
		WHERE run_id = $1 AND ($2 = '' OR user_id = $2)
		ORDER BY seq`, runID, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (LedgerEntry, error) {
		var e LedgerEntry
		err := row.Scan(&e.ID, &e.RunID, &e.Seq, &e.UserID, &e.Type, &e.Amount, &e.Balance, &e.Line)
		return e, err
	})
}
