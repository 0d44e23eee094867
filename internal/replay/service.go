// Package replay runs a transaction log through the ledger processor and
// hands the balance query results to a sink.
package replay

import (
	"context"
	"iter"
	"time"

	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/ledger"
	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/store"

	"github.com/rs/zerolog/log"
)

type Sink interface {
	WriteResults(lines []string) error
}

type Exporter interface {
	SaveRun(ctx context.Context, rec store.RunRecord) error
}

type Service struct {
	exporter Exporter
	newID    func() string
	now      func() time.Time
}

// NewService builds a Service. A nil exporter disables journal export.
func NewService(exp Exporter) *Service {
	return &Service{exporter: exp, newID: store.NewID, now: time.Now}
}

type Result struct {
	RunID    string
	Results  []string
	Entries  []ledger.Entry
	Stats    ledger.Stats
	Duration time.Duration
}

// Run consumes src to the end, exports the journal when an exporter is set,
// then writes every result to sink once. Any failure before the sink write
// leaves the sink untouched. sink may be nil.
func (s *Service) Run(ctx context.Context, src iter.Seq2[string, error], sink Sink) (*Result, error) {
	runID := s.newID()
	logger := log.With().Str("run_id", runID).Logger()
	started := s.now()
	metricRunsTotal.Add(1)

	p := ledger.New(ledger.WithIDGenerator(s.newID), ledger.WithLogger(logger))
	err := p.Run(func(yield func(string, error) bool) {
		for line, err := range src {
			if err == nil {
				err = ctx.Err()
			}
			if !yield(line, err) {
				return
			}
		}
	})
	stats := p.Stats()
	metricLinesTotal.Add(int64(stats.Lines))
	if err != nil {
		metricRunErrorsTotal.Add(1)
		logger.Error().Err(err).Str("kind", ledger.Kind(err)).Int("lines", stats.Lines).Msg("replay failed")
		return nil, err
	}

	res := &Result{
		RunID:   runID,
		Results: p.Results(),
		Entries: p.Entries(),
		Stats:   stats,
	}
	finished := s.now()
	res.Duration = finished.Sub(started)

	// Export before writing results so a failed export leaves no output.
	if s.exporter != nil {
		if err := s.exporter.SaveRun(ctx, toRunRecord(res, started, finished)); err != nil {
			metricRunErrorsTotal.Add(1)
			logger.Error().Err(err).Msg("journal export failed")
			return nil, err
		}
	}
	if sink != nil {
		if err := sink.WriteResults(res.Results); err != nil {
			metricRunErrorsTotal.Add(1)
			logger.Error().Err(err).Msg("write results failed")
			return nil, err
		}
	}

	metricQueriesTotal.Add(int64(len(res.Results)))
	for _, e := range res.Entries {
		if e.Type == ledger.EntryCampaignPrize {
			metricPrizesPaidTotal.Add(1)
		}
	}
	logger.Info().
		Int("lines", stats.Lines).
		Int("ignored", stats.Ignored).
		Int("queries", len(res.Results)).
		Int("entries", len(res.Entries)).
		Dur("duration", res.Duration).
		Msg("replay finished")
	return res, nil
}

func toRunRecord(res *Result, started, finished time.Time) store.RunRecord {
	entries := make([]store.LedgerEntry, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, store.LedgerEntry{
			ID:      e.ID,
			RunID:   res.RunID,
			Seq:     e.Seq,
			UserID:  e.UserID,
			Type:    string(e.Type),
			Amount:  e.Amount,
			Balance: e.Balance,
			Line:    e.Line,
		})
	}
	return store.RunRecord{
		Run: store.Run{
			ID:         res.RunID,
			StartedAt:  started,
			FinishedAt: finished,
			Lines:      res.Stats.Lines,
			Ignored:    res.Stats.Ignored,
		},
		Results: res.Results,
		Entries: entries,
	}
}
