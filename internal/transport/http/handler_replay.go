package httptransport

import (
	"errors"
	"net/http"

	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/ledger"
	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/replay"
	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/txlog"
)

type ReplayResponse struct {
	RunID   string   `json:"run_id"`
	Results []string `json:"results"`
	Entries int      `json:"entries"`
	Lines   int      `json:"lines"`
	Ignored int      `json:"ignored"`
}

// ReplayHandler runs the request body as a transaction log on a fresh
// ledger. Nothing is shared between requests.
func ReplayHandler(svc *replay.Service, maxBodyBytes int64) http.HandlerFunc {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return func(w http.ResponseWriter, r *http.Request) {
		metricReplayRequestsTotal.Add(1)
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		res, err := svc.Run(r.Context(), txlog.Lines(body), nil)
		if err != nil {
			metricReplayErrorsTotal.Add(1)
			writeReplayError(w, err)
			return
		}
		results := res.Results
		if results == nil {
			results = []string{}
		}
		writeJSON(w, http.StatusOK, ReplayResponse{
			RunID:   res.RunID,
			Results: results,
			Entries: len(res.Entries),
			Lines:   res.Stats.Lines,
			Ignored: res.Stats.Ignored,
		})
	}
}

func writeReplayError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		WriteHTTPError(w, http.StatusRequestEntityTooLarge, "body_too_large", "")
	case ledger.Kind(err) != "":
		WriteHTTPError(w, http.StatusUnprocessableEntity, ledger.Kind(err), err.Error())
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error", "")
	}
}
