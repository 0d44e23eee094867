package httptransport

import "expvar"

var (
	metricReplayRequestsTotal = expvar.NewInt("http_replay_requests_total")
	metricReplayErrorsTotal   = expvar.NewInt("http_replay_errors_total")
)
