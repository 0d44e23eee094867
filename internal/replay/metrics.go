package replay

import "expvar"

var (
	metricRunsTotal       = expvar.NewInt("replay_runs_total")
	metricRunErrorsTotal  = expvar.NewInt("replay_run_errors_total")
	metricLinesTotal      = expvar.NewInt("replay_lines_total")
	metricQueriesTotal    = expvar.NewInt("replay_queries_total")
	metricPrizesPaidTotal = expvar.NewInt("replay_prizes_paid_total")
)
