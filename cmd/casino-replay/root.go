package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/config"
	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/logging"
	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/replay"
	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/store"
	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/txlog"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errMissingDSN = errors.New("POSTGRES_DSN is required when journal export is enabled")

type options struct {
	cfg           config.AppConfig
	input         string
	output        string
	exportJournal bool
	addr          string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "casino-replay",
		Short: "Replay a casino transaction log and write balance query results",
		Long: `casino-replay reads one command per line (register, addscenario, deposit,
bet, balance), applies them in order to an in-memory ledger and writes the
result of every balance query to the output file once the whole log has
been applied. Any malformed command aborts the run without writing output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd.Context(), opts)
		},
	}
	f := cmd.PersistentFlags()
	f.StringVar(&opts.input, "input", "", "transaction log path (default $INPUT_FILE)")
	f.StringVar(&opts.output, "output", "", "results path (default $OUTPUT_FILE)")
	f.BoolVar(&opts.exportJournal, "export-journal", false, "export the run journal to Postgres (default $EXPORT_JOURNAL)")

	cmd.AddCommand(newServeCmd(opts))
	return cmd
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.LoadApp()
	if err != nil {
		return err
	}
	logging.Init(cfg.Log)

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Replay.InputFile = o.input
	}
	if flags.Changed("output") {
		cfg.Replay.OutputFile = o.output
	}
	if flags.Changed("export-journal") {
		cfg.Replay.ExportJournal = o.exportJournal
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Server.HTTPAddr = o.addr
	}
	o.cfg = cfg
	return nil
}

func runBatch(ctx context.Context, o *options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, closeStore, err := newService(ctx, o.cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	res, err := svc.Run(ctx, txlog.FileLines(o.cfg.Replay.InputFile), txlog.FileSink(o.cfg.Replay.OutputFile))
	if err != nil {
		return err
	}
	log.Info().
		Str("run_id", res.RunID).
		Str("input", o.cfg.Replay.InputFile).
		Str("output", o.cfg.Replay.OutputFile).
		Int("results", len(res.Results)).
		Msg("results written")
	return nil
}

// newService wires the optional Postgres exporter.
func newService(ctx context.Context, cfg config.AppConfig) (*replay.Service, func(), error) {
	if !cfg.Replay.ExportJournal {
		return replay.NewService(nil), func() {}, nil
	}
	if cfg.Store.PostgresDSN == "" {
		return nil, nil, errMissingDSN
	}
	st, err := store.New(cfg.Store.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := st.Ping(ctx); err != nil {
		st.Close()
		return nil, nil, err
	}
	return replay.NewService(st), st.Close, nil
}
