package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/Tsiqara/Casino-Promotion-Core-System/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu     sync.RWMutex
	output io.Writer = os.Stdout
)

// Init configures the global zerolog logger. A log file that cannot be
// opened is reported and stdout is used instead.
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var out io.Writer = os.Stdout
	var fileErr error
	if cfg.File != "" {
		w, err := newCappedFile(cfg.File, cfg.MaxMB)
		if err != nil {
			fileErr = err
		} else {
			out = w
		}
	}
	setWriter(out)

	var sink io.Writer = out
	if cfg.Pretty {
		sink = zerolog.ConsoleWriter{Out: out, NoColor: cfg.File != ""}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(sink).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", cfg.File).Msg("log file unavailable, using stdout")
	}
}

// Writer returns the raw destination chosen by Init, for slog handlers.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

func setWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if prev, ok := output.(*cappedFile); ok && io.Writer(prev) != w {
		_ = prev.Close()
	}
	output = w
}
