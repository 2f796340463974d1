package application

import (
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/demo/internal/banner"
	"github.com/eugenenazirov/demo/internal/config"
)

// App encapsulates the resolved configuration and its output dependencies.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
}

// New initializes the application. A nil logger is replaced by a no-op one.
func New(cfg config.Config, logger *zap.Logger, out io.Writer) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:    cfg,
		logger: logger,
		out:    out,
	}
}

// Run writes the banner line. It keeps no state between calls.
func (a *App) Run() error {
	a.logger.Debug("configuration resolved",
		zap.String("name", a.cfg.Name()),
		zap.String("version", a.cfg.Version()),
		zap.Bool("debug", a.cfg.Debug()),
	)

	return banner.Write(a.out, a.cfg)
}
