package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

type Config struct {
	LogLevel    string `env:"SUBSTRFREQ_LOG_LEVEL" enum:"debug;info;warn;error;fatal;" default:"info"`
	HistoryFile string `env:"SUBSTRFREQ_HISTORY_FILE"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return c, err
	}
	if c.HistoryFile == "" {
		c.HistoryFile = filepath.Join(os.TempDir(), ".substrfreq-history")
	}
	return c, nil
}

// Apply sets the level of the package level logger.
func (c Config) Apply() {
	logger.Configure(func(l *logging.Logger) {
		l.Level = logging.Level(c.LogLevel)
	})
}

func main() {
	ctx := context.Background()

	c, err := LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "failed to load application config", logging.ErrField(err))
		os.Exit(1)
	}
	c.Apply()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	if f, err := os.Open(c.HistoryFile); err == nil {
		_, _ = line.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(c.HistoryFile)
		if err != nil {
			logger.Debug(ctx, "history is not saved", logging.ErrField(err))
			return
		}
		_, _ = line.WriteHistory(f)
		_ = f.Close()
	}()

	if err := (&App{Prompter: line, Out: os.Stdout}).Run(ctx); err != nil {
		logger.Error(ctx, "substrfreq stopped", logging.ErrField(err))
		return
	}
}
