package config

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charj-lang/charj/internal/defaults"
	"github.com/rs/zerolog"
)

type Flagger interface {
	String(name string) string
	StringSlice(name string) []string
	Int(name string) int
	Bool(name string) bool
}

type Config struct {
	ConfigFilePath string
	Sources        []string
	LogLevel       string
	Concurrency    int
	Force          bool
}

func Read(flags Flagger, getEnv func(string) string) (*Config, error) {
	// flags - required
	sources := flags.StringSlice("source")
	if len(sources) == 0 {
		return nil, fmt.Errorf("flag --source is required")
	}

	for _, source := range sources {
		if _, err := filepath.Match(source, ""); err != nil {
			return nil, fmt.Errorf("flag --source %q: %w", source, err)
		}
	}

	// flags - optional
	configFile := flags.String("config-file")
	if configFile == "" {
		configFile = getEnv("CHARJ_CONFIG")
	}
	if configFile == "" {
		configFile = defaults.ConfigFile
	}

	logLevel := flags.String("log-level")
	if logLevel != "" {
		if _, err := zerolog.ParseLevel(logLevel); err != nil {
			return nil, fmt.Errorf("flag --log-level: %w", err)
		}
	}

	concurrency := flags.Int("concurrency")
	if concurrency < 0 {
		return nil, fmt.Errorf("flag --concurrency must not be negative")
	}

	cfg := Config{
		ConfigFilePath: configFile,
		Sources:        sources,
		LogLevel:       logLevel,
		Concurrency:    concurrency,
		Force:          flags.Bool("force"),
	}

	return &cfg, nil
}

func Print(w io.Writer, cfg *Config) {
	fmt.Fprintln(w, "Writing project file:")
	fmt.Fprintf(w, "  Path: %s\n", cfg.ConfigFilePath)
	fmt.Fprintf(w, "  Sources: %v\n", cfg.Sources)

	if cfg.LogLevel != "" {
		fmt.Fprintf(w, "  Log Level: %s\n", cfg.LogLevel)
	}

	if cfg.Concurrency != 0 {
		fmt.Fprintf(w, "  Concurrency: %d\n", cfg.Concurrency)
	}
}
