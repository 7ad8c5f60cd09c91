package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charj-lang/charj/internal/charjconfig"
	"github.com/charj-lang/charj/internal/defaults"
)

var ErrNoSources = errors.New("no source files: pass FILES or list sources in " + defaults.ConfigFile)

type Flagger interface {
	String(name string) string
	Int(name string) int
	Bool(name string) bool
}

type Config struct {
	Files       []string
	ConfigFile  string
	Concurrency int
	Watch       bool
	OTel        bool
	LogLevel    string
	LogFormat   string
}

// Read resolves the check configuration. Flags win over environment
// variables, which win over the project file.
func Read(flags Flagger, args []string, getEnv func(string) string) (*Config, error) {
	configFile, explicit := firstOf(flags.String("config"), getEnv("CHARJ_CONFIG")), true
	if configFile == "" {
		configFile, explicit = defaults.ConfigFile, false
	}

	project, err := charjconfig.ReadConfigFile(configFile)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, os.ErrNotExist):
		project = &charjconfig.Project{}
	default:
		return nil, err
	}

	files := args
	if len(files) == 0 {
		files, err = project.Files(filepath.Dir(configFile))
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return nil, ErrNoSources
	}

	concurrency := flags.Int("concurrency")
	if concurrency == 0 {
		concurrency = project.Concurrency
	}
	if concurrency == 0 {
		concurrency = defaults.Concurrency
	}
	if concurrency < 0 {
		return nil, fmt.Errorf("flag --concurrency must be positive")
	}

	logLevel := firstOf(flags.String("log-level"), getEnv("CHARJ_LOG_LEVEL"), project.LogLevel, defaults.LogLevel)
	logFormat := firstOf(flags.String("log-format"), getEnv("CHARJ_LOG_FORMAT"), defaults.LogFormat)

	cfg := Config{
		Files:       files,
		ConfigFile:  configFile,
		Concurrency: concurrency,
		Watch:       flags.Bool("watch"),
		OTel:        flags.Bool("otel"),
		LogLevel:    logLevel,
		LogFormat:   logFormat,
	}

	return &cfg, nil
}

func firstOf(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
