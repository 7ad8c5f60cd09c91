package defaults

import (
	"runtime"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	ServiceName = "charj"

	// ConfigFile is the project file looked up in the working directory.
	ConfigFile = "charj.json"

	LogLevel  = "info"
	LogFormat = "console"
)

var (
	Version = "dev"

	TracerProvider trace.TracerProvider = noop.NewTracerProvider()

	// Concurrency bounds how many files are checked at once.
	Concurrency = runtime.NumCPU()
)
