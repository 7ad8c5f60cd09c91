package semconv

// Run
const (
	// Unique ID of a single `check` invocation; every log line of the run carries it.
	RunID = "run_id"

	Command = "command"
)

// Files
const (
	// Path of the source file as given on the command line or in charj.json.
	FilePath = "file"

	FileCount = "files"
)

// Results
const (
	// Number of top-level declarations in a parsed file.
	UnitCount = "units"

	DiagnosticCount = "diagnostics"

	// Byte offset of the first diagnostic in a file.
	ErrorOffset = "offset"
)
