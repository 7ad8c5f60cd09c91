package exec

import (
	"fmt"
	"io"
)

// Print writes one "path:line:column: message" line per diagnostic and
// reports whether any file failed.
func Print(w io.Writer, reports []Report) bool {
	failed := false

	for _, report := range reports {
		if report.Err != nil {
			fmt.Fprintf(w, "%s: %v\n", report.Path, report.Err)
			failed = true

			continue
		}

		for _, diagnostic := range report.Result.Diagnostics {
			fmt.Fprintf(w, "%s: %s\n", report.Result.File.Describe(diagnostic.Location), diagnostic.Message)
		}

		failed = failed || report.Result.Failed()
	}

	return failed
}
