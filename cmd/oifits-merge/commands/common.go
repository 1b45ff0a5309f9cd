// Package commands provides CLI command handlers for oifits-merge.
package commands

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w, logging to stderr if the write itself fails.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ValidateOutputPath checks that outputPath would not clobber one of the
// input files.
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	for _, in := range inputPaths {
		if in == outputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, in)
		}
	}
	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}
	return nil
}
