package catalog

import (
	"fmt"
	"strings"
)

// MalformedCatalogError means the input has no usable header: either no
// non-blank line exists, or the header fields do not match the expected
// (name, mainGenre, carb) triple. The load must not proceed.
type MalformedCatalogError struct {
	Reason   string
	Expected []string
	Actual   []string
}

func (e *MalformedCatalogError) Error() string {
	if len(e.Expected) == 0 && len(e.Actual) == 0 {
		return fmt.Sprintf("malformed catalog: %s", e.Reason)
	}
	return fmt.Sprintf("malformed catalog: %s: expected header %v, got %v",
		e.Reason, e.Expected, e.Actual)
}

// RowError collects every violation found on one data row. Line numbers are
// 1-based physical line numbers in the input.
type RowError struct {
	Line       int
	Violations []string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, strings.Join(e.Violations, "; "))
}

// ValidationError aggregates every row error found in a single parse pass,
// so the catalog maintainer can fix everything in one go.
type ValidationError struct {
	Rows []RowError
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Rows))
	for i, r := range e.Rows {
		lines[i] = r.Error()
	}
	return "catalog validation failed:\n" + strings.Join(lines, "\n")
}
