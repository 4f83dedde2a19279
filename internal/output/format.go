// Package output renders calculation results for the CLI surfaces.
package output

import (
	"strings"

	"github.com/kabecheck/kabecheck/internal/domain"
)

// Formatter renders a result record into a printable string.
type Formatter interface {
	FormatParttime(domain.ParttimeResult) (string, error)
	FormatFreelance(domain.FreelanceResult) (string, error)
}

// ByName returns the formatter for a --format value, or nil when the
// name is unknown.
func ByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console", "table", "":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}
