// Package output renders analysis reports and comparisons as text or JSON.
package output

import (
	"io"

	"github.com/jeduden/prosemeter/internal/analyze"
	"github.com/jeduden/prosemeter/internal/delta"
	"github.com/jeduden/prosemeter/internal/metrics"
)

// Report is one analyzed document.
type Report struct {
	Path   string
	Result analyze.Result
}

// Formatter renders analysis output.
type Formatter interface {
	// Format writes the selected metrics for each report.
	Format(w io.Writer, reports []Report, defs []metrics.Definition) error
	// FormatComparison writes the metric changes from before to after.
	FormatComparison(w io.Writer, before, after Report, changes []delta.Change) error
}
