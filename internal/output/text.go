package output

import (
	"fmt"
	"io"

	"github.com/jeduden/prosemeter/internal/delta"
	"github.com/jeduden/prosemeter/internal/metrics"
)

// TextFormatter outputs reports in human-readable text format.
// When Color is true, file paths print in cyan and metric names in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes one block per report: the file path, an aligned metric
// table, and the word-frequency table.
func (f *TextFormatter) Format(w io.Writer, reports []Report, defs []metrics.Definition) error {
	for ri, r := range reports {
		if ri > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := f.writePath(w, r.Path); err != nil {
			return err
		}

		width := nameWidth(defs)
		for _, def := range defs {
			value := metrics.FormatValue(def, def.Compute(&r.Result))
			if err := f.writeMetric(w, def.Name, value, width); err != nil {
				return err
			}
		}

		if len(r.Result.WordFrequency) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "  top words:\n"); err != nil {
			return err
		}
		for _, wc := range r.Result.WordFrequency {
			if _, err := fmt.Fprintf(w, "    %s %d\n", wc.Word, wc.Count); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatComparison writes one line per metric change:
// name before -> after (percent).
func (f *TextFormatter) FormatComparison(w io.Writer, before, after Report, changes []delta.Change) error {
	if err := f.writePath(w, before.Path+" -> "+after.Path); err != nil {
		return err
	}

	width := 0
	for _, c := range changes {
		if len(c.Metric.Name) > width {
			width = len(c.Metric.Name)
		}
	}

	for _, c := range changes {
		b := metrics.FormatValue(c.Metric, metrics.AvailableValue(c.Before))
		a := metrics.FormatValue(c.Metric, metrics.AvailableValue(c.After))
		pct := "n/a"
		if c.PercentOK {
			pct = fmt.Sprintf("%+.1f%%", c.Percent)
		}
		line := fmt.Sprintf("%-*s %s -> %s (%s)", width, c.Metric.Name, b, a, pct)
		if err := f.writeMetric(w, "", line, 0); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) writePath(w io.Writer, path string) error {
	var err error
	if f.Color {
		_, err = fmt.Fprintf(w, "\033[36m%s\033[0m\n", path)
	} else {
		_, err = fmt.Fprintf(w, "%s\n", path)
	}
	return err
}

func (f *TextFormatter) writeMetric(w io.Writer, name, value string, width int) error {
	var err error
	if name == "" {
		_, err = fmt.Fprintf(w, "  %s\n", value)
	} else if f.Color {
		_, err = fmt.Fprintf(w, "  \033[33m%-*s\033[0m %s\n", width, name, value)
	} else {
		_, err = fmt.Fprintf(w, "  %-*s %s\n", width, name, value)
	}
	return err
}

func nameWidth(defs []metrics.Definition) int {
	width := 0
	for _, def := range defs {
		if len(def.Name) > width {
			width = len(def.Name)
		}
	}
	return width
}
