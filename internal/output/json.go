package output

import (
	"encoding/json"
	"io"

	"github.com/jeduden/prosemeter/internal/delta"
	"github.com/jeduden/prosemeter/internal/metrics"
)

// JSONFormatter outputs reports as pretty-printed JSON.
type JSONFormatter struct{}

type jsonWordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type jsonReport struct {
	File          string          `json:"file"`
	Metrics       map[string]any  `json:"metrics"`
	WordFrequency []jsonWordCount `json:"word_frequency"`
}

type jsonChange struct {
	Metric   string   `json:"metric"`
	Before   any      `json:"before"`
	After    any      `json:"after"`
	Absolute float64  `json:"change"`
	Percent  *float64 `json:"change_pct"`
}

type jsonComparison struct {
	Before  string       `json:"before"`
	After   string       `json:"after"`
	Changes []jsonChange `json:"changes"`
}

// Format writes reports as a JSON array. An empty slice produces [].
func (f *JSONFormatter) Format(w io.Writer, reports []Report, defs []metrics.Definition) error {
	items := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		values := make(map[string]any, len(defs))
		for _, def := range defs {
			values[def.Name] = metrics.JSONValue(def, def.Compute(&r.Result))
		}

		freq := make([]jsonWordCount, 0, len(r.Result.WordFrequency))
		for _, wc := range r.Result.WordFrequency {
			freq = append(freq, jsonWordCount{Word: wc.Word, Count: wc.Count})
		}

		items = append(items, jsonReport{
			File:          r.Path,
			Metrics:       values,
			WordFrequency: freq,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// FormatComparison writes the comparison as a single JSON object. A nil
// percentage marks a change from a zero baseline.
func (f *JSONFormatter) FormatComparison(w io.Writer, before, after Report, changes []delta.Change) error {
	out := jsonComparison{
		Before:  before.Path,
		After:   after.Path,
		Changes: make([]jsonChange, 0, len(changes)),
	}
	for _, c := range changes {
		jc := jsonChange{
			Metric:   c.Metric.Name,
			Before:   metrics.JSONValue(c.Metric, metrics.AvailableValue(c.Before)),
			After:    metrics.JSONValue(c.Metric, metrics.AvailableValue(c.After)),
			Absolute: c.Absolute,
		}
		if c.PercentOK {
			pct := c.Percent
			jc.Percent = &pct
		}
		out.Changes = append(out.Changes, jc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
