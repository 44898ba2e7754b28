package metrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jeduden/prosemeter/internal/analyze"
)

// ValueKind describes how to render a numeric metric value.
type ValueKind string

const (
	// KindInteger renders values as rounded integers.
	KindInteger ValueKind = "integer"
	// KindFloat renders values with fixed decimal precision.
	KindFloat ValueKind = "float"
)

// Direction describes which way an increase in the metric reads.
type Direction string

const (
	// HigherIsEasier marks scores where a larger value means easier
	// reading (Flesch Reading Ease).
	HigherIsEasier Direction = "higher-is-easier"
	// HigherIsHarder marks grade-level scores where a larger value means
	// harder reading.
	HigherIsHarder Direction = "higher-is-harder"
	// Neutral marks plain counts and ratios.
	Neutral Direction = "neutral"
)

// Value is a computed numeric metric value.
type Value struct {
	Number    float64
	Available bool
}

// AvailableValue constructs an available metric value.
func AvailableValue(n float64) Value {
	return Value{
		Number:    n,
		Available: true,
	}
}

// UnavailableValue constructs an unavailable metric value.
func UnavailableValue() Value {
	return Value{}
}

// Definition describes a metric and how to read it off a Result.
type Definition struct {
	ID          string
	Name        string
	Description string
	Kind        ValueKind
	Precision   int
	Direction   Direction
	Default     bool
	Compute     func(r *analyze.Result) Value
}

// FormatValue renders a metric value for text output.
func FormatValue(def Definition, value Value) string {
	v := JSONValue(def, value)
	if v == nil {
		return "-"
	}

	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return fmt.Sprintf("%.*f", def.Precision, n)
	default:
		return "-"
	}
}

// JSONValue converts a metric value into a JSON-safe scalar.
// Unavailable values return nil.
func JSONValue(def Definition, value Value) any {
	if !value.Available {
		return nil
	}

	switch def.Kind {
	case KindInteger:
		return int64(math.Round(value.Number))
	case KindFloat:
		if def.Precision < 0 {
			return value.Number
		}
		scale := math.Pow10(def.Precision)
		return math.Round(value.Number*scale) / scale
	default:
		return value.Number
	}
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
