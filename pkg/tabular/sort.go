package tabular

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Direction is the sort direction applied to a column.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortConfig describes the active sort of a displayed collection. An
// empty Key means natural (insertion) order.
type SortConfig struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// RequestSort computes the next sort config after a header click.
// Clicking a new column sorts it ascending; clicking the active column
// toggles the direction. Once a column has been chosen there is no
// third "unsorted" state.
func RequestSort(current SortConfig, key string) SortConfig {
	if current.Key != key {
		return SortConfig{Key: key, Direction: Ascending}
	}
	if current.Direction == Ascending {
		return SortConfig{Key: key, Direction: Descending}
	}
	return SortConfig{Key: key, Direction: Ascending}
}

// ParseDirection maps a wire value to a Direction. Both the short and
// long spellings are accepted in any case; anything else falls back to
// the given default.
func ParseDirection(s string, fallback Direction) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending
	case "desc", "descending":
		return Descending
	}
	return fallback
}

// Field names compared as dates rather than lexically.
var dateKeys = map[string]bool{
	"date":       true,
	"createdAt":  true,
	"created_at": true,
	"updatedAt":  true,
	"updated_at": true,
	"dueDate":    true,
	"due_date":   true,
}

// Field names whose string values still compare numerically
// (currency/total columns serialized as strings).
var numericKeys = map[string]bool{
	"grandTotal":   true,
	"grand_total":  true,
	"totalAmount":  true,
	"total_amount": true,
	"subTotal":     true,
	"sub_total":    true,
	"amount":       true,
	"quantity":     true,
	"price":        true,
	"hours":        true,
}

// ApplySort returns rows reordered per config. The input slice is never
// mutated; an empty sort key returns a copy in the original order. The
// sort is stable, so equal values keep their relative order. Nil or
// missing values order before any present value in both directions.
func ApplySort(rows []Row, config SortConfig) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	if config.Key == "" {
		return out
	}

	desc := config.Direction == Descending
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := Value(out[i], config.Key)
		b, _ := Value(out[j], config.Key)
		c := compareValues(config.Key, a, b)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compareValues orders two cell values for the given key. Absent values
// sort first, dates as times, numbers numerically, everything else as
// strings. It never panics on mixed garbage.
func compareValues(key string, a, b any) int {
	aNil := isAbsent(a)
	bNil := isAbsent(b)
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	case bNil:
		return 1
	}

	if ta, ok := asTime(key, a); ok {
		if tb, ok := asTime(key, b); ok {
			switch {
			case ta.Before(tb):
				return -1
			case ta.After(tb):
				return 1
			default:
				return 0
			}
		}
	}

	if fa, ok := asNumber(key, a); ok {
		if fb, ok := asNumber(key, b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(FormatValue(a), FormatValue(b))
}

// isAbsent treats nil and NaN as "no value" so they order consistently
// ahead of real values instead of poisoning the comparison.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok && f != f {
		return true
	}
	return false
}

func asTime(key string, v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	if !dateKeys[key] {
		return time.Time{}, false
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func asNumber(key string, v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		if !numericKeys[key] {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
