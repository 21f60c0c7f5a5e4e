package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is an opaque record displayed by a table. Values are addressed by
// key, with dot-separated paths reaching into nested maps
// (e.g. "client.email").
type Row = map[string]any

// Value resolves a possibly dotted key path against a row. The second
// return value reports whether the full path resolved.
func Value(row Row, path string) (any, bool) {
	if row == nil || path == "" {
		return nil, false
	}

	current := any(row)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// FormatValue renders a cell value as display text. Unknown types fall
// back to their default string form; nil renders empty.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", val)
	}
}
