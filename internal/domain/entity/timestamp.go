package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UnknownTime is rendered when a timestamp is absent.
const UnknownTime = "Unknown time"

// millisEpochCutoff separates second-precision from millisecond-precision
// numeric timestamps: values below it are Unix seconds, values at or above it
// are Unix milliseconds. Upstream producers write both conventions, so the
// cutoff must stay exact.
const millisEpochCutoff = 1e12

// timeLayout mirrors the locale date-time string operators are used to.
const timeLayout = "1/2/2006, 3:04:05 PM"

// FormatTimestamp converts a timestamp of unknown shape into a local
// date-time string. Firestore hands back time.Time values, the realtime tree
// carries numeric seconds or milliseconds, and some producers write
// date-parsable strings. It never fails: a value that defeats every parser is
// returned stringified.
func FormatTimestamp(ts any) string {
	if ts == nil {
		return UnknownTime
	}

	switch v := ts.(type) {
	case time.Time:
		if v.IsZero() {
			return UnknownTime
		}

		return v.Local().Format(timeLayout)
	case *time.Time:
		if v == nil || v.IsZero() {
			return UnknownTime
		}

		return v.Local().Format(timeLayout)
	case int:
		return formatEpoch(float64(v))
	case int32:
		return formatEpoch(float64(v))
	case int64:
		return formatEpoch(float64(v))
	case float32:
		return formatEpoch(float64(v))
	case float64:
		return formatEpoch(v)
	case json.Number:
		if n, err := v.Float64(); err == nil {
			return formatEpoch(n)
		}

		return v.String()
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return UnknownTime
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return formatEpoch(n)
		}
		if t, ok := parseDateString(s); ok {
			return t.Local().Format(timeLayout)
		}

		return v
	}

	return fmt.Sprint(ts)
}

// formatEpoch renders a Unix epoch value, picking seconds or milliseconds by
// magnitude. Zero is treated as absent; negatives are pre-epoch milliseconds.
func formatEpoch(n float64) string {
	if n == 0 {
		return UnknownTime
	}

	var t time.Time
	switch {
	case n < 0:
		t = time.UnixMilli(int64(n))
	case n < millisEpochCutoff:
		t = time.Unix(int64(n), 0)
	default:
		t = time.UnixMilli(int64(n))
	}

	return t.Local().Format(timeLayout)
}

// dateLayouts are tried in order for string timestamps.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDateString(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
