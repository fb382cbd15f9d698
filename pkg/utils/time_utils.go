package utils

import (
	"fmt"
	"time"
)

// All billing-period math runs on the server clock in UTC. Client-supplied
// timestamps never feed into period boundaries.

// PeriodKey buckets a timestamp into its calendar month, e.g. "2025-09".
func PeriodKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSecondsUTC converts an epoch value in seconds to UTC.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsUTC(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339UTC(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// MinorToDecimal renders a minor-unit amount as a two-decimal string,
// matching what hosted-checkout providers put into webhook payloads.
func MinorToDecimal(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}
