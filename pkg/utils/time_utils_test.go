package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodKeyUsesUTCCalendarMonth(t *testing.T) {
	assert.Equal(t, "2025-09", PeriodKey(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-09", PeriodKey(time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "2025-10", PeriodKey(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodKeyNormalizesZones(t *testing.T) {
	// 2025-10-01T02:00 in UTC+3 is still 2025-09-30T23:00 UTC.
	nairobi := time.FixedZone("EAT", 3*60*60)
	local := time.Date(2025, 10, 1, 2, 0, 0, 0, nairobi)
	assert.Equal(t, "2025-09", PeriodKey(local))
}

func TestFromUnixSecondsUTC(t *testing.T) {
	assert.True(t, FromUnixSecondsUTC(0).IsZero())
	assert.True(t, FromUnixSecondsUTC(-5).IsZero())

	ts := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, ts, FromUnixSecondsUTC(ts.Unix()))
}

func TestFormatRFC3339UTC(t *testing.T) {
	assert.Empty(t, FormatRFC3339UTC(time.Time{}))
	assert.Equal(t, "2025-09-15T12:00:00Z", FormatRFC3339UTC(time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)))
}

func TestMinorToDecimal(t *testing.T) {
	assert.Equal(t, "100.00", MinorToDecimal(10000))
	assert.Equal(t, "0.05", MinorToDecimal(5))
	assert.Equal(t, "12.34", MinorToDecimal(1234))
}
