package partials

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.50 KB", FormatFileSize(1536))
	assert.Equal(t, "2.00 MB", FormatFileSize(2<<20))
	assert.Equal(t, "1.00 GB", FormatFileSize(1<<30))
}

func TestFormatClockAndDate(t *testing.T) {
	ts := time.Date(2025, 4, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "02:07 pm", FormatClock(ts))
	assert.Equal(t, "5/4/2025", FormatDate(ts))
	assert.Equal(t, "5/4/2025", FormatOptionalDate(&ts))
	assert.Equal(t, "", FormatOptionalDate(nil))
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 4, 18, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", FormatRelativeTime(now.Add(-10*time.Second), now))
	assert.Equal(t, "1 minute ago", FormatRelativeTime(now.Add(-time.Minute), now))
	assert.Equal(t, "15 minutes ago", FormatRelativeTime(now.Add(-15*time.Minute), now))
	assert.Equal(t, "6 hours ago", FormatRelativeTime(now.Add(-6*time.Hour), now))
	assert.Equal(t, "1 day ago", FormatRelativeTime(now.Add(-24*time.Hour), now))
	assert.Equal(t, "Apr 1, 2025", FormatRelativeTime(now.Add(-17*24*time.Hour), now))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Evidence", Capitalize("evidence"))
	assert.Equal(t, "", Capitalize(""))
}
