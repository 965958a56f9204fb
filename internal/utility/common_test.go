package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnixMilli(t *testing.T) {
	ts := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, ts.UnixMilli(), UnixMilli(ts))

	// Phần nano giây được làm tròn về mili giây
	withNanos := ts.Add(499 * time.Microsecond)
	assert.Equal(t, ts.UnixMilli(), UnixMilli(withNanos))
}

func TestCurrentTimeInMilli(t *testing.T) {
	before := time.Now().UnixMilli()
	got := CurrentTimeInMilli()
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}
