package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncRun_Duration(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)

	var nilRun *SyncRun
	assert.Zero(t, nilRun.Duration())
	assert.Zero(t, (&SyncRun{StartedAt: start}).Duration())
	assert.Equal(t, 90*time.Second, (&SyncRun{StartedAt: start, EndedAt: &end}).Duration())
}
