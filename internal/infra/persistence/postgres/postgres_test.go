package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Report(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatcher{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	ctx := context.Background()

	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	assert.False(t, w.report(ctx, prev, prev))
	assert.Empty(t, buf.String())

	assert.True(t, w.report(ctx, prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond}))
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avg_wait=5ms")

	buf.Reset()
	assert.True(t, w.report(ctx, prev, sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond, MaxOpenConnections: 20}))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "max_open=20")
}
