package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *SlogLogger, ctx context.Context)
		level string
	}{
		{"debug", func(l *SlogLogger, ctx context.Context) { l.Debug(ctx, "m") }, "DEBUG"},
		{"info", func(l *SlogLogger, ctx context.Context) { l.Info(ctx, "m") }, "INFO"},
		{"warn", func(l *SlogLogger, ctx context.Context) { l.Warn(ctx, "m") }, "WARN"},
		{"error", func(l *SlogLogger, ctx context.Context) { l.Error(ctx, "m") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufLogger(t)
			tt.log(l, context.Background())
			rec := lastRecord(t, buf)
			require.Equal(t, tt.level, rec["level"])
			require.Equal(t, "m", rec["msg"])
		})
	}
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	l, buf := newBufLogger(t)

	child := l.With("module", "httpapi")
	child.Info(context.Background(), "ready", "addr", ":8080")

	rec := lastRecord(t, buf)
	require.Equal(t, "httpapi", rec["module"])
	require.Equal(t, ":8080", rec["addr"])
}
