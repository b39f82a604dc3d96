package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestNewLogHandler_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(LogOptions{ServiceName: "postline", Output: &buf}))

	ctx := SetCorrelationID(context.Background(), "cid-1")
	logger.InfoContext(ctx, "mail provider ready", "admins", 2)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	rec := lines[0]

	assert.Equal(t, "mail provider ready", rec["msg"])
	assert.Equal(t, "INFO", rec["severity"])
	assert.Equal(t, "cid-1", rec["_cID"])
	assert.Equal(t, "postline", rec["service"])
	assert.InDelta(t, 2, rec["admins"], 0)
	assert.Contains(t, rec, "ts")
	assert.NotContains(t, rec, "time")
	assert.NotContains(t, rec, "level")
	assert.Contains(t, rec["file"], "internal/pkg/instrument/logging_test.go:")
}

func TestNewLogHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(LogOptions{Level: "warn", Output: &buf}))

	logger.Info("dropped")
	logger.Warn("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["msg"])
}

func TestNewLogHandler_Masking(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewLogHandler(LogOptions{
		MaskFields: []string{" Authorization ", "api_key", ""},
		Output:     &buf,
	}))

	logger.With("api_key", "SG.secret").Info("request",
		slog.Group("headers", slog.String("authorization", "Bearer abc"), slog.String("accept", "json")),
		slog.String("body", `{"api_key":"SG.other","to":["a@x.com"]}`),
		slog.Any("meta", map[string]string{"Authorization": "x", "path": "/"}),
		slog.String("plain", "not json"),
	)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	rec := lines[0]

	assert.Equal(t, "***", rec["api_key"])

	headers, ok := rec["headers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "***", headers["authorization"])
	assert.Equal(t, "json", headers["accept"])

	assert.JSONEq(t, `{"api_key":"***","to":["a@x.com"]}`, rec["body"].(string))
	assert.Equal(t, map[string]any{"Authorization": "***", "path": "/"}, rec["meta"])
	assert.Equal(t, "not json", rec["plain"])
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, GetCorrelationID(nil))

	ctx := SetCorrelationID(context.Background(), "abc")
	assert.Equal(t, "abc", GetCorrelationID(ctx))
}

func TestNew_Disabled(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	ins, err := New(context.Background(), &Config{ServiceName: "postline", LogOutput: &buf})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ins.Shutdown(context.Background()) })

	_, span := ins.Tracer("test").Start(context.Background(), "op")
	span.End()
	assert.False(t, span.SpanContext().IsValid())

	slog.Info("hello")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "postline", lines[0]["service"])
}
