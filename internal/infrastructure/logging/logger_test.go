package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookcatalog/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		payload := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &payload), "line %q", line)
		out = append(out, payload)
	}
	return out
}

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Level:     "debug",
		Layer:     "infrastructure",
		Component: "dataset_loader",
	})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "loaded dataset", "path", "/tmp/catalog.yaml")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	payload := lines[0]
	assert.Equal(t, "infrastructure", payload["layer"])
	assert.Equal(t, "dataset_loader", payload["component"])
	assert.Equal(t, "abc123", payload["correlation_id"])
	assert.Equal(t, "/tmp/catalog.yaml", payload["path"])
	assert.Equal(t, "loaded dataset", payload["message"])
	assert.Equal(t, "info", payload["level"])
}

func TestLoggerWithAddsFieldsAndOverridesLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	child := logger.With("component", "service", "layer", "application")
	child.Warn(context.Background(), "book skipped", "book_id", "b7")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "service", lines[0]["component"])
	assert.Equal(t, "b7", lines[0]["book_id"])
	assert.Equal(t, "application", lines[0]["layer"])
	assert.Equal(t, "warn", lines[0]["level"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "info"})
	require.NoError(t, err)

	logger.Debug(context.Background(), "hidden")

	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestLoggerEncodesErrors(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	logger.Error(context.Background(), "resolve failed", "error", errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "boom", lines[0]["error"])
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Format: FormatConsole})
	require.NoError(t, err)

	logger.Info(context.Background(), "hello", "page", 2)

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "page=2")
}

func TestNoOpLogger(t *testing.T) {
	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")

	assert.Same(t, noOp, noOp.With("key", "value"))
}

func TestBufferedLoggerStoresAndFlushes(t *testing.T) {
	buffer := NewEventBuffer(10)
	bufLogger := NewBufferedLogger(buffer)

	ctx := ports.WithCorrelationID(context.Background(), "buffered")
	bufLogger.Info(ctx, "browser started", "component", "browser")
	bufLogger.With("component", "service").Error(ctx, "failed", "attempt", 1)
	require.Equal(t, 2, buffer.Len())

	var output bytes.Buffer
	delegate, err := New(Options{Writer: &output})
	require.NoError(t, err)

	buffer.Flush(delegate)

	lines := decodeLines(t, &output)
	require.Len(t, lines, 2)
	assert.Equal(t, "browser started", lines[0]["message"])
	assert.Equal(t, "browser", lines[0]["component"])
	assert.Equal(t, "failed", lines[1]["message"])
	assert.Equal(t, "service", lines[1]["component"])
	assert.Equal(t, "buffered", lines[1]["correlation_id"])
	assert.Equal(t, 0, buffer.Len())
}

func TestBufferedLoggerKeepsEntryLayerOnFlush(t *testing.T) {
	buffer := NewEventBuffer(10)
	service := NewBufferedLogger(buffer).With("layer", "application", "component", "catalog_service")
	service.Debug(context.Background(), "search applied", "matches", 3)
	NewBufferedLogger(buffer).Info(context.Background(), "browser closed")

	var output bytes.Buffer
	delegate, err := New(Options{Writer: &output, Level: "debug", Layer: "presentation"})
	require.NoError(t, err)
	buffer.Flush(delegate)

	lines := decodeLines(t, &output)
	require.Len(t, lines, 2)
	assert.Equal(t, "application", lines[0]["layer"])
	assert.Equal(t, "catalog_service", lines[0]["component"])
	assert.Equal(t, "presentation", lines[1]["layer"])
}

func TestMergeFieldsExtrasDoNotOverrideEntry(t *testing.T) {
	fields := mergeFields(
		[]interface{}{"layer", "domain"},
		[]interface{}{"page", 2},
		map[string]interface{}{"layer": "infrastructure", "correlation_id": "abc"},
	)

	assert.Equal(t, []field{
		{key: "layer", value: "domain"},
		{key: "page", value: 2},
		{key: "correlation_id", value: "abc"},
	}, fields)
}

func TestEventBufferDropsOldest(t *testing.T) {
	buffer := NewEventBuffer(2)
	bufLogger := NewBufferedLogger(buffer)
	for _, msg := range []string{"one", "two", "three"} {
		bufLogger.Info(context.Background(), msg)
	}

	var output bytes.Buffer
	delegate, err := New(Options{Writer: &output})
	require.NoError(t, err)
	buffer.Flush(delegate)

	lines := decodeLines(t, &output)
	require.Len(t, lines, 3)
	assert.Equal(t, "log buffer overflowed", lines[0]["message"])
	assert.EqualValues(t, 1, lines[0]["dropped"])
	assert.Equal(t, "two", lines[1]["message"])
	assert.Equal(t, "three", lines[2]["message"])
}

func TestEnsureCorrelationID(t *testing.T) {
	ctx, id := EnsureCorrelationID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, ports.GetCorrelationID(ctx))

	again, sameID := EnsureCorrelationID(ctx)
	assert.Equal(t, id, sameID)
	assert.Equal(t, ctx, again)
}
