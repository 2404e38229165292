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
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		out = append(out, entry)
	}
	return out
}

func TestNewJSON_WritesFieldsAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelInfo, &buf).Named("usecase")

	logger.Debug("hidden")
	logger.InfoContext(context.Background(), "team created", "team_id", "t1", "players", 4)
	logger.Warn("odd", "cause", errors.New("boom"), "dangling")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "team created", entries[0]["msg"])
	assert.Equal(t, "usecase", entries[0]["logger"])
	assert.Equal(t, "t1", entries[0]["team_id"])
	assert.Equal(t, float64(4), entries[0]["players"])
	assert.Contains(t, entries[0]["caller"], "logger_test.go")

	assert.Equal(t, "boom", entries[1]["cause"])
	assert.Contains(t, entries[1], "dangling")
}

func TestWith_AddsFieldsToEveryEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(LevelDebug, &buf).With("session", "s1")

	logger.Debug("one")
	logger.Error("two")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "s1", entry["session"])
	}
}

func TestNewConsole_IsPlainText(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(LevelInfo, &buf).Info("store rewritten", "records", 3)

	line := buf.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "store rewritten")
	assert.Contains(t, line, `"records": 3`)
}

func TestDefault_FallsBackToNop(t *testing.T) {
	SetDefault(nil)
	require.NotNil(t, Default())

	var nilLogger *Logger
	assert.NotPanics(t, func() { nilLogger.Info("ignored") })
	assert.NoError(t, nilLogger.Sync())
}
