package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerReadsBackNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.log")
	l := NewIsolatedLogger(path)

	l.Info("CHAT", "first", map[string]interface{}{"n": 1})
	l.Warn("CHAT", "second", nil)
	l.Info("CHAT", "third", nil)
	require.NoError(t, l.Sync())

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "third", logs[0].Message)
	assert.Equal(t, "first", logs[2].Message)
	assert.Equal(t, "CHAT", logs[2].Module)

	warns, err := l.GetLogs("WARN", 10, 0)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, "second", warns[0].Message)

	page, err := l.GetLogs("", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Message)

	found, err := l.GetLogById(logs[1].Id)
	require.NoError(t, err)
	assert.Equal(t, "second", found.Message)
}

func TestGetLogsMissingFile(t *testing.T) {
	l := NewIsolatedLogger(filepath.Join(t.TempDir(), "never-written.log"))

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("X", "ignored", map[string]interface{}{"error": "boom"})

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
