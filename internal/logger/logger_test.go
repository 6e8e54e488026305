package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	require.NotNil(t, L)
	Info("nothing to see")
}

func TestInit_Writer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Writer: &buf, Level: slog.LevelDebug}))
	t.Cleanup(func() { _ = Init(Options{}) })

	Debug("toggled", "path", "orders.o1")
	assert.Contains(t, buf.String(), `"path":"orders.o1"`)
	assert.Contains(t, buf.String(), `"msg":"toggled"`)
}

func TestInit_FileInDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	t.Cleanup(func() { _ = Init(Options{}) })

	Info("hello")
	name := filepath.Join(dir, logPrefix+time.Now().Format(dayLayout)+logSuffix)
	_, err := os.Stat(name)
	require.NoError(t, err)
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	old := filepath.Join(dir, "mockdiff-2025-01-01.log")
	recent := filepath.Join(dir, "mockdiff-2025-02-25.log")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(p, nil, 0644))
	}

	cleanOldLogs(dir, now)

	_, err := os.Stat(old)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(recent)
	assert.NoError(t, err)
	_, err = os.Stat(other)
	assert.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestOpenDayFile_PrunesExpired(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	expired := filepath.Join(dir, "mockdiff-2025-04-01.log")
	require.NoError(t, os.WriteFile(expired, nil, 0644))

	f, err := openDayFile(dir, now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, filepath.Join(dir, "mockdiff-2025-06-10.log"), f.Name())
	_, err = os.Stat(expired)
	assert.True(t, os.IsNotExist(err))
}
