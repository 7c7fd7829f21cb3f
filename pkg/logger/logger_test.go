package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "json", &buf)

	log.Debug("hello", slog.String("team_id", "01ARZ3NDEKTSV4RRFFQ69G5FAV"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Contains(t, entry, "source")
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", "text", &buf)

	log.Info("skipped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := New("info", "json", &buf)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	WithRequestID(ctx, base).Info("tagged")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	assert.Same(t, base, WithRequestID(context.Background(), base))
}

func TestFromContext(t *testing.T) {
	fallback := New("info", "json", &bytes.Buffer{})
	attached := New("info", "text", &bytes.Buffer{})

	assert.Same(t, fallback, FromContext(context.Background(), fallback))
	assert.Same(t, attached, FromContext(ToContext(context.Background(), attached), fallback))
}

func TestOutput_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	w, closer := Output(FileConfig{Path: path, MaxSizeMB: 1})

	log := New("info", "json", w)
	log.Info("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestOutput_StdoutOnly(t *testing.T) {
	w, closer := Output(FileConfig{})
	assert.Equal(t, os.Stdout, w)
	assert.NoError(t, closer.Close())
}
