package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := Build(&buf, "json", "debug")
	require.NoError(t, err)

	l.WithPath("cube.glb").LogAccessor(context.Background(), 3, 24, nil)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "accessor read", rec["msg"])
	assert.Equal(t, "cube.glb", rec["path"])
	assert.EqualValues(t, 3, rec["accessor"])
	assert.EqualValues(t, 24, rec["count"])
}

func TestBuildRejectsUnknownFormat(t *testing.T) {
	_, err := Build(&bytes.Buffer{}, "xml", "info")
	assert.Error(t, err)

	_, err = Build(&bytes.Buffer{}, "text", "nope")
	assert.Error(t, err)
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelWarn)

	l.LogAccessor(context.Background(), 0, 1, nil)
	assert.Empty(t, buf.String())

	l.LogLoad(context.Background(), 0, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "model load failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestWithVector(t *testing.T) {
	var buf bytes.Buffer
	NewText(&buf, slog.LevelInfo).WithVector("Vector3", 42).Info("changed")
	assert.Contains(t, buf.String(), "origin=Vector3")
	assert.Contains(t, buf.String(), "id=42")
}

func TestNoopDiscards(t *testing.T) {
	l := Noop()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.Error("ignored")
}

func TestNewNilHandler(t *testing.T) {
	l := New(nil)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}
