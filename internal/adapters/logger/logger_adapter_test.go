package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
	"github.com/stretchr/testify/require"
)

type fakeFluent struct {
	posts []map[string]interface{}
	tags  []string
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.posts = append(f.posts, message.(port.Fields))
	return nil
}

func (f *fakeFluent) Close() error { return nil }

func TestSlogAdapterJSONCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"component": "test"}).Info("hello", port.Fields{"count": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "test", entry["component"])
	require.EqualValues(t, 2, entry["count"])
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn, IsJSON: true})

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	require.Zero(t, buf.Len())

	logger.Warn("shown", nil)
	require.Contains(t, buf.String(), "shown")
}

func TestFluentAdapterMergesFieldsAndFiltersLevel(t *testing.T) {
	client := &fakeFluent{}
	adapter, err := NewFluentLoggerAdapter(client, slog.LevelInfo)
	require.NoError(t, err)

	logger := adapter.WithFields(port.Fields{"service_name": "site"})
	logger.Debug("dropped", nil)
	logger.Error("failed", errors.New("boom"), port.Fields{"id": "p1"})

	require.Len(t, client.posts, 1)
	require.Equal(t, []string{"error"}, client.tags)
	require.Equal(t, "site", client.posts[0]["service_name"])
	require.Equal(t, "p1", client.posts[0]["id"])
	require.Equal(t, "boom", client.posts[0]["error"])
	require.Equal(t, "failed", client.posts[0]["message"])
}

func TestFluentAdapterRejectsNilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	require.Error(t, err)
}

func TestMultiLoggerFansOut(t *testing.T) {
	first, second := &fakeFluent{}, &fakeFluent{}
	a, _ := NewFluentLoggerAdapter(first, slog.LevelDebug)
	b, _ := NewFluentLoggerAdapter(second, slog.LevelDebug)

	multi, err := NewMultiloggerAdapter(a, nil, b)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"trace_id": "t-1"}).Warn("careful", nil)
	require.Len(t, first.posts, 1)
	require.Len(t, second.posts, 1)
	require.Equal(t, "t-1", second.posts[0]["trace_id"])

	_, err = NewMultiloggerAdapter()
	require.Error(t, err)
}
