package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resmux/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text_by_default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Info("hello", logger.Component("test"))

		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "component=test")
	})

	t.Run("json_formatter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithJSONFormatter())
		log.Info("hello")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
	})

	t.Run("level_filters_records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("attrs_on_every_record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithAttrs(logger.Component("router")))
		log.Info("first")
		log.Info("second")

		assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("component=router")))
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error_attr_is_empty_for_nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.Error(nil))
		assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	})

	t.Run("request_id_empty_for_blank", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.RequestID(""))
		assert.Equal(t, "request_id", logger.RequestID("abc").Key)
	})

	t.Run("timing_attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "duration", logger.Duration(time.Second).Key)
		assert.Equal(t, "latency", logger.Latency(time.Second).Key)
		assert.Equal(t, "elapsed", logger.Elapsed(time.Now()).Key)
	})
}
