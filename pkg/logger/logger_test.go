package logger_test

import (
	"bytes"
	"context"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/todoman/todoman/pkg/logger"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return the context logger when one is attached", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(&logger.Config{Level: charmlog.InfoLevel, Output: &buf})
		ctx := logger.ContextWithLogger(context.Background(), log)
		logger.FromContext(ctx).Info("hello", "key", "value")
		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "value")
	})
	t.Run("Should fall back to the default logger", func(t *testing.T) {
		assert.NotNil(t, logger.FromContext(context.Background()))
		assert.NotNil(t, logger.FromContext(nil)) //nolint:staticcheck
	})
}

func TestJSONOutput(t *testing.T) {
	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(&logger.Config{Level: charmlog.InfoLevel, Output: &buf, JSON: true})
		log.Info("structured", "count", 3)
		assert.Contains(t, buf.String(), `"msg":"structured"`)
	})
}

func TestParseLevel(t *testing.T) {
	t.Run("Should map level names and default unknowns to info", func(t *testing.T) {
		assert.Equal(t, charmlog.DebugLevel, logger.ParseLevel("debug"))
		assert.Equal(t, charmlog.ErrorLevel, logger.ParseLevel("error"))
		assert.Equal(t, charmlog.InfoLevel, logger.ParseLevel("nonsense"))
	})
}
