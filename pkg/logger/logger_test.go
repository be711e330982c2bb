package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestSetupWriter_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "production", "info")

	Info("report computed", "business_id", 7)
	Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `"msg":"report computed"`)
	assert.Contains(t, out, `"business_id":7`)
	assert.NotContains(t, out, "hidden")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "development", "info")

	assert.Same(t, Log, FromContext(context.Background()))

	scoped := Log.With("request_id", "abc")
	ctx := WithContext(context.Background(), scoped)
	FromContext(ctx).Info("scoped")

	assert.Contains(t, buf.String(), "request_id=abc")
}

func TestGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, "development", "info")
	l := NewGormLogger(gormlogger.Warn, 200*time.Millisecond)

	sql := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	assert.Contains(t, buf.String(), "SQL Error")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	assert.Contains(t, buf.String(), "Slow SQL")

	buf.Reset()
	l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	assert.Empty(t, buf.String())
}
