package rdb

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"coffeeshop/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool, elapsed time.Duration) (*gormSlogLogger, time.Time) {
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	l := newGormSlogLogger(base, cfg).(*gormSlogLogger)
	begin := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return begin.Add(elapsed) }

	return l, begin
}

func sqlFn() (string, int64) {
	return "SELECT * FROM menu_items", 5
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	var buf bytes.Buffer
	l, begin := newTestGormLogger(&buf, false, time.Millisecond)

	l.Trace(context.Background(), begin, sqlFn, errors.New("syntax error"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "syntax error")
	assert.Contains(t, buf.String(), "rows=5")
}

func TestGormSlogLogger_RecordNotFoundIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	l, begin := newTestGormLogger(&buf, false, time.Millisecond)

	l.Trace(context.Background(), begin, sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l, begin := newTestGormLogger(&buf, false, time.Second)

	l.Trace(context.Background(), begin, sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestGormSlogLogger_InfoOnlyInDebug(t *testing.T) {
	var buf bytes.Buffer
	l, begin := newTestGormLogger(&buf, false, time.Millisecond)

	l.Trace(context.Background(), begin, sqlFn, nil)
	l.Info(context.Background(), "hello %s", "world")
	assert.Empty(t, buf.String())

	debug, begin := newTestGormLogger(&buf, true, time.Millisecond)
	debug.Trace(context.Background(), begin, sqlFn, nil)
	debug.Info(context.Background(), "hello %s", "world")
	assert.Contains(t, buf.String(), "GORM query")
	assert.Contains(t, buf.String(), "hello world")
}

func TestGormSlogLogger_LogModeCopies(t *testing.T) {
	var buf bytes.Buffer
	l, begin := newTestGormLogger(&buf, true, time.Millisecond)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), begin, sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
	assert.Equal(t, logger.Info, l.level)
}
