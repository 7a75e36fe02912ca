package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

type failingTx struct{ err error }

func (tx failingTx) Rollback() error { return tx.err }

func TestSafeCloseWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	SafeCloseWithLogging(failingCloser{}, logger, "clean_close")
	assert.Empty(t, buf.String())

	SafeCloseWithLogging(failingCloser{err: errors.New("boom")}, logger, "dirty_close")
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "dirty_close")

	// A nil closer is a no-op, not a panic.
	SafeCloseWithLogging(nil, logger, "nil_close")
}

func TestSafeRollbackWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	SafeRollbackWithLogging(failingTx{err: errors.New("sql: transaction has already been committed or rolled back")}, logger, "post_commit")
	assert.Empty(t, buf.String())

	SafeRollbackWithLogging(failingTx{err: errors.New("disk full")}, logger, "failed_rollback")
	assert.Contains(t, buf.String(), "disk full")
}
