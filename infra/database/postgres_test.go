package database

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestGormLoggerWritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	gl := newGormLogger(zerolog.New(&buf), logger.Warn)

	gl.Error(context.Background(), "query failed: %s", "relation missing")

	out := buf.String()
	assert.Contains(t, out, `"component":"gorm"`)
	assert.Contains(t, out, "query failed: relation missing")
}

func TestGormLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	gl := newGormLogger(zerolog.New(&buf), logger.Error)

	gl.Warn(context.Background(), "slow query")
	gl.Info(context.Background(), "connected")

	assert.Empty(t, buf.String())
}
