package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("v1.2.3", "2026-08-23", "abc1234")
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "2026-08-23", info.Date)
	assert.Equal(t, "abc1234", info.Commit)
}

func TestNewInfoEmptyValues(t *testing.T) {
	info := NewInfo("", "", "")
	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestInfoFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	logger.Info("Starting server", NewInfo("v1.0.0", "2026-01-01", "deadbee").Fields()...)

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "v1.0.0", fields["build_version"])
	assert.Equal(t, "2026-01-01", fields["build_date"])
	assert.Equal(t, "deadbee", fields["build_commit"])
}
