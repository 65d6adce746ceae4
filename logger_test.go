package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerLevel(t *testing.T) {
	level := zap.NewAtomicLevel()

	require.NotNil(t, NewLogger("DEBUG", level))
	require.True(t, level.Enabled(zap.DebugLevel))

	NewLogger("warn", level)
	require.False(t, level.Enabled(zap.InfoLevel))
	require.True(t, level.Enabled(zap.WarnLevel))

	NewLogger("loud", level)
	require.Equal(t, zap.InfoLevel, level.Level())
}
