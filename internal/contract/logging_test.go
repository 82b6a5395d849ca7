package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { _ = InitLogger(DefaultLogLevel, DefaultLogFormat) })

	require.NoError(t, InitLogger("debug", "console"))
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, InitLogger("warn", "json"))
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.WarnLevel))

	err := InitLogger("loud", "console")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
