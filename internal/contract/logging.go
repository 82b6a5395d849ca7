package contract

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	// Commands reconfigure this from --log-level and --log-format.
	if err := InitLogger(DefaultLogLevel, DefaultLogFormat); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "cannot initialize logger: %v\n", err)
	}
}

// InitLogger builds the global zap logger. Format "console" gives a
// human-readable development encoder; anything else gives JSON.
// Logs always go to stderr so stdout stays clean for exported data.
func InitLogger(level, format string) error {
	var zapCfg zap.Config
	if format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.DisableCaller = true
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.DisableStacktrace = true
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zapCfg.Level.SetLevel(lvl)

	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("cannot build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	zap.L().Error(msg, zap.Error(err))
	_ = zap.L().Sync()
	os.Exit(1)
}

// LogWarn logs a warning message.
func LogWarn(msg string, err error) {
	zap.L().Warn(msg, zap.Error(err))
}
