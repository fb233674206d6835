package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the diagnostic logger. --verbose forces debug level;
// otherwise level comes from config. Without either, logging is off.
func newLogger(w io.Writer, verbose bool, level string) (*zap.Logger, error) {
	if !verbose && level == "" {
		return zap.NewNop(), nil
	}

	lvl := zapcore.DebugLevel

	if !verbose {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}

		lvl = parsed
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)

	return zap.New(core), nil
}
