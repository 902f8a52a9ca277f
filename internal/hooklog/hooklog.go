// Package hooklog is the append-only diagnostic sink for hook runs.
//
// Lines go to <git-dir>/HOOK_LOG, one bounded append per message. The file
// is never read back by the program. Every operation is best-effort: a
// logger that cannot open its file degrades to a no-op, and writes never
// surface errors — a broken log must not block a commit.
package hooklog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file inside the git directory.
const FileName = "HOOK_LOG"

type Logger struct {
	z    *zap.Logger
	path string
}

// Open creates a logger appending to gitDir/HOOK_LOG. It never fails.
func Open(gitDir string) *Logger {
	path := filepath.Join(gitDir, FileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Logger{z: zap.NewNop(), path: path}
	}

	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		NameKey:        "name",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.InfoLevel)
	z := zap.New(core, zap.ErrorOutput(zapcore.AddSync(io.Discard)))
	return &Logger{z: z.Named("gitaimsg"), path: path}
}

// Path returns the log file location, for the `log` subcommand.
func (l *Logger) Path() string { return l.path }

// Logf appends one formatted line. Safe on a nil receiver.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Info(fmt.Sprintf(format, args...))
}

// Sync flushes buffered output, ignoring errors.
func (l *Logger) Sync() {
	if l == nil || l.z == nil {
		return
	}
	_ = l.z.Sync()
}
