package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvFile names the environment variable holding the debug log path.
const EnvFile = "GRIDVIEW_DEBUG"

var (
	logger atomic.Pointer[zap.Logger]

	mu   sync.Mutex
	file *lumberjack.Logger
)

// Config controls the console and file sinks.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"

	// File enables a JSON sink at this path, rotated by lumberjack.
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// DefaultConfig logs warnings and above to the console.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Format:     "console",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
}

// Init builds the global logger from cfg, writing console output to w
// (stderr when nil). A previous file sink is closed. If cfg.File is
// empty and GRIDVIEW_DEBUG is set, its value is used as the file path
// and the file receives debug records.
func Init(cfg Config, w io.Writer) (*zap.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	fileLevel := level
	if cfg.File == "" {
		if path := os.Getenv(EnvFile); path != "" {
			cfg.File = path
			fileLevel = zapcore.DebugLevel
		}
	}

	if w == nil {
		w = os.Stderr
	}
	cores := []zapcore.Core{
		zapcore.NewCore(encoder(cfg.Format), zapcore.AddSync(w), level),
	}

	closeLocked()
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder("json"), zapcore.AddSync(file), fileLevel))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)).Named("gridview")
	logger.Store(l)
	return l, nil
}

// Logger returns the logger built by Init, or a no-op logger.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Logf writes a formatted debug message to the global logger.
func Logf(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}

// Close flushes the logger and closes the file sink, if any.
// Logger returns a no-op logger afterwards.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if l := logger.Swap(nil); l != nil {
		_ = l.Sync()
	}
	return closeLocked()
}

func closeLocked() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(name + ".")
	}
	return zapcore.NewConsoleEncoder(cfg)
}
