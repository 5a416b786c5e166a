package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the configuration for the global logger.
type Config struct {
	Filename   string   `yaml:"filename"`
	Level      string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	MaxSize    int      `yaml:"max_size"`
	MaxBackups int      `yaml:"max_backups"`
	Compress   bool     `yaml:"compress"`
}

var globalLogger zerolog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// InitGlobalLogger builds the process-wide logger from config.
// Supported targets are "console" and "file".
func InitGlobalLogger(cfg *Config) {
	writers := make([]io.Writer, 0, len(cfg.Targets))

	for _, target := range cfg.Targets {
		switch strings.ToLower(target) {
		case "file":
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   cfg.Compress,
			})
		case "console":
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	globalLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
}

func Debug(msg string, keyvals ...any) {
	globalLogger.Debug().Fields(keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	globalLogger.Info().Fields(keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	globalLogger.Warn().Fields(keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	globalLogger.Error().Fields(keyvals).Msg(msg)
}

func Fatal(msg string, keyvals ...any) {
	globalLogger.Fatal().Fields(keyvals).Msg(msg)
}
