// Package log provides the zerolog based logger used by the command.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/kochabx/vapid/core/tag"
	"github.com/kochabx/vapid/core/validator"
	"github.com/kochabx/vapid/errors"
	"github.com/kochabx/vapid/log/desensitize"
	"github.com/kochabx/vapid/log/writer"
)

// ErrInvalidLevel is returned by ParseLevel
var ErrInvalidLevel = errors.New(3003, "log: invalid level")

// Logger wraps zerolog.Logger with an optional closer for file output
type Logger struct {
	zerolog.Logger
	desensitizeHook *desensitize.Hook
	console         io.Writer
	closer          io.Closer
}

func init() {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// GetDesensitizeHook returns the hook set by WithDesensitize
func (l *Logger) GetDesensitizeHook() *desensitize.Hook {
	return l.desensitizeHook
}

// Close releases file writers
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// ParseLevel parses a level name such as "debug" or "warn"
func ParseLevel(s string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, ErrInvalidLevel.WithMetadata(map[string]string{"level": s}).WithCause(err)
	}
	return level, nil
}

func collect(opts []Option) *Logger {
	cfg := &Logger{console: os.Stdout}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	return cfg
}

func build(cfg *Logger, w io.Writer, opts []Option) *Logger {
	if cfg.desensitizeHook != nil {
		w = desensitize.NewWriter(w, cfg.desensitizeHook)
	}

	logger := &Logger{
		Logger:          zerolog.New(w).With().Timestamp().Logger(),
		desensitizeHook: cfg.desensitizeHook,
		console:         cfg.console,
	}
	for _, opt := range opts {
		opt.decorate(logger)
	}
	return logger
}

// New creates a console logger, on stdout unless WithConsole is given
func New(opts ...Option) *Logger {
	cfg := collect(opts)
	return build(cfg, writer.ConsoleTo(cfg.console), opts)
}

// NewWriter creates a JSON logger on w
func NewWriter(w io.Writer, opts ...Option) *Logger {
	return build(collect(opts), w, opts)
}

// NewFile creates a logger writing to a rotating file
func NewFile(c FileConfig, opts ...Option) (*Logger, error) {
	fw, err := fileWriter(&c)
	if err != nil {
		return nil, err
	}

	logger := build(collect(opts), fw, opts)
	logger.closer = fw
	return logger, nil
}

// NewMulti creates a logger writing to a rotating file and the console
func NewMulti(c FileConfig, opts ...Option) (*Logger, error) {
	fw, err := fileWriter(&c)
	if err != nil {
		return nil, err
	}

	cfg := collect(opts)
	logger := build(cfg, zerolog.MultiLevelWriter(fw, writer.ConsoleTo(cfg.console)), opts)
	logger.closer = fw
	return logger, nil
}

func fileWriter(c *FileConfig) (io.WriteCloser, error) {
	if err := tag.ApplyDefaults(c); err != nil {
		return nil, errors.Wrap(err, 3004, "log: apply file config defaults")
	}
	if err := validator.Validate.Struct(c); err != nil {
		return nil, errors.Wrap(err, 3005, "log: invalid file config")
	}
	return writer.File(c.toWriterConfig())
}
