package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/kochabx/vapid/log/desensitize"
)

// Option configures a Logger. Writer level options run before the zerolog
// logger is built, decorators after.
type Option struct {
	apply    func(*Logger)
	decorate func(*Logger)
}

func decorator(f func(*Logger)) Option {
	return Option{apply: func(*Logger) {}, decorate: f}
}

// WithLevel sets the minimum level
func WithLevel(level zerolog.Level) Option {
	return decorator(func(l *Logger) {
		l.Logger = l.Logger.Level(level)
	})
}

// WithCaller adds the caller to every event
func WithCaller() Option {
	return decorator(func(l *Logger) {
		l.Logger = l.Logger.With().Caller().Logger()
	})
}

// WithField adds a static string field to every event
func WithField(key, value string) Option {
	return decorator(func(l *Logger) {
		l.Logger = l.Logger.With().Str(key, value).Logger()
	})
}

// WithDesensitize masks output with hook
func WithDesensitize(hook *desensitize.Hook) Option {
	return Option{
		apply: func(l *Logger) {
			l.desensitizeHook = hook
		},
		decorate: func(*Logger) {},
	}
}

// WithConsole sends console output to out instead of stdout
func WithConsole(out io.Writer) Option {
	return Option{
		apply: func(l *Logger) {
			l.console = out
		},
		decorate: func(*Logger) {},
	}
}
