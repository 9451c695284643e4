package log

import (
	"github.com/rs/zerolog"
)

// G is the global logger
var G = New()

// SetGlobalLogger replaces G
func SetGlobalLogger(logger *Logger) {
	G = logger
}

func Debug() *zerolog.Event {
	return G.Debug()
}

func Info() *zerolog.Event {
	return G.Info()
}

func Warn() *zerolog.Event {
	return G.Warn()
}

// Error returns an error event with the stack attached
func Error() *zerolog.Event {
	return G.Error().Stack()
}
