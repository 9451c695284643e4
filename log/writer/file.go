package writer

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kochabx/vapid/errors"
)

// RotateMode selects how log files are rotated
type RotateMode string

const (
	// RotateModeSize rotates when a file reaches MaxSize megabytes
	RotateModeSize RotateMode = "size"
	// RotateModeTime rotates every RotationTime hours
	RotateModeTime RotateMode = "time"
)

// ErrUnsupportedRotateMode is returned for an unknown RotateMode
var ErrUnsupportedRotateMode = errors.New(3001, "log: unsupported rotate mode")

// RotateConfig describes a rotating log file
type RotateConfig struct {
	Mode     RotateMode
	Filepath string
	Filename string
	FileExt  string

	// time rotation, in hours
	MaxAgeHours  int
	RotationTime int

	// size rotation
	MaxSize    int // megabytes
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// File creates a rotating file writer. The returned writer also implements
// io.Closer.
func File(config RotateConfig) (io.WriteCloser, error) {
	switch config.Mode {
	case RotateModeSize, "":
		return &lumberjack.Logger{
			Filename:   config.path(""),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
			Compress:   config.Compress,
		}, nil
	case RotateModeTime:
		w, err := rotatelogs.New(
			config.path("%Y%m%d%H%M"),
			rotatelogs.WithLinkName(config.path("")),
			rotatelogs.WithMaxAge(time.Duration(config.MaxAgeHours)*time.Hour),
			rotatelogs.WithRotationTime(time.Duration(config.RotationTime)*time.Hour),
		)
		if err != nil {
			return nil, errors.Wrap(err, 3002, "log: create time rotate writer")
		}
		return w, nil
	default:
		return nil, ErrUnsupportedRotateMode.WithMetadata(map[string]string{"mode": string(config.Mode)})
	}
}

// path joins directory, name, optional strftime pattern and extension
func (c *RotateConfig) path(format string) string {
	var b strings.Builder
	b.WriteString(c.Filename)
	if format != "" {
		b.WriteByte('.')
		b.WriteString(format)
	}
	b.WriteByte('.')
	b.WriteString(c.FileExt)
	return filepath.Join(c.Filepath, b.String())
}
