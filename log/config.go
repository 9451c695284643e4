package log

import (
	"github.com/kochabx/vapid/log/writer"
)

// FileConfig configures file output
type FileConfig struct {
	Filepath   string            `json:"filepath" mapstructure:"filepath" default:"log"`
	Filename   string            `json:"filename" mapstructure:"filename" default:"vapid"`
	FileExt    string            `json:"fileExt" mapstructure:"file_ext" default:"log"`
	RotateMode writer.RotateMode `json:"rotateMode" mapstructure:"rotate_mode" default:"size" validate:"oneof=size time"`
	Rotatelogs RotatelogsConfig  `json:"rotatelogs" mapstructure:"rotatelogs"`
	Lumberjack LumberjackConfig  `json:"lumberjack" mapstructure:"lumberjack"`
}

// RotatelogsConfig configures time based rotation
type RotatelogsConfig struct {
	MaxAge       int `json:"maxAge" mapstructure:"max_age" default:"24"`             // hours
	RotationTime int `json:"rotationTime" mapstructure:"rotation_time" default:"1"` // hours
}

// LumberjackConfig configures size based rotation
type LumberjackConfig struct {
	MaxSize    int  `json:"maxSize" mapstructure:"max_size" default:"100"` // megabytes
	MaxBackups int  `json:"maxBackups" mapstructure:"max_backups" default:"5"`
	MaxAge     int  `json:"maxAge" mapstructure:"max_age" default:"30"` // days
	Compress   bool `json:"compress" mapstructure:"compress"`
}

func (c *FileConfig) toWriterConfig() writer.RotateConfig {
	return writer.RotateConfig{
		Mode:         c.RotateMode,
		Filepath:     c.Filepath,
		Filename:     c.Filename,
		FileExt:      c.FileExt,
		MaxAgeHours:  c.Rotatelogs.MaxAge,
		RotationTime: c.Rotatelogs.RotationTime,
		MaxSize:      c.Lumberjack.MaxSize,
		MaxBackups:   c.Lumberjack.MaxBackups,
		MaxAgeDays:   c.Lumberjack.MaxAge,
		Compress:     c.Lumberjack.Compress,
	}
}
