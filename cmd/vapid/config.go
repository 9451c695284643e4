package main

import (
	"github.com/kochabx/vapid/core/auth/vapid"
	"github.com/kochabx/vapid/log"
)

// AppConfig is the command configuration. Every key can be overridden from
// the environment, VAPID_VERIFIER_AUDIENCE for verifier.audience.
type AppConfig struct {
	Log      LogConfig    `json:"log" mapstructure:"log"`
	Verifier vapid.Config `json:"verifier" mapstructure:"verifier"`
}

// LogConfig selects level and sinks
type LogConfig struct {
	Level  string         `json:"level" mapstructure:"level" default:"info" validate:"oneof=trace debug info warn error"`
	Output string         `json:"output" mapstructure:"output" default:"console" validate:"oneof=console file multi"`
	File   log.FileConfig `json:"file" mapstructure:"file"`
}
