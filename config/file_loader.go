package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/spf13/viper"

	"github.com/kochabx/vapid/core/tag"
	"github.com/kochabx/vapid/core/validator"
	"github.com/kochabx/vapid/errors"
)

// Loader errors
var (
	ErrApplyDefaults = errors.New(4001, "config: apply defaults failed")
	ErrReadConfig    = errors.New(4002, "config: read config file failed")
	ErrParseConfig   = errors.New(4003, "config: parse failed")
	ErrValidate      = errors.New(4004, "config: validation failed")
)

// FileLoader loads an optional config file with environment overrides
type FileLoader struct {
	viper    *viper.Viper
	validate validator.Validator
	file     string
}

// NewFileLoader creates a loader. An empty file reads the environment only.
func NewFileLoader(file, envPrefix string, v *viper.Viper, validate validator.Validator) *FileLoader {
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType(strings.TrimPrefix(filepath.Ext(file), "."))
	}

	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &FileLoader{
		viper:    v,
		validate: validate,
		file:     file,
	}
}

// Load implements Loader
func (l *FileLoader) Load(target any) error {
	if err := tag.ApplyDefaults(target); err != nil {
		return ErrApplyDefaults.WithCause(err)
	}

	// viper only consults the environment for keys it knows
	registerKeys(l.viper, "", reflect.ValueOf(target))

	if l.file != "" {
		if err := l.viper.ReadInConfig(); err != nil {
			return ErrReadConfig.WithMetadata(map[string]string{"file": l.file}).WithCause(err)
		}
	}

	if err := l.viper.Unmarshal(target); err != nil {
		return ErrParseConfig.WithCause(err)
	}

	if l.validate != nil {
		if err := l.validate.Struct(target); err != nil {
			return ErrValidate.WithCause(err)
		}
	}
	return nil
}

// registerKeys sets every leaf field's current value as the viper default
func registerKeys(v *viper.Viper, prefix string, value reflect.Value) {
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return
	}

	typ := value.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		key := keyName(field)
		if key == "-" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		fv := value.Field(i)
		if fv.Kind() == reflect.Struct {
			registerKeys(v, key, fv)
			continue
		}
		v.SetDefault(key, fv.Interface())
	}
}

func keyName(field reflect.StructField) string {
	if name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ","); name != "" {
		return name
	}
	return strings.ToLower(field.Name)
}
