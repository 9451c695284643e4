// Package tag fills zero-valued struct fields from `default:"..."` tags.
package tag

import (
	"reflect"
)

const (
	tagName  = "default"
	maxDepth = 32
)

// ApplyDefaults sets default values for struct fields based on struct tags.
// Fields that already hold a non-zero value are left alone. Nested structs
// and pointers to structs are processed recursively. The target must be a
// pointer to a struct.
//
// Example:
//
//	type Config struct {
//	    Level       string        `default:"info"`
//	    Leeway      time.Duration `default:"30s"`
//	    Concurrency int           `default:"8"`
//	}
//	config := &Config{}
//	err := ApplyDefaults(config)
func ApplyDefaults(target any) error {
	valueOf := reflect.ValueOf(target)
	if valueOf.Kind() != reflect.Pointer {
		return ErrTargetMustBePointer
	}
	if valueOf.IsNil() {
		return ErrTargetIsNil
	}

	elem := valueOf.Elem()
	if elem.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	return applyStruct(elem, "", 0)
}

func applyStruct(value reflect.Value, path string, depth int) error {
	if depth >= maxDepth {
		return ErrMaxDepthExceeded
	}

	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldValue := value.Field(i)
		if !fieldValue.CanSet() {
			continue
		}

		fieldPath := field.Name
		if path != "" {
			fieldPath = path + "." + field.Name
		}

		if err := applyField(fieldValue, field.Tag.Get(tagName), fieldPath, depth); err != nil {
			return err
		}
	}
	return nil
}

func applyField(value reflect.Value, tagValue, path string, depth int) error {
	switch value.Kind() {
	case reflect.Struct:
		if hasTextUnmarshaler(value) && tagValue != "" {
			break
		}
		return applyStruct(value, path, depth+1)

	case reflect.Pointer:
		if value.Type().Elem().Kind() != reflect.Struct {
			break
		}
		if value.IsNil() {
			value.Set(reflect.New(value.Type().Elem()))
		}
		return applyStruct(value.Elem(), path, depth+1)
	}

	if tagValue == "" || !value.IsZero() {
		return nil
	}

	if err := parse(value, tagValue); err != nil {
		return newFieldError(path, value.Kind(), tagValue, err)
	}
	return nil
}
