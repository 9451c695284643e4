package tag

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeFor[time.Duration]()

func hasTextUnmarshaler(value reflect.Value) bool {
	if !value.CanAddr() {
		return false
	}
	_, ok := value.Addr().Interface().(encoding.TextUnmarshaler)
	return ok
}

// parse sets value from its textual default.
func parse(value reflect.Value, str string) error {
	if hasTextUnmarshaler(value) {
		return value.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(str))
	}

	str = strings.TrimSpace(str)
	switch value.Kind() {
	case reflect.String:
		value.SetString(str)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value.Type() == durationType {
			d, err := time.ParseDuration(str)
			if err != nil {
				return err
			}
			value.SetInt(int64(d))
			return nil
		}
		n, err := strconv.ParseInt(str, 10, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 10, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetFloat(f)

	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		value.SetBool(b)

	case reflect.Slice:
		if value.Type().Elem().Kind() != reflect.String {
			return ErrUnsupportedType
		}
		parts := strings.Split(str, ",")
		slice := reflect.MakeSlice(value.Type(), len(parts), len(parts))
		for i, part := range parts {
			slice.Index(i).SetString(strings.TrimSpace(part))
		}
		value.Set(slice)

	default:
		return ErrUnsupportedType
	}
	return nil
}
