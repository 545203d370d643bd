package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MarshalEnv renders the env-tagged fields of a struct (or pointer to one)
// as .env content. Zero values are kept so the output shows the defaults
// in effect.
func MarshalEnv(c any) (string, error) {
	vars, err := Collect(c)
	if err != nil {
		return "", err
	}
	out, err := godotenv.Marshal(vars)
	if err != nil {
		return "", fmt.Errorf("marshal env: %w", err)
	}
	if out != "" {
		out += "\n"
	}
	return out, nil
}

// Collect maps env keys to their string values.
func Collect(c any) (map[string]string, error) {
	v := reflect.Indirect(reflect.ValueOf(c))
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("marshal env: expected struct, got %s", v.Kind())
	}
	t := v.Type()

	vars := make(map[string]string, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// "KEY,required,notEmpty" -> "KEY"
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			continue
		}

		val, err := formatValue(v.Field(i))
		if err != nil {
			return nil, fmt.Errorf("marshal env %s: %w", key, err)
		}
		vars[key] = val
	}
	return vars, nil
}

func formatValue(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	}
	return "", fmt.Errorf("unsupported kind %s", v.Kind())
}
