package clicfg

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/urfave/cli/v3"
)

var ErrCannotBindFlags = errors.New("cannot bind flags")

// Bind copies flag values from the command into the target struct. Fields are
// matched by their `flag:"name"` tag; untagged or unexported fields are left
// alone. Only the field kinds the config actually uses are supported.
func Bind(c *cli.Command, target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: expected pointer to struct, got %T", ErrCannotBindFlags, target)
	}
	v = v.Elem()
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		value := v.Field(i)

		name := field.Tag.Get("flag")
		if name == "" || !value.CanSet() {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			value.SetString(c.String(name))
		case reflect.Bool:
			value.SetBool(c.Bool(name))
		case reflect.Int, reflect.Int64:
			value.SetInt(int64(c.Int(name)))
		default:
			return fmt.Errorf("%w: unsupported field kind %s for flag %q",
				ErrCannotBindFlags, field.Type.Kind(), name)
		}
	}
	return nil
}
