package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized returns an error naming the first nilable field of the
// given struct (pointer) that is still nil. Used by Server.Ready to guard
// against serving before all components were injected.
func IsStructInitialized(s interface{}) error {
	v := reflect.Indirect(reflect.ValueOf(s))

	if v.Kind() != reflect.Struct {
		return errors.Errorf("expected struct, got %s", v.Kind())
	}

	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if field.IsNil() {
				return errors.Errorf("struct field %q is not initialized", t.Field(i).Name)
			}
		default:
			// value fields are always considered initialized
		}
	}

	return nil
}
