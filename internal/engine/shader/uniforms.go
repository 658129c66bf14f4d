package shader

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrMissingUniform is returned when a required uniform is not active in a program.
var ErrMissingUniform = errors.New("missing uniform")

// LocationFunc resolves a uniform name to its location, -1 when absent.
type LocationFunc func(program uint32, name string) int32

// BindUniforms fills the int32 fields of block, a pointer to a struct, with
// uniform locations. Fields are selected by a `uniform:"name"` tag; adding
// ",optional" accepts a uniform the compiler optimized away or a variant left
// out. Embedded exported structs are bound as part of the block, so a variant
// can extend a base block. Every missing required uniform is reported in a
// single error.
func BindUniforms(program uint32, block any) error {
	return bindUniforms(program, block, GetUniform)
}

func bindUniforms(program uint32, block any, lookup LocationFunc) error {
	v := reflect.ValueOf(block)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("uniform block must be a non-nil struct pointer, got %T", block)
	}
	v = v.Elem()

	missing, err := bindStruct(program, v, lookup)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w in %s: %s", ErrMissingUniform, v.Type().Name(), strings.Join(missing, ", "))
	}
	return nil
}

// bindStruct fills one struct level, descending into embedded blocks.
func bindStruct(program uint32, v reflect.Value, lookup LocationFunc) ([]string, error) {
	t := v.Type()

	var missing []string
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			m, err := bindStruct(program, v.Field(i), lookup)
			if err != nil {
				return nil, err
			}
			missing = append(missing, m...)
			continue
		}

		tag, ok := field.Tag.Lookup("uniform")
		if !ok {
			continue
		}
		if field.Type.Kind() != reflect.Int32 || !field.IsExported() {
			return nil, fmt.Errorf("uniform field %s.%s must be an exported int32", t.Name(), field.Name)
		}

		name, opts, _ := strings.Cut(tag, ",")
		loc := lookup(program, name)
		if loc < 0 && opts != "optional" {
			missing = append(missing, name)
		}
		v.Field(i).SetInt(int64(loc))
	}
	return missing, nil
}
