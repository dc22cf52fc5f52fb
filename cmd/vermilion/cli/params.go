// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagBinder is implemented by flag groups that register their own flags,
// such as the input and output options shared by the glb subcommands.
type FlagBinder interface {
	AddFlags(flagSet *pflag.FlagSet)
}

// FlagsFromParams returns a flag set bound to params, which must point to
// a struct. A params type that cannot be bound is a programming error, so
// this panics rather than returning it.
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers a flag for every field of *params that carries a
// flag tag:
//
//	Format string `flag:"format,f" desc:"listing format" default:"text"`
//
// The flag tag holds the long name and an optional one-letter shorthand.
// desc is the help text and default is parsed as the field's type. Only
// string, bool and int fields can be tagged.
//
// A struct field whose pointer implements [FlagBinder] adds its own flags.
// Other embedded structs are walked as if their fields were declared
// inline, which lets subcommands share a common block of options.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStruct(value.Elem(), flagSet)
}

// flagSpec is the parsed form of a field's tags.
type flagSpec struct {
	name      string
	shorthand string
	usage     string
	fallback  string
}

func specFor(field reflect.StructField) (flagSpec, bool) {
	tag, ok := field.Tag.Lookup("flag")
	if !ok || tag == "" {
		return flagSpec{}, false
	}
	name, shorthand, _ := strings.Cut(tag, ",")
	return flagSpec{
		name:      name,
		shorthand: shorthand,
		usage:     field.Tag.Get("desc"),
		fallback:  field.Tag.Get("default"),
	}, true
}

func bindStruct(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	for _, field := range reflect.VisibleFields(structValue.Type()) {
		// VisibleFields also lists promoted fields; those are reached
		// through their embedding struct below.
		if len(field.Index) != 1 {
			continue
		}
		fieldValue := structValue.Field(field.Index[0])

		if field.Type.Kind() == reflect.Struct {
			if field.IsExported() {
				if binder, ok := fieldValue.Addr().Interface().(FlagBinder); ok {
					binder.AddFlags(flagSet)
					continue
				}
			}
			if field.Anonymous {
				if err := bindStruct(fieldValue, flagSet); err != nil {
					return fmt.Errorf("embedded %s: %w", field.Name, err)
				}
				continue
			}
		}

		spec, tagged := specFor(field)
		if !tagged {
			continue
		}
		if !field.IsExported() {
			return fmt.Errorf("field %s: flag tag on unexported field", field.Name)
		}
		if err := spec.bind(fieldValue.Addr().Interface(), flagSet); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

func (s flagSpec) bind(target any, flagSet *pflag.FlagSet) error {
	switch target := target.(type) {
	case *string:
		flagSet.StringVarP(target, s.name, s.shorthand, s.fallback, s.usage)
	case *bool:
		value := false
		if s.fallback != "" {
			parsed, err := strconv.ParseBool(s.fallback)
			if err != nil {
				return fmt.Errorf("default for --%s: %w", s.name, err)
			}
			value = parsed
		}
		flagSet.BoolVarP(target, s.name, s.shorthand, value, s.usage)
	case *int:
		value := 0
		if s.fallback != "" {
			parsed, err := strconv.Atoi(s.fallback)
			if err != nil {
				return fmt.Errorf("default for --%s: %w", s.name, err)
			}
			value = parsed
		}
		flagSet.IntVarP(target, s.name, s.shorthand, value, s.usage)
	default:
		return fmt.Errorf("unsupported type %s for flag --%s", reflect.TypeOf(target).Elem(), s.name)
	}
	return nil
}
