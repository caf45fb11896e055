// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/iancoleman/strcase"
	"github.com/spf13/pflag"
)

// structValue returns the struct value pointed to by cfg.
func structValue(cfg any) (reflect.Value, error) {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("cli: config must be a pointer to a struct, not %T", cfg)
	}
	return v.Elem(), nil
}

// FlagName returns the flag name for the given struct field:
// its `flag:` tag if set, or else its name in kebab-case.
func FlagName(f reflect.StructField) string {
	if nm := f.Tag.Get("flag"); nm != "" {
		return nm
	}
	return strcase.ToKebab(f.Name)
}

// AddFlags adds a flag to fs for each exported string, bool, int
// and float64 field of the struct pointed to by cfg, bound to that
// field, with the field's `desc:` tag as usage. Fields tagged
// `flag:"-"` are skipped.
func AddFlags(fs *pflag.FlagSet, cfg any) error {
	v, err := structValue(cfg)
	if err != nil {
		return err
	}
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() || f.Tag.Get("flag") == "-" {
			continue
		}
		name := FlagName(f)
		usage := f.Tag.Get("desc")
		fv := v.Field(i).Addr().Interface()
		switch p := fv.(type) {
		case *string:
			fs.StringVar(p, name, *p, usage)
		case *bool:
			fs.BoolVar(p, name, *p, usage)
		case *int:
			fs.IntVar(p, name, *p, usage)
		case *float64:
			fs.Float64Var(p, name, *p, usage)
		default:
			return fmt.Errorf("cli: field %s has unsupported type %s", f.Name, f.Type)
		}
	}
	return nil
}

// SetFromDefaults sets the fields of the struct pointed to by cfg
// from their `default:` struct tag values.
func SetFromDefaults(cfg any) error {
	v, err := structValue(cfg)
	if err != nil {
		return err
	}
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(def)
		case reflect.Bool:
			b, err := strconv.ParseBool(def)
			if err != nil {
				return fmt.Errorf("cli: default for %s: %w", f.Name, err)
			}
			fv.SetBool(b)
		case reflect.Int:
			n, err := strconv.Atoi(def)
			if err != nil {
				return fmt.Errorf("cli: default for %s: %w", f.Name, err)
			}
			fv.SetInt(int64(n))
		case reflect.Float64:
			x, err := strconv.ParseFloat(def, 64)
			if err != nil {
				return fmt.Errorf("cli: default for %s: %w", f.Name, err)
			}
			fv.SetFloat(x)
		default:
			return fmt.Errorf("cli: field %s has unsupported type %s", f.Name, f.Type)
		}
	}
	return nil
}
