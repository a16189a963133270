package respvalue

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Decoder decodes Values into Go values.
//
// The zero Decoder is valid and behaves like Unmarshal. A Decoder holds no state between calls
// and is safe for concurrent use.
type Decoder struct {
	// DisallowUnknownFields causes Decode to fail with ErrUnexpectedField when a hash-shaped
	// array contains a field name that has no counterpart in the destination struct. By default
	// unknown fields are skipped.
	DisallowUnknownFields bool

	// RequireAllFields causes Decode to fail with ErrMissingField when a destination struct
	// field has no counterpart in the hash-shaped array. Pointer fields and fields carrying the
	// "omitempty" tag option are exempt and are left at their zero value.
	RequireAllFields bool
}

// Unmarshal decodes v into the value pointed to by dst using a zero Decoder.
//
// dst must be a non-nil pointer. The destination can be any combination of Go basic types,
// structs, slices, arrays, maps, pointers and empty interfaces. Struct fields are matched
// against hash field names via the "redis" struct tag, falling back to the Go field name, first
// exact and then case-insensitive. A tag of "-" excludes the field.
//
// Nil replies decode into pointers and empty interfaces as nil; every other destination fails
// with ErrTypeMismatch. Integer replies decode into booleans as 0 = false and 1 = true, every
// other integer fails. Bulk and simple string replies decode into booleans from the textual
// forms "1", "0", "true", "false", "True" and "False".
//
// Destinations implementing encoding.TextUnmarshaler or encoding.BinaryUnmarshaler receive the
// raw payload of bulk and simple string replies, text before binary.
//
// Decoding is all-or-nothing. The first failure in depth-first, left-to-right traversal order
// aborts the call and is reported with the path of field names and indexes leading to it. All
// returned errors match one of the Err variables of this package via errors.Is.
func Unmarshal(v Value, dst interface{}) error {
	var d Decoder
	return d.Decode(v, dst)
}

// Decode decodes v into the value pointed to by dst. It is shorthand for Unmarshal(v, dst).
func (v Value) Decode(dst interface{}) error {
	return Unmarshal(v, dst)
}

// Decode decodes v into the value pointed to by dst. See Unmarshal for the decoding rules.
func (d *Decoder) Decode(v Value, dst interface{}) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w, got %T", ErrNotPointer, dst)
	}
	return d.decode(v, rv.Elem())
}

func mismatch(v Value, t reflect.Type) error {
	return fmt.Errorf("%w: cannot decode %s into %s", ErrTypeMismatch, v, t)
}

func (d *Decoder) decode(v Value, rv reflect.Value) error {
	if v.kind == KindInvalid {
		return fmt.Errorf("%w: cannot decode invalid value into %s", ErrTypeMismatch, rv.Type())
	}

	if rv.Kind() == reflect.Ptr {
		if v.kind == KindNil {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return d.decode(v, rv.Elem())
	}

	if v.kind == KindNil {
		if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		return mismatch(v, rv.Type())
	}

	if v.kind == KindBulkString || v.kind == KindSimpleString {
		if rv.CanAddr() {
			if u, ok := rv.Addr().Interface().(encoding.TextUnmarshaler); ok {
				return u.UnmarshalText(v.str)
			}
			if u, ok := rv.Addr().Interface().(encoding.BinaryUnmarshaler); ok {
				return u.UnmarshalBinary(v.str)
			}
		}
	}

	if rv.Kind() == reflect.Interface {
		if rv.NumMethod() != 0 {
			return mismatch(v, rv.Type())
		}
		rv.Set(reflect.ValueOf(v.generic()))
		return nil
	}

	switch v.kind {
	case KindInteger:
		return d.decodeInteger(v, rv)
	case KindBulkString, KindSimpleString:
		return d.decodeText(v, rv)
	case KindArray:
		return d.decodeArray(v, rv)
	}
	return mismatch(v, rv.Type())
}

func (d *Decoder) decodeInteger(v Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(v.num) {
			return fmt.Errorf("%w: %d does not fit into %s", ErrOutOfRange, v.num, rv.Type())
		}
		rv.SetInt(v.num)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.num < 0 || rv.OverflowUint(uint64(v.num)) {
			return fmt.Errorf("%w: %d does not fit into %s", ErrOutOfRange, v.num, rv.Type())
		}
		rv.SetUint(uint64(v.num))
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(float64(v.num))
	case reflect.Bool:
		switch v.num {
		case 0:
			rv.SetBool(false)
		case 1:
			rv.SetBool(true)
		default:
			return fmt.Errorf("%w: %d is not a boolean, only 0 and 1 are", ErrOutOfRange, v.num)
		}
	case reflect.String:
		rv.SetString(strconv.FormatInt(v.num, 10))
	default:
		return mismatch(v, rv.Type())
	}
	return nil
}

func numberError(err error, b []byte, t reflect.Type) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q does not fit into %s", ErrOutOfRange, b, t)
	}
	return fmt.Errorf("%w: cannot parse %q as %s", ErrParseNumber, b, t)
}

func (d *Decoder) decodeText(v Value, rv reflect.Value) error {
	b := v.str
	switch rv.Kind() {
	case reflect.String:
		if !utf8.Valid(b) {
			return fmt.Errorf("%w: %q", ErrInvalidUTF8, b)
		}
		rv.SetString(string(b))
	case reflect.Slice:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return mismatch(v, rv.Type())
		}
		rv.SetBytes(append([]byte(nil), b...))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(string(b), 10, rv.Type().Bits())
		if err != nil {
			return numberError(err, b, rv.Type())
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(string(b), 10, rv.Type().Bits())
		if err != nil {
			return numberError(err, b, rv.Type())
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(string(b), rv.Type().Bits())
		if err != nil {
			return numberError(err, b, rv.Type())
		}
		rv.SetFloat(f)
	case reflect.Bool:
		switch string(b) {
		case "1", "true", "True":
			rv.SetBool(true)
		case "0", "false", "False":
			rv.SetBool(false)
		default:
			return fmt.Errorf("%w: cannot parse %q as bool", ErrParseNumber, b)
		}
	default:
		return mismatch(v, rv.Type())
	}
	return nil
}

func (d *Decoder) decodeArray(v Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), len(v.elems), len(v.elems))
		for i, e := range v.elems {
			if err := d.decode(e, out.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		rv.Set(out)
	case reflect.Array:
		if rv.Len() != len(v.elems) {
			return fmt.Errorf("%w: cannot decode %s into %s", ErrTypeMismatch, v, rv.Type())
		}
		for i, e := range v.elems {
			if err := d.decode(e, rv.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
	case reflect.Map:
		return d.decodeMap(v, rv)
	case reflect.Struct:
		return d.decodeStruct(v, rv)
	default:
		return mismatch(v, rv.Type())
	}
	return nil
}

func (d *Decoder) decodeMap(v Value, rv reflect.Value) error {
	if len(v.elems)%2 != 0 {
		return fmt.Errorf("%w: hash-shaped array has %d elements", ErrOddLengthArray, len(v.elems))
	}
	t := rv.Type()
	m := reflect.MakeMapWithSize(t, len(v.elems)/2)
	for i := 0; i < len(v.elems); i += 2 {
		key := reflect.New(t.Key()).Elem()
		if err := d.decode(v.elems[i], key); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
		val := reflect.New(t.Elem()).Elem()
		if err := d.decode(v.elems[i+1], val); err != nil {
			return fmt.Errorf("key %v: %w", key.Interface(), err)
		}
		m.SetMapIndex(key, val)
	}
	rv.Set(m)
	return nil
}

func (d *Decoder) decodeStruct(v Value, rv reflect.Value) error {
	if len(v.elems)%2 != 0 {
		return fmt.Errorf("%w: hash-shaped array has %d elements", ErrOddLengthArray, len(v.elems))
	}
	fields := structFieldsOf(rv.Type())
	seen := make([]bool, len(fields.list))
	for i := 0; i < len(v.elems); i += 2 {
		name, err := fieldName(v.elems[i])
		if err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
		fi := fields.lookup(name)
		if fi < 0 {
			if d.DisallowUnknownFields {
				return fmt.Errorf("%w: %q", ErrUnexpectedField, name)
			}
			continue
		}
		if seen[fi] {
			return fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		seen[fi] = true
		f := fields.list[fi]
		if err := d.decode(v.elems[i+1], rv.Field(f.index)); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	if d.RequireAllFields {
		for i, f := range fields.list {
			if seen[i] || f.omitEmpty || f.typ.Kind() == reflect.Ptr {
				continue
			}
			return fmt.Errorf("%w: %q", ErrMissingField, f.name)
		}
	}
	return nil
}

// fieldName interprets a Value as a hash field name.
func fieldName(v Value) (string, error) {
	switch v.kind {
	case KindBulkString, KindSimpleString:
		if !utf8.Valid(v.str) {
			return "", fmt.Errorf("%w: %q", ErrInvalidUTF8, v.str)
		}
		return string(v.str), nil
	case KindInteger:
		return strconv.FormatInt(v.num, 10), nil
	}
	return "", fmt.Errorf("%w: cannot use %s as a field name", ErrTypeMismatch, v)
}

type structField struct {
	name      string
	index     int
	typ       reflect.Type
	omitEmpty bool
}

type structFieldSet struct {
	list   []structField
	byName map[string]int
}

func structFieldsOf(t reflect.Type) structFieldSet {
	set := structFieldSet{byName: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		name := sf.Name
		var omitEmpty bool
		if tag, ok := sf.Tag.Lookup("redis"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
		}
		set.byName[name] = len(set.list)
		set.list = append(set.list, structField{name: name, index: i, typ: sf.Type, omitEmpty: omitEmpty})
	}
	return set
}

func (s structFieldSet) lookup(name string) int {
	if i, ok := s.byName[name]; ok {
		return i
	}
	for i, f := range s.list {
		if strings.EqualFold(f.name, name) {
			return i
		}
	}
	return -1
}
