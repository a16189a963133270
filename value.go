package respvalue

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Value. Decoding an invalid Value always fails.
	KindInvalid Kind = iota
	// KindNil is the kind of nil replies, as returned for missing keys.
	KindNil
	// KindInteger is the kind of integer replies.
	KindInteger
	// KindBulkString is the kind of bulk string replies. The payload is binary safe.
	KindBulkString
	// KindSimpleString is the kind of status replies like +OK.
	KindSimpleString
	// KindArray is the kind of array replies.
	KindArray
)

var _ fmt.Stringer = KindInvalid

var kindNames = [...]string{
	KindInvalid:      "Invalid",
	KindNil:          "Nil",
	KindInteger:      "Integer",
	KindBulkString:   "BulkString",
	KindSimpleString: "SimpleString",
	KindArray:        "Array",
}

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single decoded Redis reply.
//
// A Value is one of five variants, identified by its Kind: nil, integer, bulk string, simple
// string or array. Values are built with the Nil, Int, Bulk, BulkString, Simple and Array
// constructors and read through the accessor methods. The zero Value is invalid and fails all
// decoding attempts.
type Value struct {
	kind  Kind
	num   int64
	str   []byte
	elems []Value
}

// Nil returns the nil Value.
func Nil() Value {
	return Value{kind: KindNil}
}

// Int returns a Value holding the integer n.
func Int(n int64) Value {
	return Value{kind: KindInteger, num: n}
}

// Bulk returns a Value holding the byte slice b as a bulk string.
//
// The returned Value references b directly without copying. The caller must not modify b while
// the Value is in use.
func Bulk(b []byte) Value {
	return Value{kind: KindBulkString, str: b}
}

// BulkString returns a Value holding the string s as a bulk string.
func BulkString(s string) Value {
	return Value{kind: KindBulkString, str: []byte(s)}
}

// Simple returns a Value holding the status string s, as returned for replies like +OK.
func Simple(s string) Value {
	return Value{kind: KindSimpleString, str: []byte(s)}
}

// Array returns a Value holding the given values as an array.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: elems}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNil reports whether v is the nil Value.
func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// Int returns the payload of an integer Value, or 0 for all other kinds.
func (v Value) Int() int64 {
	if v.kind == KindInteger {
		return v.num
	}
	return 0
}

// Bytes returns the raw payload of a bulk or simple string Value, or nil for all other kinds.
//
// The returned slice is not a copy.
func (v Value) Bytes() []byte {
	if v.kind == KindBulkString || v.kind == KindSimpleString {
		return v.str
	}
	return nil
}

// Text returns the payload of a bulk or simple string Value as a string, or "" for all other
// kinds.
func (v Value) Text() string {
	return string(v.Bytes())
}

// Elems returns the elements of an array Value, or nil for all other kinds.
//
// The returned slice is not a copy.
func (v Value) Elems() []Value {
	if v.kind == KindArray {
		return v.elems
	}
	return nil
}

// String implements the fmt.Stringer interface.
//
// The returned form names the kind and, for scalar kinds, the payload. It is meant for error
// messages and debug output, not for round-tripping.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "Nil"
	case KindInteger:
		return "Integer(" + strconv.FormatInt(v.num, 10) + ")"
	case KindBulkString:
		return fmt.Sprintf("BulkString(%q)", v.str)
	case KindSimpleString:
		return fmt.Sprintf("SimpleString(%q)", v.str)
	case KindArray:
		return "Array(" + strconv.Itoa(len(v.elems)) + ")"
	}
	return "Invalid"
}

// generic returns the representation used when decoding into an empty interface.
func (v Value) generic() interface{} {
	switch v.kind {
	case KindInteger:
		return v.num
	case KindBulkString, KindSimpleString:
		return string(v.str)
	case KindArray:
		out := make([]interface{}, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.generic()
		}
		return out
	}
	return nil
}
