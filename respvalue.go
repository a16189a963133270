package respvalue

import "errors"

var (
	// ErrDuplicateField is returned when a hash-shaped array names the same destination struct
	// field twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrInvalidUTF8 is returned when a bulk or simple string payload is decoded into a string
	// but is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrMissingField is returned when Decoder.RequireAllFields is set and a destination struct
	// field has no counterpart in the hash-shaped array.
	ErrMissingField = errors.New("missing field")

	// ErrNotPointer is returned when the destination passed to Unmarshal or Decode is not a
	// non-nil pointer.
	ErrNotPointer = errors.New("destination must be a non-nil pointer")

	// ErrOddLengthArray is returned when an array with an odd number of elements is decoded into
	// a struct or map, leaving the last field name without a value.
	ErrOddLengthArray = errors.New("odd length array")

	// ErrOutOfRange is returned when an integer value does not fit into the destination type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrParseNumber is returned when a bulk or simple string payload can not be parsed as the
	// numeric or boolean text the destination type asks for.
	ErrParseNumber = errors.New("invalid number")

	// ErrTypeMismatch is returned when the shape of a Value can not satisfy the destination
	// type, for example when decoding a nil reply into a plain struct.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnexpectedField is returned when Decoder.DisallowUnknownFields is set and a hash-shaped
	// array contains a field name with no counterpart in the destination struct.
	ErrUnexpectedField = errors.New("unexpected field")
)
