// Package respvalue implements decoding of already-parsed Redis reply values into Go types.
//
// This package does not speak the RESP wire protocol. It consumes a Value as handed back by a
// Redis client library after protocol parsing and populates plain Go values from it, similar to
// how encoding/json fills structs from JSON documents.
//
// Hash-shaped replies (arrays alternating field name and field value, as returned by HGETALL and
// friends) decode into structs and maps. Flat arrays decode into slices and arrays. Integer and
// bulk string replies decode into the numeric, string and boolean kinds, with bulk string payloads
// parsed as textual numbers where needed, since Redis frequently returns numbers as strings.
//
// Decoding is a pure, one-shot transformation. A Value is never modified and never retained past
// the call that decodes it.
package respvalue
