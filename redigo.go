package respvalue

import (
	"fmt"

	"github.com/gomodule/redigo/redis"
)

// FromRedigo converts a reply as returned by a github.com/gomodule/redigo/redis connection into
// a Value.
//
// redigo hands replies back as untyped interface{} trees built from nil, int64, []byte, string,
// redis.Error and []interface{}. Error replies are returned as an error, not as a Value. Byte
// payloads are referenced without copying.
func FromRedigo(reply interface{}) (Value, error) {
	switch r := reply.(type) {
	case nil:
		return Nil(), nil
	case int64:
		return Int(r), nil
	case []byte:
		return Bulk(r), nil
	case string:
		return Simple(r), nil
	case redis.Error:
		return Value{}, r
	case []interface{}:
		elems := make([]Value, len(r))
		for i, e := range r {
			v, err := FromRedigo(e)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			elems[i] = v
		}
		return Array(elems...), nil
	}
	return Value{}, fmt.Errorf("%w: unexpected redigo reply of type %T", ErrTypeMismatch, reply)
}

// ScanRedigo converts a redigo reply into a Value and decodes it into dst in one step:
//
//	reply, err := conn.Do("HGETALL", "entry:1")
//
//	var entry Entry
//	if err := respvalue.ScanRedigo(reply, err, &entry); err != nil {
//		...
//	}
//
// A non-nil err is returned unchanged, so the error from the Do call does not need to be checked
// separately.
func ScanRedigo(reply interface{}, err error, dst interface{}) error {
	if err != nil {
		return err
	}
	v, err := FromRedigo(reply)
	if err != nil {
		return err
	}
	return Unmarshal(v, dst)
}
