package record

import (
	"encoding/json"
	"math"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
)

// Fields is the flat key/value form of a record as it is stored on disk.
type Fields map[string]any

// Record is implemented by every persisted entity.
type Record interface {
	RecordID() string
	Serialize() Fields
}

// Normalize copies raw and strips leading '_' markers from every key, so
// legacy rows keyed "_id", "_name" decode like current ones.
func Normalize(raw map[string]any) Fields {
	out := make(Fields, len(raw))
	for key, value := range raw {
		if !strings.HasPrefix(key, "_") {
			out[key] = value
		}
	}
	// a plain key wins over its marked twin
	for key, value := range raw {
		name := strings.TrimLeft(key, "_")
		if name == "" || name == key {
			continue
		}
		if _, exists := out[name]; !exists {
			out[name] = value
		}
	}
	return out
}

// ID returns the identifier of a stored row, or "" if it has none.
func (f Fields) ID() string {
	for _, key := range []string{"id", "_id"} {
		if v, ok := f[key].(string); ok {
			return v
		}
	}
	return ""
}

// Reader decodes typed values out of normalized fields, keeping the first
// error so decoders can read every attribute and check once.
type Reader struct {
	typeName string
	fields   Fields
	err      error
}

func NewReader(typeName string, fields Fields) *Reader {
	return &Reader{typeName: typeName, fields: fields}
}

func (r *Reader) Err() error {
	return r.err
}

// Fail records a decode error for key unless one is already set.
func (r *Reader) Fail(key string, cause error) {
	if r.err != nil {
		return
	}
	r.err = crerr.Wrapf(domain.ErrFormat, "%s.%s: %v", r.typeName, key, cause)
}

func (r *Reader) lookup(key string) (any, bool) {
	v, ok := r.fields[key]
	if !ok {
		r.Fail(key, crerr.New("field is missing"))
		return nil, false
	}
	return v, true
}

// String reads a required string field.
func (r *Reader) String(key string) string {
	v, ok := r.lookup(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.Fail(key, crerr.Newf("expected string, got %T", v))
		return ""
	}
	return s
}

// OptionalString reads a field that must be present but may be null.
func (r *Reader) OptionalString(key string) string {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.Fail(key, crerr.Newf("expected string or null, got %T", v))
		return ""
	}
	return s
}

func (r *Reader) Int(key string) int {
	v, ok := r.lookup(key)
	if !ok {
		return 0
	}
	n, err := toInt(v)
	if err != nil {
		r.Fail(key, err)
	}
	return n
}

// OptionalInt reads a nullable integer.
func (r *Reader) OptionalInt(key string) *int {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		return nil
	}
	n, err := toInt(v)
	if err != nil {
		r.Fail(key, err)
		return nil
	}
	return &n
}

func (r *Reader) StringList(key string) []string {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		return nil
	}
	switch items := v.(type) {
	case []string:
		return append([]string(nil), items...)
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				r.Fail(key, crerr.Newf("expected string item, got %T", item))
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		r.Fail(key, crerr.Newf("expected list, got %T", v))
		return nil
	}
}

// Object reads a nested mapping; null decodes as an empty map.
func (r *Reader) Object(key string) map[string]any {
	v, ok := r.lookup(key)
	if !ok || v == nil {
		return map[string]any{}
	}
	switch m := v.(type) {
	case map[string]any:
		return m
	case Fields:
		return m
	default:
		r.Fail(key, crerr.Newf("expected object, got %T", v))
		return map[string]any{}
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, crerr.Newf("expected integer, got %v", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, crerr.Wrap(err, "parse number")
		}
		return int(i), nil
	default:
		return 0, crerr.Newf("expected number, got %T", v)
	}
}
