package record

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
)

// Codec is the static field table of one entity type.
type Codec[T Record] struct {
	// Name is the type name used for registry lookups and store file names.
	Name string
	// Attributes lists the persisted fields in declaration order.
	Attributes []string
	Decode     func(r *Reader) T
}

// Deserialize rebuilds an entity from a stored row. Reference fields stay as
// unresolved identifiers.
func (c Codec[T]) Deserialize(raw map[string]any) (T, error) {
	var zero T
	if raw == nil {
		return zero, crerr.Wrapf(domain.ErrFormat, "%s: nil record", c.Name)
	}

	r := NewReader(c.Name, Normalize(raw))
	for _, attr := range c.Attributes {
		if _, ok := r.fields[attr]; !ok {
			r.Fail(attr, crerr.New("field is missing"))
			return zero, r.Err()
		}
	}

	out := c.Decode(r)
	if err := r.Err(); err != nil {
		return zero, err
	}
	return out, nil
}
