package record

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
)

// Ref is a reference to another entity. It is either unresolved (only the
// identifier is known) or resolved (the entity has been loaded).
type Ref[T any] struct {
	id    string
	value *T
}

// Finder looks up one entity by id. Repositories satisfy it.
type Finder[T any] interface {
	Find(ctx context.Context, id string) (T, bool, error)
}

func Unresolved[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

func Resolved[T Record](v T) Ref[T] {
	return Ref[T]{id: v.RecordID(), value: &v}
}

func (r Ref[T]) ID() string {
	return r.id
}

// IsZero reports whether the reference points at nothing.
func (r Ref[T]) IsZero() bool {
	return r.id == ""
}

func (r Ref[T]) IsResolved() bool {
	return r.value != nil
}

func (r Ref[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

// Unresolve drops the loaded entity and keeps the identifier.
func (r Ref[T]) Unresolve() Ref[T] {
	return Ref[T]{id: r.id}
}

// Serialize returns the stored form: the identifier, or nil when unset.
func (r Ref[T]) Serialize() any {
	if r.id == "" {
		return nil
	}
	return r.id
}

// Resolve loads the referenced entity through finder. Already resolved and
// zero references are returned as is without a lookup.
func Resolve[T any](ctx context.Context, ref Ref[T], finder Finder[T]) (Ref[T], error) {
	if ref.IsZero() || ref.IsResolved() {
		return ref, nil
	}
	if finder == nil {
		return ref, crerr.Wrapf(domain.ErrNotFound, "no repository to resolve %q", ref.id)
	}

	value, ok, err := finder.Find(ctx, ref.id)
	if err != nil {
		return ref, crerr.Wrapf(err, "resolve %q", ref.id)
	}
	if !ok {
		return ref, crerr.Wrapf(domain.ErrNotFound, "referenced id %q", ref.id)
	}
	return Ref[T]{id: ref.id, value: &value}, nil
}

// ResolveAll resolves every reference, stopping at the first failure. The
// input slice is not modified.
func ResolveAll[T any](ctx context.Context, refs []Ref[T], finder Finder[T]) ([]Ref[T], error) {
	out := make([]Ref[T], len(refs))
	for i, ref := range refs {
		resolved, err := Resolve(ctx, ref, finder)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

// IDs returns the identifiers of refs in order.
func IDs[T any](refs []Ref[T]) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.id)
	}
	return out
}

// UnresolvedList builds unresolved references; an empty list yields nil.
func UnresolvedList[T any](ids []string) []Ref[T] {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Ref[T], 0, len(ids))
	for _, id := range ids {
		out = append(out, Unresolved[T](id))
	}
	return out
}
