package repository

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

// Backend holds the full row set of one entity type. Every mutation loads
// the rows, changes them and writes the whole set back.
type Backend interface {
	Load(ctx context.Context) ([]record.Fields, error)
	Store(ctx context.Context, rows []record.Fields) error
	Location() string
}

// Repository is a linear-scan store of one entity type. It holds no lock;
// a single process is expected to own each backend.
type Repository[T record.Record] struct {
	codec   record.Codec[T]
	backend Backend
	logger  *logging.Logger
}

var _ scouting.Repository[scouting.Player] = (*Repository[scouting.Player])(nil)

func New[T record.Record](codec record.Codec[T], backend Backend, logger *logging.Logger) *Repository[T] {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Repository[T]{
		codec:   codec,
		backend: backend,
		logger:  logger.Named("repository." + codec.Name),
	}
}

// Name is the entity type name the repository stores.
func (r *Repository[T]) Name() string {
	return r.codec.Name
}

func (r *Repository[T]) Find(ctx context.Context, id string) (T, bool, error) {
	var zero T

	rows, err := r.backend.Load(ctx)
	if err != nil {
		return zero, false, crerr.Wrapf(err, "load %s", r.codec.Name)
	}

	for _, row := range rows {
		if row.ID() != id {
			continue
		}
		item, err := r.codec.Deserialize(row)
		if err != nil {
			return zero, false, crerr.Wrapf(err, "decode %s %q", r.codec.Name, id)
		}
		return item, true, nil
	}

	return zero, false, nil
}

// FindAll returns every record in stored order.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	rows, err := r.backend.Load(ctx)
	if err != nil {
		return nil, crerr.Wrapf(err, "load %s", r.codec.Name)
	}

	out := make([]T, 0, len(rows))
	for i, row := range rows {
		item, err := r.codec.Deserialize(row)
		if err != nil {
			return nil, crerr.Wrapf(err, "decode %s row %d", r.codec.Name, i)
		}
		out = append(out, item)
	}

	return out, nil
}

// Save inserts item when no stored record shares its id. It returns false on
// conflict.
func (r *Repository[T]) Save(ctx context.Context, item T) (bool, error) {
	rows, err := r.backend.Load(ctx)
	if err != nil {
		return false, crerr.Wrapf(err, "load %s", r.codec.Name)
	}

	id := item.RecordID()
	for _, row := range rows {
		if row.ID() == id {
			r.logger.DebugContext(ctx, "save skipped, duplicate id", "id", id)
			return false, nil
		}
	}

	rows = append(rows, item.Serialize())
	if err := r.store(ctx, rows); err != nil {
		return false, err
	}

	return true, nil
}

// Delete removes any record with id. A missing id is not an error.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	rows, err := r.backend.Load(ctx)
	if err != nil {
		return crerr.Wrapf(err, "load %s", r.codec.Name)
	}

	kept := rows[:0]
	for _, row := range rows {
		if row.ID() != id {
			kept = append(kept, row)
		}
	}
	if len(kept) == len(rows) {
		return nil
	}

	return r.store(ctx, kept)
}

// Replace overwrites the record stored under id. It returns false and leaves
// the store untouched when id is absent. item must carry the same id.
func (r *Repository[T]) Replace(ctx context.Context, id string, item T) (bool, error) {
	if item.RecordID() != id {
		return false, crerr.Wrapf(domain.ErrValidation, "replace %s %q with record id %q", r.codec.Name, id, item.RecordID())
	}

	rows, err := r.backend.Load(ctx)
	if err != nil {
		return false, crerr.Wrapf(err, "load %s", r.codec.Name)
	}

	for i, row := range rows {
		if row.ID() != id {
			continue
		}
		rows[i] = item.Serialize()
		if err := r.store(ctx, rows); err != nil {
			return false, err
		}
		return true, nil
	}

	r.logger.DebugContext(ctx, "replace skipped, id not stored", "id", id)
	return false, nil
}

func (r *Repository[T]) store(ctx context.Context, rows []record.Fields) error {
	if err := r.backend.Store(ctx, rows); err != nil {
		return crerr.Wrapf(err, "store %s", r.codec.Name)
	}
	r.logger.DebugContext(ctx, "store rewritten", "location", r.backend.Location(), "records", len(rows))
	return nil
}
