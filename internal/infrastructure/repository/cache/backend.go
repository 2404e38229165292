package cache

import (
	"context"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository"
	basecache "github.com/riskibarqy/scouting/internal/platform/cache"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

// Backend serves Load from an in-process copy of the rows held by next and
// writes through on Store. Rows are cached encoded so every caller decodes
// its own copy.
type Backend struct {
	next   repository.Backend
	rows   *basecache.Store[[]byte]
	logger *logging.Logger
}

var _ repository.Backend = (*Backend)(nil)

func NewBackend(next repository.Backend, ttl time.Duration, logger *logging.Logger) *Backend {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Backend{
		next:   next,
		rows:   basecache.NewStore[[]byte](ttl),
		logger: logger.Named("repository.cache"),
	}
}

// Wrap returns an OpenFunc whose backends are cached. A non-positive ttl
// returns open unchanged.
func Wrap(open repository.OpenFunc, ttl time.Duration, logger *logging.Logger) repository.OpenFunc {
	if ttl <= 0 {
		return open
	}
	return func(typeName string) (repository.Backend, error) {
		next, err := open(typeName)
		if err != nil {
			return nil, err
		}
		return NewBackend(next, ttl, logger), nil
	}
}

func (b *Backend) Load(ctx context.Context) ([]record.Fields, error) {
	key := b.next.Location()
	encoded, err := b.rows.GetOrLoad(ctx, key, func(ctx context.Context) ([]byte, error) {
		rows, err := b.next.Load(ctx)
		if err != nil {
			return nil, err
		}
		b.logger.DebugContext(ctx, "cache filled", "location", key, "records", len(rows))
		return encodeRows(rows)
	})
	if err != nil {
		return nil, err
	}

	var rows []record.Fields
	if err := sonic.ConfigStd.Unmarshal(encoded, &rows); err != nil {
		return nil, crerr.Wrapf(err, "decode cached rows %s", key)
	}
	return rows, nil
}

func (b *Backend) Store(ctx context.Context, rows []record.Fields) error {
	key := b.next.Location()
	if err := b.next.Store(ctx, rows); err != nil {
		b.rows.Delete(ctx, key)
		return err
	}

	encoded, err := encodeRows(rows)
	if err != nil {
		b.rows.Delete(ctx, key)
		return nil
	}
	b.rows.Set(ctx, key, encoded)
	return nil
}

func (b *Backend) Location() string {
	return b.next.Location()
}

func encodeRows(rows []record.Fields) ([]byte, error) {
	if rows == nil {
		rows = []record.Fields{}
	}
	encoded, err := sonic.ConfigStd.Marshal(rows)
	if err != nil {
		return nil, crerr.Wrap(err, "encode cached rows")
	}
	return encoded, nil
}
