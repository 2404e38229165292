package memory

import (
	"context"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain/record"
)

// Backend keeps the rows of one entity type in memory. Rows are held in
// their encoded JSON form so reads decode exactly like the file store does.
type Backend struct {
	mu       sync.RWMutex
	typeName string
	encoded  []byte
}

func NewBackend(typeName string) *Backend {
	return &Backend{typeName: typeName, encoded: []byte("[]")}
}

func (b *Backend) Load(_ context.Context) ([]record.Fields, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var rows []record.Fields
	if err := sonic.ConfigStd.Unmarshal(b.encoded, &rows); err != nil {
		return nil, crerr.Wrapf(err, "decode memory store %s", b.typeName)
	}
	return rows, nil
}

func (b *Backend) Store(_ context.Context, rows []record.Fields) error {
	if rows == nil {
		rows = []record.Fields{}
	}
	encoded, err := sonic.ConfigStd.Marshal(rows)
	if err != nil {
		return crerr.Wrapf(err, "encode memory store %s", b.typeName)
	}

	b.mu.Lock()
	b.encoded = encoded
	b.mu.Unlock()

	return nil
}

func (b *Backend) Location() string {
	return "memory://" + b.typeName
}
