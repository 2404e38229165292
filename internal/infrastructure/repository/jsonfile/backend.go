// Package jsonfile stores each entity type as one JSON array file.
//
// Files are rewritten in place with no locking and no atomic rename: two
// writers race last-writer-wins and a crash mid-write can truncate a file.
// One process must own the data directory while it runs.
package jsonfile

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileName is the store file of an entity type, e.g. "Player" -> "players.json".
func FileName(typeName string) string {
	return strings.ToLower(typeName) + "s.json"
}

type Backend struct {
	path string
}

// Open creates dir and an empty store file for typeName when missing.
func Open(dir, typeName string) (*Backend, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, crerr.New("data dir is required")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, crerr.Wrapf(err, "create data dir %s", dir)
	}

	path := filepath.Join(dir, FileName(typeName))
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]"), filePerm); err != nil {
			return nil, crerr.Wrapf(err, "init %s", path)
		}
	} else if err != nil {
		return nil, crerr.Wrapf(err, "stat %s", path)
	}

	return &Backend{path: path}, nil
}

func (b *Backend) Load(_ context.Context) ([]record.Fields, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read %s", b.path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []record.Fields{}, nil
	}

	var rows []record.Fields
	if err := sonic.ConfigStd.Unmarshal(data, &rows); err != nil {
		return nil, crerr.Wrapf(domain.ErrFormat, "parse %s: %v", b.path, err)
	}
	return rows, nil
}

func (b *Backend) Store(_ context.Context, rows []record.Fields) error {
	if rows == nil {
		rows = []record.Fields{}
	}
	data, err := sonic.ConfigStd.MarshalIndent(rows, "", "  ")
	if err != nil {
		return crerr.Wrapf(err, "encode %s", b.path)
	}
	if err := os.WriteFile(b.path, data, filePerm); err != nil {
		return crerr.Wrapf(err, "write %s", b.path)
	}
	return nil
}

func (b *Backend) Location() string {
	return b.path
}
