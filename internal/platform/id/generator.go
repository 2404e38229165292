package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for records the user does not name, such as
// matches.
type Generator interface {
	NewID() (string, error)
}

// PrefixedGenerator yields "<prefix>-<uuid v4>" identifiers.
type PrefixedGenerator struct {
	prefix string
}

func NewPrefixedGenerator(prefix string) *PrefixedGenerator {
	return &PrefixedGenerator{prefix: strings.TrimSpace(prefix)}
}

func (g *PrefixedGenerator) NewID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	if g.prefix == "" {
		return u.String(), nil
	}

	return g.prefix + "-" + u.String(), nil
}
