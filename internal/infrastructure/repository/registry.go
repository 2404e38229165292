package repository

import (
	"sort"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

// Registry maps entity type names to their repositories. It is built once by
// the app and passed to whoever needs a lookup.
type Registry struct {
	repos map[string]any
}

func NewRegistry() *Registry {
	return &Registry{repos: make(map[string]any)}
}

// Register adds repo under its type name. Registering a name twice fails.
func Register[T record.Record](reg *Registry, repo *Repository[T]) error {
	name := repo.Name()
	if _, exists := reg.repos[name]; exists {
		return crerr.Newf("repository %q already registered", name)
	}
	reg.repos[name] = repo
	return nil
}

// Lookup returns the repository registered under name.
func Lookup[T record.Record](reg *Registry, name string) (scouting.Repository[T], error) {
	raw, ok := reg.repos[name]
	if !ok {
		return nil, crerr.Wrapf(domain.ErrNotFound, "repository %q", name)
	}
	repo, ok := raw.(scouting.Repository[T])
	if !ok {
		return nil, crerr.Newf("repository %q stores %T", name, raw)
	}
	return repo, nil
}

// Names lists registered type names, sorted.
func (reg *Registry) Names() []string {
	out := make([]string, 0, len(reg.repos))
	for name := range reg.repos {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Repositories is the typed set of repositories the use cases consume.
type Repositories struct {
	Players     scouting.PlayerRepository
	ClubMembers scouting.ClubMemberRepository
	Referees    scouting.RefereeRepository
	Teams       scouting.TeamRepository
	Matches     scouting.MatchRepository
}

// OpenFunc returns the backend for one entity type name.
type OpenFunc func(typeName string) (Backend, error)

// Build opens a backend per entity type, registers every repository and
// returns the registry with its typed view.
func Build(open OpenFunc, logger *logging.Logger) (*Registry, Repositories, error) {
	reg := NewRegistry()

	players, err := build(reg, scouting.PlayerCodec, open, logger)
	if err != nil {
		return nil, Repositories{}, err
	}
	members, err := build(reg, scouting.ClubMemberCodec, open, logger)
	if err != nil {
		return nil, Repositories{}, err
	}
	referees, err := build(reg, scouting.RefereeCodec, open, logger)
	if err != nil {
		return nil, Repositories{}, err
	}
	teams, err := build(reg, scouting.TeamCodec, open, logger)
	if err != nil {
		return nil, Repositories{}, err
	}
	matches, err := build(reg, scouting.MatchCodec, open, logger)
	if err != nil {
		return nil, Repositories{}, err
	}

	return reg, Repositories{
		Players:     players,
		ClubMembers: members,
		Referees:    referees,
		Teams:       teams,
		Matches:     matches,
	}, nil
}

func build[T record.Record](reg *Registry, codec record.Codec[T], open OpenFunc, logger *logging.Logger) (*Repository[T], error) {
	backend, err := open(codec.Name)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s store", codec.Name)
	}
	repo := New(codec, backend, logger)
	if err := Register(reg, repo); err != nil {
		return nil, err
	}
	return repo, nil
}
