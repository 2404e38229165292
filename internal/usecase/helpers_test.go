package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/riskibarqy/scouting/internal/infrastructure/repository"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository/memory"
)

// plainHasher keeps tests fast. TestBcryptHasher covers the real one.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "plain:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "plain:"+password {
		return fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	}
	return nil
}

type sequenceIDs struct {
	n int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("match-%03d", g.n), nil
}

type testEnv struct {
	repos   repository.Repositories
	auth    *AuthService
	players *PlayerService
	teams   *TeamService
	matches *MatchService
	reports *ReportService
}

// newTestEnv wires every service over in-memory stores filled with the demo
// data set. Seeded accounts log in with memory.DemoPassword.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	_, repos, err := repository.Build(func(name string) (repository.Backend, error) {
		return memory.NewBackend(name), nil
	}, nil)
	if err != nil {
		t.Fatalf("build repositories: %v", err)
	}
	hash, _ := plainHasher{}.Hash(memory.DemoPassword)
	if err := memory.Seed(context.Background(), repos, hash); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return &testEnv{
		repos:   repos,
		auth:    NewAuthService(repos.Players, repos.ClubMembers, repos.Referees, repos.Teams, plainHasher{}, nil),
		players: NewPlayerService(repos.Players, repos.Teams, nil),
		teams:   NewTeamService(repos.Teams, repos.Players, repos.ClubMembers, nil),
		matches: NewMatchService(repos.Matches, repos.Teams, repos.Players, repos.ClubMembers, repos.Referees, &sequenceIDs{}, nil),
		reports: NewReportService(repos.Players, repos.Teams, nil),
	}
}

func ids[T interface{ RecordID() string }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.RecordID())
	}
	return out
}
