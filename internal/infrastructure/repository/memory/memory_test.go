package memory_test

import (
	"context"
	"testing"

	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_LoadReturnsIndependentCopies(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewBackend("Team")
	assert.Equal(t, "memory://Team", backend.Location())

	rows, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, backend.Store(ctx, []record.Fields{{"id": "t1", "name": "Halcones"}}))

	first, err := backend.Load(ctx)
	require.NoError(t, err)
	first[0]["name"] = "changed"

	second, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Halcones", second[0]["name"])
}

func TestBackend_NumbersDecodeLikeFileStore(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewBackend("Player")
	require.NoError(t, backend.Store(ctx, []record.Fields{{"id": "p1", "age": 22}}))

	rows, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(22), rows[0]["age"])
}

func seededRepos(t *testing.T) repository.Repositories {
	t.Helper()
	_, repos, err := repository.Build(func(name string) (repository.Backend, error) {
		return memory.NewBackend(name), nil
	}, nil)
	require.NoError(t, err)
	require.NoError(t, memory.Seed(context.Background(), repos, "hash"))
	return repos
}

func TestSeed_ReferencesAreConsistent(t *testing.T) {
	ctx := context.Background()
	repos := seededRepos(t)

	teams, err := repos.Teams.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	for _, team := range teams {
		for _, id := range record.IDs(team.Players) {
			p, found, err := repos.Players.Find(ctx, id)
			require.NoError(t, err)
			require.True(t, found, "player %s of %s", id, team.ID)
			assert.Equal(t, team.ID, p.Team.ID(), "player %s", id)
		}

		coach, found, err := repos.ClubMembers.Find(ctx, team.Coach.ID())
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, scouting.StaffRoleCoach, coach.StaffRole)
		assert.Equal(t, team.ID, coach.Team.ID())

		for _, id := range record.IDs(team.Staff) {
			member, found, err := repos.ClubMembers.Find(ctx, id)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, team.ID, member.Team.ID())
		}
	}

	players, err := repos.Players.FindAll(ctx)
	require.NoError(t, err)
	for _, p := range players {
		require.NoError(t, p.Validate(), "player %s", p.ID)
		assert.Equal(t, "hash", p.Password)
	}

	matches, err := repos.Matches.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.NoError(t, matches[0].Validate())
	_, found, err := repos.Referees.Find(ctx, matches[0].Referee.ID())
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSeed_LeavesPopulatedRepositoriesAlone(t *testing.T) {
	ctx := context.Background()
	_, repos, err := repository.Build(func(name string) (repository.Backend, error) {
		return memory.NewBackend(name), nil
	}, nil)
	require.NoError(t, err)

	_, err = repos.Referees.Save(ctx, scouting.Referee{
		Account: scouting.Account{ID: "r-own", Name: "Own", Age: 30, Password: "x"},
		License: "OWN-1",
	})
	require.NoError(t, err)

	require.NoError(t, memory.Seed(ctx, repos, "hash"))
	require.NoError(t, memory.Seed(ctx, repos, "hash"))

	referees, err := repos.Referees.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, referees, 1)
	assert.Equal(t, "r-own", referees[0].ID)

	teams, err := repos.Teams.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}
