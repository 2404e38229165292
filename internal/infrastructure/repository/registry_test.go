package repository_test

import (
	"errors"
	"testing"

	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(typeName string) (repository.Backend, error) {
	return memory.NewBackend(typeName), nil
}

func TestBuild_RegistersEveryEntityType(t *testing.T) {
	reg, repos, err := repository.Build(openMemory, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ClubMember", "Match", "Player", "Referee", "Team"}, reg.Names())
	assert.NotNil(t, repos.Players)
	assert.NotNil(t, repos.ClubMembers)
	assert.NotNil(t, repos.Referees)
	assert.NotNil(t, repos.Teams)
	assert.NotNil(t, repos.Matches)

	players, err := repository.Lookup[scouting.Player](reg, "Player")
	require.NoError(t, err)
	assert.Same(t, repos.Players, players)
}

func TestLookup_Failures(t *testing.T) {
	reg, _, err := repository.Build(openMemory, nil)
	require.NoError(t, err)

	_, err = repository.Lookup[scouting.Player](reg, "Coach")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)

	_, err = repository.Lookup[scouting.Team](reg, "Player")
	assert.Error(t, err)
}

func TestRegister_RejectsDuplicateName(t *testing.T) {
	reg := repository.NewRegistry()
	first := repository.New(scouting.TeamCodec, memory.NewBackend("Team"), nil)
	second := repository.New(scouting.TeamCodec, memory.NewBackend("Team"), nil)

	require.NoError(t, repository.Register(reg, first))
	assert.Error(t, repository.Register(reg, second))
}

func TestBuild_PropagatesOpenError(t *testing.T) {
	boom := errors.New("permission denied")
	_, _, err := repository.Build(func(string) (repository.Backend, error) { return nil, boom }, nil)
	assert.True(t, errors.Is(err, boom), "got %v", err)
}
