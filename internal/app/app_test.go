package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/scouting/internal/config"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scouting/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MemoryStorageIsSeeded(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, config.Config{Storage: config.StorageMemory, BcryptCost: 4}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ClubMember", "Match", "Player", "Referee", "Team"}, a.Registry.Names())

	teams, err := a.Teams.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, len(memory.SeedTeams()))

	user, err := a.Auth.Login(ctx, "cm-ortega", memory.DemoPassword, "clubmember")
	require.NoError(t, err)
	assert.Equal(t, scouting.RoleClubMember, user.Role())
}

func TestNew_FileStorageCreatesStores(t *testing.T) {
	dir := t.TempDir()
	_, err := New(context.Background(), config.Config{Storage: config.StorageFile, DataDir: dir, BcryptCost: 4}, nil)
	require.NoError(t, err)

	for _, name := range []string{"players.json", "clubmembers.json", "referees.json", "teams.json", "matchs.json"} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, "[]", string(raw), name)
	}
}

func TestNew_RejectsUnknownStorage(t *testing.T) {
	_, err := New(context.Background(), config.Config{Storage: "s3"}, nil)
	require.Error(t, err)
}

func TestNew_CachedFileStorageStillPersists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := config.Config{Storage: config.StorageFile, DataDir: dir, BcryptCost: 4, CacheTTL: time.Minute}

	a, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	_, err = a.Auth.RegisterReferee(ctx, usecase.RegisterRefereeInput{
		ID: "r-cache", Name: "Cache Ref", Age: 40, Password: "secret1", License: "L-77",
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "referees.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "r-cache")
}
