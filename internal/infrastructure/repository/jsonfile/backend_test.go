package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "players.json", jsonfile.FileName("Player"))
	assert.Equal(t, "clubmembers.json", jsonfile.FileName("ClubMember"))
	assert.Equal(t, "matchs.json", jsonfile.FileName("Match"))
}

func TestOpen_CreatesEmptyStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	backend, err := jsonfile.Open(dir, "Team")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "teams.json"), backend.Location())

	raw, err := os.ReadFile(backend.Location())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	rows, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOpen_KeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"t1"}]`), 0o644))

	_, err := jsonfile.Open(dir, "Team")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"t1"}]`, string(raw))
}

func TestOpen_RequiresDir(t *testing.T) {
	_, err := jsonfile.Open("  ", "Team")
	assert.Error(t, err)
}

func TestLoad_EmptyFileHasNoRows(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "referees.json"), []byte("\n"), 0o644))

	backend, err := jsonfile.Open(dir, "Referee")
	require.NoError(t, err)
	rows, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoad_CorruptFileIsFormatError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "referees.json"), []byte(`[{"id": `), 0o644))

	backend, err := jsonfile.Open(dir, "Referee")
	require.NoError(t, err)
	_, err = backend.Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrFormat), "got %v", err)
}

func TestStore_WritesIndentedArray(t *testing.T) {
	ctx := context.Background()
	backend, err := jsonfile.Open(t.TempDir(), "Referee")
	require.NoError(t, err)

	require.NoError(t, backend.Store(ctx, []record.Fields{{"id": "r1"}}))
	raw, err := os.ReadFile(backend.Location())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "[\n  {"), "got %q", raw)

	require.NoError(t, backend.Store(ctx, nil))
	raw, err = os.ReadFile(backend.Location())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestRepository_ReadsLegacyMarkedRows(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	legacy := `[{"_id":"r1","_name":"Marta","_age":40,"_password":"h","_license":"L-1"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "referees.json"), []byte(legacy), 0o644))

	backend, err := jsonfile.Open(dir, "Referee")
	require.NoError(t, err)
	repo := repository.New(scouting.RefereeCodec, backend, nil)

	got, found, err := repo.Find(ctx, "r1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Marta", got.Name)
	assert.Equal(t, 40, got.Age)
	assert.Equal(t, "L-1", got.License)

	ok, err := repo.Replace(ctx, "r1", got)
	require.NoError(t, err)
	require.True(t, ok)

	raw, err := os.ReadFile(backend.Location())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"license"`)
	assert.NotContains(t, string(raw), `"_license"`)
}

func TestRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := jsonfile.Open(dir, "Team")
	require.NoError(t, err)
	repo := repository.New(scouting.TeamCodec, backend, nil)
	_, err = repo.Save(ctx, scouting.Team{
		ID:      "t1",
		Name:    "Halcones",
		Coach:   record.Unresolved[scouting.ClubMember]("c1"),
		Players: record.UnresolvedList[scouting.Player]([]string{"p1"}),
	})
	require.NoError(t, err)

	reopened, err := jsonfile.Open(dir, "Team")
	require.NoError(t, err)
	got, found, err := repository.New(scouting.TeamCodec, reopened, nil).Find(ctx, "t1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "c1", got.Coach.ID())
	assert.Equal(t, []string{"p1"}, record.IDs(got.Players))
}
