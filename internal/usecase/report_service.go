package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

// PlayerReportRow is one exported line of the scouting report.
type PlayerReportRow struct {
	PlayerID      string
	Name          string
	Age           int
	TeamID        string
	TeamName      string
	Position      scouting.Position
	Goals         int
	Assists       int
	Shots         int
	ShotsOnTarget int
	Clearances    int
	MatchesPlayed int
}

var reportHeader = []string{
	"id", "name", "age", "team_id", "team", "position",
	"goals", "assists", "shots", "shots_on_target", "clearances", "matches_played",
}

func (r PlayerReportRow) record() []string {
	return []string{
		r.PlayerID,
		r.Name,
		strconv.Itoa(r.Age),
		r.TeamID,
		r.TeamName,
		r.Position.String(),
		strconv.Itoa(r.Goals),
		strconv.Itoa(r.Assists),
		strconv.Itoa(r.Shots),
		strconv.Itoa(r.ShotsOnTarget),
		strconv.Itoa(r.Clearances),
		strconv.Itoa(r.MatchesPlayed),
	}
}

type ReportService struct {
	players scouting.PlayerRepository
	teams   scouting.TeamRepository
	logger  *logging.Logger
}

func NewReportService(players scouting.PlayerRepository, teams scouting.TeamRepository, logger *logging.Logger) *ReportService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ReportService{
		players: players,
		teams:   teams,
		logger:  logger,
	}
}

// PlayerReport builds report rows for the players matching filter, in stored
// order. Each player's team is resolved for its name.
func (s *ReportService) PlayerReport(ctx context.Context, filter PlayerFilter) ([]PlayerReportRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.PlayerReport")
	defer span.End()

	items, err := s.players.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	rows := make([]PlayerReportRow, 0, len(items))
	for _, p := range items {
		if !filter.matches(p) {
			continue
		}
		// a deleted team leaves the reference behind; report it without a name
		team, _, err := p.ResolveTeam(ctx, s.teams)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if err != nil {
			s.logger.WarnContext(ctx, "player references a missing team", "player_id", p.ID, "team_id", p.Team.ID())
		}
		rows = append(rows, PlayerReportRow{
			PlayerID:      p.ID,
			Name:          p.Name,
			Age:           p.Age,
			TeamID:        p.Team.ID(),
			TeamName:      team.Name,
			Position:      p.Position,
			Goals:         p.Goals,
			Assists:       p.Assists,
			Shots:         p.Shots,
			ShotsOnTarget: p.ShotsOnTarget,
			Clearances:    p.Clearances,
			MatchesPlayed: p.MatchesPlayed,
		})
	}

	return rows, nil
}

// WriteCSV writes rows with a header line.
func (s *ReportService) WriteCSV(w io.Writer, rows []PlayerReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.record()); err != nil {
			return fmt.Errorf("write report row %s: %w", row.PlayerID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// ExportCSVFile writes rows to dir/name, adding ".csv" when missing, and
// returns the file path.
func (s *ReportService) ExportCSVFile(ctx context.Context, dir, name string, rows []PlayerReportRow) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: invalid report file name %q", ErrInvalidInput, name)
	}
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		name += ".csv"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := s.WriteCSV(f, rows); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}

	s.logger.InfoContext(ctx, "report exported", "path", path, "rows", len(rows))
	return path, nil
}
