package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

// PlayerStats is the read model of a player's counters.
type PlayerStats struct {
	PlayerID      string
	Name          string
	TeamID        string
	Position      scouting.Position
	Goals         int
	Assists       int
	Shots         int
	ShotsOnTarget int
	Clearances    int
	MatchesPlayed int
}

// PlayerProfile is a complete replacement of a player's editable fields.
// Callers pass every value, not only the changed ones.
type PlayerProfile struct {
	Name          string `validate:"required,max=100"`
	Age           int    `validate:"gte=16,lte=45"`
	TeamID        string
	Position      string `validate:"required"`
	Goals         int    `validate:"gte=0"`
	Assists       int    `validate:"gte=0"`
	Shots         int    `validate:"gte=0"`
	ShotsOnTarget int    `validate:"gte=0,ltefield=Shots"`
	Clearances    int    `validate:"gte=0"`
}

// ProfileOf returns the current profile of p, ready to be edited.
func ProfileOf(p scouting.Player) PlayerProfile {
	return PlayerProfile{
		Name:          p.Name,
		Age:           p.Age,
		TeamID:        p.Team.ID(),
		Position:      p.Position.String(),
		Goals:         p.Goals,
		Assists:       p.Assists,
		Shots:         p.Shots,
		ShotsOnTarget: p.ShotsOnTarget,
		Clearances:    p.Clearances,
	}
}

// PlayerFilter narrows player listings. Zero fields match everything.
type PlayerFilter struct {
	TeamID       string
	Position     string
	NameContains string
	MinGoals     int
	MinAge       int
	MaxAge       int
}

func (f PlayerFilter) matches(p scouting.Player) bool {
	if f.TeamID != "" && p.Team.ID() != f.TeamID {
		return false
	}
	if f.Position != "" && !strings.EqualFold(string(p.Position), f.Position) {
		return false
	}
	if f.NameContains != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.NameContains)) {
		return false
	}
	if f.MinAge > 0 && p.Age < f.MinAge {
		return false
	}
	if f.MaxAge > 0 && p.Age > f.MaxAge {
		return false
	}
	return p.Goals >= f.MinGoals
}

type PlayerService struct {
	players scouting.PlayerRepository
	teams   scouting.TeamRepository
	logger  *logging.Logger
}

func NewPlayerService(players scouting.PlayerRepository, teams scouting.TeamRepository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PlayerService{
		players: players,
		teams:   teams,
		logger:  logger,
	}
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (scouting.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	return getByID(ctx, s.players, "player", playerID)
}

func (s *PlayerService) GetPlayerStats(ctx context.Context, playerID string) (PlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerStats")
	defer span.End()

	p, err := getByID(ctx, s.players, "player", playerID)
	if err != nil {
		return PlayerStats{}, err
	}

	return statsOf(p), nil
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]scouting.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	items, err := s.players.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) SearchPlayers(ctx context.Context, filter PlayerFilter) ([]scouting.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SearchPlayers")
	defer span.End()

	items, err := s.players.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]scouting.Player, 0, len(items))
	for _, item := range items {
		if filter.matches(item) {
			out = append(out, item)
		}
	}

	return out, nil
}

// UpdatePlayerProfile replaces the player's profile. Nothing is written when
// any value is rejected.
func (s *PlayerService) UpdatePlayerProfile(ctx context.Context, playerID string, profile PlayerProfile) (scouting.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayerProfile")
	defer span.End()

	profile.Name = strings.TrimSpace(profile.Name)
	profile.TeamID = strings.TrimSpace(profile.TeamID)
	if err := validateInput(ctx, profile); err != nil {
		return scouting.Player{}, err
	}

	p, err := getByID(ctx, s.players, "player", playerID)
	if err != nil {
		return scouting.Player{}, err
	}
	if err := p.SetPosition(profile.Position); err != nil {
		return scouting.Player{}, err
	}
	if profile.TeamID != "" {
		if _, err := getByID(ctx, s.teams, "team", profile.TeamID); err != nil {
			return scouting.Player{}, err
		}
	}

	p.Name = profile.Name
	p.Age = profile.Age
	p.Goals = profile.Goals
	p.Assists = profile.Assists
	p.Shots = profile.Shots
	p.ShotsOnTarget = profile.ShotsOnTarget
	p.Clearances = profile.Clearances
	if err := p.Validate(); err != nil {
		return scouting.Player{}, err
	}

	if err := movePlayer(ctx, s.teams, &p, profile.TeamID); err != nil {
		return scouting.Player{}, err
	}
	if err := replaceExisting(ctx, s.players, "player", p); err != nil {
		return scouting.Player{}, err
	}

	s.logger.InfoContext(ctx, "player profile updated", "player_id", p.ID, "team_id", p.Team.ID())
	return p, nil
}

func statsOf(p scouting.Player) PlayerStats {
	return PlayerStats{
		PlayerID:      p.ID,
		Name:          p.Name,
		TeamID:        p.Team.ID(),
		Position:      p.Position,
		Goals:         p.Goals,
		Assists:       p.Assists,
		Shots:         p.Shots,
		ShotsOnTarget: p.ShotsOnTarget,
		Clearances:    p.Clearances,
		MatchesPlayed: p.MatchesPlayed,
	}
}
