package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/platform/id"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

type ScheduleMatchInput struct {
	Date       string `validate:"required,datetime=2006-01-02"`
	HomeTeamID string `validate:"required"`
	AwayTeamID string `validate:"required,nefield=HomeTeamID"`
	RefereeID  string `validate:"required"`
}

type ReportResultInput struct {
	MatchID     string `validate:"required"`
	HomeScore   int    `validate:"gte=0,lte=99"`
	AwayScore   int    `validate:"gte=0,lte=99"`
	PlayerStats map[string]scouting.PlayerMatchStats `validate:"dive,keys,required,endkeys"`
	Notes       string `validate:"max=1000"`
}

type MatchService struct {
	matches  scouting.MatchRepository
	teams    scouting.TeamRepository
	players  scouting.PlayerRepository
	members  scouting.ClubMemberRepository
	referees scouting.RefereeRepository
	idGen    id.Generator
	logger   *logging.Logger
}

func NewMatchService(
	matches scouting.MatchRepository,
	teams scouting.TeamRepository,
	players scouting.PlayerRepository,
	members scouting.ClubMemberRepository,
	referees scouting.RefereeRepository,
	idGen id.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MatchService{
		matches:  matches,
		teams:    teams,
		players:  players,
		members:  members,
		referees: referees,
		idGen:    idGen,
		logger:   logger,
	}
}

func (s *MatchService) ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (scouting.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ScheduleMatch")
	defer span.End()

	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)
	input.RefereeID = strings.TrimSpace(input.RefereeID)
	input.Date = strings.TrimSpace(input.Date)
	if err := validateInput(ctx, input); err != nil {
		return scouting.Match{}, err
	}

	date, err := time.Parse(scouting.DateLayout, input.Date)
	if err != nil {
		return scouting.Match{}, fmt.Errorf("%w: match date: %v", ErrInvalidInput, err)
	}
	if _, err := getByID(ctx, s.teams, "team", input.HomeTeamID); err != nil {
		return scouting.Match{}, err
	}
	if _, err := getByID(ctx, s.teams, "team", input.AwayTeamID); err != nil {
		return scouting.Match{}, err
	}
	if _, err := getByID(ctx, s.referees, "referee", input.RefereeID); err != nil {
		return scouting.Match{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return scouting.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	item := scouting.Match{
		ID:          matchID,
		Date:        date,
		HomeTeam:    record.Unresolved[scouting.Team](input.HomeTeamID),
		AwayTeam:    record.Unresolved[scouting.Team](input.AwayTeamID),
		Referee:     record.Unresolved[scouting.Referee](input.RefereeID),
		Status:      scouting.MatchScheduled,
		PlayerStats: map[string]scouting.PlayerMatchStats{},
	}
	if err := item.Validate(); err != nil {
		return scouting.Match{}, err
	}
	if err := saveNew(ctx, s.matches, "match", item); err != nil {
		return scouting.Match{}, err
	}

	s.logger.InfoContext(ctx, "match scheduled", "match_id", item.ID, "home_team_id", input.HomeTeamID, "away_team_id", input.AwayTeamID, "referee_id", input.RefereeID)
	return item, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (scouting.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	return getByID(ctx, s.matches, "match", matchID)
}

// ListRefereeMatches returns the referee's matches ordered by date.
func (s *MatchService) ListRefereeMatches(ctx context.Context, refereeID string) ([]scouting.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListRefereeMatches")
	defer span.End()

	refereeID = strings.TrimSpace(refereeID)
	return s.listMatches(ctx, func(m scouting.Match) bool { return m.Referee.ID() == refereeID })
}

func (s *MatchService) ListTeamMatches(ctx context.Context, teamID string) ([]scouting.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListTeamMatches")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	return s.listMatches(ctx, func(m scouting.Match) bool { return m.Involves(teamID) })
}

// ReportResult records the final score of a scheduled match. Only the
// assigned referee may report it.
func (s *MatchService) ReportResult(ctx context.Context, refereeID string, input ReportResultInput) (scouting.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ReportResult")
	defer span.End()

	input.Notes = strings.TrimSpace(input.Notes)
	if err := validateInput(ctx, input); err != nil {
		return scouting.Match{}, err
	}

	item, err := getByID(ctx, s.matches, "match", input.MatchID)
	if err != nil {
		return scouting.Match{}, err
	}
	if item.Referee.ID() != strings.TrimSpace(refereeID) {
		return scouting.Match{}, fmt.Errorf("%w: referee %s is not assigned to match %s", ErrUnauthorized, refereeID, item.ID)
	}
	if item.Status != scouting.MatchScheduled {
		return scouting.Match{}, fmt.Errorf("%w: match %s is already %s", ErrInvalidInput, item.ID, item.Status)
	}

	home, away, err := item.ResolveTeams(ctx, s.teams)
	if err != nil {
		return scouting.Match{}, err
	}
	for playerID := range input.PlayerStats {
		if !home.HasPlayer(playerID) && !away.HasPlayer(playerID) {
			return scouting.Match{}, fmt.Errorf("%w: player %s does not play for either team", ErrInvalidInput, playerID)
		}
	}

	homeScore, awayScore := input.HomeScore, input.AwayScore
	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.PlayerStats = make(map[string]scouting.PlayerMatchStats, len(input.PlayerStats))
	for playerID, stats := range input.PlayerStats {
		item.PlayerStats[playerID] = stats
	}
	item.Notes = input.Notes
	item.Status = scouting.MatchFinished
	if err := item.Validate(); err != nil {
		return scouting.Match{}, err
	}
	if err := replaceExisting(ctx, s.matches, "match", item); err != nil {
		return scouting.Match{}, err
	}

	s.logger.InfoContext(ctx, "match result reported", "match_id", item.ID, "referee_id", refereeID, "home_score", homeScore, "away_score", awayScore)
	return item.Unresolved(), nil
}

// ValidateMatch confirms a finished match on behalf of one of its clubs and
// adds the recorded player stats to the players' season counters.
func (s *MatchService) ValidateMatch(ctx context.Context, memberID, matchID string) (scouting.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ValidateMatch")
	defer span.End()

	member, err := getByID(ctx, s.members, "club member", memberID)
	if err != nil {
		return scouting.Match{}, err
	}
	item, err := getByID(ctx, s.matches, "match", matchID)
	if err != nil {
		return scouting.Match{}, err
	}
	if !item.Involves(member.Team.ID()) {
		return scouting.Match{}, fmt.Errorf("%w: club member %s is not with a team of match %s", ErrUnauthorized, member.ID, item.ID)
	}
	if item.Status != scouting.MatchFinished {
		return scouting.Match{}, fmt.Errorf("%w: match %s is %s, expected %s", ErrInvalidInput, item.ID, item.Status, scouting.MatchFinished)
	}

	// load every player first so a missing one aborts before any write
	updated := make([]scouting.Player, 0, len(item.PlayerStats))
	for _, playerID := range item.PlayerIDs() {
		p, err := getByID(ctx, s.players, "player", playerID)
		if err != nil {
			return scouting.Match{}, err
		}
		stats := item.PlayerStats[playerID]
		p.Goals += stats.Goals
		p.Assists += stats.Assists
		p.Shots += stats.Shots
		p.ShotsOnTarget += stats.ShotsOnTarget
		p.Clearances += stats.Clearances
		p.MatchesPlayed++
		updated = append(updated, p)
	}

	item.Status = scouting.MatchValidated
	if err := replaceExisting(ctx, s.matches, "match", item); err != nil {
		return scouting.Match{}, err
	}
	for _, p := range updated {
		if err := replaceExisting(ctx, s.players, "player", p); err != nil {
			return scouting.Match{}, err
		}
	}

	s.logger.InfoContext(ctx, "match validated", "match_id", item.ID, "member_id", member.ID, "players_updated", len(updated))
	return item, nil
}

func (s *MatchService) listMatches(ctx context.Context, keep func(scouting.Match) bool) ([]scouting.Match, error) {
	items, err := s.matches.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]scouting.Match, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out, nil
}
