package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

type CreateTeamInput struct {
	ID      string `validate:"required"`
	Name    string `validate:"required,max=100"`
	CoachID string `validate:"required"`
}

// TeamInfo is a team with every reference loaded.
type TeamInfo struct {
	Team     scouting.Team
	Coach    scouting.ClubMember
	HasCoach bool
	Players  []scouting.Player
	Staff    []scouting.ClubMember
}

type TeamService struct {
	teams   scouting.TeamRepository
	players scouting.PlayerRepository
	members scouting.ClubMemberRepository
	logger  *logging.Logger
}

func NewTeamService(
	teams scouting.TeamRepository,
	players scouting.PlayerRepository,
	members scouting.ClubMemberRepository,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TeamService{
		teams:   teams,
		players: players,
		members: members,
		logger:  logger,
	}
}

// CreateTeam creates a team led by a coach who has no team yet.
func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (scouting.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	input.ID = strings.TrimSpace(input.ID)
	input.Name = strings.TrimSpace(input.Name)
	input.CoachID = strings.TrimSpace(input.CoachID)
	if err := validateInput(ctx, input); err != nil {
		return scouting.Team{}, err
	}

	coach, err := getByID(ctx, s.members, "club member", input.CoachID)
	if err != nil {
		return scouting.Team{}, err
	}
	if !coach.IsCoach() {
		return scouting.Team{}, fmt.Errorf("%w: club member %s is not a coach", ErrUnauthorized, coach.ID)
	}
	if !coach.Team.IsZero() {
		return scouting.Team{}, fmt.Errorf("%w: coach %s already leads team %s", ErrConflict, coach.ID, coach.Team.ID())
	}

	item := scouting.Team{
		ID:    input.ID,
		Name:  input.Name,
		Coach: record.Unresolved[scouting.ClubMember](coach.ID),
	}
	if err := item.Validate(); err != nil {
		return scouting.Team{}, err
	}
	if err := saveNew(ctx, s.teams, "team", item); err != nil {
		return scouting.Team{}, err
	}

	coach.Team = record.Unresolved[scouting.Team](item.ID)
	if err := replaceExisting(ctx, s.members, "club member", coach); err != nil {
		return scouting.Team{}, err
	}

	s.logger.InfoContext(ctx, "team created", "team_id", item.ID, "coach_id", coach.ID)
	return item, nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]scouting.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teams.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) GetClubMember(ctx context.Context, memberID string) (scouting.ClubMember, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetClubMember")
	defer span.End()

	return getByID(ctx, s.members, "club member", memberID)
}

// RenameTeam changes the team name. Only the coach may rename it.
func (s *TeamService) RenameTeam(ctx context.Context, actorID, teamID, name string) (scouting.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RenameTeam")
	defer span.End()

	item, err := getByID(ctx, s.teams, "team", teamID)
	if err != nil {
		return scouting.Team{}, err
	}
	if item.Coach.ID() != strings.TrimSpace(actorID) {
		return scouting.Team{}, fmt.Errorf("%w: only the coach can rename team %s", ErrUnauthorized, item.ID)
	}

	item.Name = strings.TrimSpace(name)
	if err := item.Validate(); err != nil {
		return scouting.Team{}, err
	}
	if err := replaceExisting(ctx, s.teams, "team", item); err != nil {
		return scouting.Team{}, err
	}

	s.logger.InfoContext(ctx, "team renamed", "team_id", item.ID, "actor_id", actorID)
	return item, nil
}

// GetTeamInfo loads the team and resolves its coach, players and staff.
func (s *TeamService) GetTeamInfo(ctx context.Context, teamID string) (TeamInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamInfo")
	defer span.End()

	item, err := getByID(ctx, s.teams, "team", teamID)
	if err != nil {
		return TeamInfo{}, err
	}

	coach, hasCoach, err := item.ResolveCoach(ctx, s.members)
	if err != nil {
		return TeamInfo{}, err
	}
	players, err := item.ResolvePlayers(ctx, s.players)
	if err != nil {
		return TeamInfo{}, err
	}
	staff, err := item.ResolveStaff(ctx, s.members)
	if err != nil {
		return TeamInfo{}, err
	}

	return TeamInfo{
		Team:     item,
		Coach:    coach,
		HasCoach: hasCoach,
		Players:  players,
		Staff:    staff,
	}, nil
}

// AddPlayer puts a player on the roster of the actor's team. A player on
// another team is moved.
func (s *TeamService) AddPlayer(ctx context.Context, actorID, teamID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddPlayer")
	defer span.End()

	if err := s.ensureTeamMember(ctx, actorID, teamID); err != nil {
		return err
	}

	p, err := getByID(ctx, s.players, "player", playerID)
	if err != nil {
		return err
	}
	if err := movePlayer(ctx, s.teams, &p, teamID); err != nil {
		return err
	}
	if err := replaceExisting(ctx, s.players, "player", p); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "player added to team", "team_id", teamID, "player_id", p.ID, "actor_id", actorID)
	return nil
}

func (s *TeamService) RemovePlayer(ctx context.Context, actorID, teamID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RemovePlayer")
	defer span.End()

	if err := s.ensureTeamMember(ctx, actorID, teamID); err != nil {
		return err
	}

	p, err := getByID(ctx, s.players, "player", playerID)
	if err != nil {
		return err
	}
	if p.Team.ID() != strings.TrimSpace(teamID) {
		return fmt.Errorf("%w: player %s is not on team %s", ErrInvalidInput, p.ID, teamID)
	}
	if err := movePlayer(ctx, s.teams, &p, ""); err != nil {
		return err
	}
	if err := replaceExisting(ctx, s.players, "player", p); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "player removed from team", "team_id", teamID, "player_id", p.ID, "actor_id", actorID)
	return nil
}

// AddStaff attaches a club member without a team to the team staff.
func (s *TeamService) AddStaff(ctx context.Context, actorID, teamID, memberID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddStaff")
	defer span.End()

	if err := s.ensureTeamMember(ctx, actorID, teamID); err != nil {
		return err
	}

	item, err := getByID(ctx, s.teams, "team", teamID)
	if err != nil {
		return err
	}
	member, err := getByID(ctx, s.members, "club member", memberID)
	if err != nil {
		return err
	}
	if !member.Team.IsZero() {
		return fmt.Errorf("%w: club member %s already belongs to team %s", ErrConflict, member.ID, member.Team.ID())
	}

	if item.AddStaff(member.ID) {
		if err := replaceExisting(ctx, s.teams, "team", item); err != nil {
			return err
		}
	}
	member.Team = record.Unresolved[scouting.Team](item.ID)
	if err := replaceExisting(ctx, s.members, "club member", member); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "staff added to team", "team_id", item.ID, "member_id", member.ID, "actor_id", actorID)
	return nil
}

// DeleteTeam removes the team record only. Players, staff and matches keep
// their references to it.
func (s *TeamService) DeleteTeam(ctx context.Context, actorID, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	item, err := getByID(ctx, s.teams, "team", teamID)
	if err != nil {
		return err
	}
	if item.Coach.ID() != strings.TrimSpace(actorID) {
		return fmt.Errorf("%w: only the coach can delete team %s", ErrUnauthorized, item.ID)
	}

	if err := s.teams.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", item.ID, "actor_id", actorID)
	return nil
}

// ensureTeamMember checks that actorID is a club member of teamID.
func (s *TeamService) ensureTeamMember(ctx context.Context, actorID, teamID string) error {
	member, err := getByID(ctx, s.members, "club member", actorID)
	if err != nil {
		return err
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if member.Team.ID() != teamID {
		return fmt.Errorf("%w: club member %s does not belong to team %s", ErrUnauthorized, member.ID, teamID)
	}
	return nil
}
