package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

type RegisterPlayerInput struct {
	ID       string `validate:"required"`
	Password string `validate:"min=6"`
	Name     string `validate:"required,max=100"`
	Age      int    `validate:"gte=16,lte=45"`
	TeamID   string
	Position string `validate:"required"`
}

type RegisterClubMemberInput struct {
	ID              string `validate:"required"`
	Password        string `validate:"min=6"`
	Name            string `validate:"required,max=100"`
	Age             int    `validate:"gte=18,lte=70"`
	Role            string `validate:"required"`
	YearsExperience int    `validate:"gte=0,lte=60"`
	Specialization  string `validate:"max=100"`
}

type RegisterRefereeInput struct {
	ID       string `validate:"required"`
	Password string `validate:"min=6"`
	Name     string `validate:"required,max=100"`
	Age      int    `validate:"gte=18,lte=65"`
	License  string `validate:"required"`
}

// AuthService registers accounts and holds the single interactive session.
type AuthService struct {
	players  scouting.PlayerRepository
	members  scouting.ClubMemberRepository
	referees scouting.RefereeRepository
	teams    scouting.TeamRepository
	hasher   PasswordHasher
	logger   *logging.Logger

	current scouting.User
}

func NewAuthService(
	players scouting.PlayerRepository,
	members scouting.ClubMemberRepository,
	referees scouting.RefereeRepository,
	teams scouting.TeamRepository,
	hasher PasswordHasher,
	logger *logging.Logger,
) *AuthService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AuthService{
		players:  players,
		members:  members,
		referees: referees,
		teams:    teams,
		hasher:   hasher,
		logger:   logger,
	}
}

func (s *AuthService) RegisterPlayer(ctx context.Context, input RegisterPlayerInput) (scouting.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.RegisterPlayer")
	defer span.End()

	if err := s.ensureNoSession(); err != nil {
		return scouting.Player{}, err
	}

	input.ID = strings.TrimSpace(input.ID)
	input.Name = strings.TrimSpace(input.Name)
	input.TeamID = strings.TrimSpace(input.TeamID)
	if err := validateInput(ctx, input); err != nil {
		return scouting.Player{}, err
	}

	position, err := scouting.ParsePosition(input.Position)
	if err != nil {
		return scouting.Player{}, err
	}
	if err := ensureAbsent(ctx, s.players, "player", input.ID); err != nil {
		return scouting.Player{}, err
	}
	if input.TeamID != "" {
		if _, err := getByID(ctx, s.teams, "team", input.TeamID); err != nil {
			return scouting.Player{}, err
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return scouting.Player{}, err
	}

	item := scouting.Player{
		Account:  scouting.Account{ID: input.ID, Name: input.Name, Age: input.Age, Password: hash},
		Position: position,
	}
	if err := item.Validate(); err != nil {
		return scouting.Player{}, err
	}
	if err := saveNew(ctx, s.players, "player", item); err != nil {
		return scouting.Player{}, err
	}

	if input.TeamID != "" {
		if err := movePlayer(ctx, s.teams, &item, input.TeamID); err != nil {
			return scouting.Player{}, err
		}
		if err := replaceExisting(ctx, s.players, "player", item); err != nil {
			return scouting.Player{}, err
		}
	}

	s.current = item
	s.logger.InfoContext(ctx, "player registered", "player_id", item.ID, "team_id", item.Team.ID())
	return item, nil
}

func (s *AuthService) RegisterClubMember(ctx context.Context, input RegisterClubMemberInput) (scouting.ClubMember, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.RegisterClubMember")
	defer span.End()

	if err := s.ensureNoSession(); err != nil {
		return scouting.ClubMember{}, err
	}

	input.ID = strings.TrimSpace(input.ID)
	input.Name = strings.TrimSpace(input.Name)
	input.Specialization = strings.TrimSpace(input.Specialization)
	if err := validateInput(ctx, input); err != nil {
		return scouting.ClubMember{}, err
	}

	role, err := scouting.ParseStaffRole(input.Role)
	if err != nil {
		return scouting.ClubMember{}, err
	}
	if role != scouting.StaffRoleCoach {
		input.YearsExperience = 0
		input.Specialization = ""
	}
	if err := ensureAbsent(ctx, s.members, "club member", input.ID); err != nil {
		return scouting.ClubMember{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return scouting.ClubMember{}, err
	}

	item := scouting.ClubMember{
		Account:         scouting.Account{ID: input.ID, Name: input.Name, Age: input.Age, Password: hash},
		StaffRole:       role,
		YearsExperience: input.YearsExperience,
		Specialization:  input.Specialization,
	}
	if err := item.Validate(); err != nil {
		return scouting.ClubMember{}, err
	}
	if err := saveNew(ctx, s.members, "club member", item); err != nil {
		return scouting.ClubMember{}, err
	}

	s.current = item
	s.logger.InfoContext(ctx, "club member registered", "member_id", item.ID, "role", item.StaffRole)
	return item, nil
}

func (s *AuthService) RegisterReferee(ctx context.Context, input RegisterRefereeInput) (scouting.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.RegisterReferee")
	defer span.End()

	if err := s.ensureNoSession(); err != nil {
		return scouting.Referee{}, err
	}

	input.ID = strings.TrimSpace(input.ID)
	input.Name = strings.TrimSpace(input.Name)
	input.License = strings.TrimSpace(input.License)
	if err := validateInput(ctx, input); err != nil {
		return scouting.Referee{}, err
	}
	if err := ensureAbsent(ctx, s.referees, "referee", input.ID); err != nil {
		return scouting.Referee{}, err
	}

	referees, err := s.referees.FindAll(ctx)
	if err != nil {
		return scouting.Referee{}, fmt.Errorf("list referees: %w", err)
	}
	for _, ref := range referees {
		if strings.EqualFold(ref.License, input.License) {
			return scouting.Referee{}, fmt.Errorf("%w: referee license %s", ErrConflict, input.License)
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return scouting.Referee{}, err
	}

	item := scouting.Referee{
		Account: scouting.Account{ID: input.ID, Name: input.Name, Age: input.Age, Password: hash},
		License: input.License,
	}
	if err := item.Validate(); err != nil {
		return scouting.Referee{}, err
	}
	if err := saveNew(ctx, s.referees, "referee", item); err != nil {
		return scouting.Referee{}, err
	}

	s.current = item
	s.logger.InfoContext(ctx, "referee registered", "referee_id", item.ID)
	return item, nil
}

// Login opens the session for the user of the given type. Unknown users and
// wrong passwords both fail with ErrAuthentication.
func (s *AuthService) Login(ctx context.Context, id, password, userType string) (scouting.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	if err := s.ensureNoSession(); err != nil {
		return nil, err
	}

	role, err := scouting.ParseRole(userType)
	if err != nil {
		return nil, err
	}

	id = strings.TrimSpace(id)
	user, exists, err := s.lookupUser(ctx, role, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.logger.WarnContext(ctx, "login rejected, unknown user", "user_id", id, "role", role)
		return nil, fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	}
	if err := s.hasher.Compare(user.PasswordHash(), password); err != nil {
		s.logger.WarnContext(ctx, "login rejected, bad password", "user_id", id, "role", role)
		return nil, err
	}

	s.current = user
	s.logger.InfoContext(ctx, "user logged in", "user_id", id, "role", role)
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) {
	if s.current == nil {
		return
	}
	s.logger.InfoContext(ctx, "user logged out", "user_id", s.current.RecordID(), "role", s.current.Role())
	s.current = nil
}

func (s *AuthService) CurrentUser() (scouting.User, bool) {
	return s.current, s.current != nil
}

func (s *AuthService) lookupUser(ctx context.Context, role scouting.Role, id string) (scouting.User, bool, error) {
	switch role {
	case scouting.RolePlayer:
		item, ok, err := s.players.Find(ctx, id)
		return item, ok, wrapLookup(err, role)
	case scouting.RoleClubMember:
		item, ok, err := s.members.Find(ctx, id)
		return item, ok, wrapLookup(err, role)
	default:
		item, ok, err := s.referees.Find(ctx, id)
		return item, ok, wrapLookup(err, role)
	}
}

func wrapLookup(err error, role scouting.Role) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("get %s: %w", role, err)
}

func (s *AuthService) ensureNoSession() error {
	if s.current != nil {
		return fmt.Errorf("%w: user %s is already logged in", ErrUnauthorized, s.current.RecordID())
	}
	return nil
}

func ensureAbsent[T record.Record](ctx context.Context, repo scouting.Repository[T], kind, id string) error {
	_, exists, err := repo.Find(ctx, id)
	if err != nil {
		return fmt.Errorf("get %s: %w", kind, err)
	}
	if exists {
		return fmt.Errorf("%w: %s=%s", ErrConflict, kind, id)
	}
	return nil
}

// saveNew inserts item and turns a rejected insert into ErrConflict.
func saveNew[T record.Record](ctx context.Context, repo scouting.Repository[T], kind string, item T) error {
	ok, err := repo.Save(ctx, item)
	if err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s=%s", ErrConflict, kind, item.RecordID())
	}
	return nil
}
