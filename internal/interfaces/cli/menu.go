package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/platform/logging"
	"github.com/riskibarqy/scouting/internal/usecase"
)

var errExit = errors.New("exit requested")

// Services are the use cases the menu drives.
type Services struct {
	Auth    *usecase.AuthService
	Players *usecase.PlayerService
	Teams   *usecase.TeamService
	Matches *usecase.MatchService
	Reports *usecase.ReportService
}

// Menu is the interactive console. It shows the main menu while no one is
// logged in and the role menu of the session user otherwise.
type Menu struct {
	auth      *usecase.AuthService
	players   *usecase.PlayerService
	teams     *usecase.TeamService
	matches   *usecase.MatchService
	reports   *usecase.ReportService
	reportDir string

	printer *Printer
	logger  *logging.Logger
	stdin   io.ReadCloser
	stdout  io.WriteCloser
}

func NewMenu(svc Services, reportDir string, logger *logging.Logger) *Menu {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Menu{
		auth:      svc.Auth,
		players:   svc.Players,
		teams:     svc.Teams,
		matches:   svc.Matches,
		reports:   svc.Reports,
		reportDir: reportDir,
		printer:   NewPrinter(nil),
		logger:    logger.Named("cli"),
	}
}

// Run loops until the user exits, presses Ctrl+C or ctx is cancelled.
// Failed actions are reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	m.printer.Banner()
	defer m.auth.Logout(ctx)

	for ctx.Err() == nil {
		err := m.step(ctx)
		switch {
		case err == nil:
		case isExit(err):
			m.printer.Info("Goodbye.")
			return nil
		default:
			m.logger.WarnContext(ctx, "menu action failed", "error", err)
			m.printer.Error(err)
			m.pause()
		}
	}
	return nil
}

func (m *Menu) step(ctx context.Context) error {
	user, ok := m.auth.CurrentUser()
	if !ok {
		return m.mainMenu(ctx)
	}

	switch u := user.(type) {
	case scouting.Player:
		return m.playerMenu(ctx, u.ID)
	case scouting.ClubMember:
		return m.clubMemberMenu(ctx, u.ID)
	case scouting.Referee:
		return m.refereeMenu(ctx, u)
	default:
		return fmt.Errorf("unsupported user type %T", user)
	}
}

func (m *Menu) mainMenu(ctx context.Context) error {
	m.printer.Title("Main menu")
	return m.chooseOption("Choose an action", []Option{
		{Label: "Register", Handler: func() error { return m.register(ctx) }},
		{Label: "Login", Handler: func() error { return m.login(ctx) }},
		{Label: "Exit", Handler: func() error { return errExit }},
	})
}

var userTypes = []struct {
	label string
	role  scouting.Role
}{
	{label: "Player", role: scouting.RolePlayer},
	{label: "Club member", role: scouting.RoleClubMember},
	{label: "Referee", role: scouting.RoleReferee},
}

func (m *Menu) chooseRole(label string) (scouting.Role, error) {
	items := make([]string, len(userTypes))
	for i, t := range userTypes {
		items[i] = t.label
	}
	index, err := m.choose(label, items)
	if err != nil {
		return "", err
	}
	return userTypes[index].role, nil
}

func (m *Menu) login(ctx context.Context) error {
	role, err := m.chooseRole("Login as")
	if err != nil {
		return err
	}
	id, err := m.askRequired("ID")
	if err != nil {
		return err
	}
	password, err := m.askSecret("Password")
	if err != nil {
		return err
	}

	user, err := m.auth.Login(ctx, id, password, string(role))
	if err != nil {
		return err
	}
	m.printer.Success("Welcome, %s.", user.DisplayName())
	return nil
}

func (m *Menu) register(ctx context.Context) error {
	role, err := m.chooseRole("Register as")
	if err != nil {
		return err
	}

	id, err := m.askRequired("ID")
	if err != nil {
		return err
	}
	name, err := m.askRequired("Name")
	if err != nil {
		return err
	}
	password, err := m.askSecret("Password (6+ characters)")
	if err != nil {
		return err
	}

	switch role {
	case scouting.RolePlayer:
		err = m.registerPlayer(ctx, id, name, password)
	case scouting.RoleClubMember:
		err = m.registerClubMember(ctx, id, name, password)
	default:
		err = m.registerReferee(ctx, id, name, password)
	}
	if err != nil {
		return err
	}

	m.printer.Success("Registered %s as %s. You are now logged in.", id, role)
	return nil
}

func (m *Menu) registerPlayer(ctx context.Context, id, name, password string) error {
	age, err := m.askInt("Age", 18, 16, 45)
	if err != nil {
		return err
	}
	position, err := m.choosePosition("Position", "")
	if err != nil {
		return err
	}
	teamID, err := m.ask("Team ID (blank for none)", "", nil)
	if err != nil {
		return err
	}

	_, err = m.auth.RegisterPlayer(ctx, usecase.RegisterPlayerInput{
		ID:       id,
		Password: password,
		Name:     name,
		Age:      age,
		TeamID:   teamID,
		Position: position.String(),
	})
	return err
}

func (m *Menu) registerClubMember(ctx context.Context, id, name, password string) error {
	age, err := m.askInt("Age", 30, 18, 70)
	if err != nil {
		return err
	}

	items := make([]string, len(scouting.AllStaffRoles))
	for i, r := range scouting.AllStaffRoles {
		items[i] = string(r)
	}
	index, err := m.choose("Club role", items)
	if err != nil {
		return err
	}
	staffRole := scouting.AllStaffRoles[index]

	input := usecase.RegisterClubMemberInput{
		ID:       id,
		Password: password,
		Name:     name,
		Age:      age,
		Role:     string(staffRole),
	}
	if staffRole == scouting.StaffRoleCoach {
		if input.YearsExperience, err = m.askInt("Years of experience", 0, 0, 60); err != nil {
			return err
		}
		if input.Specialization, err = m.ask("Specialization", "", nil); err != nil {
			return err
		}
	}

	_, err = m.auth.RegisterClubMember(ctx, input)
	return err
}

func (m *Menu) registerReferee(ctx context.Context, id, name, password string) error {
	age, err := m.askInt("Age", 30, 18, 65)
	if err != nil {
		return err
	}
	license, err := m.askRequired("License number")
	if err != nil {
		return err
	}

	_, err = m.auth.RegisterReferee(ctx, usecase.RegisterRefereeInput{
		ID:       id,
		Password: password,
		Name:     name,
		Age:      age,
		License:  license,
	})
	return err
}

func (m *Menu) logout(ctx context.Context) error {
	m.auth.Logout(ctx)
	m.printer.Info("Logged out.")
	return nil
}

func describeError(err error) string {
	switch {
	case errors.Is(err, usecase.ErrAuthentication):
		return "invalid id or password"
	case errors.Is(err, usecase.ErrFormat):
		return fmt.Sprintf("stored data is damaged (%v)", err)
	default:
		return err.Error()
	}
}
