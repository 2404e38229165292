package cli

import (
	"context"

	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/usecase"
)

func (m *Menu) playerMenu(ctx context.Context, playerID string) error {
	p, err := m.players.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	m.printer.Title("Player menu - " + p.Name)
	return m.chooseOption("Choose an action", []Option{
		{Label: "View my stats", Handler: func() error { return m.showPlayerStats(ctx, p.ID) }},
		{Label: "View my team", Handler: func() error { return m.showTeam(ctx, p.Team.ID()) }},
		{Label: "Update my profile", Handler: func() error { return m.updateProfile(ctx, p) }},
		{Label: "View my profile", Handler: func() error {
			m.showAccount(p.Account, p.Role(), [2]string{"Position", positionLabel(p.Position)}, [2]string{"Team", p.Team.ID()})
			return nil
		}},
		{Label: "Logout", Handler: func() error { return m.logout(ctx) }},
	})
}

// updateProfile edits every profile field, prefilled with the current value.
func (m *Menu) updateProfile(ctx context.Context, p scouting.Player) error {
	profile := usecase.ProfileOf(p)

	var err error
	if profile.Name, err = m.ask("Name", profile.Name, requiredText); err != nil {
		return err
	}
	if profile.Age, err = m.askInt("Age", profile.Age, 16, 45); err != nil {
		return err
	}
	position, err := m.choosePosition("Position", p.Position)
	if err != nil {
		return err
	}
	profile.Position = position.String()
	if profile.TeamID, err = m.ask("Team ID (blank for none)", profile.TeamID, nil); err != nil {
		return err
	}

	if m.confirm("Edit season counters") {
		if profile.Goals, err = m.askInt("Goals", profile.Goals, 0, 999); err != nil {
			return err
		}
		if profile.Assists, err = m.askInt("Assists", profile.Assists, 0, 999); err != nil {
			return err
		}
		if profile.Shots, err = m.askInt("Shots", profile.Shots, 0, 9999); err != nil {
			return err
		}
		if profile.ShotsOnTarget, err = m.askInt("Shots on target", profile.ShotsOnTarget, 0, profile.Shots); err != nil {
			return err
		}
		if profile.Clearances, err = m.askInt("Clearances", profile.Clearances, 0, 9999); err != nil {
			return err
		}
	}

	if _, err := m.players.UpdatePlayerProfile(ctx, p.ID, profile); err != nil {
		return err
	}
	m.printer.Success("Profile updated.")
	return nil
}
