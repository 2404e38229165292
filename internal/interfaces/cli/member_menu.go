package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/usecase"
)

func (m *Menu) clubMemberMenu(ctx context.Context, memberID string) error {
	member, err := m.teams.GetClubMember(ctx, memberID)
	if err != nil {
		return err
	}
	teamID := member.Team.ID()

	options := []Option{
		{Label: "View team players", Handler: func() error { return m.showTeam(ctx, teamID) }},
		{Label: "View player stats", Handler: func() error { return m.askPlayerStats(ctx) }},
		{Label: "Search players", Handler: func() error { return m.searchPlayers(ctx) }},
	}
	if teamID != "" {
		options = append(options,
			Option{Label: "Manage team", Handler: func() error { return m.manageTeam(ctx, member) }},
			Option{Label: "Team matches", Handler: func() error { return m.teamMatches(ctx, member) }},
		)
	}
	if member.IsCoach() && teamID == "" {
		options = append(options, Option{Label: "Create team", Handler: func() error { return m.createTeam(ctx, member) }})
	}
	options = append(options,
		Option{Label: "View my profile", Handler: func() error {
			m.showAccount(member.Account, member.Role(),
				[2]string{"Club role", string(member.StaffRole)},
				[2]string{"Team", teamID},
				[2]string{"Experience", strconv.Itoa(member.YearsExperience) + " years"},
				[2]string{"Specialization", member.Specialization},
			)
			return nil
		}},
		Option{Label: "Logout", Handler: func() error { return m.logout(ctx) }},
	)

	m.printer.Title(fmt.Sprintf("Club member menu - %s (%s)", member.Name, member.StaffRole))
	return m.chooseOption("Choose an action", options)
}

func (m *Menu) createTeam(ctx context.Context, member scouting.ClubMember) error {
	id, err := m.askRequired("Team ID")
	if err != nil {
		return err
	}
	name, err := m.askRequired("Team name")
	if err != nil {
		return err
	}

	team, err := m.teams.CreateTeam(ctx, usecase.CreateTeamInput{ID: id, Name: name, CoachID: member.ID})
	if err != nil {
		return err
	}
	m.printer.Success("Team %s created.", team.Name)
	return nil
}

func (m *Menu) manageTeam(ctx context.Context, member scouting.ClubMember) error {
	teamID := member.Team.ID()

	options := []Option{
		{Label: "Add player", Handler: func() error {
			playerID, err := m.askRequired("Player ID to add")
			if err != nil {
				return err
			}
			if err := m.teams.AddPlayer(ctx, member.ID, teamID, playerID); err != nil {
				return err
			}
			m.printer.Success("Player %s added.", playerID)
			return nil
		}},
		{Label: "Remove player", Handler: func() error {
			playerID, err := m.askRequired("Player ID to remove")
			if err != nil {
				return err
			}
			if err := m.teams.RemovePlayer(ctx, member.ID, teamID, playerID); err != nil {
				return err
			}
			m.printer.Success("Player %s removed.", playerID)
			return nil
		}},
		{Label: "Add staff member", Handler: func() error {
			staffID, err := m.askRequired("Club member ID")
			if err != nil {
				return err
			}
			if err := m.teams.AddStaff(ctx, member.ID, teamID, staffID); err != nil {
				return err
			}
			m.printer.Success("Club member %s added to the staff.", staffID)
			return nil
		}},
		{Label: "Schedule match", Handler: func() error { return m.scheduleMatch(ctx, teamID) }},
	}
	if member.IsCoach() {
		options = append(options,
			Option{Label: "Rename team", Handler: func() error {
				name, err := m.askRequired("New team name")
				if err != nil {
					return err
				}
				if _, err := m.teams.RenameTeam(ctx, member.ID, teamID, name); err != nil {
					return err
				}
				m.printer.Success("Team renamed to %s.", name)
				return nil
			}},
			Option{Label: "Delete team", Handler: func() error {
				if !m.confirm("Delete team " + teamID) {
					return nil
				}
				if err := m.teams.DeleteTeam(ctx, member.ID, teamID); err != nil {
					return err
				}
				m.printer.Success("Team %s deleted.", teamID)
				return nil
			}},
		)
	}
	options = append(options, Option{Label: "Back", Handler: func() error { return nil }})

	m.printer.Title("Manage team " + teamID)
	return m.chooseOption("Choose an action", options)
}

func (m *Menu) scheduleMatch(ctx context.Context, homeTeamID string) error {
	date, err := m.ask("Date (YYYY-MM-DD)", "", requiredText)
	if err != nil {
		return err
	}
	awayTeamID, err := m.askRequired("Away team ID")
	if err != nil {
		return err
	}
	refereeID, err := m.askRequired("Referee ID")
	if err != nil {
		return err
	}

	match, err := m.matches.ScheduleMatch(ctx, usecase.ScheduleMatchInput{
		Date:       date,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		RefereeID:  refereeID,
	})
	if err != nil {
		return err
	}
	m.printer.Success("Match %s scheduled for %s.", match.ID, match.Date.Format(scouting.DateLayout))
	return nil
}

// teamMatches lists the team's matches and offers to validate finished ones.
func (m *Menu) teamMatches(ctx context.Context, member scouting.ClubMember) error {
	items, err := m.matches.ListTeamMatches(ctx, member.Team.ID())
	if err != nil {
		return err
	}
	m.showMatches("Team matches", items)

	finished := make([]scouting.Match, 0, len(items))
	for _, match := range items {
		if match.Status == scouting.MatchFinished {
			finished = append(finished, match)
		}
	}
	if len(finished) == 0 || !m.confirm("Validate a finished match") {
		return nil
	}

	labels := make([]string, len(finished))
	for i, match := range finished {
		labels[i] = fmt.Sprintf("%s %s vs %s (%s)", match.ID, match.HomeTeam.ID(), match.AwayTeam.ID(), scoreLine(match))
	}
	index, err := m.choose("Match to validate", labels)
	if err != nil {
		return err
	}

	match, err := m.matches.ValidateMatch(ctx, member.ID, finished[index].ID)
	if err != nil {
		return err
	}
	m.printer.Success("Match %s validated. Player stats were updated.", match.ID)
	return nil
}
