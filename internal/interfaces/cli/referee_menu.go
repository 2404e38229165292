package cli

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/usecase"
)

func (m *Menu) refereeMenu(ctx context.Context, referee scouting.Referee) error {
	m.printer.Title("Referee menu - " + referee.Name)
	return m.chooseOption("Choose an action", []Option{
		{Label: "View assigned matches", Handler: func() error {
			items, err := m.matches.ListRefereeMatches(ctx, referee.ID)
			if err != nil {
				return err
			}
			m.showMatches("Assigned matches", items)
			m.pause()
			return nil
		}},
		{Label: "Report match result", Handler: func() error { return m.reportResult(ctx, referee) }},
		{Label: "View player stats", Handler: func() error { return m.askPlayerStats(ctx) }},
		{Label: "View team", Handler: func() error { return m.askTeam(ctx) }},
		{Label: "Player report", Handler: func() error { return m.playerReport(ctx) }},
		{Label: "View my profile", Handler: func() error {
			m.showAccount(referee.Account, referee.Role(), [2]string{"License", referee.License})
			return nil
		}},
		{Label: "Logout", Handler: func() error { return m.logout(ctx) }},
	})
}

func (m *Menu) reportResult(ctx context.Context, referee scouting.Referee) error {
	items, err := m.matches.ListRefereeMatches(ctx, referee.ID)
	if err != nil {
		return err
	}

	scheduled := make([]scouting.Match, 0, len(items))
	for _, match := range items {
		if match.Status == scouting.MatchScheduled {
			scheduled = append(scheduled, match)
		}
	}
	if len(scheduled) == 0 {
		m.printer.Warn("No scheduled matches to report.")
		m.pause()
		return nil
	}

	labels := make([]string, len(scheduled))
	for i, match := range scheduled {
		labels[i] = fmt.Sprintf("%s %s: %s vs %s", match.ID, match.Date.Format(scouting.DateLayout), match.HomeTeam.ID(), match.AwayTeam.ID())
	}
	index, err := m.choose("Match", labels)
	if err != nil {
		return err
	}
	match := scheduled[index]

	input := usecase.ReportResultInput{
		MatchID:     match.ID,
		PlayerStats: map[string]scouting.PlayerMatchStats{},
	}
	if input.HomeScore, err = m.askInt("Home score", 0, 0, 99); err != nil {
		return err
	}
	if input.AwayScore, err = m.askInt("Away score", 0, 0, 99); err != nil {
		return err
	}

	for m.confirm("Add player stats") {
		playerID, err := m.askRequired("Player ID")
		if err != nil {
			return err
		}
		stats, err := m.askMatchStats()
		if err != nil {
			return err
		}
		input.PlayerStats[playerID] = stats
	}

	if input.Notes, err = m.ask("Notes", "", nil); err != nil {
		return err
	}

	if _, err := m.matches.ReportResult(ctx, referee.ID, input); err != nil {
		return err
	}
	m.printer.Success("Result %d-%d reported for match %s.", input.HomeScore, input.AwayScore, match.ID)
	return nil
}

func (m *Menu) askMatchStats() (scouting.PlayerMatchStats, error) {
	var (
		stats scouting.PlayerMatchStats
		err   error
	)
	if stats.Goals, err = m.askInt("Goals", 0, 0, 20); err != nil {
		return stats, err
	}
	if stats.Assists, err = m.askInt("Assists", 0, 0, 20); err != nil {
		return stats, err
	}
	if stats.Shots, err = m.askInt("Shots", 0, 0, 50); err != nil {
		return stats, err
	}
	if stats.ShotsOnTarget, err = m.askInt("Shots on target", 0, 0, stats.Shots); err != nil {
		return stats, err
	}
	if stats.Clearances, err = m.askInt("Clearances", 0, 0, 50); err != nil {
		return stats, err
	}
	return stats, nil
}

func (m *Menu) playerReport(ctx context.Context) error {
	filter, err := m.askFilter()
	if err != nil {
		return err
	}
	rows, err := m.reports.PlayerReport(ctx, filter)
	if err != nil {
		return err
	}

	m.printer.Title(fmt.Sprintf("Player report (%d)", len(rows)))
	m.printer.Table(reportHeader, reportRows(rows))

	if len(rows) == 0 || !m.confirm("Export to CSV") {
		return nil
	}
	name, err := m.askRequired("File name")
	if err != nil {
		return err
	}
	path, err := m.reports.ExportCSVFile(ctx, m.reportDir, name, rows)
	if err != nil {
		return err
	}
	m.printer.Success("Report exported to %s.", path)
	return nil
}

var reportHeader = []string{"NAME", "POS", "TEAM", "G", "A", "MP"}

func reportRows(rows []usecase.PlayerReportRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		team := row.TeamName
		if team == "" {
			team = "-"
		}
		out = append(out, []string{
			row.Name,
			row.Position.String(),
			team,
			fmt.Sprint(row.Goals),
			fmt.Sprint(row.Assists),
			fmt.Sprint(row.MatchesPlayed),
		})
	}
	return out
}
