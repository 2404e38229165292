package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/usecase"
)

var positionNames = map[scouting.Position]string{
	scouting.PositionGoalkeeper:          "Goalkeeper",
	scouting.PositionRightBack:           "Right back",
	scouting.PositionLeftBack:            "Left back",
	scouting.PositionCentreBack:          "Centre back",
	scouting.PositionDefensiveMidfielder: "Defensive midfielder",
	scouting.PositionCentralMidfielder:   "Central midfielder",
	scouting.PositionLeftWing:            "Left wing",
	scouting.PositionAttackingMidfielder: "Attacking midfielder",
	scouting.PositionCentreForward:       "Centre forward",
	scouting.PositionRightWing:           "Right wing",
}

func positionLabel(p scouting.Position) string {
	if name, ok := positionNames[p]; ok {
		return fmt.Sprintf("%s (%s)", p, name)
	}
	return p.String()
}

// choosePosition offers every position, starting on current when set.
func (m *Menu) choosePosition(label string, current scouting.Position) (scouting.Position, error) {
	items := make([]string, len(scouting.AllPositions))
	for i, p := range scouting.AllPositions {
		items[i] = positionLabel(p)
		if p == current {
			items[i] += " *"
		}
	}
	index, err := m.choose(label, items)
	if err != nil {
		return "", err
	}
	return scouting.AllPositions[index], nil
}

var playerHeader = []string{"ID", "NAME", "AGE", "POS", "G", "A", "SH", "SOT", "CLR", "MP"}

func playerRows(items []scouting.Player) [][]string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			strconv.Itoa(p.Age),
			p.Position.String(),
			strconv.Itoa(p.Goals),
			strconv.Itoa(p.Assists),
			strconv.Itoa(p.Shots),
			strconv.Itoa(p.ShotsOnTarget),
			strconv.Itoa(p.Clearances),
			strconv.Itoa(p.MatchesPlayed),
		})
	}
	return rows
}

var matchHeader = []string{"ID", "DATE", "HOME", "AWAY", "SCORE", "STATUS"}

func matchRows(items []scouting.Match) [][]string {
	rows := make([][]string, 0, len(items))
	for _, match := range items {
		rows = append(rows, []string{
			match.ID,
			match.Date.Format(scouting.DateLayout),
			match.HomeTeam.ID(),
			match.AwayTeam.ID(),
			scoreLine(match),
			string(match.Status),
		})
	}
	return rows
}

func scoreLine(match scouting.Match) string {
	if match.HomeScore == nil || match.AwayScore == nil {
		return "-"
	}
	return fmt.Sprintf("%d-%d", *match.HomeScore, *match.AwayScore)
}

// shotAccuracy is shots on target over shots, as a whole percentage.
func shotAccuracy(shots, onTarget int) string {
	if shots == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", onTarget*100/shots)
}

func (m *Menu) showPlayerStats(ctx context.Context, playerID string) error {
	stats, err := m.players.GetPlayerStats(ctx, playerID)
	if err != nil {
		return err
	}

	team := stats.TeamID
	if team == "" {
		team = "(free agent)"
	}

	m.printer.Title("Player stats - " + stats.Name)
	m.printer.KeyValues([][2]string{
		{"ID", stats.PlayerID},
		{"Team", team},
		{"Position", positionLabel(stats.Position)},
		{"Matches played", strconv.Itoa(stats.MatchesPlayed)},
		{"Goals", strconv.Itoa(stats.Goals)},
		{"Assists", strconv.Itoa(stats.Assists)},
		{"Shots", strconv.Itoa(stats.Shots)},
		{"Shots on target", strconv.Itoa(stats.ShotsOnTarget)},
		{"Shot accuracy", shotAccuracy(stats.Shots, stats.ShotsOnTarget)},
		{"Clearances", strconv.Itoa(stats.Clearances)},
	})
	m.pause()
	return nil
}

func (m *Menu) askPlayerStats(ctx context.Context) error {
	playerID, err := m.askRequired("Player ID")
	if err != nil {
		return err
	}
	return m.showPlayerStats(ctx, playerID)
}

func (m *Menu) showTeam(ctx context.Context, teamID string) error {
	if strings.TrimSpace(teamID) == "" {
		m.printer.Warn("You are not assigned to a team.")
		m.pause()
		return nil
	}

	info, err := m.teams.GetTeamInfo(ctx, teamID)
	if err != nil {
		return err
	}

	coach := "(none)"
	if info.HasCoach {
		coach = fmt.Sprintf("%s (%s)", info.Coach.Name, info.Coach.ID)
	}
	staff := make([]string, 0, len(info.Staff))
	for _, member := range info.Staff {
		staff = append(staff, fmt.Sprintf("%s (%s)", member.Name, member.StaffRole))
	}

	m.printer.Title("Team - " + info.Team.Name)
	m.printer.KeyValues([][2]string{
		{"ID", info.Team.ID},
		{"Coach", coach},
		{"Staff", strings.Join(staff, ", ")},
		{"Players", strconv.Itoa(len(info.Players))},
	})
	m.printer.Table(playerHeader, playerRows(info.Players))
	m.pause()
	return nil
}

func (m *Menu) askTeam(ctx context.Context) error {
	teams, err := m.teams.ListTeams(ctx)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		m.printer.Warn("No teams registered yet.")
		m.pause()
		return nil
	}

	items := make([]string, len(teams))
	for i, team := range teams {
		items[i] = fmt.Sprintf("%s (%s)", team.Name, team.ID)
	}
	index, err := m.choose("Team", items)
	if err != nil {
		return err
	}
	return m.showTeam(ctx, teams[index].ID)
}

// askFilter collects optional player filters. Blank answers match everything.
func (m *Menu) askFilter() (usecase.PlayerFilter, error) {
	var (
		filter usecase.PlayerFilter
		err    error
	)

	m.printer.Info("Optional filters, leave blank to skip.")
	if filter.Position, err = m.ask("Position", "", nil); err != nil {
		return filter, err
	}
	if filter.TeamID, err = m.ask("Team ID", "", nil); err != nil {
		return filter, err
	}
	if filter.NameContains, err = m.ask("Name contains", "", nil); err != nil {
		return filter, err
	}
	if filter.MinAge, err = m.askOptionalInt("Minimum age"); err != nil {
		return filter, err
	}
	if filter.MaxAge, err = m.askOptionalInt("Maximum age"); err != nil {
		return filter, err
	}
	if filter.MinGoals, err = m.askOptionalInt("Minimum goals"); err != nil {
		return filter, err
	}
	return filter, nil
}

func (m *Menu) searchPlayers(ctx context.Context) error {
	filter, err := m.askFilter()
	if err != nil {
		return err
	}
	items, err := m.players.SearchPlayers(ctx, filter)
	if err != nil {
		return err
	}

	m.printer.Title(fmt.Sprintf("Players (%d)", len(items)))
	m.printer.Table(playerHeader, playerRows(items))
	m.pause()
	return nil
}

func (m *Menu) showMatches(title string, items []scouting.Match) {
	m.printer.Title(title)
	m.printer.Table(matchHeader, matchRows(items))
}

func (m *Menu) showAccount(account scouting.Account, role scouting.Role, extra ...[2]string) {
	m.printer.Title("My profile")
	pairs := [][2]string{
		{"ID", account.ID},
		{"Name", account.Name},
		{"Age", strconv.Itoa(account.Age)},
		{"Type", string(role)},
	}
	m.printer.KeyValues(append(pairs, extra...))
	m.pause()
}
