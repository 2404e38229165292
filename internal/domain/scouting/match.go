package scouting

import (
	"context"
	"sort"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
)

// DateLayout is the stored form of a match date.
const DateLayout = "2006-01-02"

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchFinished  MatchStatus = "finished"
	MatchValidated MatchStatus = "validated"
)

func ParseMatchStatus(value string) (MatchStatus, error) {
	switch status := MatchStatus(strings.ToLower(strings.TrimSpace(value))); status {
	case MatchScheduled, MatchFinished, MatchValidated:
		return status, nil
	default:
		return "", crerr.Wrapf(domain.ErrValidation, "invalid match status %q", value)
	}
}

// PlayerMatchStats is one player's contribution to a single match.
type PlayerMatchStats struct {
	Goals         int `validate:"gte=0"`
	Assists       int `validate:"gte=0"`
	Shots         int `validate:"gte=0"`
	ShotsOnTarget int `validate:"gte=0,ltefield=Shots"`
	Clearances    int `validate:"gte=0"`
}

// Match is a fixture between two teams officiated by one referee.
type Match struct {
	ID          string
	Date        time.Time
	HomeTeam    record.Ref[Team]
	AwayTeam    record.Ref[Team]
	HomeScore   *int
	AwayScore   *int
	Referee     record.Ref[Referee]
	Status      MatchStatus
	PlayerStats map[string]PlayerMatchStats
	Notes       string
}

var MatchCodec = record.Codec[Match]{
	Name: "Match",
	Attributes: []string{
		"id",
		"date",
		"home_team",
		"away_team",
		"home_score",
		"away_score",
		"referee",
		"status",
		"player_stats",
		"notes",
	},
	Decode: decodeMatch,
}

func (m Match) RecordID() string {
	return m.ID
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return crerr.Wrap(domain.ErrValidation, "match id is required")
	}
	if m.Date.IsZero() {
		return crerr.Wrap(domain.ErrValidation, "match date is required")
	}
	if m.HomeTeam.IsZero() || m.AwayTeam.IsZero() {
		return crerr.Wrap(domain.ErrValidation, "home and away teams are required")
	}
	if m.HomeTeam.ID() == m.AwayTeam.ID() {
		return crerr.Wrapf(domain.ErrValidation, "team %s cannot play itself", m.HomeTeam.ID())
	}
	if m.Referee.IsZero() {
		return crerr.Wrap(domain.ErrValidation, "match referee is required")
	}
	if _, err := ParseMatchStatus(string(m.Status)); err != nil {
		return err
	}
	if m.Status != MatchScheduled && (m.HomeScore == nil || m.AwayScore == nil) {
		return crerr.Wrapf(domain.ErrValidation, "%s match needs both scores", m.Status)
	}
	return nil
}

// Involves reports whether teamID plays in the match.
func (m Match) Involves(teamID string) bool {
	return teamID != "" && (m.HomeTeam.ID() == teamID || m.AwayTeam.ID() == teamID)
}

// PlayerIDs returns the ids with recorded stats, sorted.
func (m Match) PlayerIDs() []string {
	out := make([]string, 0, len(m.PlayerStats))
	for id := range m.PlayerStats {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (m *Match) ResolveTeams(ctx context.Context, teams record.Finder[Team]) (Team, Team, error) {
	home, err := record.Resolve(ctx, m.HomeTeam, teams)
	if err != nil {
		return Team{}, Team{}, crerr.Wrapf(err, "match %s home team", m.ID)
	}
	away, err := record.Resolve(ctx, m.AwayTeam, teams)
	if err != nil {
		return Team{}, Team{}, crerr.Wrapf(err, "match %s away team", m.ID)
	}
	m.HomeTeam, m.AwayTeam = home, away
	h, _ := home.Value()
	a, _ := away.Value()
	return h, a, nil
}

func (m *Match) ResolveReferee(ctx context.Context, referees record.Finder[Referee]) (Referee, bool, error) {
	ref, err := record.Resolve(ctx, m.Referee, referees)
	if err != nil {
		return Referee{}, false, crerr.Wrapf(err, "match %s referee", m.ID)
	}
	m.Referee = ref
	referee, ok := ref.Value()
	return referee, ok, nil
}

func (m Match) Unresolved() Match {
	m.HomeTeam = m.HomeTeam.Unresolve()
	m.AwayTeam = m.AwayTeam.Unresolve()
	m.Referee = m.Referee.Unresolve()
	return m
}

func (m Match) Serialize() record.Fields {
	stats := make(map[string]any, len(m.PlayerStats))
	for id, s := range m.PlayerStats {
		stats[id] = map[string]any{
			"goals":           s.Goals,
			"assists":         s.Assists,
			"shots":           s.Shots,
			"shots_on_target": s.ShotsOnTarget,
			"clearances":      s.Clearances,
		}
	}

	return record.Fields{
		"id":           m.ID,
		"date":         m.Date.Format(DateLayout),
		"home_team":    m.HomeTeam.Serialize(),
		"away_team":    m.AwayTeam.Serialize(),
		"home_score":   intOrNil(m.HomeScore),
		"away_score":   intOrNil(m.AwayScore),
		"referee":      m.Referee.Serialize(),
		"status":       string(m.Status),
		"player_stats": stats,
		"notes":        m.Notes,
	}
}

func decodeMatch(r *record.Reader) Match {
	m := Match{
		ID:        r.String("id"),
		HomeTeam:  record.Unresolved[Team](r.OptionalString("home_team")),
		AwayTeam:  record.Unresolved[Team](r.OptionalString("away_team")),
		HomeScore: r.OptionalInt("home_score"),
		AwayScore: r.OptionalInt("away_score"),
		Referee:   record.Unresolved[Referee](r.OptionalString("referee")),
		Notes:     r.OptionalString("notes"),
	}

	date, err := time.Parse(DateLayout, r.String("date"))
	if err != nil {
		r.Fail("date", err)
	}
	m.Date = date

	status, err := ParseMatchStatus(r.String("status"))
	if err != nil {
		r.Fail("status", err)
	}
	m.Status = status

	raw := r.Object("player_stats")
	m.PlayerStats = make(map[string]PlayerMatchStats, len(raw))
	for id, value := range raw {
		item, ok := value.(map[string]any)
		if !ok {
			r.Fail("player_stats."+id, crerr.Newf("expected object, got %T", value))
			continue
		}
		sr := record.NewReader("Match.player_stats."+id, record.Normalize(item))
		m.PlayerStats[id] = PlayerMatchStats{
			Goals:         sr.Int("goals"),
			Assists:       sr.Int("assists"),
			Shots:         sr.Int("shots"),
			ShotsOnTarget: sr.Int("shots_on_target"),
			Clearances:    sr.Int("clearances"),
		}
		if err := sr.Err(); err != nil {
			r.Fail("player_stats."+id, err)
		}
	}
	return m
}

func intOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
