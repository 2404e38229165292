package scouting

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
)

// Player is a registered footballer with running season counters.
type Player struct {
	Account
	Team          record.Ref[Team]
	Position      Position
	Goals         int
	Assists       int
	Shots         int
	ShotsOnTarget int
	Clearances    int
	MatchesPlayed int
}

var PlayerCodec = record.Codec[Player]{
	Name: "Player",
	Attributes: withAccount(
		"team",
		"position",
		"goals",
		"assists",
		"shots",
		"shots_on_target",
		"clearances",
		"matches_played",
	),
	Decode: decodePlayer,
}

func (p Player) Role() Role {
	return RolePlayer
}

func (p Player) Validate() error {
	if err := p.Account.validate("player"); err != nil {
		return err
	}
	if !p.Position.Valid() {
		return crerr.Wrapf(domain.ErrValidation, "invalid player position %q", p.Position)
	}
	for name, v := range map[string]int{
		"goals":           p.Goals,
		"assists":         p.Assists,
		"shots":           p.Shots,
		"shots_on_target": p.ShotsOnTarget,
		"clearances":      p.Clearances,
		"matches_played":  p.MatchesPlayed,
	} {
		if v < 0 {
			return crerr.Wrapf(domain.ErrValidation, "player %s must not be negative", name)
		}
	}
	if p.ShotsOnTarget > p.Shots {
		return crerr.Wrapf(domain.ErrValidation, "shots on target (%d) exceed shots (%d)", p.ShotsOnTarget, p.Shots)
	}
	return nil
}

// SetPosition assigns a position tag. An unknown tag is rejected and the
// current position is kept.
func (p *Player) SetPosition(tag string) error {
	pos, err := ParsePosition(tag)
	if err != nil {
		return err
	}
	p.Position = pos
	return nil
}

// ResolveTeam loads the player's team through teams and keeps the loaded
// value on the reference. ok is false when the player has no team.
func (p *Player) ResolveTeam(ctx context.Context, teams record.Finder[Team]) (Team, bool, error) {
	ref, err := record.Resolve(ctx, p.Team, teams)
	if err != nil {
		return Team{}, false, crerr.Wrapf(err, "player %s team", p.ID)
	}
	p.Team = ref
	team, ok := ref.Value()
	return team, ok, nil
}

// Unresolved returns a copy whose team reference holds the identifier only.
func (p Player) Unresolved() Player {
	p.Team = p.Team.Unresolve()
	return p
}

func (p Player) Serialize() record.Fields {
	out := p.Account.fields()
	out["team"] = p.Team.Serialize()
	out["position"] = p.Position.String()
	out["goals"] = p.Goals
	out["assists"] = p.Assists
	out["shots"] = p.Shots
	out["shots_on_target"] = p.ShotsOnTarget
	out["clearances"] = p.Clearances
	out["matches_played"] = p.MatchesPlayed
	return out
}

func decodePlayer(r *record.Reader) Player {
	p := Player{
		Account:       readAccount(r),
		Team:          record.Unresolved[Team](r.OptionalString("team")),
		Goals:         r.Int("goals"),
		Assists:       r.Int("assists"),
		Shots:         r.Int("shots"),
		ShotsOnTarget: r.Int("shots_on_target"),
		Clearances:    r.Int("clearances"),
		MatchesPlayed: r.Int("matches_played"),
	}
	pos, err := ParsePosition(r.String("position"))
	if err != nil {
		r.Fail("position", err)
	}
	p.Position = pos
	return p
}
