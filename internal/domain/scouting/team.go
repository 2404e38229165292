package scouting

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
)

// Team groups a coach, players and staff. Player and staff order is kept.
type Team struct {
	ID      string
	Name    string
	Coach   record.Ref[ClubMember]
	Players []record.Ref[Player]
	Staff   []record.Ref[ClubMember]
}

var TeamCodec = record.Codec[Team]{
	Name:       "Team",
	Attributes: []string{"id", "name", "coach", "players", "staff"},
	Decode:     decodeTeam,
}

func (t Team) RecordID() string {
	return t.ID
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return crerr.Wrap(domain.ErrValidation, "team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return crerr.Wrap(domain.ErrValidation, "team name is required")
	}
	return nil
}

func (t Team) HasPlayer(playerID string) bool {
	return indexOf(t.Players, playerID) >= 0
}

// AddPlayer appends playerID unless it is already listed.
func (t *Team) AddPlayer(playerID string) bool {
	if playerID == "" || t.HasPlayer(playerID) {
		return false
	}
	t.Players = append(t.Players, record.Unresolved[Player](playerID))
	return true
}

func (t *Team) RemovePlayer(playerID string) bool {
	idx := indexOf(t.Players, playerID)
	if idx < 0 {
		return false
	}
	t.Players = append(t.Players[:idx:idx], t.Players[idx+1:]...)
	return true
}

func (t Team) HasStaff(memberID string) bool {
	return indexOf(t.Staff, memberID) >= 0
}

func (t *Team) AddStaff(memberID string) bool {
	if memberID == "" || t.HasStaff(memberID) {
		return false
	}
	t.Staff = append(t.Staff, record.Unresolved[ClubMember](memberID))
	return true
}

func (t *Team) RemoveStaff(memberID string) bool {
	idx := indexOf(t.Staff, memberID)
	if idx < 0 {
		return false
	}
	t.Staff = append(t.Staff[:idx:idx], t.Staff[idx+1:]...)
	return true
}

// ResolveCoach loads the coach and keeps it on the reference.
func (t *Team) ResolveCoach(ctx context.Context, members record.Finder[ClubMember]) (ClubMember, bool, error) {
	ref, err := record.Resolve(ctx, t.Coach, members)
	if err != nil {
		return ClubMember{}, false, crerr.Wrapf(err, "team %s coach", t.ID)
	}
	t.Coach = ref
	coach, ok := ref.Value()
	return coach, ok, nil
}

// ResolvePlayers loads every listed player in roster order.
func (t *Team) ResolvePlayers(ctx context.Context, players record.Finder[Player]) ([]Player, error) {
	refs, err := record.ResolveAll(ctx, t.Players, players)
	if err != nil {
		return nil, crerr.Wrapf(err, "team %s players", t.ID)
	}
	t.Players = refs
	return values(refs), nil
}

func (t *Team) ResolveStaff(ctx context.Context, members record.Finder[ClubMember]) ([]ClubMember, error) {
	refs, err := record.ResolveAll(ctx, t.Staff, members)
	if err != nil {
		return nil, crerr.Wrapf(err, "team %s staff", t.ID)
	}
	t.Staff = refs
	return values(refs), nil
}

// Unresolved returns a copy whose references hold identifiers only.
func (t Team) Unresolved() Team {
	t.Coach = t.Coach.Unresolve()
	t.Players = record.UnresolvedList[Player](record.IDs(t.Players))
	t.Staff = record.UnresolvedList[ClubMember](record.IDs(t.Staff))
	return t
}

func (t Team) Serialize() record.Fields {
	return record.Fields{
		"id":      t.ID,
		"name":    t.Name,
		"coach":   t.Coach.Serialize(),
		"players": record.IDs(t.Players),
		"staff":   record.IDs(t.Staff),
	}
}

func decodeTeam(r *record.Reader) Team {
	return Team{
		ID:      r.String("id"),
		Name:    r.String("name"),
		Coach:   record.Unresolved[ClubMember](r.OptionalString("coach")),
		Players: record.UnresolvedList[Player](r.StringList("players")),
		Staff:   record.UnresolvedList[ClubMember](r.StringList("staff")),
	}
}

func indexOf[T any](refs []record.Ref[T], id string) int {
	for i, ref := range refs {
		if ref.ID() == id {
			return i
		}
	}
	return -1
}

func values[T any](refs []record.Ref[T]) []T {
	out := make([]T, 0, len(refs))
	for _, ref := range refs {
		if v, ok := ref.Value(); ok {
			out = append(out, v)
		}
	}
	return out
}
