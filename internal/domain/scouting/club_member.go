package scouting

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
)

// StaffRole is the label of a club member inside a team.
type StaffRole string

const (
	StaffRoleCoach   StaffRole = "coach"
	StaffRoleStaff   StaffRole = "staff"
	StaffRoleManager StaffRole = "manager"
	StaffRolePhysio  StaffRole = "physio"
)

var AllStaffRoles = []StaffRole{StaffRoleCoach, StaffRoleStaff, StaffRoleManager, StaffRolePhysio}

func ParseStaffRole(value string) (StaffRole, error) {
	role := StaffRole(strings.ToLower(strings.TrimSpace(value)))
	for _, r := range AllStaffRoles {
		if r == role {
			return r, nil
		}
	}
	return "", crerr.Wrapf(domain.ErrValidation, "invalid club role %q", value)
}

// ClubMember is a coach or other staff member attached to at most one team.
type ClubMember struct {
	Account
	Team            record.Ref[Team]
	StaffRole       StaffRole
	YearsExperience int
	Specialization  string
}

var ClubMemberCodec = record.Codec[ClubMember]{
	Name:       "ClubMember",
	Attributes: withAccount("team", "role", "years_experience", "specialization"),
	Decode:     decodeClubMember,
}

func (m ClubMember) Role() Role {
	return RoleClubMember
}

func (m ClubMember) IsCoach() bool {
	return m.StaffRole == StaffRoleCoach
}

func (m ClubMember) Validate() error {
	if err := m.Account.validate("club member"); err != nil {
		return err
	}
	if _, err := ParseStaffRole(string(m.StaffRole)); err != nil {
		return err
	}
	if m.YearsExperience < 0 {
		return crerr.Wrap(domain.ErrValidation, "years of experience must not be negative")
	}
	return nil
}

// ResolveTeam loads the member's team and keeps it on the reference.
func (m *ClubMember) ResolveTeam(ctx context.Context, teams record.Finder[Team]) (Team, bool, error) {
	ref, err := record.Resolve(ctx, m.Team, teams)
	if err != nil {
		return Team{}, false, crerr.Wrapf(err, "club member %s team", m.ID)
	}
	m.Team = ref
	team, ok := ref.Value()
	return team, ok, nil
}

func (m ClubMember) Unresolved() ClubMember {
	m.Team = m.Team.Unresolve()
	return m
}

func (m ClubMember) Serialize() record.Fields {
	out := m.Account.fields()
	out["team"] = m.Team.Serialize()
	out["role"] = string(m.StaffRole)
	out["years_experience"] = m.YearsExperience
	out["specialization"] = m.Specialization
	return out
}

func decodeClubMember(r *record.Reader) ClubMember {
	m := ClubMember{
		Account:         readAccount(r),
		Team:            record.Unresolved[Team](r.OptionalString("team")),
		YearsExperience: r.Int("years_experience"),
		Specialization:  r.OptionalString("specialization"),
	}
	role, err := ParseStaffRole(r.String("role"))
	if err != nil {
		r.Fail("role", err)
	}
	m.StaffRole = role
	return m
}
