package scouting

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
)

// Role tells which kind of account a user record is.
type Role string

const (
	RolePlayer     Role = "player"
	RoleClubMember Role = "clubmember"
	RoleReferee    Role = "referee"
)

func ParseRole(value string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "player":
		return RolePlayer, nil
	case "clubmember", "club_member", "club-member":
		return RoleClubMember, nil
	case "referee":
		return RoleReferee, nil
	default:
		return "", crerr.Wrapf(domain.ErrValidation, "invalid user type %q", value)
	}
}

// User is the part shared by every account record.
type User interface {
	record.Record
	DisplayName() string
	Role() Role
	// PasswordHash is the stored credential. It is never plaintext.
	PasswordHash() string
}

// Account holds the fields every user role persists.
type Account struct {
	ID       string
	Name     string
	Age      int
	Password string
}

func (a Account) RecordID() string {
	return a.ID
}

func (a Account) DisplayName() string {
	return a.Name
}

func (a Account) PasswordHash() string {
	return a.Password
}

func (a Account) validate(kind string) error {
	if strings.TrimSpace(a.ID) == "" {
		return crerr.Wrapf(domain.ErrValidation, "%s id is required", kind)
	}
	if strings.TrimSpace(a.Name) == "" {
		return crerr.Wrapf(domain.ErrValidation, "%s name is required", kind)
	}
	if a.Age <= 0 {
		return crerr.Wrapf(domain.ErrValidation, "%s age must be positive", kind)
	}
	return nil
}

func (a Account) fields() record.Fields {
	return record.Fields{
		"id":       a.ID,
		"name":     a.Name,
		"age":      a.Age,
		"password": a.Password,
	}
}

func readAccount(r *record.Reader) Account {
	return Account{
		ID:       r.String("id"),
		Name:     r.String("name"),
		Age:      r.Int("age"),
		Password: r.String("password"),
	}
}

var accountAttributes = []string{"id", "name", "age", "password"}

func withAccount(extra ...string) []string {
	out := make([]string, 0, len(accountAttributes)+len(extra))
	out = append(out, accountAttributes...)
	return append(out, extra...)
}
