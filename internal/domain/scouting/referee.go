package scouting

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
	"github.com/riskibarqy/scouting/internal/domain/record"
)

// Referee officiates matches and reports their results.
type Referee struct {
	Account
	License string
}

var RefereeCodec = record.Codec[Referee]{
	Name:       "Referee",
	Attributes: withAccount("license"),
	Decode:     decodeReferee,
}

func (r Referee) Role() Role {
	return RoleReferee
}

func (r Referee) Validate() error {
	if err := r.Account.validate("referee"); err != nil {
		return err
	}
	if strings.TrimSpace(r.License) == "" {
		return crerr.Wrap(domain.ErrValidation, "referee license is required")
	}
	return nil
}

func (r Referee) Serialize() record.Fields {
	out := r.Account.fields()
	out["license"] = r.License
	return out
}

func decodeReferee(r *record.Reader) Referee {
	return Referee{
		Account: readAccount(r),
		License: r.String("license"),
	}
}
