package scouting

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting/internal/domain"
)

// Position is a field position tag.
type Position string

const (
	PositionGoalkeeper          Position = "GK"
	PositionRightBack           Position = "LD"
	PositionLeftBack            Position = "LI"
	PositionCentreBack          Position = "DFC"
	PositionDefensiveMidfielder Position = "MCD"
	PositionCentralMidfielder   Position = "MC"
	PositionLeftWing            Position = "LW"
	PositionAttackingMidfielder Position = "MCO"
	PositionCentreForward       Position = "DC"
	PositionRightWing           Position = "RW"
)

// AllPositions is ordered as the positions are offered to users.
var AllPositions = []Position{
	PositionGoalkeeper,
	PositionRightBack,
	PositionLeftBack,
	PositionCentreBack,
	PositionDefensiveMidfielder,
	PositionCentralMidfielder,
	PositionLeftWing,
	PositionAttackingMidfielder,
	PositionCentreForward,
	PositionRightWing,
}

// ParsePosition canonicalizes tag, case-insensitively.
func ParsePosition(tag string) (Position, error) {
	value := Position(strings.ToUpper(strings.TrimSpace(tag)))
	for _, p := range AllPositions {
		if p == value {
			return p, nil
		}
	}
	return "", crerr.Wrapf(domain.ErrValidation, "invalid position %q", tag)
}

func (p Position) Valid() bool {
	_, err := ParsePosition(string(p))
	return err == nil
}

func (p Position) String() string {
	return string(p)
}
