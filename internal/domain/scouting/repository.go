package scouting

import (
	"context"

	"github.com/riskibarqy/scouting/internal/domain/record"
)

// Repository describes per-type persistence needs from use cases.
//
// Save returns false, leaving the store unchanged, when a record with the same
// id already exists. Replace returns false when no record matches id; the store
// is left unchanged in that case as well.
type Repository[T record.Record] interface {
	Find(ctx context.Context, id string) (T, bool, error)
	FindAll(ctx context.Context) ([]T, error)
	Save(ctx context.Context, item T) (bool, error)
	Delete(ctx context.Context, id string) error
	Replace(ctx context.Context, id string, item T) (bool, error)
}

type (
	PlayerRepository     = Repository[Player]
	ClubMemberRepository = Repository[ClubMember]
	RefereeRepository    = Repository[Referee]
	TeamRepository       = Repository[Team]
	MatchRepository      = Repository[Match]
)
