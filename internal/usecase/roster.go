package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
)

// getByID loads one record or fails with ErrNotFound.
func getByID[T record.Record](ctx context.Context, repo scouting.Repository[T], kind, id string) (T, error) {
	var zero T

	id = strings.TrimSpace(id)
	if id == "" {
		return zero, fmt.Errorf("%w: %s id is required", ErrInvalidInput, kind)
	}

	item, exists, err := repo.Find(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", kind, err)
	}
	if !exists {
		return zero, fmt.Errorf("%w: %s=%s", ErrNotFound, kind, id)
	}

	return item, nil
}

// replaceExisting writes item over its stored record and reports a vanished
// record as ErrNotFound.
func replaceExisting[T record.Record](ctx context.Context, repo scouting.Repository[T], kind string, item T) error {
	ok, err := repo.Replace(ctx, item.RecordID(), item)
	if err != nil {
		return fmt.Errorf("replace %s: %w", kind, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s=%s", ErrNotFound, kind, item.RecordID())
	}

	return nil
}

// movePlayer points p at teamID and keeps both team rosters in step. An empty
// teamID releases the player. p itself is not written.
func movePlayer(ctx context.Context, teams scouting.TeamRepository, p *scouting.Player, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	current := p.Team.ID()
	if current == teamID {
		return nil
	}

	if teamID != "" {
		next, err := getByID(ctx, teams, "team", teamID)
		if err != nil {
			return err
		}
		if next.AddPlayer(p.ID) {
			if err := replaceExisting(ctx, teams, "team", next); err != nil {
				return err
			}
		}
	}

	if current != "" {
		prev, exists, err := teams.Find(ctx, current)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if exists && prev.RemovePlayer(p.ID) {
			if err := replaceExisting(ctx, teams, "team", prev); err != nil {
				return err
			}
		}
	}

	p.Team = record.Unresolved[scouting.Team](teamID)
	return nil
}
