package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "scouting"

const (
	TeamIDHalcones = "team-halcones"
	TeamIDToros    = "team-toros"

	RefereeIDMendez = "ref-mendez"
)

func SeedTeams() []scouting.Team {
	return []scouting.Team{
		{
			ID:    TeamIDHalcones,
			Name:  "Halcones FC",
			Coach: record.Unresolved[scouting.ClubMember]("cm-ortega"),
			Players: record.UnresolvedList[scouting.Player]([]string{
				"hal-gk-01", "hal-dfc-01", "hal-mc-01", "hal-dc-01",
			}),
			Staff: record.UnresolvedList[scouting.ClubMember]([]string{"cm-ruiz"}),
		},
		{
			ID:    TeamIDToros,
			Name:  "Toros United",
			Coach: record.Unresolved[scouting.ClubMember]("cm-blake"),
			Players: record.UnresolvedList[scouting.Player]([]string{
				"tor-gk-01", "tor-ld-01", "tor-mco-01", "tor-rw-01",
			}),
		},
	}
}

// SeedPlayers returns players whose team references mirror SeedTeams. Every
// account shares passwordHash.
func SeedPlayers(passwordHash string) []scouting.Player {
	player := func(id, name string, age int, teamID string, pos scouting.Position, goals, assists, shots, onTarget, clearances, played int) scouting.Player {
		return scouting.Player{
			Account:       scouting.Account{ID: id, Name: name, Age: age, Password: passwordHash},
			Team:          record.Unresolved[scouting.Team](teamID),
			Position:      pos,
			Goals:         goals,
			Assists:       assists,
			Shots:         shots,
			ShotsOnTarget: onTarget,
			Clearances:    clearances,
			MatchesPlayed: played,
		}
	}

	return []scouting.Player{
		player("hal-gk-01", "Iker Salvatierra", 29, TeamIDHalcones, scouting.PositionGoalkeeper, 0, 0, 0, 0, 14, 12),
		player("hal-dfc-01", "Mateo Quiroga", 24, TeamIDHalcones, scouting.PositionCentreBack, 1, 0, 6, 2, 41, 12),
		player("hal-mc-01", "Tomas Arrieta", 22, TeamIDHalcones, scouting.PositionCentralMidfielder, 3, 7, 19, 8, 9, 11),
		player("hal-dc-01", "Bruno Escalante", 26, TeamIDHalcones, scouting.PositionCentreForward, 11, 3, 42, 23, 2, 12),
		player("tor-gk-01", "Owen Hartley", 31, TeamIDToros, scouting.PositionGoalkeeper, 0, 0, 0, 0, 10, 12),
		player("tor-ld-01", "Dario Ferri", 21, TeamIDToros, scouting.PositionRightBack, 0, 2, 4, 1, 33, 10),
		player("tor-mco-01", "Lucas Brandt", 25, TeamIDToros, scouting.PositionAttackingMidfielder, 6, 9, 27, 13, 5, 12),
		player("tor-rw-01", "Samir Haddad", 19, TeamIDToros, scouting.PositionRightWing, 4, 4, 21, 10, 1, 9),
		player("free-mcd-01", "Emil Nordqvist", 27, "", scouting.PositionDefensiveMidfielder, 2, 1, 11, 4, 18, 0),
	}
}

func SeedClubMembers(passwordHash string) []scouting.ClubMember {
	return []scouting.ClubMember{
		{
			Account:         scouting.Account{ID: "cm-ortega", Name: "Ramon Ortega", Age: 52, Password: passwordHash},
			Team:            record.Unresolved[scouting.Team](TeamIDHalcones),
			StaffRole:       scouting.StaffRoleCoach,
			YearsExperience: 18,
			Specialization:  "pressing",
		},
		{
			Account:   scouting.Account{ID: "cm-ruiz", Name: "Elena Ruiz", Age: 38, Password: passwordHash},
			Team:      record.Unresolved[scouting.Team](TeamIDHalcones),
			StaffRole: scouting.StaffRolePhysio,
		},
		{
			Account:         scouting.Account{ID: "cm-blake", Name: "Harold Blake", Age: 47, Password: passwordHash},
			Team:            record.Unresolved[scouting.Team](TeamIDToros),
			StaffRole:       scouting.StaffRoleCoach,
			YearsExperience: 12,
			Specialization:  "set pieces",
		},
		{
			Account:         scouting.Account{ID: "cm-varga", Name: "Nora Varga", Age: 41, Password: passwordHash},
			StaffRole:       scouting.StaffRoleCoach,
			YearsExperience: 6,
			Specialization:  "youth development",
		},
	}
}

func SeedReferees(passwordHash string) []scouting.Referee {
	return []scouting.Referee{
		{
			Account: scouting.Account{ID: RefereeIDMendez, Name: "Julia Mendez", Age: 36, Password: passwordHash},
			License: "FIFA-2291",
		},
		{
			Account: scouting.Account{ID: "ref-okafor", Name: "Daniel Okafor", Age: 44, Password: passwordHash},
			License: "FIFA-1874",
		},
	}
}

func SeedMatches() []scouting.Match {
	return []scouting.Match{
		{
			ID:          "match-seed-001",
			Date:        time.Date(2026, 11, 7, 0, 0, 0, 0, time.UTC),
			HomeTeam:    record.Unresolved[scouting.Team](TeamIDHalcones),
			AwayTeam:    record.Unresolved[scouting.Team](TeamIDToros),
			Referee:     record.Unresolved[scouting.Referee](RefereeIDMendez),
			Status:      scouting.MatchScheduled,
			PlayerStats: map[string]scouting.PlayerMatchStats{},
		},
	}
}

// Seed fills empty repositories with the demo data set. Repositories that
// already hold records are left alone.
func Seed(ctx context.Context, repos repository.Repositories, passwordHash string) error {
	if err := seedInto(ctx, repos.Teams, "team", SeedTeams()); err != nil {
		return err
	}
	if err := seedInto(ctx, repos.Players, "player", SeedPlayers(passwordHash)); err != nil {
		return err
	}
	if err := seedInto(ctx, repos.ClubMembers, "club member", SeedClubMembers(passwordHash)); err != nil {
		return err
	}
	if err := seedInto(ctx, repos.Referees, "referee", SeedReferees(passwordHash)); err != nil {
		return err
	}
	return seedInto(ctx, repos.Matches, "match", SeedMatches())
}

func seedInto[T record.Record](ctx context.Context, repo scouting.Repository[T], kind string, items []T) error {
	existing, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", kind, err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, item := range items {
		if _, err := repo.Save(ctx, item); err != nil {
			return fmt.Errorf("seed %s %s: %w", kind, item.RecordID(), err)
		}
	}
	return nil
}
