package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterPlayerJoinsTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	got, err := env.auth.RegisterPlayer(ctx, RegisterPlayerInput{
		ID:       " hal-lw-01 ",
		Password: "secret1",
		Name:     "Ines Caro",
		Age:      20,
		TeamID:   memory.TeamIDHalcones,
		Position: "lw",
	})
	if err != nil {
		t.Fatalf("register player: %v", err)
	}
	if got.ID != "hal-lw-01" || got.Position != scouting.PositionLeftWing {
		t.Fatalf("unexpected player: %+v", got)
	}
	if got.Password == "secret1" {
		t.Fatalf("password stored in plaintext")
	}

	stored, found, err := env.repos.Players.Find(ctx, "hal-lw-01")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, memory.TeamIDHalcones, stored.Team.ID())

	team, _, err := env.repos.Teams.Find(ctx, memory.TeamIDHalcones)
	require.NoError(t, err)
	assert.True(t, team.HasPlayer("hal-lw-01"), "roster: %v", record.IDs(team.Players))

	user, ok := env.auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, scouting.RolePlayer, user.Role())
}

func TestAuthService_RegisterRequiresNoSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	if _, err := env.auth.Login(ctx, "ref-mendez", memory.DemoPassword, "referee"); err != nil {
		t.Fatalf("login: %v", err)
	}
	_, err := env.auth.RegisterReferee(ctx, RegisterRefereeInput{
		ID: "ref-new", Password: "secret1", Name: "New", Age: 30, License: "L-NEW",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := env.auth.Login(ctx, "ref-okafor", memory.DemoPassword, "referee"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("second login: expected ErrUnauthorized, got %v", err)
	}

	env.auth.Logout(ctx)
	if _, ok := env.auth.CurrentUser(); ok {
		t.Fatalf("session should be closed")
	}
	env.auth.Logout(ctx)
}

func TestAuthService_RegisterPlayerRejections(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	valid := RegisterPlayerInput{ID: "p-new", Password: "secret1", Name: "New", Age: 20, Position: "GK"}

	cases := map[string]struct {
		mutate func(*RegisterPlayerInput)
		want   error
		msg    string
	}{
		"too young":    {mutate: func(in *RegisterPlayerInput) { in.Age = 15 }, want: ErrInvalidInput, msg: "Age must be 16 or more"},
		"short pass":   {mutate: func(in *RegisterPlayerInput) { in.Password = "abc" }, want: ErrInvalidInput, msg: "Password must be at least 6 characters"},
		"bad position": {mutate: func(in *RegisterPlayerInput) { in.Position = "ST" }, want: ErrInvalidInput},
		"duplicate id": {mutate: func(in *RegisterPlayerInput) { in.ID = "hal-gk-01" }, want: ErrConflict},
		"unknown team": {mutate: func(in *RegisterPlayerInput) { in.TeamID = "team-none" }, want: ErrNotFound},
		"blank name":   {mutate: func(in *RegisterPlayerInput) { in.Name = "   " }, want: ErrInvalidInput, msg: "Name is required"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			input := valid
			tc.mutate(&input)

			_, err := env.auth.RegisterPlayer(ctx, input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if tc.msg != "" && !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("error %q should mention %q", err, tc.msg)
			}
			if _, ok := env.auth.CurrentUser(); ok {
				t.Fatalf("failed registration must not open a session")
			}

			players, err := env.repos.Players.FindAll(ctx)
			require.NoError(t, err)
			assert.Len(t, players, 9)
		})
	}
}

func TestAuthService_RegisterClubMemberDropsCoachFieldsForStaff(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	got, err := env.auth.RegisterClubMember(ctx, RegisterClubMemberInput{
		ID:              "cm-new",
		Password:        "secret1",
		Name:            "Pia Lund",
		Age:             33,
		Role:            "Physio",
		YearsExperience: 9,
		Specialization:  "knees",
	})
	require.NoError(t, err)
	assert.Equal(t, scouting.StaffRolePhysio, got.StaffRole)
	assert.Zero(t, got.YearsExperience)
	assert.Empty(t, got.Specialization)
	assert.True(t, got.Team.IsZero())

	env.auth.Logout(ctx)
	_, err = env.auth.RegisterClubMember(ctx, RegisterClubMemberInput{
		ID: "cm-other", Password: "secret1", Name: "X", Age: 40, Role: "chairman",
	})
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}

func TestAuthService_RegisterRefereeLicenseIsUnique(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.RegisterReferee(ctx, RegisterRefereeInput{
		ID: "ref-new", Password: "secret1", Name: "New Ref", Age: 30, License: "fifa-2291",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	got, err := env.auth.RegisterReferee(ctx, RegisterRefereeInput{
		ID: "ref-new", Password: "secret1", Name: "New Ref", Age: 30, License: "FIFA-0001",
	})
	require.NoError(t, err)
	assert.Equal(t, scouting.RoleReferee, got.Role())
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)

	cases := map[string]struct {
		id, password, userType string
		want                   error
	}{
		"wrong password": {"cm-ortega", "nope", "clubmember", ErrAuthentication},
		"unknown user":   {"cm-nobody", memory.DemoPassword, "clubmember", ErrAuthentication},
		"wrong role":     {"cm-ortega", memory.DemoPassword, "player", ErrAuthentication},
		"bad user type":  {"cm-ortega", memory.DemoPassword, "admin", ErrInvalidInput},
	}
	for name, tc := range cases {
		if _, err := env.auth.Login(ctx, tc.id, tc.password, tc.userType); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", name, tc.want, err)
		}
		if _, ok := env.auth.CurrentUser(); ok {
			t.Fatalf("%s: failed login must not open a session", name)
		}
	}

	user, err := env.auth.Login(ctx, " cm-ortega ", memory.DemoPassword, "club_member")
	require.NoError(t, err)
	member, ok := user.(scouting.ClubMember)
	require.True(t, ok, "got %T", user)
	assert.Equal(t, memory.TeamIDHalcones, member.Team.ID())
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(4)
	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, h.Compare(hash, "secret1"))
	assert.True(t, errors.Is(h.Compare(hash, "secret2"), ErrAuthentication))
	assert.True(t, errors.Is(h.Compare("not-a-hash", "secret1"), ErrAuthentication))

	if NewBcryptHasher(99).cost != NewBcryptHasher(0).cost {
		t.Fatalf("out of range costs should fall back to the default")
	}
}
