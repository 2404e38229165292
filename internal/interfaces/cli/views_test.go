package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/riskibarqy/scouting/internal/domain/record"
	"github.com/riskibarqy/scouting/internal/domain/scouting"
	"github.com/riskibarqy/scouting/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestPromptValidators(t *testing.T) {
	assert.Error(t, requiredText("   "))
	assert.NoError(t, requiredText("ana"))

	ageCheck := intInRange(16, 45)
	assert.NoError(t, ageCheck(" 16 "))
	assert.NoError(t, ageCheck("45"))
	assert.EqualError(t, ageCheck("46"), "value must be between 16 and 45")
	assert.EqualError(t, ageCheck("abc"), "please enter a whole number")

	assert.NoError(t, optionalInt(""))
	assert.NoError(t, optionalInt("7"))
	assert.Error(t, optionalInt("-1"))
	assert.Error(t, optionalInt("x"))
}

func TestIsExit(t *testing.T) {
	assert.True(t, isExit(promptui.ErrInterrupt))
	assert.True(t, isExit(promptui.ErrEOF))
	assert.True(t, isExit(fmt.Errorf("menu: %w", errExit)))
	assert.False(t, isExit(errors.New("boom")))
	assert.False(t, isExit(nil))
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "invalid id or password",
		describeError(fmt.Errorf("%w: invalid credentials", usecase.ErrAuthentication)))
	assert.True(t, strings.HasPrefix(
		describeError(fmt.Errorf("decode Player: %w", usecase.ErrFormat)), "stored data is damaged ("))
	assert.Equal(t, "team not found", describeError(errors.New("team not found")))
}

func TestScoreLineAndShotAccuracy(t *testing.T) {
	home, away := 3, 0
	assert.Equal(t, "-", scoreLine(scouting.Match{}))
	assert.Equal(t, "3-0", scoreLine(scouting.Match{HomeScore: &home, AwayScore: &away}))

	assert.Equal(t, "-", shotAccuracy(0, 0))
	assert.Equal(t, "66%", shotAccuracy(3, 2))
	assert.Equal(t, "100%", shotAccuracy(4, 4))
}

func TestPlayerRows(t *testing.T) {
	rows := playerRows([]scouting.Player{{
		Account:       scouting.Account{ID: "p1", Name: "Ana", Age: 22},
		Team:          record.Unresolved[scouting.Team]("t1"),
		Position:      scouting.PositionLeftBack,
		Goals:         1,
		Assists:       2,
		Shots:         3,
		ShotsOnTarget: 2,
		Clearances:    9,
		MatchesPlayed: 4,
	}})

	assert.Equal(t, [][]string{{"p1", "Ana", "22", "LI", "1", "2", "3", "2", "9", "4"}}, rows)
	assert.Len(t, rows[0], len(playerHeader))
}

func TestReportRows_MissingTeamShowsDash(t *testing.T) {
	rows := reportRows([]usecase.PlayerReportRow{
		{Name: "Ana", Position: scouting.PositionGoalkeeper, TeamName: "Halcones FC", Goals: 1, MatchesPlayed: 3},
		{Name: "Bo", Position: scouting.PositionRightWing},
	})

	assert.Equal(t, [][]string{
		{"Ana", "GK", "Halcones FC", "1", "0", "3"},
		{"Bo", "RW", "-", "0", "0", "0"},
	}, rows)
}
