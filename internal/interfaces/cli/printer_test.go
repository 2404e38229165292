package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTable_PadsColumns(t *testing.T) {
	lines := formatTable(
		[]string{"ID", "NAME"},
		[][]string{{"p1", "Ana"}, {"p10", "Bo"}},
	)

	assert.Equal(t, []string{
		"ID   NAME",
		"---  ----",
		"p1   Ana",
		"p10  Bo",
	}, lines)
}

func TestFormatTable_UsesDisplayWidth(t *testing.T) {
	lines := formatTable(
		[]string{"CITY", "N"},
		[][]string{{"東京", "1"}, {"Lima", "22"}, {"short"}},
	)

	assert.Equal(t, []string{
		"CITY   N",
		"-----  --",
		"東京   1",
		"Lima   22",
		"short",
	}, lines)
}

func TestPrinter_PlainOutputWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Table([]string{"ID"}, nil)
	p.KeyValues([][2]string{{"Name", "Ana"}, {"Age", "22"}})
	p.Error(errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "colour codes written to a non-terminal")
	assert.Equal(t, []string{
		"(no entries)",
		"Name: Ana",
		"Age:  22",
		"Error: boom",
	}, strings.Split(strings.TrimRight(out, "\n"), "\n"))
}

func TestPrinter_Title(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Title("Team Halcones")

	assert.Equal(t, "\nTeam Halcones\n-------------\n", buf.String())
}
