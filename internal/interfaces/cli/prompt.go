package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// Option is one entry of a menu.
type Option struct {
	Label   string
	Handler func() error
}

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}:",
	Active:   "▶ {{ . | cyan }}",
	Inactive: "  {{ . }}",
	Selected: "✔ {{ . | green }}",
	Help:     `{{ "Navigate:" | faint }} {{ .NextKey }} {{ .PrevKey }} {{ "|" | faint }} {{ "Exit:" | faint }} Ctrl + C`,
}

func (m *Menu) choose(label string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, errors.New("nothing to choose from")
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Size:      10,
		Templates: selectTemplates,
		Stdin:     m.stdin,
		Stdout:    m.stdout,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return -1, err
	}
	return index, nil
}

// chooseOption shows options and runs the handler of the chosen one.
func (m *Menu) chooseOption(label string, options []Option) error {
	items := make([]string, len(options))
	for i, option := range options {
		items[i] = fmt.Sprintf("%d. %s", i+1, option.Label)
	}

	index, err := m.choose(label, items)
	if err != nil {
		return err
	}
	return options[index].Handler()
}

func (m *Menu) ask(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: def != "",
		Validate:  validate,
		Stdin:     m.stdin,
		Stdout:    m.stdout,
	}

	out, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (m *Menu) askRequired(label string) (string, error) {
	return m.ask(label, "", requiredText)
}

func (m *Menu) askSecret(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Mask:     '*',
		Validate: requiredText,
		Stdin:    m.stdin,
		Stdout:   m.stdout,
	}
	return prompt.Run()
}

func (m *Menu) askInt(label string, def, min, max int) (int, error) {
	out, err := m.ask(label, strconv.Itoa(def), intInRange(min, max))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(out)
}

// askOptionalInt returns 0 when the answer is left blank.
func (m *Menu) askOptionalInt(label string) (int, error) {
	out, err := m.ask(label, "", optionalInt)
	if err != nil || out == "" {
		return 0, err
	}
	return strconv.Atoi(out)
}

func (m *Menu) confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     m.stdin,
		Stdout:    m.stdout,
	}
	_, err := prompt.Run()
	return err == nil
}

func (m *Menu) pause() {
	prompt := promptui.Prompt{
		Label:  "Press Enter to continue",
		Stdin:  m.stdin,
		Stdout: m.stdout,
	}
	_, _ = prompt.Run()
}

func requiredText(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("value is required")
	}
	return nil
}

func intInRange(min, max int) promptui.ValidateFunc {
	return func(input string) error {
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return errors.New("please enter a whole number")
		}
		if n < min || n > max {
			return fmt.Errorf("value must be between %d and %d", min, max)
		}
		return nil
	}
}

func optionalInt(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if n, err := strconv.Atoi(input); err != nil || n < 0 {
		return errors.New("please enter a whole number, or leave blank")
	}
	return nil
}

// isExit reports whether err ends the interactive session.
func isExit(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, errExit)
}
