package trigger

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// ErrExit is returned when the user chooses to exit.
var ErrExit = errors.New("exit")

const (
	exitChoice   = "Exit"
	runAllChoice = "Run all checks"
	menuPageSize = 16
)

// Asker shows a prompt; survey.AskOne in production.
type Asker func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Menu is the one-shot button surface: each selection fires one command.
type Menu struct {
	table *Table
	ask   Asker
}

// NewMenu creates a menu over the command table.
func NewMenu(table *Table) *Menu {
	return &Menu{table: table, ask: survey.AskOne}
}

// Show displays the buttons once and invokes the selected command.
func (m *Menu) Show(ctx context.Context) error {
	choices := make([]string, 0, len(m.table.order)+2)
	commands := make(map[string]string, len(m.table.order))

	if m.table.Has(RunAllCommand) {
		choices = append(choices, runAllChoice)
		commands[runAllChoice] = RunAllCommand
	}

	for _, name := range m.table.order {
		if name == RunAllCommand {
			continue
		}

		choices = append(choices, name)
		commands[name] = name
	}

	choices = append(choices, exitChoice)

	var selected string
	prompt := &survey.Select{
		Message:  "Which check would you like to run?",
		Options:  choices,
		PageSize: menuPageSize,
	}

	if err := m.ask(prompt, &selected); err != nil {
		return ErrExit
	}

	if selected == exitChoice {
		return ErrExit
	}

	name, ok := commands[selected]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, selected)
	}

	return m.table.Invoke(ctx, name)
}
