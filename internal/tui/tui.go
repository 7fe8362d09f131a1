package tui

import (
	"fmt"

	"gitcz/internal/core"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

const defaultWidth = 100

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	promptStyle       = lipgloss.NewStyle().Bold(true)
	hintStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	answeredStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warningStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	messageStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
)

type MenuAction int

const (
	CommitThis MenuAction = iota
	CopyToClipboard
	EditAgain
	Cancel
)

var menu = []struct {
	title  string
	action MenuAction
}{
	{"✅ Commit this", CommitThis},
	{"📋 Copy to clipboard and exit", CopyToClipboard},
	{"✏️  Edit again", EditAgain},
	{"❌ Cancel", Cancel},
}

// Terminal asks questions with Bubble Tea widgets. It implements core.Prompter.
type Terminal struct {
	opts []tea.ProgramOption
}

// NewTerminal returns a Terminal; opts are passed to every Bubble Tea program.
func NewTerminal(opts ...tea.ProgramOption) *Terminal {
	return &Terminal{opts: opts}
}

var _ core.Prompter = (*Terminal)(nil)

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m, t.opts...).Run()
	if err != nil {
		log.Debug().Err(err).Msg("Bubble Tea program failed")
		return nil, fmt.Errorf("error running Bubble Tea program: %w", err)
	}
	return final, nil
}

func (t *Terminal) Select(prompt string, options []string, defaultIndex int) (int, bool, error) {
	final, err := t.run(newSelectModel(prompt, "", options, defaultIndex))
	if err != nil {
		return 0, false, err
	}

	m, ok := final.(selectModel)
	if !ok || !m.chosen {
		return 0, false, nil
	}
	return m.choice, true, nil
}

func (t *Terminal) Confirm(prompt string, defaultValue bool) (bool, error) {
	final, err := t.run(newConfirmModel(prompt, defaultValue))
	if err != nil {
		return false, err
	}

	m, ok := final.(confirmModel)
	if !ok || m.aborted {
		return false, core.ErrUserAborted
	}
	return m.value, nil
}

func (t *Terminal) Input(prompt string, allowEmpty bool) (string, error) {
	final, err := t.run(newInputModel(prompt, allowEmpty))
	if err != nil {
		return "", err
	}

	m, ok := final.(inputModel)
	if !ok || m.aborted {
		return "", core.ErrUserAborted
	}
	return m.Value(), nil
}

// Review shows the rendered message and asks what to do with it.
// Quitting the menu counts as Cancel.
func (t *Terminal) Review(message string) (MenuAction, error) {
	titles := make([]string, len(menu))
	for i, entry := range menu {
		titles[i] = entry.title
	}

	final, err := t.run(newSelectModel("", renderCommitMessage(message), titles, 0))
	if err != nil {
		return Cancel, err
	}

	m, ok := final.(selectModel)
	if !ok || !m.chosen {
		return Cancel, nil
	}
	return menu[m.choice].action, nil
}

func renderCommitMessage(message string) string {
	return messageStyle.Render(message)
}

// WriteClipboard writes content to the system clipboard.
func WriteClipboard(content string) error {
	log.Debug().Int("bytes", len(content)).Msg("Copying commit message to clipboard")
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
