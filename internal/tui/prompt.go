package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxListHeight = 20

type item struct {
	title string
	index int
}

func (i item) FilterValue() string { return i.title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(i.title))
}

// selectModel picks one entry of a list. header is drawn above the list.
type selectModel struct {
	list      list.Model
	header    string
	choice    int
	chosen    bool
	cancelled bool
}

func newSelectModel(title, header string, options []string, defaultIndex int) selectModel {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = item{title: o, index: i}
	}

	height := min(len(options)+6, maxListHeight)
	l := list.New(items, itemDelegate{}, defaultWidth, height)
	l.Title = title
	l.SetShowTitle(title != "")
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle
	if defaultIndex >= 0 && defaultIndex < len(options) {
		l.Select(defaultIndex)
	}

	return selectModel{list: l, header: header}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				m.choice = i.index
				m.chosen = true
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.chosen {
		if i, ok := m.list.SelectedItem().(item); ok {
			return answeredStyle.Render(fmt.Sprintf("%s %s", m.list.Title, i.title)) + "\n"
		}
	}
	if m.cancelled {
		return ""
	}
	if m.header != "" {
		return fmt.Sprintf("%s\n\n%s", m.header, m.list.View())
	}
	return m.list.View()
}

// confirmModel asks a yes/no question.
type confirmModel struct {
	prompt  string
	value   bool
	done    bool
	aborted bool
}

func newConfirmModel(prompt string, defaultValue bool) confirmModel {
	return confirmModel{prompt: prompt, value: defaultValue}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.value, m.done = true, true
		return m, tea.Quit
	case "n", "N":
		m.value, m.done = false, true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return answeredStyle.Render(fmt.Sprintf("%s %s", m.prompt, answer)) + "\n"
	}
	if m.aborted {
		return ""
	}

	hint := "(y/N)"
	if m.value {
		hint = "(Y/n)"
	}
	return fmt.Sprintf("%s %s\n", promptStyle.Render(m.prompt), hintStyle.Render(hint))
}

// inputModel reads one line of free text.
type inputModel struct {
	prompt     string
	input      textinput.Model
	allowEmpty bool
	warning    string
	done       bool
	aborted    bool
}

func newInputModel(prompt string, allowEmpty bool) inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	return inputModel{prompt: prompt, input: ti, allowEmpty: allowEmpty}
}

func (m inputModel) Value() string {
	return m.input.Value()
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if !m.allowEmpty && strings.TrimSpace(m.input.Value()) == "" {
				m.warning = "A value is required."
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
		m.warning = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return answeredStyle.Render(fmt.Sprintf("%s %s", m.prompt, m.input.Value())) + "\n"
	}
	if m.aborted {
		return ""
	}

	view := fmt.Sprintf("%s\n%s\n", promptStyle.Render(m.prompt), m.input.View())
	if m.warning != "" {
		view += warningStyle.Render(m.warning) + "\n"
	}
	return view
}
