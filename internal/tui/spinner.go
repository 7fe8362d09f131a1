package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

// Spinner shows progress while git runs. Without a terminal it prints the
// message once instead of animating.
type Spinner struct {
	out         io.Writer
	interactive bool

	program  *tea.Program
	doneChan chan struct{}
	started  time.Time
}

func NewSpinner(interactive bool) *Spinner {
	return &Spinner{out: os.Stderr, interactive: interactive}
}

func (s *Spinner) Start(message string) {
	s.started = time.Now()

	if !s.interactive {
		fmt.Fprintf(s.out, "⏺ %s\n", message)
		return
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	s.doneChan = make(chan struct{})
	s.program = tea.NewProgram(spinnerModel{spinner: sp, text: message}, tea.WithOutput(s.out), tea.WithInput(nil))
	go func() {
		defer close(s.doneChan)
		if _, err := s.program.Run(); err != nil {
			log.Error().Err(err).Msg("Error running spinner")
		}
	}()
}

func (s *Spinner) Stop() {
	if !s.interactive || s.program == nil {
		return
	}
	s.program.Send(doneMsg{duration: time.Since(s.started)})
	<-s.doneChan
	s.program = nil
}

type doneMsg struct {
	duration time.Duration
}

type spinnerModel struct {
	spinner  spinner.Model
	text     string
	done     bool
	duration time.Duration
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.duration = msg.duration
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return fmt.Sprintf("%s done in %.2fs\n", m.text, m.duration.Seconds())
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.text)
}
