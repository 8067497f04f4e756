package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevehiehn/win10to8/internal/pipeline"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const maxNotices = 8

type stepState int

const (
	stepPending stepState = iota
	stepRunning
	stepDone
)

type stepView struct {
	Label string
	State stepState
}

type model struct {
	title       string
	events      <-chan tea.Msg
	steps       []stepView
	status      string
	notices     []pipeline.Notice
	prompt      *promptMsg
	spinnerTick int
	done        bool
	w           int
}

func newModel(title string, labels []string, events <-chan tea.Msg) model {
	steps := make([]stepView, len(labels))
	for i, l := range labels {
		steps[i] = stepView{Label: l}
	}
	return model{title: title, events: events, steps: steps}
}

func spinnerCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg { return spinnerTickMsg{} })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitFor(m.events), spinnerCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		return m, nil
	case spinnerTickMsg:
		if m.done {
			return m, nil
		}
		m.spinnerTick = (m.spinnerTick + 1) % len(spinnerFrames)
		return m, spinnerCmd()
	case statusMsg:
		return m.handleStatus(string(msg)), waitFor(m.events)
	case noticeMsg:
		m.notices = append(m.notices, pipeline.Notice(msg))
		return m, waitFor(m.events)
	case promptMsg:
		m.prompt = &msg
		return m, waitFor(m.events)
	case workerDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

// handleStatus advances the step list. A status that names no step is
// shown as-is and finishes whatever was running.
func (m model) handleStatus(text string) model {
	m.status = text
	for i := range m.steps {
		if m.steps[i].State == stepRunning {
			m.steps[i].State = stepDone
		}
	}
	for i := range m.steps {
		if m.steps[i].Label == text && m.steps[i].State == stepPending {
			m.steps[i].State = stepRunning
			break
		}
	}
	return m
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt == nil {
		return m, nil
	}
	answer := true
	switch key := msg.String(); {
	case m.prompt.confirm && (key == "y" || key == "Y"):
	case m.prompt.confirm && (key == "n" || key == "N" || key == "esc" || key == "ctrl+c"):
		answer = false
	case !m.prompt.confirm && (key == "enter" || key == " " || key == "esc"):
	default:
		return m, nil
	}
	m.prompt.reply <- answer
	m.prompt = nil
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	for _, s := range m.steps {
		switch s.State {
		case stepDone:
			b.WriteString(doneStyle.Render("  ✓ " + s.Label))
		case stepRunning:
			b.WriteString(runningStyle.Render("  " + spinnerFrames[m.spinnerTick] + " " + s.Label))
		default:
			b.WriteString(pendingStyle.Render("  · " + s.Label))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	notices := m.notices
	if len(notices) > maxNotices {
		notices = notices[len(notices)-maxNotices:]
	}
	if len(notices) > 0 {
		b.WriteString("\n")
	}
	for _, n := range notices {
		line := fmt.Sprintf("%s: %s", n.Title, n.Message)
		switch n.Severity {
		case pipeline.Error:
			b.WriteString(errStyle.Render("  ✗ " + line))
		case pipeline.Warning:
			b.WriteString(warnStyle.Render("  ! " + line))
		default:
			b.WriteString(infoStyle.Render("  i " + line))
		}
		b.WriteString("\n")
	}

	if m.prompt != nil {
		help := "[enter] OK"
		if m.prompt.confirm {
			help = "[y] Yes  [n] No"
		}
		body := statusStyle.Render(m.prompt.title) + "\n\n" + m.prompt.message + "\n" + helpStyle.Render(help)
		style := promptStyle
		if m.w > 8 {
			style = style.MaxWidth(m.w - 2)
		}
		b.WriteString(style.Render(body))
		b.WriteString("\n")
	}
	return b.String()
}
