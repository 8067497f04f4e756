package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevehiehn/win10to8/internal/pipeline"
)

type (
	statusMsg string
	noticeMsg pipeline.Notice
	promptMsg struct {
		title   string
		message string
		confirm bool // false: acknowledge only
		reply   chan<- bool
	}
	workerDoneMsg  struct{}
	spinnerTickMsg struct{}
)

// bridge is the Frontend handed to the background run. Every call becomes
// a message on one channel, so the model sees them in the order issued.
// Dialog calls block until the model answers.
type bridge struct {
	ch        chan tea.Msg
	assumeYes bool
}

func newBridge(assumeYes bool) *bridge {
	return &bridge{ch: make(chan tea.Msg, 16), assumeYes: assumeYes}
}

func (b *bridge) Status(text string) { b.ch <- statusMsg(text) }

func (b *bridge) Notice(n pipeline.Notice) { b.ch <- noticeMsg(n) }

func (b *bridge) Confirm(title, message string) bool {
	if b.assumeYes {
		b.ch <- noticeMsg(pipeline.Notice{Severity: pipeline.Info, Title: title, Message: message + " (yes)"})
		return true
	}
	return b.ask(title, message, true)
}

func (b *bridge) Inform(title, message string) {
	if b.assumeYes {
		b.ch <- noticeMsg(pipeline.Notice{Severity: pipeline.Info, Title: title, Message: message})
		return
	}
	b.ask(title, message, false)
}

func (b *bridge) ask(title, message string, confirm bool) bool {
	reply := make(chan bool, 1)
	b.ch <- promptMsg{title: title, message: message, confirm: confirm, reply: reply}
	return <-reply
}

func (b *bridge) close() { close(b.ch) }

// waitFor delivers the next message from ch, or workerDoneMsg once the
// run has closed it.
func waitFor(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return workerDoneMsg{}
		}
		return msg
	}
}
