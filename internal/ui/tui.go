package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

// RunTUI starts work on a background goroutine and renders its progress
// until work returns. labels pre-populate the step list.
func RunTUI(title string, labels []string, assumeYes bool, work func(Frontend)) error {
	b := newBridge(assumeYes)
	go func() {
		defer b.close()
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("install worker panicked: %v", r)
			}
		}()
		work(b)
	}()

	p := tea.NewProgram(newModel(title, labels, b.ch))
	_, err := p.Run()
	return err
}
