// Package ui holds the foreground adapters for an install run: a
// bubbletea TUI and a plain line-based console.
package ui

import (
	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/reboot"
)

// Frontend is everything the background run talks to.
type Frontend interface {
	pipeline.Observer
	reboot.Dialog
}
