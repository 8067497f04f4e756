package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/stevehiehn/win10to8/internal/pipeline"
)

// Console writes progress as plain lines and reads y/n answers from in.
type Console struct {
	mu        sync.Mutex
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// NewConsole returns a Console. With assumeYes every question is answered
// yes without reading input.
func NewConsole(in io.Reader, out io.Writer, assumeYes bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

func (c *Console) Status(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "==> %s\n", text)
}

func (c *Console) Notice(n pipeline.Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "    [%s] %s: %s\n", n.Severity, n.Title, n.Message)
}

// Confirm asks a yes/no question. End of input counts as no.
func (c *Console) Confirm(title, message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "\n%s\n%s [y/N]: ", title, message)
	if c.assumeYes {
		fmt.Fprintln(c.out, "y")
		return true
	}
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(c.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (c *Console) Inform(title, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "\n%s\n%s\n", title, message)
}
