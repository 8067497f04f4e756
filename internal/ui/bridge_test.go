package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevehiehn/win10to8/internal/pipeline"
)

func TestBridgeDeliversInOrder(t *testing.T) {
	b := newBridge(false)
	answered := make(chan bool, 1)
	go func() {
		defer b.close()
		b.Status("Copying AWM files...")
		b.Notice(pipeline.Notice{Title: "Warning", Message: "AWM folder not found in Files directory!"})
		answered <- b.Confirm("Warning", "Restart?")
	}()

	next := waitFor(b.ch)
	assert.Equal(t, statusMsg("Copying AWM files..."), next())
	n, ok := next().(noticeMsg)
	require.True(t, ok)
	assert.Equal(t, "Warning", n.Title)

	p, ok := next().(promptMsg)
	require.True(t, ok)
	assert.True(t, p.confirm)
	p.reply <- true
	assert.True(t, <-answered)

	assert.Equal(t, workerDoneMsg{}, next())
}

func TestBridgeAssumeYesDoesNotBlock(t *testing.T) {
	b := newBridge(true)
	assert.True(t, b.Confirm("Confirm Installation", "Continue?"))
	b.Inform("Success", "done")
	b.close()

	var got []string
	for msg := range b.ch {
		n, ok := msg.(noticeMsg)
		require.True(t, ok)
		got = append(got, n.Title)
	}
	assert.Equal(t, []string{"Confirm Installation", "Success"}, got)
}
