package reboot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/runner/runnertest"
)

type scriptedDialog struct {
	answer   bool
	confirms []string
	informs  []string
}

func (d *scriptedDialog) Confirm(title, message string) bool {
	d.confirms = append(d.confirms, message)
	return d.answer
}

func (d *scriptedDialog) Inform(title, message string) {
	d.informs = append(d.informs, title)
}

type countingRestarter struct {
	calls int
	err   error
}

func (r *countingRestarter) Restart(context.Context) error {
	r.calls++
	return r.err
}

func summary(succeeded int) *pipeline.Summary {
	return &pipeline.Summary{TotalSteps: 15, RequiredCount: 2, SucceededRequired: succeeded}
}

func TestDecide(t *testing.T) {
	assert.Equal(t, Restart, Decide(summary(2)))
	assert.Equal(t, Ask, Decide(summary(1)))
	assert.Equal(t, Ask, Decide(summary(0)))
}

func TestDecideIgnoresOptionalFailures(t *testing.T) {
	s := summary(2)
	s.Failures = []pipeline.Failure{{Step: "reg-awm", Message: "Registry file not found: AWM.reg"}}
	assert.Equal(t, Restart, Decide(s))
}

func TestFinishRestartsWithoutPrompt(t *testing.T) {
	d := &scriptedDialog{}
	r := &countingRestarter{}

	out, err := Finish(context.Background(), summary(2), d, r)
	require.NoError(t, err)
	assert.Equal(t, Restarted, out)
	assert.Empty(t, d.confirms)
	assert.Equal(t, []string{"Success"}, d.informs)
	assert.Equal(t, 1, r.calls)
}

func TestFinishPromptsOnPartialFailure(t *testing.T) {
	for _, answer := range []bool{true, false} {
		d := &scriptedDialog{answer: answer}
		r := &countingRestarter{}

		out, err := Finish(context.Background(), summary(0), d, r)
		require.NoError(t, err)
		require.Len(t, d.confirms, 1)
		assert.Contains(t, d.confirms[0], "0/2 applications installed successfully")
		if answer {
			assert.Equal(t, Restarted, out)
			assert.Equal(t, 1, r.calls)
		} else {
			assert.Equal(t, Declined, out)
			assert.Zero(t, r.calls)
		}
	}
}

func TestFinishReportsRestartError(t *testing.T) {
	d := &scriptedDialog{}
	r := &countingRestarter{err: errors.New("access denied")}

	out, err := Finish(context.Background(), summary(2), d, r)
	require.Error(t, err)
	assert.Equal(t, RestartFailed, out)
	assert.Equal(t, []string{"Success", "Restart Error"}, d.informs)
}

func TestShutdownCommand(t *testing.T) {
	fake := runnertest.New()
	require.NoError(t, (&Shutdown{Runner: fake}).Restart(context.Background()))

	calls := fake.CallsTo("shutdown")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"/r", "/t", "0"}, calls[0].Args)
	assert.True(t, calls[0].Elevate)
}

func TestShutdownNonZeroExit(t *testing.T) {
	fake := runnertest.New().Exit("shutdown", 1190)
	assert.Error(t, (&Shutdown{Runner: fake}).Restart(context.Background()))
}
