package engine

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/runner"
	"github.com/stevehiehn/win10to8/internal/template"
)

// RunContext holds state for one manifest execution.
type RunContext struct {
	RunID    string
	StateDir string // run records go to <StateDir>/runs/<RunID>
	Inputs   map[string]string
	TmplCtx  *template.Context
	Runner   runner.Runner
	Observer pipeline.Observer
	Log      *log.Entry
}

// NewRunContext creates a new execution context. folders is the map
// returned by paths.Resolve.
func NewRunContext(stateDir string, folders, inputs map[string]string, r runner.Runner, obs pipeline.Observer) *RunContext {
	if obs == nil {
		obs = pipeline.Discard
	}
	id := uuid.New().String()
	return &RunContext{
		RunID:    id,
		StateDir: stateDir,
		Inputs:   inputs,
		TmplCtx: &template.Context{
			Inputs: inputs,
			Paths:  folders,
		},
		Runner:   r,
		Observer: obs,
		Log:      log.WithField("run_id", id),
	}
}
