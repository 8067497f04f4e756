package pipeline

// Severity of a Notice.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notice is a user-facing message raised while a step runs.
type Notice struct {
	Step     string
	Severity Severity
	Title    string
	Message  string
}

// Observer receives progress from the background run. Calls arrive in the
// order they were issued, from a single goroutine.
type Observer interface {
	Status(text string)
	Notice(n Notice)
}

// Discard ignores everything.
var Discard Observer = discard{}

type discard struct{}

func (discard) Status(string) {}
func (discard) Notice(Notice) {}
