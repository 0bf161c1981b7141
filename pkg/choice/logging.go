package choice

// Outcome classifies how a Resolve call ended.
type Outcome string

const (
	OutcomeMatched  Outcome = "matched"
	OutcomeFreeText Outcome = "free-text"
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

// ResolveEvent describes a single Resolve call. Index is -1 unless an option
// matched.
type ResolveEvent struct {
	Candidate string
	Outcome   Outcome
	Index     int
	Err       error
}

// ResolveLogger records resolve events. The resolver still returns every
// error to its caller; loggers only observe.
type ResolveLogger interface {
	LogResolve(ResolveEvent)
}

// ResolveLoggerFunc adapts a function to ResolveLogger.
type ResolveLoggerFunc func(ResolveEvent)

// LogResolve implements ResolveLogger.
func (f ResolveLoggerFunc) LogResolve(event ResolveEvent) {
	if f != nil {
		f(event)
	}
}

type noopResolveLogger struct{}

func (noopResolveLogger) LogResolve(ResolveEvent) {}
