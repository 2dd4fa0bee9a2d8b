package rtin

import (
	"fmt"
	"io"
	"time"
)

// LogCategory classifies a Context log entry.
type LogCategory int

// Log categories, mirrored after recast's RC_LOG_* constants.
const (
	LogProgress LogCategory = 1 + iota
	LogWarning
	LogError
)

// TimerLabel names one of the phases BuildContext can time.
type TimerLabel int

// The phases of Driver.BuildMesh that a BuildContext can time independently.
const (
	TimerErrorMapBuild TimerLabel = iota
	TimerSelection
	TimerMeshAssembly
	maxTimers
)

// Contexter is the pluggable half of Context: a concrete type overriding
// these five methods decides where log lines and timer results actually go.
// Grounded directly on recast.Contexter — a Context with no Contexter
// attached is the same thing as passing nil to go-detour's build functions:
// logging and timing become no-ops.
type Contexter interface {
	doLog(category LogCategory, msg string)
	doResetLog()
	doStartTimer(label TimerLabel)
	doStopTimer(label TimerLabel)
	doAccumulatedTime(label TimerLabel) time.Duration
}

// Context wraps a Contexter with enable/disable flags, so call sites never
// have to check for a nil implementation themselves.
type Context struct {
	Contexter
	logEnabled   bool
	timerEnabled bool
}

// NewContext returns a Context. enabled controls both logging and timing;
// ctxer may be nil, in which case every operation is a no-op regardless of
// enabled.
func NewContext(enabled bool, ctxer Contexter) *Context {
	return &Context{Contexter: ctxer, logEnabled: enabled, timerEnabled: enabled}
}

func (c *Context) log(category LogCategory, format string, args ...interface{}) {
	if c == nil || c.Contexter == nil || !c.logEnabled {
		return
	}
	c.doLog(category, fmt.Sprintf(format, args...))
}

// Progressf logs a progress message.
func (c *Context) Progressf(format string, args ...interface{}) { c.log(LogProgress, format, args...) }

// Warningf logs a warning message.
func (c *Context) Warningf(format string, args ...interface{}) { c.log(LogWarning, format, args...) }

// Errorf logs an error message.
func (c *Context) Errorf(format string, args ...interface{}) { c.log(LogError, format, args...) }

func (c *Context) startTimer(label TimerLabel) {
	if c == nil || c.Contexter == nil || !c.timerEnabled {
		return
	}
	c.doStartTimer(label)
}

func (c *Context) stopTimer(label TimerLabel) {
	if c == nil || c.Contexter == nil || !c.timerEnabled {
		return
	}
	c.doStopTimer(label)
}

// AccumulatedTime returns the total time spent in label, or 0 if timing is
// disabled or label was never started.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if c == nil || c.Contexter == nil || !c.timerEnabled {
		return 0
	}
	return c.doAccumulatedTime(label)
}

const maxLogMessages = 1000

// BuildContext is the default Contexter: it accumulates up to
// maxLogMessages log lines (later ones are dropped) and timer durations in a
// fixed array, exactly like
// go-detour's BuildContext (née buildcontext.go), generalized from
// go-detour's fixed RC_MAX_TIMERS phases to this package's three build
// phases.
type BuildContext struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages []string
}

// NewBuildContext returns a ready-to-use BuildContext.
func NewBuildContext() *BuildContext {
	return &BuildContext{messages: make([]string, 0, 64)}
}

func (bc *BuildContext) doResetLog() {
	bc.messages = bc.messages[:0]
}

func (bc *BuildContext) doLog(category LogCategory, msg string) {
	if len(bc.messages) >= maxLogMessages {
		return
	}
	prefix := "PROG"
	switch category {
	case LogWarning:
		prefix = "WARN"
	case LogError:
		prefix = "ERR"
	}
	bc.messages = append(bc.messages, prefix+" "+msg)
}

func (bc *BuildContext) doStartTimer(label TimerLabel) {
	bc.startTime[label] = time.Now()
}

func (bc *BuildContext) doStopTimer(label TimerLabel) {
	bc.accTime[label] += time.Since(bc.startTime[label])
}

func (bc *BuildContext) doAccumulatedTime(label TimerLabel) time.Duration {
	return bc.accTime[label]
}

// Messages returns the accumulated log lines, oldest first.
func (bc *BuildContext) Messages() []string {
	return bc.messages
}

// DumpLog writes the accumulated log lines to w, one per line, prefixed by
// header — mirrors BuildContext.dumpLog in go-detour.
func (bc *BuildContext) DumpLog(w io.Writer, header string) {
	fmt.Fprintln(w, header)
	for _, m := range bc.messages {
		fmt.Fprintln(w, m)
	}
}
