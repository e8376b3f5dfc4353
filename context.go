package navmesh

import (
	"fmt"
	"time"
)

// LogCategory tags a Context log entry.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota
	LogWarning
	LogError
)

// TimerLabel names one of the phases Context can time.
type TimerLabel int

const (
	TimerLoad TimerLabel = iota
	TimerMerge
	TimerCompact
	TimerWrite
	maxTimers
)

const maxMessages = 1000

// Context is the build/merge-time logging and timing facility, threaded
// through RunMerge the way recast.BuildContext is threaded through the
// teacher's Recast build pipeline: a concrete type rather than an
// interface, with logging and timers individually toggleable and a no-op
// default so callers who don't care about diagnostics can ignore it.
type Context struct {
	logEnabled   bool
	timerEnabled bool

	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	numMessages int
}

// NewContext returns a Context with logging and timers both set to state.
func NewContext(state bool) *Context {
	return &Context{logEnabled: state, timerEnabled: state}
}

func (c *Context) EnableLog(state bool)   { c.logEnabled = state }
func (c *Context) EnableTimer(state bool) { c.timerEnabled = state }

func (c *Context) ResetLog() {
	if c.logEnabled {
		c.numMessages = 0
	}
}

func (c *Context) Progressf(format string, v ...interface{}) { c.log(LogProgress, format, v...) }
func (c *Context) Warningf(format string, v ...interface{})  { c.log(LogWarning, format, v...) }
func (c *Context) Errorf(format string, v ...interface{})    { c.log(LogError, format, v...) }

func (c *Context) log(category LogCategory, format string, v ...interface{}) {
	if !c.logEnabled || c.numMessages >= maxMessages {
		return
	}
	var prefix string
	switch category {
	case LogProgress:
		prefix = "PROG "
	case LogWarning:
		prefix = "WARN "
	case LogError:
		prefix = "ERR "
	}
	c.messages[c.numMessages] = prefix + fmt.Sprintf(format, v...)
	c.numMessages++
}

// DumpLog prints format (as a header) followed by every logged message.
func (c *Context) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < c.numMessages; i++ {
		fmt.Println(c.messages[i])
	}
}

func (c *Context) LogCount() int { return c.numMessages }

func (c *Context) StartTimer(label TimerLabel) {
	if c.timerEnabled {
		c.startTime[label] = time.Now()
	}
}

func (c *Context) StopTimer(label TimerLabel) {
	if c.timerEnabled {
		c.accTime[label] += time.Since(c.startTime[label])
	}
}

// AccumulatedTime returns the total time recorded under label, or 0 if
// timers are disabled.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !c.timerEnabled {
		return 0
	}
	return c.accTime[label]
}
