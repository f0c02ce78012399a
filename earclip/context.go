package earclip

import (
	"fmt"
	"time"
)

// LogCategory classifies a BuildContext log entry.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // A progress log entry.
	LogWarning                         // A warning log entry.
	LogError                           // An error log entry.
)

// TimerLabel identifies one of the build phases a BuildContext can time.
type TimerLabel int

const (
	TimerTotal TimerLabel = iota
	TimerLoadContours
	TimerEliminateHoles
	TimerIndexCurve
	TimerEarClip
	timerCount
)

const maxMessages = 1000

// BuildContext carries optional logging and timing through a
// triangulation call. It does not provide its own output sink beyond
// DumpLog; a caller that wants progress narrated sets EnableLog(true)
// and inspects the accumulated messages, or calls DumpLog directly.
//
// The zero value is a valid, disabled BuildContext. Use NewBuildContext
// to get one with logging and timers enabled.
type BuildContext struct {
	startTime [timerCount]time.Time
	accTime   [timerCount]time.Duration

	messages    []string
	logEnabled  bool
	timerEnabled bool
}

// NewBuildContext returns a BuildContext with logging and timers set to
// state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{
		logEnabled:   state,
		timerEnabled: state,
	}
}

// EnableLog enables or disables logging.
func (ctx *BuildContext) EnableLog(state bool) { ctx.logEnabled = state }

// EnableTimer enables or disables the performance timers.
func (ctx *BuildContext) EnableTimer(state bool) { ctx.timerEnabled = state }

// ResetLog clears all log entries.
func (ctx *BuildContext) ResetLog() {
	if ctx.logEnabled {
		ctx.messages = ctx.messages[:0]
	}
}

func (ctx *BuildContext) Progressf(format string, v ...interface{}) { ctx.log(LogProgress, format, v...) }
func (ctx *BuildContext) Warningf(format string, v ...interface{})  { ctx.log(LogWarning, format, v...) }
func (ctx *BuildContext) Errorf(format string, v ...interface{})   { ctx.log(LogError, format, v...) }

func (ctx *BuildContext) log(category LogCategory, format string, v ...interface{}) {
	if ctx == nil || !ctx.logEnabled || len(ctx.messages) >= maxMessages {
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
	ctx.messages = append(ctx.messages, prefix+fmt.Sprintf(format, v...))
}

// LogMessages returns the accumulated log entries in order.
func (ctx *BuildContext) LogMessages() []string {
	if ctx == nil {
		return nil
	}
	return ctx.messages
}

// DumpLog prints format followed by every accumulated log message.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for _, msg := range ctx.messages {
		fmt.Println(msg)
	}
}

// StartTimer starts the named timer.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx != nil && ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer stops the named timer, accumulating elapsed time.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx != nil && ctx.timerEnabled {
		ctx.accTime[label] += time.Since(ctx.startTime[label])
	}
}

// AccumulatedTime returns the total time recorded for label, or 0 if
// timers are disabled.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx == nil || !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
