package sprig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Screen registration errors.
var (
	ErrScreenNameEmpty = errors.New("sprig: screen name is empty")
	ErrDuplicateScreen = errors.New("sprig: screen name already registered")
	ErrNotScreen       = errors.New("sprig: node is not a screen")
)

// ErrorKind identifies the category of a reported error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPaint indicates a subtree failed to paint.
	KindPaint
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPaint:
		return "paint"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DrawError reports that a node's subtree failed to paint.
type DrawError struct {
	// Node identifies the failing node (see Node.String).
	Node string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("draw %s [%s]: %v", e.Node, e.Kind, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.Tick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives the failures the render loop isolates.
type ErrorHandler interface {
	// HandleError is called for a subtree paint failure.
	HandleError(err error)
	// HandlePanic is called for a panic recovered at frame or input-event level.
	HandlePanic(err *PanicError)
}

// LogHandler writes every failure as a "[sprig]" line to the package log
// output. Panics include their stack trace.
type LogHandler struct{}

// HandleError logs err.
func (LogHandler) HandleError(err error) {
	logf("error: %v", err)
}

// HandlePanic logs the panic and its stack.
func (LogHandler) HandlePanic(err *PanicError) {
	logf("%v\n%s", err, err.StackTrace)
}

// logOutput is where sprig writes diagnostics.
var logOutput io.Writer = os.Stderr

// SetLogOutput redirects sprig diagnostics. Pass nil to restore stderr.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logOutput = w
}

func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[sprig] "+format+"\n", args...)
}

// recoverPanic converts a recovered panic value into a *PanicError.
func recoverPanic(op string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: captureStack(),
		Timestamp:  time.Now(),
	}
}

// captureStack returns the current call stack as a string, skipping the
// runtime frames and captureStack itself.
func captureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
