package errors

import (
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// getHandler returns the current error handler.
func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *GlazeError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover("operation.name")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// Guard runs fn and recovers any panic, reporting it under op.
// It returns true when fn completed without panicking. Use it around
// calls into custom toast views so one misbehaving view cannot take
// down the controller.
func Guard(op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ReportPanic(&PanicError{
				Op:         op,
				Value:      r,
				StackTrace: CaptureStack(),
				Timestamp:  time.Now(),
			})
			ok = false
		}
	}()
	fn()
	return true
}

// CaptureStack returns the current goroutine's stack trace, trimmed of
// the capture machinery itself.
func CaptureStack() string {
	buf := make([]byte, 16*1024)
	n := runtime.Stack(buf, false)
	stack := string(buf[:n])

	// Drop the first two frames (runtime.Stack and CaptureStack).
	lines := strings.Split(stack, "\n")
	if len(lines) > 5 {
		return lines[0] + "\n" + strings.Join(lines[5:], "\n")
	}
	return stack
}
