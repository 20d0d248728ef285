// Package notify carries transient, non-blocking user-facing messages from
// the billing services to whatever surface renders them.
package notify

import (
	"fmt"
	"log"
	"sync"
)

// Notifier receives short user-facing messages. Implementations must not
// block: a notice reports an outcome, it never drives control flow.
type Notifier interface {
	Errorf(format string, args ...interface{})
	Successf(format string, args ...interface{})
}

// LogNotifier writes notices to the standard logger.
type LogNotifier struct{}

// NewLogNotifier creates a notifier backed by the standard logger.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Errorf(format string, args ...interface{}) {
	log.Printf("[notice] "+format, args...)
}

func (n *LogNotifier) Successf(format string, args ...interface{}) {
	log.Printf("[notice] "+format, args...)
}

// Recorder captures notices for inspection in tests.
type Recorder struct {
	mu        sync.Mutex
	errors    []string
	successes []string
}

// NewRecorder creates an empty notice recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Errorf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) Successf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, fmt.Sprintf(format, args...))
}

// Errors returns a copy of the recorded error notices.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

// Successes returns a copy of the recorded success notices.
func (r *Recorder) Successes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.successes...)
}
