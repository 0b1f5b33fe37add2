package util

import (
	"fmt"
	"os"
	"time"
)

// Timer logs elapsed wall time on Close.
type Timer interface {
	Close()
}

type timerImpl struct {
	label string
	start time.Time
}

// Close logs the elapsed time since the timer was created.
func (t *timerImpl) Close() {
	fmt.Fprintf(os.Stderr, "%s: %d milliseconds\n", t.label, time.Since(t.start).Milliseconds())
}

// LogTimer creates a Timer that reports elapsed milliseconds to stderr.
func LogTimer(label string) Timer {
	return &timerImpl{label: label, start: time.Now()}
}
