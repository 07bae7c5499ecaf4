// Package types holds state shared by the UI and its helpers.
package types

import (
	"fmt"
	"time"
)

// LoadingState tracks a background load shown with a spinner.
type LoadingState struct {
	IsLoading bool
	Message   string
	StartTime time.Time
}

// Start marks a load as running since now.
func (s *LoadingState) Start(msg string, now time.Time) {
	s.IsLoading = true
	s.Message = msg
	s.StartTime = now
}

// Stop clears the state.
func (s *LoadingState) Stop() {
	*s = LoadingState{}
}

// Elapsed is the time since Start, or zero when idle.
func (s LoadingState) Elapsed(now time.Time) time.Duration {
	if !s.IsLoading {
		return 0
	}
	return now.Sub(s.StartTime)
}

// Status renders the message with the elapsed time once it passes a second.
func (s LoadingState) Status(now time.Time) string {
	if !s.IsLoading {
		return ""
	}
	if e := s.Elapsed(now); e >= time.Second {
		return fmt.Sprintf("%s (%s)", s.Message, e.Truncate(time.Second))
	}
	return s.Message
}
