// Package feedbacktest provides a recording sound and haptics device for
// tests of code that plays feedback.
package feedbacktest

import (
	"context"

	"github.com/abhisek/brainquiz/internal/feedback"
)

// Recorder keeps every sound and haptic it receives. A non-nil Err is
// returned from every call after recording.
type Recorder struct {
	Sounds  []feedback.Sound
	Haptics []feedback.Haptic
	Err     error
}

var (
	_ feedback.SoundPlayer = (*Recorder)(nil)
	_ feedback.Haptics     = (*Recorder)(nil)
)

func (r *Recorder) PlaySound(_ context.Context, s feedback.Sound) error {
	r.Sounds = append(r.Sounds, s)
	return r.Err
}

func (r *Recorder) Trigger(_ context.Context, h feedback.Haptic) error {
	r.Haptics = append(r.Haptics, h)
	return r.Err
}
