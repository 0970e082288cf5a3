// Package feedback plays answer feedback: sounds and haptic-style cues.
// Playback is fire-and-forget; failures are logged and never reach the
// quiz session.
package feedback

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Sound names a feedback sound.
type Sound string

const (
	SoundCorrect   Sound = "correct"
	SoundIncorrect Sound = "incorrect"
	SoundTick      Sound = "tick"
)

// Haptic names a haptic cue.
type Haptic string

const (
	HapticSuccess Haptic = "success"
	HapticError   Haptic = "error"
)

// SoundPlayer plays a named sound.
type SoundPlayer interface {
	PlaySound(ctx context.Context, s Sound) error
}

// Haptics triggers a haptic cue.
type Haptics interface {
	Trigger(ctx context.Context, h Haptic) error
}

// Effects bundles the collaborators a session calls into. The zero value
// does nothing.
type Effects struct {
	Sound   SoundPlayer
	Haptics Haptics
	Logger  *zap.Logger
}

// Play plays s and logs any failure.
func (e Effects) Play(ctx context.Context, s Sound) {
	if e.Sound == nil {
		return
	}
	if err := e.Sound.PlaySound(ctx, s); err != nil {
		e.logger().Warn("play sound failed", zap.String("sound", string(s)), zap.Error(err))
	}
}

// Trigger fires h and logs any failure.
func (e Effects) Trigger(ctx context.Context, h Haptic) {
	if e.Haptics == nil {
		return
	}
	if err := e.Haptics.Trigger(ctx, h); err != nil {
		e.logger().Warn("haptic failed", zap.String("haptic", string(h)), zap.Error(err))
	}
}

func (e Effects) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Nop ignores every sound and haptic.
type Nop struct{}

func (Nop) PlaySound(context.Context, Sound) error { return nil }
func (Nop) Trigger(context.Context, Haptic) error  { return nil }

// Bell rings the terminal bell for an incorrect answer and for timer
// ticks. Correct answers stay quiet.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w, usually os.Stderr.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) PlaySound(_ context.Context, s Sound) error {
	switch s {
	case SoundIncorrect, SoundTick:
	case SoundCorrect:
		return nil
	default:
		return fmt.Errorf("unknown sound %q", s)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// Flash records the last haptic cue so the UI can flash its frame.
// It is not safe for concurrent use; the Bubble Tea loop owns it.
type Flash struct {
	last    Haptic
	pending bool
}

func (f *Flash) Trigger(_ context.Context, h Haptic) error {
	f.last = h
	f.pending = true
	return nil
}

// Take returns the pending cue, if any, and clears it.
func (f *Flash) Take() (Haptic, bool) {
	if !f.pending {
		return "", false
	}
	f.pending = false
	return f.last, true
}
