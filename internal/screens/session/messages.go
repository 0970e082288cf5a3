package session

import (
	"github.com/abhisek/brainquiz/internal/problemgen"
)

// Deferred messages carry the session ID and epoch token they were
// scheduled under so a restarted or replaced session ignores them.

// timerTickMsg is sent once a second while the question timer runs.
type timerTickMsg struct {
	SessionID string
	Token     uint64
}

// advanceMsg is sent when the feedback display period ends.
type advanceMsg struct {
	SessionID string
	Token     uint64
}

// difficultyChosenMsg is sent by the difficulty picker.
type difficultyChosenMsg struct {
	Difficulty problemgen.Difficulty
}

// persistAnswerMsg is sent to confirm answer persistence completed.
type persistAnswerMsg struct {
	Err error
}

// persistSessionMsg is sent to confirm the finished session was recorded.
type persistSessionMsg struct {
	Err error
}
