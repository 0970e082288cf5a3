package components

import (
	"strings"
	"testing"
)

func TestContentWidth(t *testing.T) {
	tests := []struct{ frame, want int }{
		{10, 20},
		{50, 44},
		{200, 60},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestToneColors(t *testing.T) {
	if ToneSuccess.color() == ToneError.color() {
		t.Error("success and error tones must differ")
	}
	if ToneNeutral.color() == ToneSuccess.color() {
		t.Error("neutral tone must not look like success")
	}
}

func TestQuestionCardKeepsPrompt(t *testing.T) {
	for _, tone := range []Tone{ToneNeutral, ToneSuccess, ToneError} {
		if out := QuestionCard("28 ÷ 4", 40, tone); !strings.Contains(out, "28 ÷ 4") {
			t.Errorf("tone %d: prompt missing from %q", tone, out)
		}
	}
}

func TestKeyButton(t *testing.T) {
	if out := KeyButton("Try Again", "R", true); !strings.Contains(out, "▸ Try Again (R)") {
		t.Errorf("primary button = %q", out)
	}
	if out := KeyButton("Home", "Esc", false); !strings.Contains(out, "Home (Esc)") || strings.Contains(out, "▸") {
		t.Errorf("secondary button = %q", out)
	}
}
