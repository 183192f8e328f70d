package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeSpectrogram, ParseMode("spectrogram"))
	assert.Equal(t, ModeImage, ParseMode(" IMAGE "))
	assert.Equal(t, ModeFacts, ParseMode("Facts"))
	assert.Equal(t, Mode("karaoke"), ParseMode("karaoke"))
}

func TestMode_Known(t *testing.T) {
	for _, m := range Modes() {
		assert.True(t, m.Known())
	}
	assert.False(t, Mode("karaoke").Known())
	assert.False(t, Mode("").Known())
}

func TestMode_Label(t *testing.T) {
	for _, m := range Modes() {
		assert.NotEmpty(t, m.Label())
	}
	assert.Equal(t, "Quiz", Mode("karaoke").Label())
}
