package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndMessage_Total(t *testing.T) {
	for _, mode := range Modes() {
		for score := 0; score <= RoundsPerGame; score++ {
			msg := EndMessage(mode, score)
			assert.NotEmpty(t, msg, "mode %s score %d", mode, score)
		}
	}
}

func TestEndMessage_Pure(t *testing.T) {
	for _, mode := range Modes() {
		for score := 0; score <= RoundsPerGame; score++ {
			assert.Equal(t, EndMessage(mode, score), EndMessage(mode, score))
		}
	}
}

func TestEndMessage_DistinctPerScore(t *testing.T) {
	for _, mode := range Modes() {
		seen := make(map[string]struct{})
		for score := 0; score <= RoundsPerGame; score++ {
			seen[EndMessage(mode, score)] = struct{}{}
		}
		assert.Len(t, seen, RoundsPerGame+1, "mode %s reuses a message", mode)
	}
}

func TestEndMessage_UnknownModeFallback(t *testing.T) {
	msg := EndMessage(Mode("karaoke"), 3)
	assert.NotEmpty(t, msg)
	assert.Equal(t, msg, EndMessage(Mode("karaoke"), 5), "fallback ignores score")
}

func TestEndMessage_ClampsScore(t *testing.T) {
	assert.Equal(t, EndMessage(ModeFacts, 0), EndMessage(ModeFacts, -3))
	assert.Equal(t, EndMessage(ModeFacts, RoundsPerGame), EndMessage(ModeFacts, 99))
}
