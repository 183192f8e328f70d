package quiz

var spectrogramMessages = [RoundsPerGame + 1]string{
	"The meadow was all noise this time. Replay a few songs and try again.",
	"One singer picked out of the chorus. The rest will come with practice.",
	"Two calls recognized. You are starting to hear the patterns.",
	"Three out of five on first listen. A solid field ear.",
	"Four songs named straight away. Very sharp ears.",
	"Golden ears! You named every singer in the meadow on the first listen.",
}

var imageMessages = [RoundsPerGame + 1]string{
	"They all looked alike today. Study the wings and markings and retry.",
	"One species spotted. Keep an eye on body shape next time.",
	"Two correct at first glance. Your eye is warming up.",
	"Three first-look IDs. A dependable spotter.",
	"Four of five on sight. Nearly nothing escapes you.",
	"Eagle eye! Every species identified at first glance.",
}

var factsMessages = [RoundsPerGame + 1]string{
	"The lore got the better of you this round. The facts repay rereading.",
	"One fact matched. The natural history will stick with repetition.",
	"Two matched on the first try. The details are settling in.",
	"Three facts pinned to the right species. Good field knowledge.",
	"Four right on the first attempt. An almanac in the making.",
	"Insect master! You matched every fact on the first try.",
}

const fallbackMessage = "Game over. Thanks for playing!"

// EndMessage maps a mode and final score to the end-of-game summary line.
// Pure and total: every mode/score pair yields a fixed non-empty string, and
// an unrecognized mode yields the generic fallback.
func EndMessage(mode Mode, score int) string {
	if score < 0 {
		score = 0
	}
	if score > RoundsPerGame {
		score = RoundsPerGame
	}
	switch mode {
	case ModeSpectrogram:
		return spectrogramMessages[score]
	case ModeImage:
		return imageMessages[score]
	case ModeFacts:
		return factsMessages[score]
	}
	return fallbackMessage
}
