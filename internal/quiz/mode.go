package quiz

import "strings"

// Mode selects what each round asks the player to identify.
type Mode string

const (
	ModeSpectrogram Mode = "spectrogram"
	ModeImage       Mode = "image"
	ModeFacts       Mode = "facts"
)

// Modes returns the playable modes in display order.
func Modes() []Mode {
	return []Mode{ModeSpectrogram, ModeImage, ModeFacts}
}

// ParseMode normalizes a raw mode string. Unknown values are preserved as-is
// rather than rejected; downstream lookups fall back to generic behavior.
func ParseMode(s string) Mode {
	return Mode(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether m is one of the playable modes.
func (m Mode) Known() bool {
	switch m {
	case ModeSpectrogram, ModeImage, ModeFacts:
		return true
	}
	return false
}

// Label returns the mode name shown in the UI.
func (m Mode) Label() string {
	switch m {
	case ModeSpectrogram:
		return "Name that song"
	case ModeImage:
		return "Name that bug"
	case ModeFacts:
		return "Match the fact"
	}
	return "Quiz"
}
