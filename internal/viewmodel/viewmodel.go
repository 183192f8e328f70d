package viewmodel

import "strconv"

// ModeOption is a mode choice for the start-game form.
type ModeOption struct {
	Value string
	Label string
}

// HomePage holds data for the landing page template.
type HomePage struct {
	Title   string
	Ready   bool
	Modes   []ModeOption
	Regions []string
	Species int
}

// OptionView is one answer button in a round.
type OptionView struct {
	Index          int
	CommonName     string
	ScientificName string
	Correct        bool
}

// RoundFragment holds data for the round UI fragment.
type RoundFragment struct {
	GameID         string
	Mode           string
	ModeLabel      string
	Region         string
	RoundNumber    int
	TotalRounds    int
	Score          int
	Answered       bool
	MissedFirst    bool
	Complete       bool
	PromptFact     string
	AudioURL       string
	SpectrogramURL string
	PhotoURL       string
	AudioCredit    string
	PhotoCredit    string
	RevealCommon   string
	RevealLatin    string
	Options        []OptionView
	Summary        SummaryFragment
}

// Meta returns the round status line shown above the prompt.
func (r RoundFragment) Meta() string {
	return r.ModeLabel + " · Round " + strconv.Itoa(r.RoundNumber) + " of " +
		strconv.Itoa(r.TotalRounds) + " · Score " + strconv.Itoa(r.Score)
}

// AnswerURL is the form target for submitting an answer.
func (r RoundFragment) AnswerURL() string {
	return "/game/" + r.GameID + "/answer"
}

// NextURL is the form target for advancing to the next round.
func (r RoundFragment) NextURL() string {
	return "/game/" + r.GameID + "/next"
}

// SummaryFragment holds the end-of-game panel.
type SummaryFragment struct {
	GameID  string
	Score   int
	Rounds  int
	Message string
	Mode    string
	Region  string
}

// RestartURL is the form target for starting a fresh game with the same
// settings.
func (s SummaryFragment) RestartURL() string {
	return "/game/" + s.GameID + "/restart"
}

// ScoreLine renders the final score as prose.
func (s SummaryFragment) ScoreLine() string {
	return strconv.Itoa(s.Score) + " of " + strconv.Itoa(s.Rounds) + " first-try correct"
}

// GamePage holds data for the main game page template.
type GamePage struct {
	Title  string
	GameID string
	Round  RoundFragment
}

// NoDataPage is rendered when the species catalog failed to load or is empty.
type NoDataPage struct {
	Title string
}
