package quiz

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"chirpquiz/internal/species"
)

// RoundsPerGame is the fixed length of a session.
const RoundsPerGame = 5

const (
	StatusInRound   = "in_round"
	StatusRoundDone = "round_done"
	StatusComplete  = "complete"
)

// ErrNoData means the species catalog is empty; no game can start.
var ErrNoData = errors.New("species catalog is empty")

// Option is one multiple-choice answer in a round.
type Option struct {
	CatalogIndex int
	Species      species.Entry
	Correct      bool
}

// Round is the state of one question-answer cycle. FirstGuessPending stays
// true until the first wrong pick; a correct answer while it is set scores.
type Round struct {
	TargetIndex       int
	Target            species.Entry
	Options           []Option
	Answered          bool
	FirstGuessPending bool
}

// Session is one five-round game under a fixed mode and region filter. All
// state lives here rather than in package globals so sessions can coexist
// and tests can drive them directly.
type Session struct {
	mu        sync.Mutex
	ID        string
	CreatedAt time.Time

	mode   Mode
	region string

	catalog *species.Catalog
	pool    []int
	queue   *drawQueue
	rng     *rand.Rand

	roundNum int
	score    int
	status   string
	round    Round

	emit func(GameEvent)
}

// NewSession starts a game: filters the pool by region (falling back to the
// full catalog when the filter matches nothing), builds a shuffled draw
// queue, and begins round one. Unknown region strings are not an error; they
// degrade to all species. Only an empty catalog refuses.
func NewSession(catalog *species.Catalog, mode Mode, region string, rng *rand.Rand) (*Session, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrNoData
	}
	pool := catalog.ByRegion(region)
	if len(pool) == 0 {
		pool = catalog.ByRegion(species.RegionAll)
		region = species.RegionAll
	}
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		mode:      mode,
		region:    region,
		catalog:   catalog,
		pool:      pool,
		queue:     newDrawQueue(pool, rng),
		rng:       rng,
		status:    StatusInRound,
	}
	s.nextRoundLocked()
	return s, nil
}

func (s *Session) nextRoundLocked() {
	s.roundNum++
	target := s.queue.next()
	indices := buildOptions(s.pool, target, s.rng)
	options := make([]Option, 0, len(indices))
	for _, idx := range indices {
		options = append(options, Option{
			CatalogIndex: idx,
			Species:      s.catalog.Entry(idx),
			Correct:      idx == target,
		})
	}
	s.round = Round{
		TargetIndex:       target,
		Target:            s.catalog.Entry(target),
		Options:           options,
		FirstGuessPending: true,
	}
}

// SubmitAnswer resolves the player's pick for the current round and reports
// whether it was correct. A wrong pick leaves the round open for retries but
// clears the first-guess flag. Score counts first-try correctness only, and
// a round accepts at most one correct outcome: answering a resolved round or
// a completed game is a no-op.
func (s *Session) SubmitAnswer(optionIndex int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInRound {
		return false
	}
	if optionIndex < 0 || optionIndex >= len(s.round.Options) {
		return false
	}
	if !s.round.Options[optionIndex].Correct {
		s.round.FirstGuessPending = false
		return false
	}
	if s.round.FirstGuessPending {
		s.score++
	}
	s.round.Answered = true
	s.status = StatusRoundDone
	return true
}

// Advance moves to the next round once the current one is answered, or to
// the complete state after the final round. Calling it mid-round is ignored.
func (s *Session) Advance() bool {
	s.mu.Lock()
	if s.status != StatusRoundDone {
		s.mu.Unlock()
		return false
	}
	if s.roundNum >= RoundsPerGame {
		s.status = StatusComplete
		ev := GameEvent{
			Kind:   EventGameCompleted,
			Mode:   s.mode,
			Region: s.region,
			Score:  s.score,
			Rounds: RoundsPerGame,
			At:     time.Now().UTC(),
		}
		emit := s.emit
		s.mu.Unlock()
		if emit != nil {
			emit(ev)
		}
		return true
	}
	s.status = StatusInRound
	s.nextRoundLocked()
	s.mu.Unlock()
	return true
}

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	ID                string
	Mode              Mode
	Region            string
	RoundNumber       int
	TotalRounds       int
	Score             int
	Status            string
	Target            species.Entry
	Options           []Option
	Answered          bool
	FirstGuessPending bool
	Summary           string
}

// Snapshot returns a consistent copy of the current session state. The
// summary message is filled in only once the game is complete.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	options := append([]Option(nil), s.round.Options...)
	snap := Snapshot{
		ID:                s.ID,
		Mode:              s.mode,
		Region:            s.region,
		RoundNumber:       s.roundNum,
		TotalRounds:       RoundsPerGame,
		Score:             s.score,
		Status:            s.status,
		Target:            s.round.Target,
		Options:           options,
		Answered:          s.round.Answered,
		FirstGuessPending: s.round.FirstGuessPending,
	}
	if s.status == StatusComplete {
		snap.Summary = EndMessage(s.mode, s.score)
	}
	return snap
}

// Mode returns the session's mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Region returns the session's (possibly degraded) region filter.
func (s *Session) Region() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region
}
