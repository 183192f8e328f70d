package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirpquiz/internal/species"
)

func testCatalog(t *testing.T) *species.Catalog {
	t.Helper()
	c, err := species.Load("")
	require.NoError(t, err)
	require.Equal(t, 8, c.Len())
	return c
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func correctIndex(t *testing.T, snap Snapshot) int {
	t.Helper()
	for i, opt := range snap.Options {
		if opt.Correct {
			return i
		}
	}
	t.Fatal("no correct option in round")
	return -1
}

func wrongIndex(t *testing.T, snap Snapshot) int {
	t.Helper()
	for i, opt := range snap.Options {
		if !opt.Correct {
			return i
		}
	}
	t.Fatal("no wrong option in round")
	return -1
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(testCatalog(t), ModeFacts, species.RegionAll, testRNG())
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, ModeFacts, snap.Mode)
	assert.Equal(t, 1, snap.RoundNumber)
	assert.Equal(t, RoundsPerGame, snap.TotalRounds)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, StatusInRound, snap.Status)
	assert.Len(t, snap.Options, 4)
	assert.True(t, snap.FirstGuessPending)
	assert.False(t, snap.Answered)
}

func TestNewSession_EmptyCatalog(t *testing.T) {
	_, err := NewSession(species.Empty(), ModeImage, species.RegionAll, testRNG())
	assert.ErrorIs(t, err, ErrNoData)

	_, err = NewSession(nil, ModeImage, species.RegionAll, testRNG())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNewSession_UnknownRegionFallsBack(t *testing.T) {
	catalog := testCatalog(t)
	s, err := NewSession(catalog, ModeSpectrogram, "atlantis", testRNG())
	require.NoError(t, err)

	assert.Equal(t, species.RegionAll, s.Region())
	assert.Len(t, s.Snapshot().Options, 4)
}

func TestNewSession_RegionPool(t *testing.T) {
	catalog := testCatalog(t)
	s, err := NewSession(catalog, ModeImage, "northeast", testRNG())
	require.NoError(t, err)

	pool := catalog.ByRegion("northeast")
	snap := s.Snapshot()
	for _, opt := range snap.Options {
		assert.Contains(t, pool, opt.CatalogIndex)
	}
}

func TestSubmitAnswer_FirstTryCorrect(t *testing.T) {
	s, err := NewSession(testCatalog(t), ModeFacts, species.RegionAll, testRNG())
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.True(t, s.SubmitAnswer(correctIndex(t, snap)))

	snap = s.Snapshot()
	assert.Equal(t, 1, snap.Score)
	assert.True(t, snap.Answered)
	assert.Equal(t, StatusRoundDone, snap.Status)
}

func TestSubmitAnswer_WrongThenCorrect(t *testing.T) {
	s, err := NewSession(testCatalog(t), ModeFacts, species.RegionAll, testRNG())
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.False(t, s.SubmitAnswer(wrongIndex(t, snap)))

	// Wrong answer leaves the round open for retries but burns the score.
	snap = s.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.False(t, snap.Answered)
	assert.False(t, snap.FirstGuessPending)
	assert.Equal(t, StatusInRound, snap.Status)

	assert.True(t, s.SubmitAnswer(correctIndex(t, snap)))
	snap = s.Snapshot()
	assert.Equal(t, 0, snap.Score, "score counts first-try correctness only")
	assert.True(t, snap.Answered)
	assert.Equal(t, StatusRoundDone, snap.Status)

	assert.True(t, s.Advance())
	assert.Equal(t, 2, s.Snapshot().RoundNumber)
}

func TestSubmitAnswer_IdempotentAfterResolve(t *testing.T) {
	s, err := NewSession(testCatalog(t), ModeFacts, species.RegionAll, testRNG())
	require.NoError(t, err)

	idx := correctIndex(t, s.Snapshot())
	assert.True(t, s.SubmitAnswer(idx))
	assert.False(t, s.SubmitAnswer(idx), "answering a resolved round is ignored")
	assert.Equal(t, 1, s.Snapshot().Score, "score must not double-increment")
}

func TestSubmitAnswer_OutOfRangeIgnored(t *testing.T) {
	s, err := NewSession(testCatalog(t), ModeFacts, species.RegionAll, testRNG())
	require.NoError(t, err)

	assert.False(t, s.SubmitAnswer(-1))
	assert.False(t, s.SubmitAnswer(99))

	snap := s.Snapshot()
	assert.True(t, snap.FirstGuessPending, "malformed submissions must not burn the first guess")
	assert.False(t, snap.Answered)
}

func TestAdvance_RequiresAnsweredRound(t *testing.T) {
	s, err := NewSession(testCatalog(t), ModeFacts, species.RegionAll, testRNG())
	require.NoError(t, err)

	assert.False(t, s.Advance())
	assert.Equal(t, 1, s.Snapshot().RoundNumber)
}

func TestSession_PerfectGame(t *testing.T) {
	s, err := NewSession(testCatalog(t), ModeFacts, species.RegionAll, testRNG())
	require.NoError(t, err)

	for round := 1; round <= RoundsPerGame; round++ {
		snap := s.Snapshot()
		require.Equal(t, round, snap.RoundNumber)
		require.True(t, s.SubmitAnswer(correctIndex(t, snap)))
		require.Equal(t, round, s.Snapshot().Score, "score increments by exactly one per round")
		require.True(t, s.Advance())
	}

	snap := s.Snapshot()
	assert.Equal(t, StatusComplete, snap.Status)
	assert.Equal(t, RoundsPerGame, snap.Score)
	assert.Equal(t, EndMessage(ModeFacts, RoundsPerGame), snap.Summary)
	assert.Contains(t, snap.Summary, "master")

	// Terminal state: only a new session leaves it.
	assert.False(t, s.SubmitAnswer(0))
	assert.False(t, s.Advance())
	assert.Equal(t, RoundsPerGame, s.Snapshot().Score)
}

func TestSession_ScoreBounds(t *testing.T) {
	s, err := NewSession(testCatalog(t), ModeImage, species.RegionAll, testRNG())
	require.NoError(t, err)

	prev := 0
	for round := 1; round <= RoundsPerGame; round++ {
		snap := s.Snapshot()
		if round%2 == 0 {
			s.SubmitAnswer(wrongIndex(t, snap))
			snap = s.Snapshot()
		}
		require.True(t, s.SubmitAnswer(correctIndex(t, snap)))

		score := s.Snapshot().Score
		assert.GreaterOrEqual(t, score, prev, "score is monotonically non-decreasing")
		assert.LessOrEqual(t, score-prev, 1)
		prev = score

		require.True(t, s.Advance())
	}

	final := s.Snapshot()
	assert.Equal(t, StatusComplete, final.Status)
	assert.Equal(t, 3, final.Score, "rounds 2 and 4 missed the first guess")
}

func TestSession_SmallRegionPoolOptions(t *testing.T) {
	catalog, err := species.Load("")
	require.NoError(t, err)

	// The west pool holds exactly three species, so rounds offer three options.
	pool := catalog.ByRegion("west")
	require.Len(t, pool, 3)

	s, err := NewSession(catalog, ModeImage, "west", testRNG())
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Len(t, snap.Options, 3)
	assert.Equal(t, 1, func() int {
		n := 0
		for _, opt := range snap.Options {
			if opt.Correct {
				n++
			}
		}
		return n
	}())
}
