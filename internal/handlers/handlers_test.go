package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirpquiz/internal/analytics"
	"chirpquiz/internal/quiz"
	"chirpquiz/internal/species"
)

func newTestRouter(t *testing.T, catalog *species.Catalog) (chi.Router, *quiz.Store) {
	t.Helper()
	store := quiz.NewStore(catalog, nil)
	r := chi.NewRouter()
	NewHomeHandler(store, nil).RegisterRoutes(r)
	NewGameHandler(store, nil).RegisterRoutes(r)
	NewStatsHandler(analytics.NewRecorder(nil, nil, nil)).RegisterRoutes(r)
	return r, store
}

func loadedCatalog(t *testing.T) *species.Catalog {
	t.Helper()
	c, err := species.Load("")
	require.NoError(t, err)
	return c
}

func postForm(r chi.Router, path string, form url.Values, fragment bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if fragment {
		req.Header.Set("Hx-Request", "true")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r chi.Router, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHome(t *testing.T) {
	r, _ := newTestRouter(t, loadedCatalog(t))

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Which bug is that?")
	assert.Contains(t, w.Body.String(), "midwest")
}

func TestHome_NoData(t *testing.T) {
	r, _ := newTestRouter(t, species.Empty())

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No data available")

	w = postForm(r, "/games", url.Values{"mode": {"facts"}, "region": {"all"}}, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No data available")
}

func startGame(t *testing.T, r chi.Router, mode, region string) string {
	t.Helper()
	w := postForm(r, "/games", url.Values{"mode": {mode}, "region": {region}}, false)
	require.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/game/"))
	return strings.TrimPrefix(location, "/game/")
}

func TestCreateAndRenderGame(t *testing.T) {
	r, _ := newTestRouter(t, loadedCatalog(t))

	id := startGame(t, r, "facts", "all")
	w := get(r, "/game/"+id)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Round 1 of 5")
	assert.Contains(t, body, "Match the fact")
}

func TestGame_NotFound(t *testing.T) {
	r, _ := newTestRouter(t, loadedCatalog(t))
	assert.Equal(t, http.StatusNotFound, get(r, "/game/nope").Code)
}

func TestAnswerFlow(t *testing.T) {
	r, store := newTestRouter(t, loadedCatalog(t))
	id := startGame(t, r, "facts", "all")

	session, ok := store.Get(id)
	require.True(t, ok)

	snap := session.Snapshot()
	wrong, correct := -1, -1
	for i, opt := range snap.Options {
		if opt.Correct {
			correct = i
		} else if wrong == -1 {
			wrong = i
		}
	}
	require.GreaterOrEqual(t, wrong, 0)
	require.GreaterOrEqual(t, correct, 0)

	w := postForm(r, "/game/"+id+"/answer", url.Values{"option": {strconv.Itoa(wrong)}}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Not quite")

	w = postForm(r, "/game/"+id+"/answer", url.Values{"option": {strconv.Itoa(correct)}}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Next round")
	assert.Equal(t, 0, session.Snapshot().Score, "missed first guess must not score")

	w = postForm(r, "/game/"+id+"/next", url.Values{}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Round 2 of 5")
}

func TestAnswerFlow_FullGameSummary(t *testing.T) {
	r, store := newTestRouter(t, loadedCatalog(t))
	id := startGame(t, r, "image", "all")

	session, ok := store.Get(id)
	require.True(t, ok)

	var body string
	for round := 1; round <= quiz.RoundsPerGame; round++ {
		snap := session.Snapshot()
		correct := -1
		for i, opt := range snap.Options {
			if opt.Correct {
				correct = i
			}
		}
		require.GreaterOrEqual(t, correct, 0)
		postForm(r, "/game/"+id+"/answer", url.Values{"option": {strconv.Itoa(correct)}}, true)
		w := postForm(r, "/game/"+id+"/next", url.Values{}, true)
		require.Equal(t, http.StatusOK, w.Code)
		body = w.Body.String()
	}

	assert.Contains(t, body, "Game complete")
	assert.Contains(t, body, quiz.EndMessage(quiz.ModeImage, quiz.RoundsPerGame))
	assert.Contains(t, body, "5 of 5 first-try correct")
}

func TestRestart(t *testing.T) {
	r, store := newTestRouter(t, loadedCatalog(t))
	id := startGame(t, r, "spectrogram", "west")

	w := postForm(r, "/game/"+id+"/restart", url.Values{}, false)
	require.Equal(t, http.StatusSeeOther, w.Code)
	freshID := strings.TrimPrefix(w.Header().Get("Location"), "/game/")
	require.NotEqual(t, id, freshID)

	fresh, ok := store.Get(freshID)
	require.True(t, ok)
	assert.Equal(t, quiz.ModeSpectrogram, fresh.Mode())
	assert.Equal(t, "west", fresh.Region())
}

func TestRedirectsWithoutFragmentHeader(t *testing.T) {
	r, _ := newTestRouter(t, loadedCatalog(t))
	id := startGame(t, r, "facts", "all")

	w := postForm(r, "/game/"+id+"/answer", url.Values{"option": {"0"}}, false)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/game/"+id, w.Header().Get("Location"))
}

func TestStats(t *testing.T) {
	r, _ := newTestRouter(t, loadedCatalog(t))

	w := get(r, "/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), "gamesStarted")
}
