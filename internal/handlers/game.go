package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"chirpquiz/internal/quiz"
	"chirpquiz/internal/viewmodel"
	"chirpquiz/views/components"
	"chirpquiz/views/pages"
)

type GameHandler struct {
	store *quiz.Store
	log   *zap.SugaredLogger
}

func NewGameHandler(store *quiz.Store, log *zap.SugaredLogger) *GameHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &GameHandler{store: store, log: log}
}

func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.gamePage)
		r.Get("/round", h.roundFragment)
		r.Post("/answer", h.submitAnswer)
		r.Post("/next", h.nextRound)
		r.Post("/restart", h.restartGame)
	})
}

func (h *GameHandler) gamePage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	snapshot := session.Snapshot()
	data := viewmodel.GamePage{
		Title:  siteTitle,
		GameID: snapshot.ID,
		Round:  buildRoundFragment(snapshot),
	}
	render(w, r, pages.GamePage(data))
}

func (h *GameHandler) roundFragment(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	render(w, r, components.RoundFragment(buildRoundFragment(session.Snapshot())))
}

func (h *GameHandler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	option, err := strconv.Atoi(r.FormValue("option"))
	if err != nil {
		option = -1
	}
	correct := session.SubmitAnswer(option)
	h.log.Debugw("answer submitted", "session", session.ID, "option", option, "correct", correct)
	h.respondWithRound(w, r, session)
}

func (h *GameHandler) nextRound(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	session.Advance()
	h.respondWithRound(w, r, session)
}

func (h *GameHandler) restartGame(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	fresh, err := h.store.CreateSession(session.Mode(), session.Region())
	if err != nil {
		h.log.Errorw("restart failed", "session", session.ID, "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/game/"+fresh.ID, http.StatusSeeOther)
}

func (h *GameHandler) session(w http.ResponseWriter, r *http.Request) (*quiz.Session, bool) {
	id := chi.URLParam(r, "id")
	session, ok := h.store.Get(id)
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}
	return session, true
}

func (h *GameHandler) respondWithRound(w http.ResponseWriter, r *http.Request, session *quiz.Session) {
	if isFragmentRequest(r) {
		render(w, r, components.RoundFragment(buildRoundFragment(session.Snapshot())))
		return
	}
	http.Redirect(w, r, "/game/"+session.ID, http.StatusSeeOther)
}

func buildRoundFragment(snapshot quiz.Snapshot) viewmodel.RoundFragment {
	data := viewmodel.RoundFragment{
		GameID:      snapshot.ID,
		Mode:        string(snapshot.Mode),
		ModeLabel:   snapshot.Mode.Label(),
		Region:      snapshot.Region,
		RoundNumber: snapshot.RoundNumber,
		TotalRounds: snapshot.TotalRounds,
		Score:       snapshot.Score,
		Answered:    snapshot.Answered,
		MissedFirst: !snapshot.FirstGuessPending && !snapshot.Answered,
		Complete:    snapshot.Status == quiz.StatusComplete,
	}
	if data.Complete {
		data.Summary = viewmodel.SummaryFragment{
			GameID:  snapshot.ID,
			Score:   snapshot.Score,
			Rounds:  snapshot.TotalRounds,
			Message: snapshot.Summary,
			Mode:    snapshot.Mode.Label(),
			Region:  snapshot.Region,
		}
		return data
	}

	target := snapshot.Target
	switch snapshot.Mode {
	case quiz.ModeSpectrogram:
		data.AudioURL = mediaURL(target.AudioRef)
		data.SpectrogramURL = mediaURL(target.SpectrogramRef)
		data.AudioCredit = target.AudioCredit
	case quiz.ModeImage:
		data.PhotoURL = mediaURL(target.PhotoRef)
		data.PhotoCredit = target.PhotoCredit
	default:
		data.PromptFact = target.Fact
	}
	if snapshot.Answered {
		data.RevealCommon = target.CommonName
		data.RevealLatin = target.ScientificName
		if data.PromptFact == "" {
			data.PromptFact = target.Fact
		}
	}
	for _, opt := range snapshot.Options {
		data.Options = append(data.Options, viewmodel.OptionView{
			Index:          len(data.Options),
			CommonName:     opt.Species.CommonName,
			ScientificName: opt.Species.ScientificName,
			Correct:        opt.Correct,
		})
	}
	return data
}

// mediaURL resolves an opaque media ref to a static asset path. Missing refs
// resolve to an empty string so templates can skip the element.
func mediaURL(ref string) string {
	if ref == "" {
		return ""
	}
	return "/static/media/" + ref
}
