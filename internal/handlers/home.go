package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"chirpquiz/internal/quiz"
	"chirpquiz/internal/viewmodel"
	"chirpquiz/views/pages"
)

const siteTitle = "Chirpquiz"

type HomeHandler struct {
	store *quiz.Store
	log   *zap.SugaredLogger
}

func NewHomeHandler(store *quiz.Store, log *zap.SugaredLogger) *HomeHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &HomeHandler{store: store, log: log}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Post("/games", h.createGame)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	if !h.store.Ready() {
		render(w, r, pages.NoDataPage(viewmodel.NoDataPage{Title: siteTitle}))
		return
	}
	modes := make([]viewmodel.ModeOption, 0, len(quiz.Modes()))
	for _, m := range quiz.Modes() {
		modes = append(modes, viewmodel.ModeOption{Value: string(m), Label: m.Label()})
	}
	data := viewmodel.HomePage{
		Title:   siteTitle,
		Ready:   true,
		Modes:   modes,
		Regions: h.store.Regions(),
		Species: h.store.Catalog().Len(),
	}
	render(w, r, pages.HomePage(data))
}

func (h *HomeHandler) createGame(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	mode := quiz.ParseMode(r.FormValue("mode"))
	region := strings.TrimSpace(r.FormValue("region"))

	session, err := h.store.CreateSession(mode, region)
	if err != nil {
		if errors.Is(err, quiz.ErrNoData) {
			render(w, r, pages.NoDataPage(viewmodel.NoDataPage{Title: siteTitle}))
			return
		}
		h.log.Errorw("create session failed", "mode", mode, "region", region, "error", err)
		http.Error(w, "could not start game", http.StatusInternalServerError)
		return
	}
	h.log.Infow("game started", "session", session.ID, "mode", mode, "region", session.Region())
	http.Redirect(w, r, "/game/"+session.ID, http.StatusSeeOther)
}
