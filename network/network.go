package network

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

type Http struct {
	addr    string
	handler http.Handler
}

func NewHttpServer(addr string, manager *service.Manager) Http {
	return Http{addr: addr, handler: NewHandler(manager)}
}

func (h Http) Serve() error {
	log.Infof("Http server listening on %s\n", h.addr)
	return http.ListenAndServe(h.addr, h.handler)
}

// NewHandler routes the game API and the event push channel.
func NewHandler(manager *service.Manager) http.Handler {
	api := &api{manager: manager}

	r := chi.NewRouter()
	r.Use(logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/playable", api.playable)
		r.Post("/games", api.createGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", api.getState)
			r.Delete("/", api.deleteGame)
			r.Post("/play", api.playTurn)
			r.Post("/draw", api.drawCards)
			r.Post("/draw-turn", api.drawForTurn)
			r.Post("/pass", api.pass)
			r.Post("/color", api.chooseColor)
			r.Get("/score", api.score)
		})
	})
	r.Get("/ws/games/{id}", api.serveWs)
	return r
}

func gameID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
