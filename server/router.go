package server

import (
	"net/http"

	"contagion/server/domain"
	"contagion/server/handler"
)

func Route(sim domain.Simulator) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/healthz", handler.NewHealthHandler())
	mux.Handle("/history", handler.NewHistoryHandler(sim))
	mux.Handle("/ws", handler.NewAcceptHandler(sim))
	return mux
}
