package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/healthz", handler.Health)
	mux.HandleFunc("/readyz", handler.Ready)
	mux.HandleFunc("/games", handler.Games)
	mux.HandleFunc("/frame.png", handler.FramePNG)
	mux.HandleFunc("/controls", handler.Controls)
	return mux
}
