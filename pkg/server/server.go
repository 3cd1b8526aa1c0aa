// Package server is the sidecar HTTP surface: the AJAX actions backing the
// asset picker, the authenticated thumbnail proxy, and the bundled default
// thumbnails.
package server

import (
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/allegiancegroup/canto-field/pkg/canto"
	"github.com/allegiancegroup/canto-field/pkg/config"
	"github.com/allegiancegroup/canto-field/pkg/logging"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

//go:embed assets/images
var defaultThumbnails embed.FS

type Server struct {
	cfg      *config.Config
	client   *canto.Client
	resolver *canto.Resolver
	nonces   *Nonces
	router   *mux.Router
}

func New(cfg *config.Config, client *canto.Client, resolver *canto.Resolver) *Server {
	s := &Server{
		cfg:      cfg,
		client:   client,
		resolver: resolver,
		nonces:   NewNonces(cfg.NonceSecret),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Use(requestLogger)

	r.HandleFunc("/ajax/nonce", s.handleNonce).Methods(http.MethodGet)
	r.HandleFunc("/ajax", s.handleAjax).Methods(http.MethodPost)
	r.HandleFunc("/canto-thumbnail/{scheme}/{id}", s.handleThumbnail).Methods(http.MethodGet)
	r.HandleFunc("/field/preview", s.handlePreview).Methods(http.MethodGet)

	images, _ := fs.Sub(defaultThumbnails, "assets/images")
	r.PathPrefix("/assets/images/").Handler(
		http.StripPrefix("/assets/images/", http.FileServer(http.FS(images))))

	s.router = r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the sidecar on the configured address.
func (s *Server) ListenAndServe() error {
	logging.Log.Infof("listening on %s", s.cfg.Listen)
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// envelope mirrors the admin-ajax response shape the picker script expects:
// data carries the payload on success and the message on failure.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: false, Data: message})
}

func writeDenied(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, envelope{Success: false, Data: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Log.Errorf("could not encode response: %v", err)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.New().String()[:8]
		next.ServeHTTP(w, r)
		logging.Log.Debugf("[%s] %s %s (%s)", id, r.Method, r.URL.Path, time.Since(start))
	})
}
