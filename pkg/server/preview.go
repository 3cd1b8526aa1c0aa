package server

import (
	"net/http"

	"github.com/allegiancegroup/canto-field/pkg/canto"
	"github.com/allegiancegroup/canto-field/pkg/field"
	"github.com/allegiancegroup/canto-field/pkg/render"
)

// handlePreview renders the field preview HTML for a stored value, the
// server-side half of the admin form render.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	filename := field.ParseStoredValue(r.URL.Query().Get("value"))
	if filename == "" {
		html, err := render.Placeholder()
		writeHTML(w, html, err)
		return
	}

	asset, err := s.resolver.ResolveByFilename(r.Context(), filename)
	if err != nil && !canto.IsNotFound(err) {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	html, err := render.Preview(asset)
	writeHTML(w, html, err)
}

func writeHTML(w http.ResponseWriter, html string, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(html))
}
