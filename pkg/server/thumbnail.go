package server

import (
	"net/http"
	"strconv"

	"github.com/allegiancegroup/canto-field/pkg/data"
	"github.com/allegiancegroup/canto-field/pkg/logging"
	"github.com/gorilla/mux"
)

// handleThumbnail streams an asset preview from Canto with our token so
// browsers can load thumbnails without one. Anything going wrong upstream
// is a plain 404, the picker falls back to the placeholder image.
func (s *Server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheme, id := vars["scheme"], vars["id"]

	if !validScheme(scheme) || id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	body, contentType, err := s.client.FetchBinary(r.Context(), scheme, id)
	if err != nil {
		logging.Log.Debugf("thumbnail fetch failed for %s/%s: %v", scheme, id, err)
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(body)
}

func validScheme(scheme string) bool {
	switch scheme {
	case data.SchemeImage, data.SchemeVideo, data.SchemeDocument:
		return true
	}
	return false
}
