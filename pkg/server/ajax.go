package server

import (
	"errors"
	"net/http"

	"github.com/allegiancegroup/canto-field/pkg/canto"
	"github.com/allegiancegroup/canto-field/pkg/data"
	"github.com/allegiancegroup/canto-field/pkg/logging"
)

// handleNonce hands the picker script a fresh nonce for subsequent actions.
func (s *Server) handleNonce(w http.ResponseWriter, r *http.Request) {
	nonce, err := s.nonces.Issue()
	if err != nil {
		writeError(w, "could not issue nonce")
		return
	}
	writeSuccess(w, map[string]string{"nonce": nonce})
}

// handleAjax dispatches on the action form field, one action per picker
// operation.
func (s *Server) handleAjax(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, "malformed request")
		return
	}

	if !s.nonces.Verify(r.PostFormValue("nonce")) {
		writeDenied(w, "Security check failed")
		return
	}

	if !s.client.IsConfigured() {
		writeError(w, s.client.ConfigErrors()[0])
		return
	}

	action := r.PostFormValue("action")
	switch action {
	case "canto_search":
		s.searchAssets(w, r)
	case "canto_get_asset":
		s.getAsset(w, r)
	case "canto_get_tree":
		s.getTree(w, r)
	case "canto_get_album":
		s.getAlbumAssets(w, r)
	case "canto_find_by_filename":
		s.findByFilename(w, r)
	default:
		writeError(w, "unknown action: "+action)
	}
}

func (s *Server) searchAssets(w http.ResponseWriter, r *http.Request) {
	query := r.PostFormValue("query")

	result, err := s.client.Search(r.Context(), data.SearchQuery{
		Keyword:   query,
		FileTypes: canto.DefaultFileTypes,
		Limit:     canto.DefaultSearchLimit,
	})
	if err != nil {
		writeError(w, err.Error())
		return
	}

	assets := s.normalizeAll(result.Results)

	// Keep the editor's current selection visible even when it does not
	// match the query.
	if selected := r.PostFormValue("selected_id"); selected != "" && !containsAsset(assets, selected) {
		if asset, err := s.resolver.ResolveByID(r.Context(), selected); err == nil {
			assets = append([]*data.Asset{asset}, assets...)
		}
	}

	logging.Log.Debugf("search %q returned %d assets", query, len(assets))
	writeSuccess(w, assets)
}

func (s *Server) getAsset(w http.ResponseWriter, r *http.Request) {
	assetID := r.PostFormValue("asset_id")
	if assetID == "" {
		writeError(w, "Asset ID required")
		return
	}

	asset, err := s.resolver.ResolveByID(r.Context(), assetID)
	if err != nil {
		if canto.IsNotFound(err) {
			writeError(w, "Asset not found")
		} else {
			writeError(w, err.Error())
		}
		return
	}
	writeSuccess(w, asset)
}

func (s *Server) getTree(w http.ResponseWriter, r *http.Request) {
	tree, err := s.client.GetTree(r.Context(), r.PostFormValue("album_id"))
	if err != nil {
		var httpErr *canto.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound {
			// Tenant without the tree endpoint; give the picker a
			// single folder covering everything.
			writeSuccess(w, &data.TreeResult{
				Results: []data.TreeNode{{
					ID:       "all",
					Name:     "All Assets",
					Type:     "folder",
					Children: []data.TreeNode{},
				}},
				Found: 1,
				Limit: 1,
			})
			return
		}
		writeError(w, err.Error())
		return
	}
	writeSuccess(w, tree)
}

func (s *Server) getAlbumAssets(w http.ResponseWriter, r *http.Request) {
	albumID := r.PostFormValue("album_id")
	if albumID == "" {
		writeError(w, "Album ID required")
		return
	}

	// The "all" node of the fallback tree maps to a plain search.
	if albumID == "all" {
		s.searchAssets(w, r)
		return
	}

	result, err := s.client.GetAlbumAssets(r.Context(), albumID)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, s.normalizeAll(result.Results))
}

func (s *Server) findByFilename(w http.ResponseWriter, r *http.Request) {
	filename := r.PostFormValue("filename")
	if filename == "" {
		writeError(w, "Filename required")
		return
	}

	asset, err := s.resolver.ResolveByFilename(r.Context(), filename)
	if err != nil {
		if canto.IsNotFound(err) {
			writeError(w, "Asset not found")
		} else {
			writeError(w, err.Error())
		}
		return
	}
	writeSuccess(w, asset)
}

func (s *Server) normalizeAll(raws []data.RawAsset) []*data.Asset {
	assets := make([]*data.Asset, 0, len(raws))
	for i := range raws {
		if asset := canto.Normalize(&raws[i], s.cfg); asset != nil {
			assets = append(assets, asset)
		}
	}
	return assets
}

func containsAsset(assets []*data.Asset, id string) bool {
	for _, asset := range assets {
		if asset.ID == id {
			return true
		}
	}
	return false
}
