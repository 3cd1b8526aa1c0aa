package canto

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/allegiancegroup/canto-field/pkg/config"
	"github.com/allegiancegroup/canto-field/pkg/data"
	"github.com/allegiancegroup/canto-field/pkg/logging"
)

const (
	requestTimeout = time.Second * 30
	userAgent      = "canto-field"

	// DefaultSearchLimit matches the page size of the asset picker.
	DefaultSearchLimit = 50
)

// File type groups accepted by the search and album endpoints.
const (
	FileTypesImage    = "GIF|JPG|PNG|SVG|WEBP"
	FileTypesDocument = "DOC|KEY|ODT|PDF|PPT|XLS"
	FileTypesAudio    = "MPEG|M4A|OGG|WAV"
	FileTypesVideo    = "AVI|MP4|MOV|OGG|VTT|WMV|3GP"
)

// DefaultFileTypes is the filter the asset picker sends: everything an
// editor can embed.
var DefaultFileTypes = []string{
	FileTypesImage,
	FileTypesDocument,
	FileTypesAudio,
	FileTypesVideo,
}

type tripper struct {
	token string
	rt    http.RoundTripper
}

func (t *tripper) RoundTrip(request *http.Request) (*http.Response, error) {
	request.Header.Set("Authorization", "Bearer "+t.token)
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("Content-Type", "application/json;charset=utf-8")

	return t.rt.RoundTrip(request)
}

// Client talks to the Canto REST API. Calls block for at most 30 seconds
// and are never retried; multi-variant lookups move on to the next variant
// instead.
type Client struct {
	cfg    *config.Config
	client *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: requestTimeout,
			Transport: &tripper{
				token: cfg.Token,
				rt:    http.DefaultTransport,
			},
		},
	}
}

// IsConfigured reports whether the client has a domain and a token to work
// with.
func (c *Client) IsConfigured() bool {
	return c.cfg.IsConfigured()
}

// ConfigErrors lists missing settings for user-facing error messages.
func (c *Client) ConfigErrors() []string {
	return c.cfg.ConfigErrors()
}

// Search queries the search endpoint. The keyword may be empty, which lists
// recent assets.
func (c *Client) Search(ctx context.Context, query data.SearchQuery) (*data.SearchResult, error) {
	if !c.cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}

	limit := query.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	params := url.Values{}
	params.Set("keyword", query.Keyword)
	if len(query.FileTypes) > 0 {
		params.Set("fileType", strings.Join(query.FileTypes, "|"))
	}
	if query.Keyword != "" {
		params.Set("operator", "and")
	}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("start", strconv.Itoa(query.Start))

	result := &data.SearchResult{}
	if err := c.getJSON(ctx, c.cfg.APIBase()+"/api/v1/search?"+params.Encode(), result); err != nil {
		return nil, err
	}
	if result.Error != "" {
		return nil, &UpstreamError{Message: result.Error}
	}

	return result, nil
}

// GetByID fetches one raw asset. The detail endpoint is scheme-specific and
// the scheme is unknown at this point, so the image, video and document
// variants are probed in that fixed order; the first 200 with a clean JSON
// body wins. All three failing means the asset does not exist.
func (c *Client) GetByID(ctx context.Context, id string) (*data.RawAsset, error) {
	if !c.cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if id == "" {
		return nil, ErrNotFound
	}

	var probes []assetProbe
	for _, scheme := range []string{data.SchemeImage, data.SchemeVideo, data.SchemeDocument} {
		assetURL := c.cfg.APIBase() + "/api/v1/" + scheme + "/" + url.PathEscape(id)
		probes = append(probes, func(ctx context.Context) (*data.RawAsset, error) {
			raw := &data.RawAsset{}
			if err := c.getJSON(ctx, assetURL, raw); err != nil {
				return nil, err
			}
			if raw.Error != "" {
				return nil, &UpstreamError{Message: raw.Error}
			}
			return raw, nil
		})
	}

	return firstAsset(ctx, id, probes)
}

// GetTree fetches the album/folder hierarchy, the first layer when parentID
// is empty, the children of parentID otherwise.
func (c *Client) GetTree(ctx context.Context, parentID string) (*data.TreeResult, error) {
	if !c.cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}

	var treeURL string
	if parentID != "" {
		treeURL = c.cfg.APIBase() + "/api/v1/tree/" + url.PathEscape(parentID) + "?sortBy=name&sortDirection=ascending"
	} else {
		treeURL = c.cfg.APIBase() + "/api/v1/tree?sortBy=name&sortDirection=ascending&layer=1"
	}

	result := &data.TreeResult{}
	if err := c.getJSON(ctx, treeURL, result); err != nil {
		return nil, err
	}
	if result.Error != "" {
		return nil, &UpstreamError{Message: result.Error}
	}

	return result, nil
}

// GetAlbumAssets lists the leaf assets of an album or folder. Canto tenants
// differ in which endpoint carries these, so album, folder and
// search-by-albumId are probed in order. No variant producing assets is not
// an error: a folder holding only subfolders legitimately has none, and
// callers must not distinguish that from an empty search.
func (c *Client) GetAlbumAssets(ctx context.Context, albumID string) (*data.SearchResult, error) {
	if !c.cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}

	fileType := url.QueryEscape(strings.Join(DefaultFileTypes, "|"))
	page := fmt.Sprintf("limit=%d&start=0", DefaultSearchLimit)
	escaped := url.PathEscape(albumID)

	probes := []listProbe{
		{"album", c.cfg.APIBase() + "/api/v1/album/" + escaped + "?" + page + "&fileType=" + fileType},
		{"folder", c.cfg.APIBase() + "/api/v1/folder/" + escaped + "?" + page + "&fileType=" + fileType},
		{"search_in_album", c.cfg.APIBase() + "/api/v1/search?albumId=" + url.QueryEscape(albumID) + "&fileType=" + fileType + "&" + page},
	}

	for _, p := range probes {
		result := &data.SearchResult{}
		if err := c.getJSON(ctx, p.url, result); err != nil {
			logging.Log.Debugf("album variant %s failed for %s: %v", p.name, albumID, err)
			continue
		}
		if result.Error != "" {
			logging.Log.Debugf("album variant %s returned upstream error for %s: %s", p.name, albumID, result.Error)
			continue
		}
		if len(result.Results) > 0 {
			logging.Log.Debugf("found %d assets using %s for %s", len(result.Results), p.name, albumID)
			return result, nil
		}
	}

	return &data.SearchResult{Results: []data.RawAsset{}}, nil
}

// FetchBinary downloads the preview binary for an asset, returning the
// bytes and the upstream content type. Used by the thumbnail proxy.
func (c *Client) FetchBinary(ctx context.Context, scheme string, id string) ([]byte, string, error) {
	if !c.cfg.IsConfigured() {
		return nil, "", ErrNotConfigured
	}

	binURL := c.cfg.APIBase() + "/api_binary/v1/" + url.PathEscape(scheme) + "/" + url.PathEscape(id) + "/preview"
	return c.get(ctx, binURL)
}

type assetProbe func(ctx context.Context) (*data.RawAsset, error)

type listProbe struct {
	name string
	url  string
}

// firstAsset runs the probes in order and returns the first success.
// Individual probe failures are expected (two of the three variants always
// miss) and only logged.
func firstAsset(ctx context.Context, id string, probes []assetProbe) (*data.RawAsset, error) {
	for _, p := range probes {
		raw, err := p(ctx)
		if err == nil {
			return raw, nil
		}
		logging.Log.Debugf("asset probe failed for %s: %v", id, err)
	}
	return nil, ErrNotFound
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v interface{}) error {
	body, _, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &InvalidResponseError{Reason: "invalid JSON response from Canto API"}
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", &TransportError{Err: err}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, "", &TransportError{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, "", &TransportError{Err: err}
	}

	if res.StatusCode != http.StatusOK {
		return nil, "", &HTTPError{Code: res.StatusCode, Snippet: snippet(body)}
	}
	if len(body) == 0 {
		return nil, "", &InvalidResponseError{Reason: "no response from Canto API"}
	}

	return body, res.Header.Get("Content-Type"), nil
}

func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
