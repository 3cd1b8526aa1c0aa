package data

// Asset is the canonical record for one Canto asset. It is built by the
// normalizer, cached and returned as-is, and never mutated afterwards.
type Asset struct {
	ID          string                 `json:"id"`
	Scheme      string                 `json:"scheme"`
	Name        string                 `json:"name"`
	Filename    string                 `json:"filename"`
	URL         string                 `json:"url"`
	Thumbnail   string                 `json:"thumbnail"`
	DownloadURL string                 `json:"download_url"`
	Dimensions  string                 `json:"dimensions"`
	MimeType    string                 `json:"mime_type"`
	Size        string                 `json:"size"`
	Uploaded    string                 `json:"uploaded"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// Asset schemes as used by the Canto API.
const (
	SchemeImage    = "image"
	SchemeVideo    = "video"
	SchemeDocument = "document"
)

// RawAsset is one record as the Canto API returns it, from either the
// search results array or an image/video/document detail endpoint.
type RawAsset struct {
	ID           string                 `json:"id"`
	Scheme       string                 `json:"scheme"`
	Name         string                 `json:"name"`
	Size         int64                  `json:"size"`
	LastUploaded string                 `json:"lastUploaded"`
	URL          RawAssetURL            `json:"url"`
	Default      map[string]interface{} `json:"default"`
	Error        string                 `json:"error"`
}

type RawAssetURL struct {
	Preview          string `json:"preview"`
	Download         string `json:"download"`
	DirectURLPreview string `json:"directUrlPreview"`
}

// SearchResult is the envelope of the search, album and folder endpoints.
type SearchResult struct {
	Results []RawAsset `json:"results"`
	Found   int        `json:"found"`
	Limit   int        `json:"limit"`
	Start   int        `json:"start"`
	Error   string     `json:"error,omitempty"`
}

// SearchQuery describes one search call. Constructed per request, never
// persisted.
type SearchQuery struct {
	Keyword   string
	FileTypes []string
	Start     int
	Limit     int
}

// TreeNode is one entry of the album/folder hierarchy. Children may be
// empty pending a further fetch by id.
type TreeNode struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Scheme   string     `json:"scheme,omitempty"`
	Type     string     `json:"type,omitempty"`
	Size     int64      `json:"size,omitempty"`
	Children []TreeNode `json:"children"`
}

// TreeResult is the envelope of the tree endpoint.
type TreeResult struct {
	Results []TreeNode `json:"results"`
	Found   int        `json:"found"`
	Limit   int        `json:"limit"`
	Start   int        `json:"start"`
	Error   string     `json:"error,omitempty"`
}
