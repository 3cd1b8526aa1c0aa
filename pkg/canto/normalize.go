package canto

import (
	"regexp"
	"strings"

	"github.com/allegiancegroup/canto-field/pkg/config"
	"github.com/allegiancegroup/canto-field/pkg/data"
)

// filenameAliases are the metadata keys Canto tenants use for the original
// filename, scanned in order.
var filenameAliases = []string{"Filename", "File Name", "Original Filename", "filename", "file_name"}

var (
	extensionRe = regexp.MustCompile(`\.[a-zA-Z0-9]{2,5}$`)
	unsafeRe    = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// defaultExtensions back the synthesized filename when neither metadata nor
// the display name carries one.
var defaultExtensions = map[string]string{
	data.SchemeImage:    "jpg",
	data.SchemeVideo:    "mp4",
	data.SchemeDocument: "pdf",
}

// Normalize maps a raw Canto record, whichever of the three endpoint shapes
// it came from, to the canonical asset record. It is a pure function of the
// payload and the configuration. Returns nil when the payload has no id.
//
// The derived filename is the field's persisted value, so it must come out
// identical on every resolution of the same asset.
func Normalize(raw *data.RawAsset, cfg *config.Config) *data.Asset {
	if raw == nil || raw.ID == "" {
		return nil
	}

	scheme := inferScheme(raw)

	asset := &data.Asset{
		ID:       raw.ID,
		Scheme:   scheme,
		Name:     raw.Name,
		Uploaded: raw.LastUploaded,
		Metadata: raw.Default,
	}
	if asset.Name == "" {
		asset.Name = "Untitled"
	}
	if asset.Metadata == nil {
		asset.Metadata = map[string]interface{}{}
	}

	asset.URL = raw.URL.Preview
	asset.DownloadURL = raw.URL.Download
	asset.Thumbnail = raw.URL.DirectURLPreview

	// Thumbnail chain: direct upstream URL, then our authenticated proxy,
	// then the bundled placeholder. The record never ships without one.
	if asset.Thumbnail == "" && cfg.IsConfigured() {
		asset.Thumbnail = publicBase(cfg) + "/canto-thumbnail/" + scheme + "/" + raw.ID
	}
	if asset.Thumbnail == "" {
		asset.Thumbnail = defaultThumbnail(cfg, scheme)
	}

	if asset.DownloadURL == "" && cfg.IsConfigured() {
		asset.DownloadURL = downloadURL(cfg, scheme, raw.ID)
	}

	if v, ok := raw.Default["Dimensions"].(string); ok {
		asset.Dimensions = v
	}
	if v, ok := raw.Default["Content Type"].(string); ok {
		asset.MimeType = v
	}

	asset.Filename = deriveFilename(raw, asset.Name, scheme)

	if raw.Size > 0 {
		asset.Size = FormatSize(raw.Size)
	}

	return asset
}

// inferScheme prefers the explicit scheme field and otherwise guesses from
// the preview URL path, defaulting to image.
func inferScheme(raw *data.RawAsset) string {
	if raw.Scheme != "" {
		return raw.Scheme
	}
	if strings.Contains(raw.URL.Preview, "/video/") {
		return data.SchemeVideo
	}
	if strings.Contains(raw.URL.Preview, "/document/") {
		return data.SchemeDocument
	}
	return data.SchemeImage
}

func deriveFilename(raw *data.RawAsset, name string, scheme string) string {
	for _, alias := range filenameAliases {
		if v, ok := raw.Default[alias].(string); ok && v != "" {
			return v
		}
	}

	if extensionRe.MatchString(name) {
		return name
	}

	extension, ok := defaultExtensions[scheme]
	if !ok {
		extension = "bin"
	}
	return unsafeRe.ReplaceAllString(name, "_") + "." + extension
}

func downloadURL(cfg *config.Config, scheme string, id string) string {
	base := cfg.APIBase()
	switch scheme {
	case data.SchemeImage:
		return base + "/api_binary/v1/advance/image/" + id + "/download/directuri?type=jpg&dpi=72"
	case data.SchemeVideo, data.SchemeDocument:
		return base + "/api_binary/v1/" + scheme + "/" + id + "/download"
	}
	return ""
}

func defaultThumbnail(cfg *config.Config, scheme string) string {
	name := "default-image.svg"
	switch scheme {
	case data.SchemeVideo:
		name = "default-video.svg"
	case data.SchemeDocument:
		name = "default-document.svg"
	}
	return publicBase(cfg) + "/assets/images/" + name
}

func publicBase(cfg *config.Config) string {
	return strings.TrimSuffix(cfg.PublicURL, "/")
}
