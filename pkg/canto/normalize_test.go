package canto

import (
	"regexp"
	"testing"

	"github.com/allegiancegroup/canto-field/pkg/config"
	"github.com/allegiancegroup/canto-field/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Domain:    "acme",
		APIHost:   "canto.com",
		Token:     "secret",
		PublicURL: "https://example.org",
	}
}

func TestNormalizeRequiresID(t *testing.T) {
	cfg := testConfig()

	assert.Nil(t, Normalize(nil, cfg))
	assert.Nil(t, Normalize(&data.RawAsset{Name: "no id here"}, cfg))
}

func TestNormalizeLiftsMetadata(t *testing.T) {
	raw := &data.RawAsset{
		ID:   "abc123",
		Name: "Summer.jpg",
		Default: map[string]interface{}{
			"Content Type": "image/jpeg",
			"Dimensions":   "800 x 600 px",
			"Photographer": "J. Doe",
		},
	}

	asset := Normalize(raw, testConfig())
	require.NotNil(t, asset)

	assert.Equal(t, "image", asset.Scheme)
	assert.Equal(t, "Summer.jpg", asset.Filename)
	assert.Equal(t, "image/jpeg", asset.MimeType)
	assert.Equal(t, "800 x 600 px", asset.Dimensions)
	assert.Equal(t, "J. Doe", asset.Metadata["Photographer"])
}

func TestNormalizeInfersSchemeFromPreviewURL(t *testing.T) {
	cfg := testConfig()

	video := Normalize(&data.RawAsset{
		ID:  "v1",
		URL: data.RawAssetURL{Preview: "https://acme.canto.com/video/v1"},
	}, cfg)
	require.NotNil(t, video)
	assert.Equal(t, "video", video.Scheme)

	document := Normalize(&data.RawAsset{
		ID:  "d1",
		URL: data.RawAssetURL{Preview: "https://acme.canto.com/document/d1"},
	}, cfg)
	require.NotNil(t, document)
	assert.Equal(t, "document", document.Scheme)

	fallback := Normalize(&data.RawAsset{ID: "x1"}, cfg)
	require.NotNil(t, fallback)
	assert.Equal(t, "image", fallback.Scheme)

	explicit := Normalize(&data.RawAsset{
		ID:     "v2",
		Scheme: "video",
		URL:    data.RawAssetURL{Preview: "https://acme.canto.com/document/v2"},
	}, cfg)
	require.NotNil(t, explicit)
	assert.Equal(t, "video", explicit.Scheme)
}

func TestNormalizeThumbnailNeverEmpty(t *testing.T) {
	direct := Normalize(&data.RawAsset{
		ID:  "a1",
		URL: data.RawAssetURL{DirectURLPreview: "https://cdn.canto.com/direct/a1"},
	}, testConfig())
	require.NotNil(t, direct)
	assert.Equal(t, "https://cdn.canto.com/direct/a1", direct.Thumbnail)

	proxied := Normalize(&data.RawAsset{ID: "a2", Scheme: "video"}, testConfig())
	require.NotNil(t, proxied)
	assert.Equal(t, "https://example.org/canto-thumbnail/video/a2", proxied.Thumbnail)

	// No credentials at all still yields the bundled placeholder.
	unconfigured := Normalize(&data.RawAsset{ID: "a3", Scheme: "document"}, &config.Config{})
	require.NotNil(t, unconfigured)
	assert.Equal(t, "/assets/images/default-document.svg", unconfigured.Thumbnail)
}

func TestNormalizeDownloadURL(t *testing.T) {
	cfg := testConfig()

	upstream := Normalize(&data.RawAsset{
		ID:  "a1",
		URL: data.RawAssetURL{Download: "https://acme.canto.com/download/a1"},
	}, cfg)
	assert.Equal(t, "https://acme.canto.com/download/a1", upstream.DownloadURL)

	image := Normalize(&data.RawAsset{ID: "i1"}, cfg)
	assert.Equal(t,
		"https://acme.canto.com/api_binary/v1/advance/image/i1/download/directuri?type=jpg&dpi=72",
		image.DownloadURL)

	video := Normalize(&data.RawAsset{ID: "v1", Scheme: "video"}, cfg)
	assert.Equal(t, "https://acme.canto.com/api_binary/v1/video/v1/download", video.DownloadURL)

	document := Normalize(&data.RawAsset{ID: "d1", Scheme: "document"}, cfg)
	assert.Equal(t, "https://acme.canto.com/api_binary/v1/document/d1/download", document.DownloadURL)
}

func TestFilenameFromMetadataAliases(t *testing.T) {
	raw := &data.RawAsset{
		ID:   "a1",
		Name: "Campaign Hero",
		Default: map[string]interface{}{
			"Original Filename": "hero_final_v3.png",
		},
	}

	asset := Normalize(raw, testConfig())
	assert.Equal(t, "hero_final_v3.png", asset.Filename)
}

func TestFilenameSynthesisDeterministic(t *testing.T) {
	safe := regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

	raw := &data.RawAsset{ID: "a1", Name: "Summer Campaign (final)!"}

	first := Normalize(raw, testConfig())
	second := Normalize(raw, testConfig())

	assert.Equal(t, first.Filename, second.Filename)
	assert.Equal(t, "Summer_Campaign__final__.jpg", first.Filename)
	assert.Regexp(t, safe, first.Filename)

	video := Normalize(&data.RawAsset{ID: "v1", Scheme: "video", Name: "Intro"}, testConfig())
	assert.Equal(t, "Intro.mp4", video.Filename)

	unknown := Normalize(&data.RawAsset{ID: "u1", Scheme: "audio", Name: "Jingle"}, testConfig())
	assert.Equal(t, "Jingle.bin", unknown.Filename)
}

func TestNormalizeDefaultsNameToUntitled(t *testing.T) {
	asset := Normalize(&data.RawAsset{ID: "a1"}, testConfig())
	assert.Equal(t, "Untitled", asset.Name)
	assert.Equal(t, "Untitled.jpg", asset.Filename)
}

func TestNormalizeSizeAndUploaded(t *testing.T) {
	asset := Normalize(&data.RawAsset{
		ID:           "a1",
		Size:         2621440,
		LastUploaded: "20200102030405000",
	}, testConfig())

	assert.Equal(t, "2.5 MB", asset.Size)
	assert.Equal(t, "20200102030405000", asset.Uploaded)

	none := Normalize(&data.RawAsset{ID: "a2"}, testConfig())
	assert.Empty(t, none.Size)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1 KB", FormatSize(1024))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "2.5 MB", FormatSize(2621440))
	assert.Equal(t, "3 GB", FormatSize(3*1024*1024*1024))
}
