package field

import (
	"context"
	"testing"

	"github.com/allegiancegroup/canto-field/pkg/canto"
	"github.com/allegiancegroup/canto-field/pkg/config"
	"github.com/allegiancegroup/canto-field/pkg/data"
	"github.com/allegiancegroup/canto-field/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	result *data.SearchResult
}

func (s *stubAPI) GetByID(ctx context.Context, id string) (*data.RawAsset, error) {
	return nil, canto.ErrNotFound
}

func (s *stubAPI) Search(ctx context.Context, query data.SearchQuery) (*data.SearchResult, error) {
	return s.result, nil
}

func newTestField(results ...data.RawAsset) *Field {
	cfg := &config.Config{Domain: "acme", APIHost: "canto.com", Token: "t", PublicURL: "https://example.org"}
	resolver := canto.NewResolver(&stubAPI{result: &data.SearchResult{Results: results}}, store.NewMemory(), cfg)
	return New(resolver)
}

func TestFormatValueEmpty(t *testing.T) {
	f := newTestField()

	v, err := f.FormatValue(context.Background(), "", FormatObject)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFormatValueObject(t *testing.T) {
	f := newTestField(data.RawAsset{
		ID:   "a1",
		Name: "Summer.jpg",
		URL:  data.RawAssetURL{Preview: "https://acme.canto.com/preview/a1"},
	})

	v, err := f.FormatValue(context.Background(), "Summer.jpg", FormatObject)
	require.NoError(t, err)

	asset, ok := v.(*data.Asset)
	require.True(t, ok)
	assert.Equal(t, "a1", asset.ID)
}

func TestFormatValueID(t *testing.T) {
	f := newTestField(data.RawAsset{ID: "a1", Name: "Summer.jpg"})

	v, err := f.FormatValue(context.Background(), "Summer.jpg", FormatID)
	require.NoError(t, err)
	assert.Equal(t, "a1", v)
}

func TestFormatValueURL(t *testing.T) {
	f := newTestField(data.RawAsset{
		ID:   "a1",
		Name: "Summer.jpg",
		URL:  data.RawAssetURL{Preview: "https://acme.canto.com/preview/a1"},
	})

	v, err := f.FormatValue(context.Background(), "Summer.jpg", FormatURL)
	require.NoError(t, err)
	assert.Equal(t, "https://acme.canto.com/preview/a1", v)
}

func TestFormatValueURLMissing(t *testing.T) {
	f := newTestField(data.RawAsset{ID: "a1", Name: "Summer.jpg"})

	v, err := f.FormatValue(context.Background(), "Summer.jpg", FormatURL)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFormatValueNotFound(t *testing.T) {
	f := newTestField()

	v, err := f.FormatValue(context.Background(), "gone.png", FormatObject)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestParseStoredValue(t *testing.T) {
	assert.Equal(t, "Summer.jpg", ParseStoredValue("Summer.jpg"))
	assert.Equal(t, "Summer.jpg", ParseStoredValue(`{"filename":"Summer.jpg","id":"a1"}`))
	assert.Equal(t, "", ParseStoredValue("  "))
	assert.Equal(t, "{broken", ParseStoredValue("{broken"))
}
