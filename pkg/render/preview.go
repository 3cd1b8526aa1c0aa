// Package render produces the HTML preview of a selected asset. Sites can
// override the default template; the custom filters below are available to
// overrides as well.
package render

import (
	"github.com/allegiancegroup/canto-field/pkg/data"
	"github.com/flosch/pongo2/v4"
)

const previewTemplate = `<div class="acf-canto-preview">
    <div class="acf-canto-preview-image">
        <img src="{{ asset.Thumbnail }}" alt="{{ asset.Name }}" />
    </div>
    <div class="acf-canto-preview-details">
        <h4>{{ asset.Name }}</h4>
        {% if asset.Dimensions %}<p>{{ asset.Dimensions }}</p>{% endif %}
        {% if asset.Size %}<p>{{ asset.Size }}</p>{% endif %}
        {% if asset.Uploaded %}<p>{{ asset.Uploaded|uploaded }}</p>{% endif %}
    </div>
    <div class="acf-canto-actions">
        <a class="button" href="{{ asset.DownloadURL }}">Download</a>
    </div>
</div>
`

const placeholderTemplate = `<div class="acf-canto-placeholder">
    <button type="button" class="button button-primary acf-canto-select">Select Canto Asset</button>
</div>
`

var (
	preview     *pongo2.Template
	placeholder *pongo2.Template
)

func init() {
	pongo2.RegisterFilter("filesize", filterFilesize)
	pongo2.RegisterFilter("uploaded", filterUploaded)

	preview = pongo2.Must(pongo2.FromString(previewTemplate))
	placeholder = pongo2.Must(pongo2.FromString(placeholderTemplate))
}

// Preview renders the field preview for a resolved asset.
func Preview(asset *data.Asset) (string, error) {
	if asset == nil {
		return Placeholder()
	}
	return preview.Execute(pongo2.Context{"asset": asset})
}

// Placeholder renders the empty state shown when no asset is selected or
// the stored one no longer resolves.
func Placeholder() (string, error) {
	return placeholder.Execute(nil)
}

// PreviewWith renders a site-supplied template against an asset.
func PreviewWith(template string, asset *data.Asset) (string, error) {
	tpl, err := pongo2.FromString(template)
	if err != nil {
		return "", err
	}
	return tpl.Execute(pongo2.Context{"asset": asset})
}
