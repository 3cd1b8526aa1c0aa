package render

import (
	"errors"
	"time"

	"github.com/allegiancegroup/canto-field/pkg/canto"
	"github.com/flosch/pongo2/v4"
)

// Canto reports lastUploaded as a packed timestamp, with RFC3339 seen on
// some tenants.
var uploadedLayouts = []string{
	"20060102150405000",
	"20060102150405",
	time.RFC3339,
}

func filterFilesize(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsInteger() && !in.IsFloat() {
		return nil, &pongo2.Error{
			Sender:    "filter:filesize",
			OrigError: errors.New("filter input argument must be a byte count"),
		}
	}

	var size int64
	if in.IsFloat() {
		size = int64(in.Float())
	} else {
		size = int64(in.Integer())
	}

	return pongo2.AsValue(canto.FormatSize(size)), nil
}

func filterUploaded(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsString() {
		return nil, &pongo2.Error{
			Sender:    "filter:uploaded",
			OrigError: errors.New("filter input argument must be a timestamp string"),
		}
	}

	raw := in.String()
	for _, layout := range uploadedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return pongo2.AsValue(t.Format("Jan 2, 2006")), nil
		}
	}

	// Unknown format, show it as-is rather than failing the render.
	return in, nil
}
