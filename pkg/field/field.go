// Package field exposes the form-field surface: it turns the persisted
// value of a Canto field into what the template author asked for.
package field

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/allegiancegroup/canto-field/pkg/canto"
)

// Return formats configurable on the field.
const (
	FormatObject = "object"
	FormatID     = "id"
	FormatURL    = "url"
)

// Field resolves persisted values (filenames) into display data.
type Field struct {
	resolver *canto.Resolver
}

func New(resolver *canto.Resolver) *Field {
	return &Field{resolver: resolver}
}

// FormatValue resolves a stored value and shapes it per the field's return
// format. A missing asset yields nil rather than an error so templates can
// render an empty state.
func (f *Field) FormatValue(ctx context.Context, stored string, format string) (interface{}, error) {
	filename := ParseStoredValue(stored)
	if filename == "" {
		return nil, nil
	}

	asset, err := f.resolver.ResolveByFilename(ctx, filename)
	if err != nil {
		if canto.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	switch format {
	case FormatID:
		return asset.ID, nil
	case FormatURL:
		if asset.URL == "" {
			return nil, nil
		}
		return asset.URL, nil
	default:
		return asset, nil
	}
}

// ParseStoredValue normalizes a persisted field value to a filename.
// Values written before 2.0 were JSON objects carrying the filename.
func ParseStoredValue(stored string) string {
	stored = strings.TrimSpace(stored)
	if strings.HasPrefix(stored, "{") {
		legacy := struct {
			Filename string `json:"filename"`
		}{}
		if err := json.Unmarshal([]byte(stored), &legacy); err == nil && legacy.Filename != "" {
			return legacy.Filename
		}
	}
	return stored
}
