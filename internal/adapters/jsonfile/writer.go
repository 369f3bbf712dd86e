package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"steamreviews/internal/domain"
)

// Save writes the fetch envelope to path as pretty-printed UTF-8 JSON.
// HTML escaping is off so non-ASCII and markup-ish review text survive
// byte-for-byte.
func Save(res domain.FetchResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		f.Close()
		return fmt.Errorf("encode result: %w", err)
	}
	return f.Close()
}

// DefaultPath derives the output file name from the app id.
func DefaultPath(appID int64) string {
	return fmt.Sprintf("steam_reviews_%d.json", appID)
}
