package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Name       string `json:"name"`
	Image      string `json:"image"`
	WebP       string `json:"webp,omitempty"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Primitives int    `json:"primitives"`
	Lights     int    `json:"lights"`
}

// WriteManifest writes manifest.json for the successful results.
func WriteManifest(path string, width, height int, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:       r.Name,
			Image:      r.Image,
			WebP:       r.WebP,
			Width:      width,
			Height:     height,
			Primitives: r.Primitives,
			Lights:     r.Lights,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
