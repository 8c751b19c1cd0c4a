package types

import "strings"

// ModelInfo is a catalogue entry for a generation model.
type ModelInfo struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Version float64 `json:"version"`
	Type    string  `json:"type"`
}

// StyleInfo is a catalogue entry for a generation style. Name is the value
// accepted by generation requests.
type StyleInfo struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	TitleEn string `json:"titleEn"`
	Image   string `json:"image"`
}

// FindModel returns the first model whose name matches, ignoring case.
func FindModel(models []ModelInfo, name string) (ModelInfo, bool) {
	for _, m := range models {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// FindStyle returns the style with the given request name, ignoring case.
func FindStyle(styles []StyleInfo, name string) (StyleInfo, bool) {
	for _, s := range styles {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return StyleInfo{}, false
}
