package gamedata

import (
	"errors"
	"fmt"
)

// ThemeRegistry holds loaded themes in file order.
type ThemeRegistry struct {
	themes map[string]*ThemeDef
	all    []ThemeDef
}

// NewThemeRegistry creates a registry from loaded theme definitions.
func NewThemeRegistry(themes []ThemeDef) *ThemeRegistry {
	registry := &ThemeRegistry{
		themes: make(map[string]*ThemeDef),
		all:    themes,
	}
	for i := range themes {
		registry.themes[themes[i].ID] = &themes[i]
	}
	return registry
}

// LoadThemeRegistry loads the embedded themes, adding any found in extraPath.
// Themes from extraPath replace embedded themes with the same ID.
func LoadThemeRegistry(extraPath string) (*ThemeRegistry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}

	if extraPath != "" {
		file, err := LoadFile[ThemesFile](extraPath)
		if err != nil {
			return nil, fmt.Errorf("loading themes from %s: %w", extraPath, err)
		}
		themes = mergeThemes(themes, file.Themes)
	}

	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewThemeRegistry(themes), nil
}

func mergeThemes(base, extra []ThemeDef) []ThemeDef {
	index := make(map[string]int, len(base))
	for i, t := range base {
		index[t.ID] = i
	}
	for _, t := range extra {
		if i, ok := index[t.ID]; ok {
			base[i] = t
			continue
		}
		index[t.ID] = len(base)
		base = append(base, t)
	}
	return base
}

// Get returns the theme with the given ID, falling back to the default theme and
// then to the first theme loaded.
func (r *ThemeRegistry) Get(id string) *ThemeDef {
	if theme := r.themes[id]; theme != nil {
		return theme
	}
	if theme := r.themes[DefaultThemeID]; theme != nil {
		return theme
	}
	if len(r.all) > 0 {
		return &r.all[0]
	}
	return nil
}

// Next returns the ID of the theme after id, wrapping around.
func (r *ThemeRegistry) Next(id string) string {
	if len(r.all) == 0 {
		return id
	}
	for i := range r.all {
		if r.all[i].ID == id {
			return r.all[(i+1)%len(r.all)].ID
		}
	}
	return r.all[0].ID
}

// All returns all theme definitions.
func (r *ThemeRegistry) All() []ThemeDef {
	return r.all
}

// Count returns the number of themes in the registry.
func (r *ThemeRegistry) Count() int {
	return len(r.all)
}
