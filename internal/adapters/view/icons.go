// Package view turns weather entities into display-ready view models and
// provides the renderers that consume them.
package view

import (
	"path"

	"weatherwidget.app/internal/core/weather"
)

// defaultIconFiles maps condition categories to icon file names
var defaultIconFiles = map[weather.ConditionCategory]string{
	weather.CategoryClear:        "clear.png",
	weather.CategoryClouds:       "cloud.png",
	weather.CategoryRain:         "rain.jpg",
	weather.CategorySnow:         "snow.png",
	weather.CategoryThunderstorm: "thunderstorm.png",
	weather.CategoryDrizzle:      "drizzle.png",
	weather.CategoryMist:         "mist.png",
	weather.CategoryFog:          "fog.png",
	weather.CategoryHaze:         "haze.png",
	weather.CategorySmoke:        "fog.png",
	weather.CategoryDust:         "dust.png",
	weather.CategorySand:         "dust.png",
	weather.CategoryAsh:          "ash.png",
	weather.CategorySquall:       "squall.png",
	weather.CategoryTornado:      "tornado.png",
}

// IconTable resolves condition categories to icon URLs. It is immutable after construction.
type IconTable struct {
	basePath string
	files    map[weather.ConditionCategory]string
}

// NewIconTable builds the standard table with icon URLs rooted at basePath
func NewIconTable(basePath string) *IconTable {
	files := make(map[weather.ConditionCategory]string, len(defaultIconFiles))
	for category, file := range defaultIconFiles {
		files[category] = file
	}
	return &IconTable{basePath: basePath, files: files}
}

// File returns the icon file name for category, falling back to the Clear icon
func (t *IconTable) File(category weather.ConditionCategory) string {
	if file, ok := t.files[category]; ok {
		return file
	}
	return t.files[weather.CategoryClear]
}

// URL returns the icon URL for category
func (t *IconTable) URL(category weather.ConditionCategory) string {
	if t.basePath == "" {
		return t.File(category)
	}
	return path.Join(t.basePath, t.File(category))
}
