// Package project persists designs, room templates and application
// settings as JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/RoomFit/internal/model"
)

// Extension is the file extension used for saved projects.
const Extension = ".roomfit"

// SaveProject writes a project to path as indented JSON.
func SaveProject(path string, p model.Project) error {
	if err := writeJSON(path, p); err != nil {
		return fmt.Errorf("saving project %s: %w", path, err)
	}
	return nil
}

// LoadProject reads a project file. Settings missing from older files are
// filled in with the defaults.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("loading project: %w", err)
	}
	p := model.NewProject()
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("parsing project %s: %w", path, err)
	}
	if p.Furniture == nil {
		p.Furniture = []model.FurnitureItem{}
	}
	defaults := model.DefaultSettings()
	if p.Settings.UnitsPerFoot <= 0 {
		p.Settings.UnitsPerFoot = defaults.UnitsPerFoot
	}
	if p.Settings.SearchStep <= 0 {
		p.Settings.SearchStep = defaults.SearchStep
	}
	return p, nil
}

// WithExtension appends the project extension unless path already has it.
func WithExtension(path string) string {
	if strings.EqualFold(filepath.Ext(path), Extension) {
		return path
	}
	return path + Extension
}
