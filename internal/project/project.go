// Package project handles persistence of application data: project files,
// the box set library, the app config, and full backups. Everything is
// stored as indented JSON under ~/.boxstack/ or at user-chosen paths.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/BoxStack/internal/model"
)

// SaveProject writes a project (boxes, settings, optional result) to the
// given path as JSON, creating parent directories as needed.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the given path.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Boxes == nil {
		p.Boxes = []model.Box{}
	}
	return p, nil
}
