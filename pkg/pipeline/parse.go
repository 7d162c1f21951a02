package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

// LayoutSuffix marks files holding a computed layout rather than a scene.
const LayoutSuffix = ".layout.json"

// Input is what the pipeline starts from: a scene to lay out, or a layout
// computed earlier. Exactly one field is set.
type Input struct {
	Scene  *scene.Scene
	Layout *scene.Result
}

// Parse reads a scene file (.toml or .json) or a stored layout. A JSON file
// is treated as a layout when its name ends in .layout.json or its top level
// has both "strategy" and "bounds" keys.
func Parse(path string) (Input, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Input{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if isLayoutFile(path) {
		r, err := scene.ReadResultFile(path)
		if err != nil {
			return Input{}, err
		}
		return Input{Layout: &r}, nil
	}
	s, err := scene.ReadFile(path)
	if err != nil {
		return Input{}, err
	}
	return Input{Scene: s}, nil
}

// LayoutPath derives the default layout output path for a scene file:
// gallery.toml becomes gallery.layout.json.
func LayoutPath(scenePath string) string {
	if strings.HasSuffix(scenePath, LayoutSuffix) {
		return scenePath
	}
	return strings.TrimSuffix(scenePath, filepath.Ext(scenePath)) + LayoutSuffix
}

func isLayoutFile(path string) bool {
	if strings.HasSuffix(strings.ToLower(path), LayoutSuffix) {
		return true
	}
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&fields); err != nil {
		return false
	}
	_, hasStrategy := fields["strategy"]
	_, hasBounds := fields["bounds"]
	return hasStrategy && hasBounds
}
