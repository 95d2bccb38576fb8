// Package catalog provides the selectable project types and topics.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

var defaultProjectTypes = []string{
	"Resume Writing",
	"Article Writing",
	"Ghost Writing",
	"Copywriting",
	"Technical Writing",
	"Grant Writing",
	"Content Strategy",
	"Business Writing",
	"Academic Writing",
	"Creative Writing",
	"Script Writing",
	"Newsletter Writing",
	"Editing & Proofreading",
	"Press Releases",
	"Other",
}

var defaultTopics = []string{
	"Business",
	"Health",
	"Lifestyle",
	"Marketing",
	"Technology",
	"Education",
	"Other",
}

type fileFormat struct {
	ProjectTypes []string `yaml:"projectTypes"`
	Topics       []string `yaml:"topics"`
}

// Default returns the built-in catalog.
func Default() model.Catalog {
	return model.Catalog{
		ProjectTypes: append([]string(nil), defaultProjectTypes...),
		Topics:       append([]string(nil), defaultTopics...),
	}
}

// Load reads a YAML catalog. Lists missing from the file keep their defaults.
func Load(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (model.Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	c := Default()
	if types := clean(f.ProjectTypes); len(types) > 0 {
		c.ProjectTypes = types
	}
	if topics := clean(f.Topics); len(topics) > 0 {
		c.Topics = topics
	}
	return c, nil
}

// clean trims entries and drops blanks and duplicates, keeping order.
func clean(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
