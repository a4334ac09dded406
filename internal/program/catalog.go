package program

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/misterclayt0n/overload/internal/models"
)

// LoadCatalog reads a program catalog from a .toml, .yaml or .yml file.
func LoadCatalog(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return ParseCatalog(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseCatalog decodes a catalog in the given format ("toml", "yaml" or
// "yml").
func ParseCatalog(data []byte, format string) (*models.Catalog, error) {
	var catalog models.Catalog
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("Invalid TOML format: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("Invalid YAML format: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	if strings.TrimSpace(catalog.Name) == "" {
		return nil, fmt.Errorf("catalog has no name")
	}
	return &catalog, nil
}
