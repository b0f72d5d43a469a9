package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/farmlogix/compliance"
	"github.com/farmlogix/compliance/registry"
)

// Config represents a catalog.yaml file.
type Config struct {
	// Name labels the catalog (e.g., the certification scheme it tracks).
	Name string `yaml:"name"`

	// Version is the catalog revision, for operator bookkeeping.
	Version string `yaml:"version,omitempty"`

	// Modules are the checklist modules in display order.
	Modules []ModuleConfig `yaml:"modules"`
}

// ModuleConfig defines one checklist module.
type ModuleConfig struct {
	// Key is the stable module identifier joined against the score map.
	Key string `yaml:"key"`

	// Label is the display name.
	Label string `yaml:"label"`

	// Category is the rollup category key.
	Category string `yaml:"category"`

	// Nav is the opaque navigation key for the module's screen.
	Nav string `yaml:"nav,omitempty"`

	// Gap is an optional CEL expression over `data` (the domain blob) that
	// yields a remediation hint string, or "" when the requirement is
	// satisfied.
	Gap string `yaml:"gap,omitempty"`
}

// Load reads and parses a catalog manifest from the given path. If the path
// is a directory, it looks for catalog.yaml or catalog.yml in that directory.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	configPath := path
	if info.IsDir() {
		yamlPath := filepath.Join(path, "catalog.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "catalog.yml")
			if _, err := os.Stat(ymlPath); err == nil {
				configPath = ymlPath
			} else {
				return nil, fmt.Errorf("no catalog.yaml or catalog.yml found in %s", path)
			}
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return Parse(data)
}

// Parse parses manifest bytes.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, compliance.NewConfigurationError("manifest.Parse",
			fmt.Errorf("%w: %v", compliance.ErrInvalidManifest, err))
	}
	return &config, nil
}

// Validate checks the manifest for structural problems that can be reported
// without building a registry: a missing name or an empty module list.
// Module-level problems (duplicate keys, unknown categories, bad gap
// expressions) are reported by Registry.
func (c *Config) Validate() error {
	const op = "Config.Validate"

	if c.Name == "" {
		return compliance.NewValidationError(op,
			fmt.Errorf("%w: catalog name is required", compliance.ErrInvalidManifest))
	}
	if len(c.Modules) == 0 {
		return compliance.NewValidationError(op,
			fmt.Errorf("%w: at least one module is required", compliance.ErrInvalidManifest))
	}
	return nil
}

// Registry builds a validated module registry from the manifest, compiling
// each gap expression into a detector. All configuration mistakes (bad
// categories, duplicate keys, uncompilable expressions, categories without
// modules) fail here, at construction time.
func (c *Config) Registry() (*registry.Registry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	modules := make([]registry.Module, 0, len(c.Modules))
	for _, mc := range c.Modules {
		m := registry.Module{
			Key:       mc.Key,
			Label:     mc.Label,
			Category:  registry.CategoryKey(mc.Category),
			NavTarget: mc.Nav,
		}

		if mc.Gap != "" {
			det, err := registry.CompileDetector(mc.Gap)
			if err != nil {
				return nil, compliance.NewConfigurationError("Config.Registry", err).
					WithContext(map[string]any{"module": mc.Key})
			}
			m.Detector = det
		}

		modules = append(modules, m)
	}

	return registry.New(modules...)
}
