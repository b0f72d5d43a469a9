package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmlogix/compliance"
	"github.com/farmlogix/compliance/registry"
)

const validManifest = `
name: primusgfs-v3
version: "2026.1"
modules:
  - key: food_safety_plan
    label: Food Safety Plan
    category: management
    nav: primus/food-safety-plan
  - key: training_matrix
    label: Training Matrix
    category: training
    nav: training/matrix
    gap: >-
      has(data.training) && data.training.workers_untrained > 0
      ? string(data.training.workers_untrained) + " workers missing required training"
      : ""
  - key: preharvest_inspection
    label: Pre-Harvest Inspections
    category: field_ops
  - key: supplier_approval
    label: Supplier Approval Program
    category: suppliers
  - key: water_testing
    label: Agricultural Water Testing
    category: monitoring
  - key: incident_log
    label: Incident & Recall Log
    category: safety
`

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("from file path", func(t *testing.T) {
		path := writeManifest(t, "catalog.yaml", validManifest)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "primusgfs-v3", cfg.Name)
		assert.Len(t, cfg.Modules, 6)
	})

	t.Run("from directory", func(t *testing.T) {
		path := writeManifest(t, "catalog.yaml", validManifest)

		cfg, err := Load(filepath.Dir(path))
		require.NoError(t, err)
		assert.Equal(t, "primusgfs-v3", cfg.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("directory without manifest", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("modules: [nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, compliance.ErrInvalidManifest))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Config{Name: "x", Modules: []ModuleConfig{{Key: "k"}}},
			wantErr: false,
		},
		{
			name:    "missing name",
			cfg:     Config{Modules: []ModuleConfig{{Key: "k"}}},
			wantErr: true,
		},
		{
			name:    "no modules",
			cfg:     Config{Name: "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Registry(t *testing.T) {
	cfg, err := Parse([]byte(validManifest))
	require.NoError(t, err)

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, 6, reg.Len())

	// The CEL gap expression is compiled and wired up.
	hint := reg.GapText("training_matrix", registry.Blob{
		"training": map[string]any{"workers_untrained": int64(3)},
	}, 40)
	assert.Equal(t, "3 workers missing required training", hint)

	// Satisfied expression falls back to the generic label.
	hint = reg.GapText("training_matrix", registry.Blob{
		"training": map[string]any{"workers_untrained": int64(0)},
	}, 55)
	assert.Equal(t, "Score: 55%", hint)
}

func TestConfig_Registry_BadCategory(t *testing.T) {
	cfg := &Config{
		Name: "broken",
		Modules: []ModuleConfig{
			{Key: "m1", Label: "M1", Category: "paperwork"},
		},
	}

	_, err := cfg.Registry()
	require.Error(t, err)
	assert.True(t, errors.Is(err, compliance.ErrUnknownCategory))
}

func TestConfig_Registry_BadGapExpression(t *testing.T) {
	cfg := &Config{
		Name: "broken",
		Modules: []ModuleConfig{
			{Key: "m1", Label: "M1", Category: "management", Gap: "data..<<"},
		},
	}

	_, err := cfg.Registry()
	require.Error(t, err)
	assert.True(t, errors.Is(err, compliance.ErrInvalidExpression))
}

func TestConfig_Registry_MissingCategoryCoverage(t *testing.T) {
	cfg := &Config{
		Name: "partial",
		Modules: []ModuleConfig{
			{Key: "m1", Label: "M1", Category: "management"},
		},
	}

	_, err := cfg.Registry()
	require.Error(t, err)
	assert.True(t, errors.Is(err, compliance.ErrEmptyCategory),
		"every rollup category must have at least one module")
}
