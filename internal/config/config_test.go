package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gddgraph/internal/agents"
	"github.com/aretw0/gddgraph/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(afero.NewMemMapFs(), "/proj", "")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "docs/system-map.yaml", cfg.Map)
	assert.Equal(t, agents.DefaultSectionTitle, cfg.Agents.Section)
}

func TestLoad_ProjectFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/.gddgraph.yaml", []byte(`
map: graph/features.yaml
metrics: out/gdd.prom
agents:
  section: Relevant Agents
  roster: [Orchestrator, Guardian]
`), 0o644))

	cfg, err := config.Load(fs, "/proj", "")
	require.NoError(t, err)

	assert.Equal(t, "graph/features.yaml", cfg.Map)
	assert.Equal(t, "docs/system-validation.md", cfg.Report, "unset keys keep defaults")
	assert.Equal(t, "out/gdd.prom", cfg.Metrics)
	assert.Equal(t, "Relevant Agents", cfg.Agents.Section)
	assert.Equal(t, []string{"Orchestrator", "Guardian"}, cfg.Agents.Roster)
}

func TestLoad_ExplicitFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/gdd.yaml", []byte("report: build/report.md\n"), 0o644))

	cfg, err := config.Load(fs, "/proj", "/etc/gdd.yaml")
	require.NoError(t, err)
	assert.Equal(t, "build/report.md", cfg.Report)

	_, err = config.Load(fs, "/proj", "/etc/missing.yaml")
	assert.Error(t, err, "an explicit config file must exist")
}

func TestLoad_Malformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/.gddgraph.yaml", []byte("map: [unterminated\n"), 0o644))

	_, err := config.Load(fs, "/proj", "")
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GDDGRAPH_MAP", "env/map.yaml")
	t.Setenv("GDDGRAPH_AGENTS_SECTION", "Agents")

	cfg, err := config.Load(afero.NewMemMapFs(), "/proj", "")
	require.NoError(t, err)
	assert.Equal(t, "env/map.yaml", cfg.Map)
	assert.Equal(t, "Agents", cfg.Agents.Section)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Map = " "

	err := cfg.Validate()
	var cfgErr *config.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "map", cfgErr.Field)

	cfg = config.Default()
	cfg.Agents.Roster = nil
	require.ErrorAs(t, cfg.Validate(), &cfgErr)
	assert.Equal(t, "agents.roster", cfgErr.Field)
}
