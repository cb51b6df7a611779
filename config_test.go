package bioflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app_name: biography_app
user_id: reviewer_1
max_refinements: 0
search_cost: 0.005
instructions:
  reviewer: "Custom reviewer instructions: {answer_summary}"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "biography_app", cfg.AppName)
	assert.Equal(t, "reviewer_1", cfg.UserID)
	require.NotNil(t, cfg.MaxRefinements)
	assert.Zero(t, *cfg.MaxRefinements)

	flow := New(cfg.Options()...)
	assert.Equal(t, "biography_app", flow.appName)
	assert.Equal(t, "reviewer_1", flow.userID)
	assert.Zero(t, flow.maxRefinements)
	assert.Equal(t, 0.005, flow.searchCost)
	assert.Equal(t, "Custom reviewer instructions: {answer_summary}", flow.reviewerInstr)
	// Untouched roles keep their defaults.
	assert.Equal(t, researcherInstructions, flow.researcherInstr)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfigOptionsEmptyConfigKeepsDefaults(t *testing.T) {
	flow := New(Config{}.Options()...)
	assert.Equal(t, defaultAppName, flow.appName)
	assert.Equal(t, defaultUserID, flow.userID)
	assert.Equal(t, defaultMaxRefinements, flow.maxRefinements)
}
