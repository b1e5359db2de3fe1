package catalog

import (
	"testing"

	"github.com/coopstools/orgpulse/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.NewStore(t.TempDir())
	for _, rel := range []string{
		"bronze/repositories_filtered.json",
		"bronze/repositories_detailed.json",
		"bronze/repo_core.json",
		"bronze/members_detailed.json",
		"bronze/issues_all.json",
		"bronze/prs_all.json",
		"silver/collaboration_edges.json",
		"silver/network_statistics.json",
		"silver/temporal_statistics.json",
		"gold/executive_dashboard.json",
	} {
		_, err := store.SaveJSON([]string{}, rel)
		require.NoError(t, err)
	}
	return store
}

func TestRecordStageRun_Appends(t *testing.T) {
	store := storage.NewStore(t.TempDir())

	_, err := RecordStageRun(store, "bronze", "repositories", []string{"bronze/repositories_raw.json"})
	require.NoError(t, err)
	_, err = RecordStageRun(store, "silver", "collaboration_networks", nil)
	require.NoError(t, err)

	var runs []StageRun
	found, err := store.LoadJSON("registry.json", &runs)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, runs, 2)
	assert.Equal(t, "repositories", runs[0].Stage)
	assert.NotEmpty(t, runs[0].RunID)
	assert.NotEqual(t, runs[0].RunID, runs[1].RunID)
}

func TestBuildMasterRegistry(t *testing.T) {
	store := seededStore(t)

	path, err := BuildMasterRegistry(store)
	require.NoError(t, err)
	assert.FileExists(t, path)

	var registry MasterRegistry
	found, err := store.LoadJSON("master_registry.json", &registry)
	require.NoError(t, err)
	require.True(t, found)

	assert.NotEmpty(t, registry.RunID)
	assert.Len(t, registry.Inventory, 10)
	assert.Contains(t, registry.Layers["bronze"]["repositories"], "bronze/repositories_detailed.json")
	assert.Contains(t, registry.Layers["bronze"]["repositories"], "bronze/repo_core.json")
	assert.Contains(t, registry.Layers["bronze"]["members"], "bronze/members_detailed.json")
	assert.Contains(t, registry.Layers["bronze"]["issues"], "bronze/issues_all.json")
	assert.Contains(t, registry.Layers["silver"]["collaboration_networks"], "silver/collaboration_edges.json")
	assert.Contains(t, registry.Layers["silver"]["temporal_analysis"], "silver/temporal_statistics.json")

	lineage, ok := registry.Lineage["collaboration_networks"]
	require.True(t, ok)
	assert.Contains(t, lineage.Inputs, "bronze/issues_all.json")
	assert.Contains(t, lineage.Outputs, "silver/cross_repository_hubs.json")

	for _, entry := range registry.Inventory {
		assert.Greater(t, entry.SizeBytes, int64(0), entry.Path)
	}
}

func TestWriteCatalog(t *testing.T) {
	store := storage.NewStore(t.TempDir())

	path, err := WriteCatalog(store)
	require.NoError(t, err)
	assert.FileExists(t, path)

	var catalog Catalog
	found, err := store.LoadJSON("data_catalog.json", &catalog)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotEmpty(t, catalog.Bronze.Entities)
	assert.Contains(t, catalog.Bronze.Entities, "repositories_detailed.json")
	assert.Contains(t, catalog.Usage["network_analysis"], "silver/collaboration_edges.json")
}
