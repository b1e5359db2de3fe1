package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/coopstools/orgpulse/internal/storage"
	"github.com/google/uuid"
)

// FileEntry describes one artifact on disk.
type FileEntry struct {
	Path       string    `json:"file_path"`
	Layer      string    `json:"layer"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}

// StageRun records one pipeline stage writing its artifacts.
type StageRun struct {
	RunID       string    `json:"run_id"`
	Layer       string    `json:"layer"`
	Stage       string    `json:"stage"`
	Files       []string  `json:"files"`
	CompletedAt time.Time `json:"completed_at"`
}

// Lineage names the inputs and outputs of each silver processor.
type Lineage struct {
	Inputs  []string `json:"inputs"`
	Outputs []string `json:"outputs"`
}

// MasterRegistry maps every artifact across the bronze, silver and
// gold layers.
type MasterRegistry struct {
	RunID     string                         `json:"run_id"`
	CreatedAt time.Time                      `json:"created_at"`
	Layers    map[string]map[string][]string `json:"layers"`
	Lineage   map[string]Lineage             `json:"data_lineage"`
	Inventory []FileEntry                    `json:"file_inventory"`
}

// RecordStageRun appends a stage completion to the run log artifact.
func RecordStageRun(store *storage.Store, layer, stage string, files []string) (string, error) {
	var runs []StageRun
	if _, err := store.LoadJSON("registry.json", &runs); err != nil {
		return "", err
	}
	runs = append(runs, StageRun{
		RunID:       uuid.NewString(),
		Layer:       layer,
		Stage:       stage,
		Files:       files,
		CompletedAt: time.Now().UTC(),
	})
	return store.SaveJSON(runs, "registry.json")
}

// BuildMasterRegistry scans the data directory and writes the master
// registry artifact.
func BuildMasterRegistry(store *storage.Store) (string, error) {
	registry := MasterRegistry{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Layers:    make(map[string]map[string][]string),
		Lineage:   silverLineage(),
	}

	for _, layer := range []string{"bronze", "silver", "gold"} {
		files, err := store.ListJSON(layer)
		if err != nil {
			return "", err
		}
		registry.Layers[layer] = categorize(layer, files)

		for _, rel := range files {
			entry := FileEntry{Path: rel, Layer: layer}
			if info, err := os.Stat(store.Path(rel)); err == nil {
				entry.SizeBytes = info.Size()
				entry.ModifiedAt = info.ModTime().UTC()
			}
			registry.Inventory = append(registry.Inventory, entry)
		}
	}

	return store.SaveJSON(registry, "master_registry.json")
}

func categorize(layer string, files []string) map[string][]string {
	categories := make(map[string][]string)
	for _, rel := range files {
		name := strings.ToLower(filepath.Base(rel))
		categories[categoryFor(layer, name)] = append(categories[categoryFor(layer, name)], rel)
	}
	return categories
}

func categoryFor(layer, name string) string {
	if layer == "bronze" {
		switch {
		case strings.Contains(name, "repo"):
			return "repositories"
		case strings.Contains(name, "member"):
			return "members"
		case strings.Contains(name, "event"):
			return "events"
		case strings.Contains(name, "issue"):
			return "issues"
		case strings.Contains(name, "pr"):
			return "prs"
		case strings.Contains(name, "commit"):
			return "commits"
		default:
			return "raw"
		}
	}

	switch {
	case strings.Contains(name, "member") || strings.Contains(name, "maturity"):
		return "member_analytics"
	case strings.Contains(name, "contribution"):
		return "contribution_metrics"
	case strings.Contains(name, "collaboration") || strings.Contains(name, "network") || strings.Contains(name, "hub"):
		return "collaboration_networks"
	case strings.Contains(name, "temporal") || strings.Contains(name, "cycle") || strings.Contains(name, "activity") || strings.Contains(name, "heatmap"):
		return "temporal_analysis"
	case strings.Contains(name, "statistics") || strings.Contains(name, "distribution"):
		return "summary_statistics"
	default:
		return "other"
	}
}

func silverLineage() map[string]Lineage {
	activityInputs := []string{
		"bronze/issues_all.json",
		"bronze/prs_all.json",
		"bronze/commits_all.json",
		"bronze/issue_events_all.json",
	}
	return map[string]Lineage{
		"member_analytics": {
			Inputs: []string{"bronze/members_detailed.json"},
			Outputs: []string{
				"silver/members_analytics.json",
				"silver/member_status_distribution.json",
				"silver/maturity_bands.json",
			},
		},
		"contribution_metrics": {
			Inputs: activityInputs,
			Outputs: []string{
				"silver/contribution_metrics.json",
				"silver/repository_metrics.json",
				"silver/contribution_distribution.json",
			},
		},
		"collaboration_networks": {
			Inputs: activityInputs,
			Outputs: []string{
				"silver/collaboration_edges.json",
				"silver/user_collaboration_metrics.json",
				"silver/repository_collaboration_analysis.json",
				"silver/cross_repository_hubs.json",
				"silver/network_statistics.json",
			},
		},
		"temporal_analysis": {
			Inputs: activityInputs,
			Outputs: []string{
				"silver/temporal_events.json",
				"silver/daily_activity_summary.json",
				"silver/activity_heatmap.json",
				"silver/cycle_times.json",
				"silver/temporal_statistics.json",
			},
		},
	}
}

// Catalog is the human-facing description of every artifact.
type Catalog struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Bronze      LayerDescription    `json:"bronze_layer"`
	Silver      LayerDescription    `json:"silver_layer"`
	Usage       map[string][]string `json:"usage_patterns"`
}

type LayerDescription struct {
	Description string            `json:"description"`
	Entities    map[string]string `json:"entities"`
}

// WriteCatalog writes the static data catalog artifact.
func WriteCatalog(store *storage.Store) (string, error) {
	catalog := Catalog{
		GeneratedAt: time.Now().UTC(),
		Bronze: LayerDescription{
			Description: "Raw data extracted directly from the GitHub API",
			Entities: map[string]string{
				"repositories_raw.json":      "Complete raw repository data",
				"repositories_filtered.json": "Repositories excluding forks and blacklisted names",
				"repositories_detailed.json": "Full records for the first few filtered repositories",
				"members_basic.json":         "Basic organization member information",
				"members_detailed.json":      "Detailed member profiles with statistics",
				"issues_all.json":            "All issues across repositories",
				"prs_all.json":               "All pull requests across repositories",
				"commits_all.json":           "All commits across repositories",
				"issue_events_all.json":      "All issue events across repositories",
			},
		},
		Silver: LayerDescription{
			Description: "Normalized and processed data ready for analytics",
			Entities: map[string]string{
				"members_analytics.json":                   "Member profiles with maturity scores",
				"member_status_distribution.json":          "New vs established member counts",
				"maturity_bands.json":                      "Member counts per maturity band",
				"contribution_metrics.json":                "Contribution totals per user",
				"repository_metrics.json":                  "Activity totals per repository",
				"contribution_distribution.json":           "Spread of per-user contribution totals",
				"collaboration_edges.json":                 "Weighted collaboration graph edges",
				"user_collaboration_metrics.json":          "Per-user collaboration profiles",
				"repository_collaboration_analysis.json":   "Per-repository collaboration density",
				"cross_repository_hubs.json":               "Contributors active in multiple repositories",
				"network_statistics.json":                  "Network topology summary",
				"temporal_events.json":                     "Time-ordered activity records",
				"daily_activity_summary.json":              "Events per calendar day",
				"activity_heatmap.json":                    "Weekday by hour activity grid",
				"cycle_times.json":                         "Issue and PR resolution times",
				"temporal_statistics.json":                 "Overall temporal pattern summary",
			},
		},
		Usage: map[string][]string{
			"network_analysis": {
				"silver/collaboration_edges.json",
				"silver/user_collaboration_metrics.json",
				"silver/cross_repository_hubs.json",
			},
			"dashboard": {
				"silver/members_analytics.json",
				"silver/contribution_metrics.json",
				"silver/daily_activity_summary.json",
			},
			"research": {
				"silver/contribution_distribution.json",
				"silver/network_statistics.json",
				"silver/temporal_statistics.json",
			},
		},
	}
	return store.SaveJSON(catalog, "data_catalog.json")
}
