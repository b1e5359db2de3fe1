package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/coopstools/orgpulse/internal/aggregate"
	"github.com/coopstools/orgpulse/internal/analytics"
	"github.com/coopstools/orgpulse/internal/catalog"
	"github.com/coopstools/orgpulse/internal/config"
	"github.com/coopstools/orgpulse/internal/display"
	"github.com/coopstools/orgpulse/internal/github"
	"github.com/coopstools/orgpulse/internal/models"
	"github.com/coopstools/orgpulse/internal/network"
	"github.com/coopstools/orgpulse/internal/storage"
	"github.com/fatih/color"
	gh "github.com/google/go-github/v57/github"
)

type Orchestrator struct {
	client *gh.Client
	cfg    *config.AppConfig
	org    *config.OrgConfig
	store  *storage.Store
}

func NewOrchestrator(client *gh.Client, cfg *config.AppConfig, org *config.OrgConfig) *Orchestrator {
	return &Orchestrator{
		client: client,
		cfg:    cfg,
		org:    org,
		store:  storage.NewStore(cfg.DataDir),
	}
}

// RunExtract is the bronze layer: pull raw organization data from the
// GitHub API and persist it as JSON artifacts.
func (o *Orchestrator) RunExtract(ctx context.Context) error {
	if o.cfg.Org == "" {
		return fmt.Errorf("no organization given; use --org or pass it as an argument")
	}

	if o.cfg.UseCache && o.bronzeComplete() {
		color.Yellow("[!] Bronze artifacts already present, skipping extraction (drop --cache to refetch)")
		return nil
	}

	var files []string

	color.Blue("Fetching repositories for organization: %s", o.cfg.Org)
	repos, err := github.FetchOrgRepos(ctx, o.client, o.cfg.Org)
	if err != nil {
		return err
	}

	filtered := github.FilterRepos(repos, o.org)
	color.Green("[+] Found %d repositories (%d after filtering)", len(repos), len(filtered))

	rawRecords := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		rawRecords = append(rawRecords, github.ToRepository(repo))
	}
	filteredRecords := make([]models.Repository, 0, len(filtered))
	for _, repo := range filtered {
		filteredRecords = append(filteredRecords, github.ToRepository(repo))
	}

	if files, err = o.saveArtifact(rawRecords, "bronze/repositories_raw.json", files); err != nil {
		return err
	}
	if files, err = o.saveArtifact(filteredRecords, "bronze/repositories_filtered.json", files); err != nil {
		return err
	}

	color.Blue("Fetching details for the first %d repositories...", o.org.DetailedRepos)
	details := github.FetchRepoDetails(ctx, o.client, filtered, o.org.DetailedRepos)
	for _, detail := range details {
		if files, err = o.saveArtifact(detail, fmt.Sprintf("bronze/repo_%s.json", detail.Name), files); err != nil {
			return err
		}
	}
	if len(details) > 0 {
		if files, err = o.saveArtifact(details, "bronze/repositories_detailed.json", files); err != nil {
			return err
		}
	}

	color.Blue("Fetching organization members...")
	members, err := github.FetchMembers(ctx, o.client, o.cfg.Org)
	if err != nil {
		color.Yellow("[!] Could not fetch members: %v", err)
		members = nil
	}
	color.Green("[+] Found %d members", len(members))

	basic := make([]models.Member, 0, len(members))
	for _, m := range members {
		basic = append(basic, models.Member{Login: m.GetLogin(), ID: m.GetID()})
	}
	detailed := github.FetchMemberDetails(ctx, o.client, members)

	if files, err = o.saveArtifact(basic, "bronze/members_basic.json", files); err != nil {
		return err
	}
	if files, err = o.saveArtifact(detailed, "bronze/members_detailed.json", files); err != nil {
		return err
	}

	color.Blue("Extracting activity from %d repositories...", len(filtered))
	set := github.ExtractActivity(ctx, o.client, filtered, o.org)
	color.Green("[+] Extracted %d issues, %d pull requests, %d commits, %d issue events",
		len(set.Issues), len(set.PullRequests), len(set.Commits), len(set.IssueEvents))

	for _, artifact := range []struct {
		data interface{}
		rel  string
	}{
		{set.Issues, "bronze/issues_all.json"},
		{set.PullRequests, "bronze/prs_all.json"},
		{set.Commits, "bronze/commits_all.json"},
		{set.IssueEvents, "bronze/issue_events_all.json"},
	} {
		if files, err = o.saveArtifact(artifact.data, artifact.rel, files); err != nil {
			return err
		}
	}

	if _, err := catalog.RecordStageRun(o.store, "bronze", "all_extractions", files); err != nil {
		return err
	}

	color.Green("\n[+] Bronze extraction completed, %d artifacts written", len(files))
	return nil
}

// RunProcess is the silver layer: turn the raw records into
// analytics-ready artifacts. Absent bronze inputs degrade to empty
// outputs rather than failing.
func (o *Orchestrator) RunProcess() error {
	set, err := o.loadActivity()
	if err != nil {
		return err
	}
	members, err := storage.LoadRecords[models.Member](o.store, "bronze/members_detailed.json")
	if err != nil {
		return err
	}

	var files []string
	now := time.Now().UTC()

	color.Blue("Processing member analytics...")
	processed := analytics.ProcessMembers(members, now)
	dist := analytics.StatusDistribution(processed)
	bands := analytics.BandMembers(processed)
	for _, artifact := range []struct {
		data interface{}
		rel  string
	}{
		{processed, "silver/members_analytics.json"},
		{dist, "silver/member_status_distribution.json"},
		{bands, "silver/maturity_bands.json"},
	} {
		if files, err = o.saveArtifact(artifact.data, artifact.rel, files); err != nil {
			return err
		}
	}
	display.MemberSummary(dist, bands)

	color.Blue("Processing contribution metrics...")
	contributions := analytics.ComputeContributions(members, set)
	repoMetrics := analytics.ComputeRepositoryMetrics(set)
	distribution := analytics.Distribution(contributions)
	for _, artifact := range []struct {
		data interface{}
		rel  string
	}{
		{contributions, "silver/contribution_metrics.json"},
		{repoMetrics, "silver/repository_metrics.json"},
		{distribution, "silver/contribution_distribution.json"},
	} {
		if files, err = o.saveArtifact(artifact.data, artifact.rel, files); err != nil {
			return err
		}
	}

	color.Blue("Processing collaboration networks...")
	net := network.Analyze(set)
	for _, artifact := range []struct {
		data interface{}
		rel  string
	}{
		{net.Edges, "silver/collaboration_edges.json"},
		{net.Users, "silver/user_collaboration_metrics.json"},
		{net.Repos, "silver/repository_collaboration_analysis.json"},
		{net.Summary, "silver/network_statistics.json"},
	} {
		if files, err = o.saveArtifact(artifact.data, artifact.rel, files); err != nil {
			return err
		}
	}
	// no artifact at all when there are no hubs, so consumers can tell
	// "none found" from "not computed"
	if len(net.Hubs) > 0 {
		if files, err = o.saveArtifact(net.Hubs, "silver/cross_repository_hubs.json", files); err != nil {
			return err
		}
	}
	display.NetworkSummary(net)

	color.Blue("Processing temporal analysis...")
	events := analytics.FlattenEvents(set)
	cycles := analytics.CycleTimes(set)
	for _, artifact := range []struct {
		data interface{}
		rel  string
	}{
		{events, "silver/temporal_events.json"},
		{analytics.DailySummary(events), "silver/daily_activity_summary.json"},
		{analytics.Heatmap(events), "silver/activity_heatmap.json"},
		{cycles, "silver/cycle_times.json"},
		{analytics.ComputeTemporalStats(events, cycles), "silver/temporal_statistics.json"},
	} {
		if files, err = o.saveArtifact(artifact.data, artifact.rel, files); err != nil {
			return err
		}
	}

	if _, err := catalog.RecordStageRun(o.store, "silver", "all_processed", files); err != nil {
		return err
	}

	color.Green("\n[+] Silver processing completed, %d artifacts written", len(files))
	return nil
}

// RunAggregate is the gold layer: executive KPIs and performance
// tiers from the silver artifacts.
func (o *Orchestrator) RunAggregate() error {
	var members []analytics.MemberAnalytics
	if _, err := o.store.LoadJSON("silver/members_analytics.json", &members); err != nil {
		return err
	}
	var contributions []analytics.ContributionMetrics
	if _, err := o.store.LoadJSON("silver/contribution_metrics.json", &contributions); err != nil {
		return err
	}
	var summary network.Summary
	if _, err := o.store.LoadJSON("silver/network_statistics.json", &summary); err != nil {
		return err
	}
	var temporal analytics.TemporalStats
	if _, err := o.store.LoadJSON("silver/temporal_statistics.json", &temporal); err != nil {
		return err
	}

	dash := aggregate.BuildDashboard(members, contributions, summary, temporal, time.Now().UTC())
	tiers := aggregate.BuildTiers(contributions)

	var files []string
	var err error
	if files, err = o.saveArtifact(dash, "gold/executive_dashboard.json", files); err != nil {
		return err
	}
	if files, err = o.saveArtifact(tiers, "gold/performance_tiers.json", files); err != nil {
		return err
	}

	if _, err := catalog.RecordStageRun(o.store, "gold", "all_aggregations", files); err != nil {
		return err
	}

	display.DashboardSummary(dash)
	color.Green("\n[+] Gold aggregation completed")
	return nil
}

// RunCatalog rebuilds the master registry and the data catalog.
func (o *Orchestrator) RunCatalog() error {
	registryFile, err := catalog.BuildMasterRegistry(o.store)
	if err != nil {
		return err
	}
	color.Green("[+] Created master registry: %s", registryFile)

	catalogFile, err := catalog.WriteCatalog(o.store)
	if err != nil {
		return err
	}
	color.Green("[+] Created data catalog: %s", catalogFile)
	return nil
}

func (o *Orchestrator) loadActivity() (models.ActivitySet, error) {
	var set models.ActivitySet
	var err error

	if set.Issues, err = storage.LoadRecords[models.Issue](o.store, "bronze/issues_all.json"); err != nil {
		return set, err
	}
	if set.PullRequests, err = storage.LoadRecords[models.PullRequest](o.store, "bronze/prs_all.json"); err != nil {
		return set, err
	}
	if set.Commits, err = storage.LoadRecords[models.Commit](o.store, "bronze/commits_all.json"); err != nil {
		return set, err
	}
	if set.IssueEvents, err = storage.LoadRecords[models.IssueEvent](o.store, "bronze/issue_events_all.json"); err != nil {
		return set, err
	}
	return set, nil
}

func (o *Orchestrator) saveArtifact(data interface{}, rel string, files []string) ([]string, error) {
	path, err := o.store.SaveJSON(data, rel)
	if err != nil {
		return files, err
	}
	return append(files, path), nil
}

func (o *Orchestrator) bronzeComplete() bool {
	for _, rel := range []string{
		"bronze/repositories_filtered.json",
		"bronze/issues_all.json",
		"bronze/prs_all.json",
		"bronze/commits_all.json",
		"bronze/issue_events_all.json",
	} {
		if _, err := os.Stat(o.store.Path(rel)); err != nil {
			return false
		}
	}
	return true
}
