package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/coopstools/orgpulse/internal/aggregate"
	"github.com/coopstools/orgpulse/internal/analytics"
	"github.com/coopstools/orgpulse/internal/network"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

const maxHubRows = 10

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	return tbl
}

func header(title string) {
	fmt.Println()
	color.New(color.FgCyan, color.Bold).Println(strings.ToUpper(title))
}

// NetworkSummary prints the headline graph numbers and the top hubs.
func NetworkSummary(net *network.Network) {
	header("Collaboration network")

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRows([]table.Row{
		{"Users", net.Summary.TotalUsers},
		{"Collaborations", net.Summary.TotalCollaborations},
		{"Repositories", net.Summary.TotalRepositories},
		{"Cross-repo contributors", net.Summary.CrossRepoContributors},
		{"Avg collaborators/user", fmt.Sprintf("%.2f", net.Summary.AvgCollaboratorsPerUser)},
		{"Avg contributors/repo", fmt.Sprintf("%.2f", net.Summary.AvgContributorsPerRepo)},
	})
	tbl.Render()

	if len(net.Hubs) == 0 {
		color.Yellow("[!] No cross-repository hubs found")
		return
	}

	header("Cross-repository hubs")
	hubs := net.Hubs
	if len(hubs) > maxHubRows {
		hubs = hubs[:maxHubRows]
	}
	tbl = newTable()
	tbl.AppendHeader(table.Row{"User", "Repos", "Collaborators", "Repositories"})
	for _, hub := range hubs {
		tbl.AppendRow(table.Row{
			hub.User,
			hub.RepoCount,
			hub.TotalCollaborators,
			strings.Join(hub.Repositories, ", "),
		})
	}
	tbl.Render()
}

// MemberSummary prints the roster breakdown.
func MemberSummary(dist map[string]int, bands analytics.MaturityBands) {
	header("Members")

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Status", "Count"})
	tbl.AppendRows([]table.Row{
		{"New", dist[analytics.StatusNew]},
		{"Established", dist[analytics.StatusEstablished]},
	})
	tbl.Render()

	fmt.Printf("%s low %d / medium %d / high %d\n",
		color.WhiteString("Maturity bands:"), bands.Low, bands.Medium, bands.High)
}

// DashboardSummary prints the gold-layer KPIs.
func DashboardSummary(dash aggregate.ExecutiveDashboard) {
	header("Executive dashboard")

	tbl := newTable()
	tbl.AppendHeader(table.Row{"KPI", "Value"})
	tbl.AppendRows([]table.Row{
		{"Total members", dash.OrganizationHealth.TotalMembers},
		{"Active contributors", dash.OrganizationHealth.ActiveContributors},
		{"New members", dash.OrganizationHealth.NewMembers},
		{"Established members", dash.OrganizationHealth.EstablishedMembers},
		{"Collaborations", dash.CollaborationMetrics.TotalCollaborations},
		{"Cross-repo contributors", dash.CollaborationMetrics.CrossRepoContributors},
		{"Total events", dash.ActivityMetrics.TotalEvents},
		{"Avg daily activity", fmt.Sprintf("%.2f", dash.ActivityMetrics.AvgDailyActivity)},
	})
	tbl.Render()

	if len(dash.TopContributors) > 0 {
		header("Top contributors")
		tbl = newTable()
		tbl.AppendHeader(table.Row{"User", "Issues", "PRs", "Commits", "Events", "Total"})
		for _, c := range dash.TopContributors {
			tbl.AppendRow(table.Row{c.User, c.Issues, c.PullRequests, c.Commits, c.IssueEvents, c.TotalContributions})
		}
		tbl.Render()
	}
}
