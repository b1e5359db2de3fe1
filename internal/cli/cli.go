package cli

import (
	"github.com/coopstools/orgpulse/internal/utils"
	"github.com/urfave/cli/v2"
)

// Actions holds the handler for each pipeline stage; wiring them up
// lives in cmd/orgpulse.
type Actions struct {
	Extract   cli.ActionFunc
	Process   cli.ActionFunc
	Aggregate cli.ActionFunc
	Catalog   cli.ActionFunc
	All       cli.ActionFunc
}

func NewApp(actions Actions) *cli.App {
	return &cli.App{
		Name:    "orgpulse",
		Usage:   "Build collaboration and activity analytics for a GitHub organization",
		Version: "v" + utils.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "GitHub personal access token",
				EnvVars: []string{"ORGPULSE_GITHUB_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "org",
				Aliases: []string{"o"},
				Usage:   "GitHub organization name",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Value: "data",
				Usage: "Directory for bronze/silver/gold artifacts",
			},
			&cli.StringFlag{
				Name:  "org-config",
				Usage: "Organization YAML config (blacklist, fork policy)",
			},
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "Reuse existing bronze artifacts instead of refetching",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Extract raw organization data into the bronze layer",
				ArgsUsage: "<organization>",
				Action:    actions.Extract,
			},
			{
				Name:   "process",
				Usage:  "Process bronze records into silver analytics artifacts",
				Action: actions.Process,
			},
			{
				Name:   "aggregate",
				Usage:  "Aggregate silver artifacts into gold dashboards",
				Action: actions.Aggregate,
			},
			{
				Name:   "catalog",
				Usage:  "Rebuild the data registry and catalog",
				Action: actions.Catalog,
			},
			{
				Name:      "run",
				Usage:     "Run extract, process, aggregate and catalog in order",
				ArgsUsage: "<organization>",
				Action:    actions.All,
			},
		},
	}
}
