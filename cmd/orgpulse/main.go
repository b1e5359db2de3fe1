package main

import (
	"context"
	"log"
	"os"

	appcli "github.com/coopstools/orgpulse/internal/cli"
	"github.com/coopstools/orgpulse/internal/config"
	"github.com/coopstools/orgpulse/internal/github"
	"github.com/coopstools/orgpulse/internal/service"
	"github.com/urfave/cli/v2"
)

func setup(c *cli.Context) (*service.Orchestrator, error) {
	cfg, err := config.ParseConfig(c)
	if err != nil {
		return nil, err
	}
	orgCfg, err := config.LoadOrgConfig(cfg.OrgFile)
	if err != nil {
		return nil, err
	}

	// GetToken falls back to the env and the saved token file when the
	// flag is empty, so re-resolve rather than trusting the flag alone.
	cfg.Token = github.GetToken(c)
	client := github.GetGithubClient(cfg.Token)
	if cfg.Token != "" {
		if err := github.ValidateToken(c.Context, client); err != nil {
			return nil, err
		}
	}

	return service.NewOrchestrator(client, cfg, orgCfg), nil
}

func main() {
	actions := appcli.Actions{
		Extract: func(c *cli.Context) error {
			o, err := setup(c)
			if err != nil {
				return err
			}
			return o.RunExtract(c.Context)
		},
		Process: func(c *cli.Context) error {
			o, err := setup(c)
			if err != nil {
				return err
			}
			return o.RunProcess()
		},
		Aggregate: func(c *cli.Context) error {
			o, err := setup(c)
			if err != nil {
				return err
			}
			return o.RunAggregate()
		},
		Catalog: func(c *cli.Context) error {
			o, err := setup(c)
			if err != nil {
				return err
			}
			return o.RunCatalog()
		},
		All: func(c *cli.Context) error {
			o, err := setup(c)
			if err != nil {
				return err
			}
			if err := o.RunExtract(c.Context); err != nil {
				return err
			}
			if err := o.RunProcess(); err != nil {
				return err
			}
			if err := o.RunAggregate(); err != nil {
				return err
			}
			return o.RunCatalog()
		},
	}

	app := appcli.NewApp(actions)
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
