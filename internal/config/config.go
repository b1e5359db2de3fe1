package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Org      string
	DataDir  string
	Token    string
	UseCache bool
	OrgFile  string
}

// OrgConfig is the optional per-organization YAML file controlling
// what the extractor pulls.
type OrgConfig struct {
	Blacklist      []string `yaml:"blacklist"`
	IncludeForks   bool     `yaml:"include_forks"`
	DetailedRepos  int      `yaml:"detailed_repos"`
	MaxEventsPages int      `yaml:"max_events_pages"`
}

func DefaultOrgConfig() *OrgConfig {
	return &OrgConfig{
		DetailedRepos:  5,
		MaxEventsPages: 3,
	}
}

func ParseConfig(c *cli.Context) (*AppConfig, error) {
	// .env is optional; a missing file just means the token comes from
	// the flag or the real environment.
	godotenv.Load()

	org := c.String("org")
	if org == "" {
		org = c.Args().First()
	}

	return &AppConfig{
		Org:      org,
		DataDir:  c.String("data-dir"),
		Token:    c.String("token"),
		UseCache: c.Bool("cache"),
		OrgFile:  c.String("org-config"),
	}, nil
}

// LoadOrgConfig reads the YAML org file. No path or a missing file
// yields the defaults.
func LoadOrgConfig(path string) (*OrgConfig, error) {
	cfg := DefaultOrgConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading org config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing org config %s: %w", path, err)
	}
	if cfg.DetailedRepos <= 0 {
		cfg.DetailedRepos = DefaultOrgConfig().DetailedRepos
	}
	if cfg.MaxEventsPages <= 0 {
		cfg.MaxEventsPages = DefaultOrgConfig().MaxEventsPages
	}
	return cfg, nil
}

// ShouldSkipRepo applies the blacklist and fork policy.
func (oc *OrgConfig) ShouldSkipRepo(name string, isFork bool) bool {
	if isFork && !oc.IncludeForks {
		return true
	}
	for _, blocked := range oc.Blacklist {
		if blocked == name {
			return true
		}
	}
	return false
}
