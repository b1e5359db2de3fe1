package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func cliContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("orgpulse", flag.ContinueOnError)
	set.String("org", "", "")
	set.String("token", "", "")
	set.String("data-dir", "data", "")
	set.String("org-config", "", "")
	set.Bool("cache", false, "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(nil, set, nil)
}

func TestParseConfig(t *testing.T) {
	c := cliContext(t, "--org", "coops-org", "--token", "tok123", "--cache")

	cfg, err := ParseConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "coops-org", cfg.Org)
	assert.Equal(t, "tok123", cfg.Token)
	assert.Equal(t, "data", cfg.DataDir)
	assert.True(t, cfg.UseCache)
}

func TestParseConfig_OrgFromPositionalArg(t *testing.T) {
	c := cliContext(t, "coops-org")

	cfg, err := ParseConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "coops-org", cfg.Org)
}

func TestLoadOrgConfig_Defaults(t *testing.T) {
	cfg, err := LoadOrgConfig("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DetailedRepos)
	assert.Equal(t, 3, cfg.MaxEventsPages)
	assert.False(t, cfg.IncludeForks)
}

func TestLoadOrgConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadOrgConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOrgConfig(), cfg)
}

func TestLoadOrgConfig_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "org.yml")
	raw := "blacklist:\n  - sandbox\n  - playground\ninclude_forks: true\ndetailed_repos: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := LoadOrgConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sandbox", "playground"}, cfg.Blacklist)
	assert.True(t, cfg.IncludeForks)
	assert.Equal(t, 10, cfg.DetailedRepos)
	// unset values fall back to defaults
	assert.Equal(t, 3, cfg.MaxEventsPages)
}

func TestLoadOrgConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "org.yml")
	require.NoError(t, os.WriteFile(path, []byte("blacklist: [unclosed"), 0644))

	_, err := LoadOrgConfig(path)
	assert.Error(t, err)
}

func TestShouldSkipRepo(t *testing.T) {
	cfg := &OrgConfig{Blacklist: []string{"sandbox"}}

	assert.True(t, cfg.ShouldSkipRepo("sandbox", false))
	assert.True(t, cfg.ShouldSkipRepo("anything", true))
	assert.False(t, cfg.ShouldSkipRepo("real-project", false))

	cfg.IncludeForks = true
	assert.False(t, cfg.ShouldSkipRepo("a-fork", true))
}
