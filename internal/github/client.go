package github

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/go-github/v57/github"
	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2"
)

func GetGithubClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

// GetToken resolves the API token: --token flag first (and saved for
// next time), then ORGPULSE_GITHUB_TOKEN, then the saved token file.
func GetToken(c *cli.Context) string {
	if token := c.String("token"); token != "" {
		saveToken(token)
		return token
	}

	if token := os.Getenv("ORGPULSE_GITHUB_TOKEN"); token != "" {
		return token
	}

	configDir, err := os.UserConfigDir()
	if err == nil {
		tokenFile := filepath.Join(configDir, "orgpulse", "token")
		if data, err := os.ReadFile(tokenFile); err == nil {
			if token := strings.TrimSpace(string(data)); token != "" {
				return token
			}
		}
	}

	color.Yellow("\nNo GitHub token found. Unauthenticated requests are rate limited to 60/hour.")
	color.Blue("Create one at https://github.com/settings/tokens with read:org scope,")
	color.Blue("then pass it via --token or ORGPULSE_GITHUB_TOKEN.")
	return ""
}

func saveToken(token string) {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		return
	}
	configPath := filepath.Join(configDir, "orgpulse")
	os.MkdirAll(configPath, 0700)
	if err := os.WriteFile(filepath.Join(configPath, "token"), []byte(token), 0600); err == nil {
		color.Green("Token saved successfully")
	}
}

func ValidateToken(ctx context.Context, client *github.Client) error {
	_, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case 401:
				return fmt.Errorf("invalid GitHub token")
			case 403:
				// rate limited, token is probably fine
				color.Yellow("[!] Rate limited, skipping token validation")
				return nil
			}
		}
		return fmt.Errorf("error validating token: %v", err)
	}
	return nil
}
