package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gitowl/gitowl/internal/config"
	"github.com/gitowl/gitowl/internal/gist"
	"github.com/gitowl/gitowl/internal/githubql"
	"github.com/gitowl/gitowl/internal/pipeline"
	"github.com/gitowl/gitowl/internal/server"
	"github.com/gitowl/gitowl/internal/utils"
	gh "github.com/google/go-github/v57/github"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options]

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

var (
	repoOwner = "gitowl"
	repoName  = "gitowl"
)

func printBanner() {
	fmt.Fprintf(os.Stderr, "\033[36mgitowl\033[0m \033[91mv%s\033[0m — commit time-of-day for your gist\n\n", utils.GetVersion())
}

func checkLatestVersion(ctx context.Context, client *gh.Client) {
	release, _, err := client.Repositories.GetLatestRelease(ctx, repoOwner, repoName)
	if err != nil {
		return // Silently fail version check
	}

	latestVersion := strings.TrimPrefix(release.GetTagName(), "v")
	if latestVersion != utils.GetVersion() {
		color.Yellow("⚠️  A new version of gitowl is available: %s (you're running %s)",
			latestVersion, utils.GetVersion())
		fmt.Println()
	}
}

func validateToken(ctx context.Context, client *gh.Client) error {
	_, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case 401:
				return fmt.Errorf("invalid GitHub token")
			case 403:
				// Rate limited - skip validation, token is likely valid
				color.Yellow("⚠️  Rate limited, skipping token validation")
				return nil
			}
		}
		return fmt.Errorf("error validating token: %v", err)
	}
	return nil
}

// printPublisher renders the report to stdout instead of a gist.
type printPublisher struct{}

func (printPublisher) Publish(_ context.Context, title, body string) error {
	color.HiCyan("\n%s\n", title)
	fmt.Println(body)
	return nil
}

func runApp(c *cli.Context) error {
	cfg, err := config.Parse(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctx := context.Background()
	restClient := gist.NewClient(cfg.Token)
	checkLatestVersion(ctx, restClient)

	if err := validateToken(ctx, restClient); err != nil {
		return cli.Exit(fmt.Sprintf("token validation failed: %v", err), 1)
	}

	loc, err := cfg.Location()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var publisher pipeline.Publisher = printPublisher{}
	if !cfg.DryRun {
		publisher = gist.New(restClient, cfg.GistID)
	}

	p := &pipeline.Pipeline{
		Client:    githubql.NewClient(cfg.Token),
		Publisher: publisher,
		Location:  loc,
		Progress:  cfg.Listen == "",
	}

	if cfg.Listen != "" {
		return server.New(cfg.Listen, p).Start()
	}

	outcome := p.Run(ctx)
	if !outcome.OK() {
		return cli.Exit(outcome.Body, 1)
	}
	color.Green("✅ %s", outcome.Body)
	return nil
}

func main() {
	_ = godotenv.Load()
	cli.AppHelpTemplate = helpTemplate
	// Configure logger to only show the message
	log.SetFlags(0)

	app := &cli.App{
		Name:    "gitowl",
		Usage:   "Publish your commit time-of-day distribution to a pinned gist",
		Version: "v" + utils.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "GitHub personal access token",
				EnvVars: []string{"GITOWL_GITHUB_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "gist",
				Aliases: []string{"g"},
				Usage:   "Target gist id",
				EnvVars: []string{"GITOWL_GIST_ID"},
			},
			&cli.StringFlag{
				Name:    "timezone",
				Aliases: []string{"z"},
				Usage:   "IANA timezone for bucketing commit times",
				Value:   "UTC",
				EnvVars: []string{"GITOWL_TIMEZONE"},
			},
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Serve HTTP on this address instead of running once",
				EnvVars: []string{"GITOWL_LISTEN"},
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Print the report instead of updating the gist",
			},
		},
		Action: runApp,
		Before: func(c *cli.Context) error {
			if !c.Bool("help") && !c.Bool("version") {
				printBanner()
			}
			return nil
		},
		Authors: []*cli.Author{
			{Name: "gitowl"},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
