package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/wdtools/wdreuse/internal/resolve"
	"github.com/wdtools/wdreuse/internal/runs"
	"github.com/wdtools/wdreuse/internal/scan"
	"github.com/wdtools/wdreuse/pkg/db"
)

func main() {
	apiFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "seeds",
			Usage: "YAML file overriding the built-in seed template table",
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Value: ".wdreuse-cache",
			Usage: "directory for cached API responses",
		},
		&cli.StringFlag{
			Name:  "max-age",
			Value: "168h",
			Usage: "maximum age of cached API responses",
		},
		&cli.BoolFlag{
			Name:  "force-fetch",
			Usage: "bypass the API response cache",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
	}

	dbFlag := &cli.StringFlag{
		Name:  "db",
		Value: db.DefaultDBName,
		Usage: "path to the run-history database",
	}

	app := &cli.App{
		Name:  "wdreuse",
		Usage: "estimate tracking-only vs. transclusion usage of Wikidata-backed templates",
		Commands: []*cli.Command{
			{
				Name:  "scan",
				Usage: "scan a pages-articles dump and write the usage report",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "lang",
						Value: "en",
						Usage: "Wikipedia language to analyze",
					},
					&cli.StringFlag{
						Name:  "output_tsv",
						Value: "output.tsv",
						Usage: "output data TSV",
					},
					&cli.StringFlag{
						Name:  "dump",
						Usage: "dump path (default: standard Wikimedia dumps location for --lang)",
					},
					&cli.BoolFlag{
						Name:  "offline",
						Usage: "use seed titles verbatim, without API resolution",
					},
					&cli.IntFlag{
						Name:  "progress-every",
						Value: 10000,
						Usage: "pages between progress lines (0 disables)",
					},
					dbFlag,
				}, apiFlags...),
				Action: scan.Action,
			},
			{
				Name:      "resolve",
				Usage:     "resolve and print template name sets without scanning",
				ArgsUsage: "[family...]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "lang",
						Value: "en",
						Usage: "Wikipedia language to analyze",
					},
				}, apiFlags...),
				Action: resolve.Action,
			},
			{
				Name:  "db",
				Usage: "browse recorded runs",
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "list recorded runs",
						Flags: []cli.Flag{
							dbFlag,
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum number of runs to list",
							},
						},
						Action: runs.ListAction,
					},
					{
						Name:      "run",
						Usage:     "show one run (latest if no ID given)",
						ArgsUsage: "[id]",
						Flags:     []cli.Flag{dbFlag},
						Action:    runs.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
