// Package runs implements the db commands for browsing recorded scans.
package runs

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	dbpkg "github.com/wdtools/wdreuse/pkg/db"
)

func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-6s %-6s %-20s %-12s %-12s %-12s %-12s\n",
		"ID", "Lang", "Started", "Pages", "Evaluated", "Probable", "Confirmed")
	fmt.Println(strings.Repeat("-", 84))
	for _, r := range runs {
		fmt.Printf("%-6d %-6s %-20s %-12s %-12s %-12s %-12s\n",
			r.RunID,
			r.Lang,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			humanize.Comma(r.Pages),
			humanize.Comma(int64(r.Evaluated)),
			humanize.Comma(int64(r.Probable)),
			humanize.Comma(int64(r.Confirmed)),
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'wdreuse db run <id>' to see per-family counts\n")
	return nil
}

// ShowAction prints one run in detail; defaults to the latest run when
// no ID is given.
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	runID, err := runIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, families, err := database.GetRun(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Language:    %s\n", run.Lang)
	fmt.Printf("Dump:        %s\n", run.DumpPath)
	fmt.Printf("Report:      %s\n", run.OutputTSV)
	fmt.Printf("Started:     %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Finished:    %s (%s)\n",
		run.FinishedAt.Format("2006-01-02 15:04:05"),
		run.FinishedAt.Sub(run.StartedAt).Round(time.Second))
	fmt.Printf("Pages:       %s processed, %s evaluated\n",
		humanize.Comma(run.Pages), humanize.Comma(int64(run.Evaluated)))
	fmt.Printf("Usage:       %s probable, %s confirmed\n",
		humanize.Comma(int64(run.Probable)), humanize.Comma(int64(run.Confirmed)))

	if len(families) > 0 {
		fmt.Printf("\nFamilies (%d):\n", len(families))
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("%-8s %-14s %-14s %s\n", "Family", "Transclusion", "Tracking", "% transclusion")
		for _, f := range families {
			n := f.Transclusion + f.Tracking
			pct := "--"
			if n > 0 {
				pct = fmt.Sprintf("%.1f%%", float64(f.Transclusion)*100/float64(n))
			}
			fmt.Printf("%-8s %-14d %-14d %s\n", f.Family, f.Transclusion, f.Tracking, pct)
		}
	}
	return nil
}

func runIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		return database.LatestRunID()
	}

	var runID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &runID); err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}
