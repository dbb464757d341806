// Package scan implements the scan command: resolve template names,
// stream the dump, classify, and write the report.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/wdtools/wdreuse/internal/common"
	"github.com/wdtools/wdreuse/models"
	"github.com/wdtools/wdreuse/pkg/caching"
	"github.com/wdtools/wdreuse/pkg/classify"
	"github.com/wdtools/wdreuse/pkg/db"
	"github.com/wdtools/wdreuse/pkg/dump"
	"github.com/wdtools/wdreuse/pkg/mwapi"
	"github.com/wdtools/wdreuse/pkg/report"
	"github.com/wdtools/wdreuse/pkg/scanner"
)

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	cfg := &models.ScanConfig{
		Lang:          c.String("lang"),
		DumpPath:      c.String("dump"),
		OutputTSV:     c.String("output_tsv"),
		Offline:       c.Bool("offline"),
		ProgressEvery: c.Int("progress-every"),
	}

	seeds := models.DefaultSeeds()
	if c.IsSet("seeds") {
		var err error
		seeds, err = models.LoadSeeds(c.String("seeds"))
		if err != nil {
			return err
		}
	}

	maxAge, err := time.ParseDuration(c.String("max-age"))
	if err != nil {
		return fmt.Errorf("invalid max-age duration: %w", err)
	}
	cache, err := caching.NewCache(c.String("cache-dir"), maxAge)
	if err != nil {
		return err
	}

	client := mwapi.NewClient(cfg.Lang)
	client.Cache = cache
	client.ForceFetch = c.Bool("force-fetch")

	logger.Info("resolving template names", "lang", cfg.Lang, "offline", cfg.Offline)
	rules, err := common.BuildRuleSet(client, seeds, cfg.Lang, cfg.Offline, logger)
	if err != nil {
		return err
	}
	for _, fam := range classify.Families {
		fmt.Printf("%s: %d template names\n", fam, rules[fam].Len())
	}

	dumpPath := cfg.ResolveDumpPath()
	logger.Info("opening dump", "path", dumpPath)
	parser, closeDump, err := dump.OpenFile(dumpPath)
	if err != nil {
		return err
	}
	defer closeDump()

	agg := report.NewAggregate()
	s := &scanner.Scanner{
		Rules:         rules,
		Agg:           agg,
		ProgressEvery: cfg.ProgressEvery,
		Out:           os.Stdout,
	}
	if err := s.Run(parser); err != nil {
		return err
	}

	fmt.Println(agg.Progress())

	if err := report.WriteTSV(cfg.OutputTSV, agg); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", cfg.OutputTSV)

	runID, err := recordRun(c.String("db"), cfg, dumpPath, agg, startTime)
	if err != nil {
		return err
	}
	logger.Info("scan complete", "run_id", runID,
		"pages", agg.Pages, "evaluated", agg.Evaluated,
		"seconds", time.Since(startTime).Seconds())
	return nil
}

// recordRun persists the run totals to the history database.
func recordRun(dbPath string, cfg *models.ScanConfig, dumpPath string, agg *report.Aggregate, startTime time.Time) (int64, error) {
	database, err := db.Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer database.Close()

	run := db.Run{
		Lang:       cfg.Lang,
		DumpPath:   dumpPath,
		OutputTSV:  cfg.OutputTSV,
		StartedAt:  startTime,
		FinishedAt: time.Now(),
		Pages:      agg.Pages,
		Evaluated:  agg.Evaluated,
		Probable:   agg.Probable,
		Confirmed:  agg.Confirmed,
	}
	families := make([]db.FamilyResult, 0, len(classify.Families))
	for _, fam := range classify.Families {
		count := agg.Counts[fam]
		families = append(families, db.FamilyResult{
			Family:       string(fam),
			Transclusion: count.Transclusion,
			Tracking:     count.Tracking,
		})
	}
	return database.RecordRun(run, families)
}
