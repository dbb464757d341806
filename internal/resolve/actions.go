// Package resolve implements the resolve command: build and print the
// template name sets without scanning anything.
package resolve

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/wdtools/wdreuse/internal/common"
	"github.com/wdtools/wdreuse/models"
	"github.com/wdtools/wdreuse/pkg/caching"
	"github.com/wdtools/wdreuse/pkg/classify"
	"github.com/wdtools/wdreuse/pkg/mwapi"
)

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	lang := c.String("lang")

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

	client := mwapi.NewClient(lang)
	client.Cache = cache
	client.ForceFetch = c.Bool("force-fetch")

	rules, err := common.BuildRuleSet(client, seeds, lang, false, logger)
	if err != nil {
		return err
	}

	// optionally restrict to the families given as arguments
	selected := classify.Families
	if c.NArg() > 0 {
		selected = nil
		for _, arg := range c.Args().Slice() {
			selected = append(selected, classify.Family(arg))
		}
	}

	for _, fam := range selected {
		rule, ok := rules[fam]
		if !ok {
			return fmt.Errorf("unknown family %q (known: cd, ac, tb, bd, el)", fam)
		}
		fmt.Printf("%s (%d names):\n", fam, rule.Len())
		for _, name := range sortedNames(rule) {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}

func sortedNames(r *classify.Rule) []string {
	names := r.Names()
	sort.Strings(names)
	return names
}
