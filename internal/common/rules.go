// Package common holds helpers shared by the CLI command actions.
package common

import (
	"fmt"
	"log/slog"

	"github.com/wdtools/wdreuse/models"
	"github.com/wdtools/wdreuse/pkg/classify"
	"github.com/wdtools/wdreuse/pkg/mwapi"
	"github.com/wdtools/wdreuse/pkg/wikitext"
)

// BuildRuleSet turns the seed table into matchable name sets for every
// family. Online, each seed category is expanded into its member titles
// and every title is expanded into itself plus its redirects. Offline,
// seed titles are normalized verbatim and categories are skipped.
func BuildRuleSet(client *mwapi.Client, seeds models.Seeds, lang string, offline bool, logger *slog.Logger) (classify.RuleSet, error) {
	rules := classify.NewRuleSet()

	for _, fam := range classify.Families {
		fs, ok := seeds.ForLang(string(fam), lang)
		if !ok {
			return nil, fmt.Errorf("no seed templates for family %q in language %q (provide --seeds)", fam, lang)
		}

		titles := append([]string(nil), fs.Templates...)
		if offline {
			if len(fs.Categories) > 0 {
				logger.Warn("offline mode skips category expansion",
					"family", fam, "categories", fs.Categories)
			}
			for _, title := range titles {
				rules[fam].Add(wikitext.Normalize(wikitext.StripNamespace(title)))
			}
			continue
		}

		for _, cat := range fs.Categories {
			members, err := client.CategoryMembers(cat)
			if err != nil {
				return nil, err
			}
			logger.Info("expanded category", "family", fam, "category", cat, "members", len(members))
			titles = append(titles, members...)
		}

		for _, title := range titles {
			names, err := client.Redirects(title)
			if err != nil {
				return nil, err
			}
			for _, name := range names {
				rules[fam].Add(name)
			}
		}
	}

	return rules, nil
}
